// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ManuGH/utilcss/internal/config"
)

const defaultConfigFile = "utilcss.yaml"

func resolveConfigPath(file string) string {
	if file = strings.TrimSpace(file); file != "" {
		return file
	}
	if env := strings.TrimSpace(os.Getenv(config.EnvConfigPath)); env != "" {
		return env
	}
	return defaultConfigFile
}

func runInit(args []string) int {
	fs := flag.NewFlagSet("configctl init", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var file string
	var force bool
	fs.StringVar(&file, "file", "", "path to write the descriptor to")
	fs.StringVar(&file, "f", "", "path to write the descriptor to (shorthand)")
	fs.BoolVar(&force, "force", false, "overwrite an existing file")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	path := resolveConfigPath(file)
	m := config.NewManager(path)
	if err := m.WriteDefault(force); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			fmt.Fprintf(os.Stderr, "Error: %s already exists (use --force to overwrite)\n", path)
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error: write %s: %v\n", path, err)
		return 1
	}

	fmt.Printf("✓ wrote default configuration to %s\n", path)
	return 0
}

func runDump(args []string) int {
	fs := flag.NewFlagSet("configctl dump", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var file string
	var format string
	fs.StringVar(&file, "file", "", "path to YAML configuration file")
	fs.StringVar(&file, "f", "", "path to YAML configuration file (shorthand)")
	fs.StringVar(&format, "format", "yaml", "output format: yaml or json")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	path := resolveConfigPath(file)
	if _, err := os.Stat(path); err != nil {
		// No file: dump the effective config from defaults and env only.
		path = ""
	}

	loader := config.NewLoader(path, version)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 1
	}

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(config.FromConfig(&cfg)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: encode: %v\n", err)
			return 1
		}
		_ = enc.Close()
	case "json":
		data, err := json.MarshalIndent(config.FromConfig(&cfg), "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: encode: %v\n", err)
			return 1
		}
		fmt.Println(string(data))
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (yaml or json)\n", format)
		return 2
	}
	return 0
}

func runValidate(args []string) int {
	fs := flag.NewFlagSet("configctl validate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var file string
	fs.StringVar(&file, "file", "", "path to YAML configuration file")
	fs.StringVar(&file, "f", "", "path to YAML configuration file (shorthand)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	path := resolveConfigPath(file)
	loader := config.NewLoader(path, version)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error in %s:\n  %v\n", path, err)
		return 1
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Validation error in %s:\n  %v\n", path, err)
		return 1
	}

	fmt.Printf("✓ %s is valid\n", path)
	return 0
}
