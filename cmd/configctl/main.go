// SPDX-License-Identifier: MIT

// configctl manages utilcss configuration descriptors.
//
// Usage:
//
//	configctl init [--file|-f utilcss.yaml] [--force]
//	configctl dump [--file|-f utilcss.yaml] [--format=yaml|json]
//	configctl validate [--file|-f utilcss.yaml]
package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	os.Exit(runConfigCLI(os.Args[1:]))
}

func runConfigCLI(args []string) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		printUsage()
		return 0
	}

	switch args[0] {
	case "init":
		return runInit(args[1:])
	case "dump":
		return runDump(args[1:])
	case "validate":
		return runValidate(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown subcommand: %s\n\n", args[0])
		printUsage()
		return 2
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  configctl init [--file|-f utilcss.yaml] [--force]")
	fmt.Fprintln(os.Stderr, "  configctl dump [--file|-f utilcss.yaml] [--format=yaml|json]")
	fmt.Fprintln(os.Stderr, "  configctl validate [--file|-f utilcss.yaml]")
}
