// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader handles configuration loading with precedence
type Loader struct {
	configPath      string
	version         string
	ConsumedEnvKeys map[string]struct{} // Mechanical tracking of consumed keys
}

// NewLoader creates a new configuration loader
func NewLoader(configPath, version string) *Loader {
	return &Loader{
		configPath:      configPath,
		version:         version,
		ConsumedEnvKeys: make(map[string]struct{}),
	}
}

// Wrapper methods for mechanical connection tracking

func (l *Loader) envString(key, defaultVal string) string {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseString(key, defaultVal)
}

func (l *Loader) envList(key string) []string {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseList(key)
}

// Load loads configuration with precedence: ENV > File > Defaults.
// It enforces Strict Validated Order: Parse File (Strict) -> Apply Env.
// Business validation is a separate step, see Validate.
func (l *Loader) Load() (Config, error) {
	cfg := Config{}

	// 1. Set defaults
	l.setDefaults(&cfg)

	// 2. Load from file (if provided)
	if l.configPath != "" {
		fileCfg, err := l.loadFile(l.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
		if err := l.mergeFileConfig(&cfg, fileCfg); err != nil {
			return cfg, fmt.Errorf("merge file config: %w", err)
		}
	}

	// 3. Override with environment variables (highest priority)
	l.mergeEnvConfig(&cfg)

	// 4. Normalize plugin references (order-preserving, duplicates rejected)
	plugins, err := NormalizePlugins(cfg.Plugins)
	if err != nil {
		return cfg, fmt.Errorf("normalize plugins: %w", err)
	}
	cfg.Plugins = plugins

	if cfg.Version == "" {
		cfg.Version = l.version
	}

	return cfg, nil
}

// setDefaults applies the built-in defaults before file and env merging.
func (l *Loader) setDefaults(cfg *Config) {
	*cfg = DefaultConfig()
}

// loadFile reads and strictly parses a YAML descriptor file.
func (l *Loader) loadFile(path string) (*FileConfig, error) {
	path = filepath.Clean(path)

	// Check file extension
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("unsupported config format: %s (only YAML supported)", ext)
	}

	// Read file
	// #nosec G304 -- configuration file paths are provided by the operator via CLI/ENV
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	// Parse YAML with strict mode (unknown fields cause errors)
	var fileCfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // Reject unknown fields

	if err := dec.Decode(&fileCfg); err != nil {
		if err == io.EOF {
			return &FileConfig{}, nil
		}
		if strings.Contains(err.Error(), "field") && strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("strict config parse error: %w: %v", ErrUnknownConfigField, err)
		}
		return nil, fmt.Errorf("strict config parse error: %w", err)
	}

	// Strict: Ensure no multiple documents or trailing content
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("config file contains multiple documents or trailing content")
	}

	return &fileCfg, nil
}

// mergeFileConfig merges the file descriptor into the resolved config.
// Absent fields keep their defaults; present fields replace them.
func (l *Loader) mergeFileConfig(dst *Config, src *FileConfig) error {
	if src.Version != "" {
		dst.Version = src.Version
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}

	if src.Content != nil {
		content := make([]string, 0, len(src.Content))
		for _, pattern := range src.Content {
			content = append(content, expandEnv(pattern))
		}
		dst.Content = content
	}

	if src.Theme != nil {
		dst.Theme = Theme{Extend: src.Theme.Extend.Clone()}
	}

	if src.Plugins != nil {
		dst.Plugins = append([]string(nil), src.Plugins...)
	}

	return nil
}

// mergeEnvConfig applies environment overrides on top of the merged config.
func (l *Loader) mergeEnvConfig(dst *Config) {
	if content := l.envList(EnvContent); content != nil {
		dst.Content = content
	}
	if plugins := l.envList(EnvPlugins); plugins != nil {
		dst.Plugins = plugins
	}
	dst.LogLevel = l.envString(EnvLogLevel, dst.LogLevel)
}
