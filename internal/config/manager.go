// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// Manager handles configuration persistence.
type Manager struct {
	configPath string
}

// NewManager creates a new configuration manager.
func NewManager(configPath string) *Manager {
	return &Manager{
		configPath: configPath,
	}
}

// Save writes the descriptor to disk atomically and durably: renameio writes
// a temp file, fsyncs and renames, so a crash never leaves a half-written
// config behind.
func (m *Manager) Save(cfg *Config) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(m.configPath), 0750); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	fileCfg := FromConfig(cfg)

	pending, err := renameio.NewPendingFile(m.configPath)
	if err != nil {
		return fmt.Errorf("create pending config file: %w", err)
	}
	defer func() {
		// Cleanup on error - renameio removes temp file if not committed
		_ = pending.Cleanup()
	}()

	enc := yaml.NewEncoder(pending)
	enc.SetIndent(2)
	if err := enc.Encode(fileCfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close encoder: %w", err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace config file: %w", err)
	}

	return nil
}

// WriteDefault writes the default descriptor to path. Unless force is set it
// refuses to overwrite an existing file and returns ErrConfigExists.
func (m *Manager) WriteDefault(force bool) error {
	if !force {
		if _, err := os.Stat(m.configPath); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, m.configPath)
		}
	}
	cfg := DefaultConfig()
	return m.Save(&cfg)
}

// FromConfig maps a resolved descriptor back to its file representation.
// Only user-facing fields are written; defaults injected during resolution
// (log level, version stamping) are kept when explicitly set.
func FromConfig(cfg *Config) FileConfig {
	fileCfg := FileConfig{
		Version: cfg.Version,
		Content: append([]string(nil), cfg.Content...),
		Theme:   &ThemeConfig{Extend: cfg.Theme.Extend.Clone()},
		Plugins: append([]string{}, cfg.Plugins...),
	}
	if cfg.LogLevel != "" && cfg.LogLevel != DefaultConfig().LogLevel {
		fileCfg.LogLevel = cfg.LogLevel
	}
	return fileCfg
}
