// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	l := NewLoader("", "v1")

	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"./src/**/*.{js,ts,jsx,tsx,vue}",
		"./index.html",
	}, cfg.Content)
	assert.Empty(t, cfg.Theme.Extend)
	assert.Empty(t, cfg.Plugins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "v1", cfg.Version)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
content:
  - "./app/**/*.tsx"
theme:
  extend:
    colors:
      brand: "#123456"
plugins:
  - typography
logLevel: debug
`)

	l := NewLoader(path, "v1")
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"./app/**/*.tsx"}, cfg.Content)
	assert.Equal(t, "#123456", cfg.Theme.Extend["colors"]["brand"])
	assert.Equal(t, []string{"typography"}, cfg.Plugins)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
theme:
  extend:
    spacing:
      "18": "4.5rem"
`)

	l := NewLoader(path, "")
	cfg, err := l.Load()
	require.NoError(t, err)

	// content absent in file: defaults survive
	assert.Equal(t, DefaultContent(), cfg.Content)
	assert.Equal(t, "4.5rem", cfg.Theme.Extend["spacing"]["18"])
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
content:
  - "./app/**/*.tsx"
logLevel: debug
`)
	t.Setenv(EnvContent, "./pages/**/*.vue, ./public/index.html")
	t.Setenv(EnvLogLevel, "warn")

	l := NewLoader(path, "")
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"./pages/**/*.vue", "./public/index.html"}, cfg.Content)
	assert.Equal(t, "warn", cfg.LogLevel)

	// consumed keys are tracked mechanically
	assert.Contains(t, l.ConsumedEnvKeys, EnvContent)
	assert.Contains(t, l.ConsumedEnvKeys, EnvLogLevel)
}

func TestLoad_EnvPluginsOverride(t *testing.T) {
	t.Setenv(EnvPlugins, "typography,@acme/forms")

	l := NewLoader("", "")
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"typography", "@acme/forms"}, cfg.Plugins)
}

func TestLoad_ExpandsEnvInContentPatterns(t *testing.T) {
	t.Setenv("APP_DIR", "webapp")
	path := writeConfig(t, `
content:
  - "./${APP_DIR}/**/*.ts"
`)

	l := NewLoader(path, "")
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"./webapp/**/*.ts"}, cfg.Content)
}

func TestLoad_DuplicatePluginsRejected(t *testing.T) {
	path := writeConfig(t, `
plugins:
  - typography
  - typography
`)

	l := NewLoader(path, "")
	_, err := l.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate plugin reference")
}

func TestLoad_MissingFileFails(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "nope.yaml"), "")
	_, err := l.Load()
	require.Error(t, err)
}
