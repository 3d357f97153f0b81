// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utilcss.yaml")
	m := NewManager(path)

	original := Config{
		LogLevel: "info",
		Content:  []string{"./src/**/*.{js,ts,jsx,tsx,vue}", "./index.html"},
		Theme: Theme{Extend: TokenSet{
			"colors": {"brand": "#123456"},
		}},
		Plugins: []string{"typography"},
	}
	require.NoError(t, m.Save(&original))

	loaded, err := NewLoader(path, "").Load()
	require.NoError(t, err)

	if diff := cmp.Diff(original, loaded); diff != "" {
		t.Errorf("round-trip mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestManager_SaveDefaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utilcss.yaml")
	m := NewManager(path)

	def := DefaultConfig()
	require.NoError(t, m.Save(&def))

	loaded, err := NewLoader(path, "").Load()
	require.NoError(t, err)

	if diff := cmp.Diff(def, loaded); diff != "" {
		t.Errorf("default round-trip mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestManager_WriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "utilcss.yaml")
	m := NewManager(path)

	require.NoError(t, m.WriteDefault(false))

	fileCfg, err := LoadFileConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultContent(), fileCfg.Content)
	require.NotNil(t, fileCfg.Theme)
	assert.Empty(t, fileCfg.Theme.Extend)
	assert.Empty(t, fileCfg.Plugins)
}

func TestManager_WriteDefault_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utilcss.yaml")
	m := NewManager(path)

	require.NoError(t, m.WriteDefault(false))

	err := m.WriteDefault(false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigExists))

	// --force replaces the file
	require.NoError(t, m.WriteDefault(true))
}
