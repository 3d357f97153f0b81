// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuGH/utilcss/internal/config"
)

func TestRunInit_WritesDefaultDescriptor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utilcss.yaml")

	code := runConfigCLI([]string{"init", "-f", path})
	require.Equal(t, 0, code)

	fileCfg, err := config.LoadFileConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultContent(), fileCfg.Content)
	assert.Empty(t, fileCfg.Plugins)
}

func TestRunInit_RefusesOverwriteWithoutForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utilcss.yaml")

	require.Equal(t, 0, runConfigCLI([]string{"init", "-f", path}))
	assert.Equal(t, 1, runConfigCLI([]string{"init", "-f", path}))
	assert.Equal(t, 0, runConfigCLI([]string{"init", "-f", path, "--force"}))
}

func TestRunValidate_RoundTripOfInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utilcss.yaml")

	require.Equal(t, 0, runConfigCLI([]string{"init", "-f", path}))
	assert.Equal(t, 0, runConfigCLI([]string{"validate", "-f", path}))
}

func TestRunValidate_BadDescriptor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utilcss.yaml")
	require.NoError(t, os.WriteFile(path, []byte("content:\n  - \"/abs/*.css\"\n"), 0o600))

	assert.Equal(t, 1, runConfigCLI([]string{"validate", "-f", path}))
}

func TestRunDump_Formats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utilcss.yaml")
	require.Equal(t, 0, runConfigCLI([]string{"init", "-f", path}))

	assert.Equal(t, 0, runConfigCLI([]string{"dump", "-f", path}))
	assert.Equal(t, 0, runConfigCLI([]string{"dump", "-f", path, "--format=json"}))
	assert.Equal(t, 2, runConfigCLI([]string{"dump", "-f", path, "--format=toml"}))
}

func TestRunConfigCLI_UnknownSubcommand(t *testing.T) {
	assert.Equal(t, 2, runConfigCLI([]string{"frobnicate"}))
}

func TestRunConfigCLI_Help(t *testing.T) {
	assert.Equal(t, 0, runConfigCLI([]string{"--help"}))
	assert.Equal(t, 0, runConfigCLI(nil))
}
