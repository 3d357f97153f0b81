// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ManuGH/utilcss/internal/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRun(t *testing.T) {
	validConfig := `
content:
  - "./src/**/*.{js,ts,jsx,tsx,vue}"
  - "./index.html"
theme:
  extend: {}
plugins: []
`
	unknownKeyConfig := `
contnet:
  - "./src/**/*.ts"
`
	invalidPatternConfig := `
content:
  - "/absolute/**/*.css"
`

	tests := []struct {
		name       string
		args       func(t *testing.T) []string
		wantExit   int
		wantStdout string
		wantStderr string
	}{
		{
			name: "valid config",
			args: func(t *testing.T) []string {
				return []string{"-f", writeFile(t, "utilcss.yaml", validConfig)}
			},
			wantExit:   0,
			wantStdout: "is valid",
		},
		{
			name: "unknown key",
			args: func(t *testing.T) []string {
				return []string{"-f", writeFile(t, "utilcss.yaml", unknownKeyConfig)}
			},
			wantExit:   1,
			wantStderr: "Configuration error",
		},
		{
			name: "invalid pattern",
			args: func(t *testing.T) []string {
				return []string{"-f", writeFile(t, "utilcss.yaml", invalidPatternConfig)}
			},
			wantExit:   1,
			wantStderr: "Validation error",
		},
		{
			name: "missing file flag",
			args: func(t *testing.T) []string {
				t.Setenv(config.EnvConfigPath, "")
				return nil
			},
			wantExit:   2,
			wantStderr: "--file is required",
		},
		{
			name: "nonexistent file",
			args: func(t *testing.T) []string {
				return []string{"-f", filepath.Join(t.TempDir(), "nope.yaml")}
			},
			wantExit:   1,
			wantStderr: "Configuration error",
		},
		{
			name:       "version flag",
			args:       func(*testing.T) []string { return []string{"--version"} },
			wantExit:   0,
			wantStdout: "dev",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			got := run(tt.args(t), &stdout, &stderr)

			if got != tt.wantExit {
				t.Errorf("run() = %d, want %d (stderr: %s)", got, tt.wantExit, stderr.String())
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout %q does not contain %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr %q does not contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}
