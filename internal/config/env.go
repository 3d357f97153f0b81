// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"os"
	"strings"

	"github.com/ManuGH/utilcss/internal/log"
	"github.com/rs/zerolog"
)

// Environment variable keys recognized by the loader. ENV has the highest
// precedence: ENV > file > defaults.
const (
	EnvConfigPath = "UTILCSS_CONFIG"
	EnvContent    = "UTILCSS_CONTENT"
	EnvPlugins    = "UTILCSS_PLUGINS"
	EnvLogLevel   = "UTILCSS_LOG_LEVEL"
)

// ParseString reads a string from environment variable or returns default value.
// It logs the source (environment or default) for observability.
func ParseString(key, defaultValue string) string {
	return parseStringWithLogger(log.WithComponent("config"), key, defaultValue)
}

// parseStringWithLogger reads an environment variable with custom logger.
func parseStringWithLogger(logger zerolog.Logger, key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		if value == "" {
			logger.Debug().
				Str(log.FieldKey, key).
				Str("default", defaultValue).
				Str(log.FieldSource, "default").
				Msg("using default value (environment variable is empty)")
			return defaultValue
		}
		logger.Debug().
			Str(log.FieldKey, key).
			Str("value", value).
			Str(log.FieldSource, "environment").
			Msg("using environment variable")
		return value
	}
	logger.Debug().
		Str(log.FieldKey, key).
		Str("default", defaultValue).
		Str(log.FieldSource, "default").
		Msg("using default value")
	return defaultValue
}

// ParseList reads a comma-separated list from an environment variable. It
// returns nil when the variable is unset or holds no non-empty entries, so
// callers can distinguish "no override" from an override.
func ParseList(key string) []string {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	if len(out) > 0 {
		logger := log.WithComponent("config")
		logger.Debug().
			Str(log.FieldKey, key).
			Strs("values", out).
			Str(log.FieldSource, "environment").
			Msg("using environment variable")
	}
	return out
}

// expandEnv expands ${VAR} references in file-config values.
func expandEnv(s string) string {
	if !strings.Contains(s, "$") {
		return s
	}
	return os.ExpandEnv(s)
}
