// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"fmt"
	"strings"

	"github.com/ManuGH/utilcss/internal/validate"
)

// Validate checks business rules on a resolved descriptor. All violations are
// accumulated and reported in a single error.
func Validate(cfg Config) error {
	v := validate.New()

	// The generator finds nothing without content patterns.
	v.NonEmptySlice("Content", len(cfg.Content))

	for i, pattern := range cfg.Content {
		v.Glob(fmt.Sprintf("Content[%d]", i), pattern, CheckPattern)
	}

	if cfg.LogLevel != "" {
		if _, err := validate.ParseLogLevel(cfg.LogLevel); err != nil {
			v.AddError("LogLevel", err.Error(), cfg.LogLevel)
		}
	}

	for category, tokens := range cfg.Theme.Extend {
		if strings.TrimSpace(category) == "" {
			v.AddError("Theme.Extend", "token category name must not be empty", category)
			continue
		}
		for name, value := range tokens {
			if strings.TrimSpace(name) == "" {
				v.AddError("Theme.Extend."+category, "token name must not be empty", name)
			}
			if strings.TrimSpace(value) == "" {
				v.AddError("Theme.Extend."+category+"."+name, "token value must not be empty", value)
			}
		}
	}

	// Plugins are normalized during Load; re-check here so Validate also
	// covers descriptors constructed in code.
	if _, err := NormalizePlugins(cfg.Plugins); err != nil {
		v.AddError("Plugins", err.Error(), cfg.Plugins)
	}

	return v.Err()
}
