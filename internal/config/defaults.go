// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

// DefaultContent returns the glob patterns scanned when the descriptor does
// not name any. The generator expects application sources plus the HTML entry
// point.
func DefaultContent() []string {
	return []string{
		"./src/**/*.{js,ts,jsx,tsx,vue}",
		"./index.html",
	}
}

// DefaultConfig returns the fully resolved default descriptor: the default
// content globs, no theme extensions and no plugins.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Content:  DefaultContent(),
		Theme:    Theme{Extend: TokenSet{}},
		Plugins:  []string{},
	}
}

// DefaultFileConfig returns the descriptor as it is written by `configctl
// init`: the default content globs, an explicit empty theme.extend and an
// empty plugin list.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		Content: DefaultContent(),
		Theme:   &ThemeConfig{Extend: TokenSet{}},
		Plugins: []string{},
	}
}
