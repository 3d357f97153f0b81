// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

// FileConfig represents the YAML configuration structure as written by users.
// The theme section is a pointer so "theme absent" is distinguishable from
// "theme present but empty"; optional scalars rely on the empty string
// meaning "not set".
type FileConfig struct {
	Version  string   `yaml:"version,omitempty" json:"version,omitempty"`
	LogLevel string   `yaml:"logLevel,omitempty" json:"logLevel,omitempty"`
	Content  []string `yaml:"content,omitempty" json:"content,omitempty"`

	Theme   *ThemeConfig `yaml:"theme,omitempty" json:"theme,omitempty"`
	Plugins []string     `yaml:"plugins,omitempty" json:"plugins,omitempty"`
}

// ThemeConfig holds the theme section of the descriptor. Only extension is
// supported: tokens in Extend are layered over the generator defaults,
// category by category.
type ThemeConfig struct {
	Extend TokenSet `yaml:"extend,omitempty" json:"extend,omitempty"`
}

// TokenSet maps a token category (e.g. "colors", "spacing") to its
// name -> value entries.
type TokenSet map[string]map[string]string

// Clone returns a deep copy of the token set. A nil receiver yields an empty,
// non-nil set so callers can merge into the result without guards.
func (ts TokenSet) Clone() TokenSet {
	out := make(TokenSet, len(ts))
	for category, tokens := range ts {
		dst := make(map[string]string, len(tokens))
		for name, value := range tokens {
			dst[name] = value
		}
		out[category] = dst
	}
	return out
}

// Config is the resolved runtime descriptor: defaults, file values and
// environment overrides applied in that order. It is immutable once loaded.
type Config struct {
	Version  string
	LogLevel string

	// Content holds the glob patterns the generator scans for class usage.
	Content []string

	Theme   Theme
	Plugins []string
}

// Theme is the resolved theme section.
type Theme struct {
	Extend TokenSet
}

// Effective returns the full design-token set the generator works with:
// the built-in defaults with Extend merged over them per category.
func (t Theme) Effective() TokenSet {
	return ResolveTheme(t.Extend)
}
