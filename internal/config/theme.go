// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import "sort"

// defaultTheme holds the generator's built-in design tokens. The set here is
// deliberately small; the generator ships the full palette and merges this
// package's resolution result over it the same way.
func defaultTheme() TokenSet {
	return TokenSet{
		"screens": {
			"sm": "640px",
			"md": "768px",
			"lg": "1024px",
			"xl": "1280px",
		},
		"colors": {
			"transparent": "transparent",
			"current":     "currentColor",
			"white":       "#ffffff",
			"black":       "#000000",
		},
		"spacing": {
			"0": "0px",
			"1": "0.25rem",
			"2": "0.5rem",
			"4": "1rem",
			"8": "2rem",
		},
		"fontFamily": {
			"sans": "ui-sans-serif, system-ui, sans-serif",
			"mono": "ui-monospace, monospace",
		},
		"borderRadius": {
			"none": "0px",
			"sm":   "0.125rem",
			"md":   "0.375rem",
			"full": "9999px",
		},
	}
}

// DefaultTheme returns a copy of the built-in design-token set.
func DefaultTheme() TokenSet {
	return defaultTheme()
}

// ResolveTheme merges extension tokens over the default token set. Merging is
// category-wise: an extended category keeps all default tokens and adds or
// overrides individual entries, it never replaces the category wholesale.
// An empty or nil extension yields the pure defaults.
func ResolveTheme(extend TokenSet) TokenSet {
	resolved := defaultTheme()
	for category, tokens := range extend {
		dst, ok := resolved[category]
		if !ok {
			dst = make(map[string]string, len(tokens))
			resolved[category] = dst
		}
		for name, value := range tokens {
			dst[name] = value
		}
	}
	return resolved
}

// Categories returns the category names of a token set in sorted order.
func (ts TokenSet) Categories() []string {
	out := make([]string, 0, len(ts))
	for category := range ts {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}
