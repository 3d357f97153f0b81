// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"fmt"
	"strings"
)

// Glob pattern grammar accepted in `content` entries:
//
//   - forward slashes only, relative to the project root
//   - `*` and `?` match within a path segment
//   - `**` matches any number of segments and must stand alone as a segment
//   - `{a,b,c}` alternation, single level, no empty alternatives
//   - every other character, `[` included, matches itself (no character
//     classes)
//
// Matching itself is performed by the external generator; this file only
// enforces syntax so typos fail at load time instead of silently scanning
// nothing.

// maxBraceExpansions caps the product of all alternation groups in a single
// pattern. Anything larger is a config mistake, not a scan set.
const maxBraceExpansions = 512

// CheckPattern validates the syntax of a single content glob pattern.
func CheckPattern(pattern string) error {
	p := strings.TrimSpace(pattern)
	if p == "" {
		return fmt.Errorf("empty pattern")
	}
	if strings.ContainsRune(p, '\\') {
		return fmt.Errorf("backslashes are not allowed, use forward slashes")
	}
	if strings.HasPrefix(p, "/") {
		return fmt.Errorf("pattern must be relative to the project root")
	}
	if err := checkBraces(p); err != nil {
		return err
	}

	p = strings.TrimPrefix(p, "./")
	for _, seg := range strings.Split(p, "/") {
		if seg == "" {
			return fmt.Errorf("empty path segment (double slash?)")
		}
		if seg == ".." {
			return fmt.Errorf("pattern must not traverse outside the project root")
		}
		if strings.Contains(seg, "**") && seg != "**" {
			return fmt.Errorf("'**' must be a full path segment, got %q", seg)
		}
	}
	return nil
}

// checkBraces verifies alternation groups are balanced, non-nested and have
// no empty alternatives.
func checkBraces(p string) error {
	depth := 0
	altStart := -1
	for i, r := range p {
		switch r {
		case '{':
			if depth > 0 {
				return fmt.Errorf("nested braces at position %d", i)
			}
			depth++
			altStart = i + 1
		case '}':
			if depth == 0 {
				return fmt.Errorf("unmatched '}' at position %d", i)
			}
			if i == altStart {
				return fmt.Errorf("empty alternative in braces at position %d", i)
			}
			depth--
		case ',':
			if depth > 0 {
				if i == altStart {
					return fmt.Errorf("empty alternative in braces at position %d", i)
				}
				altStart = i + 1
			}
		}
	}
	if depth != 0 {
		return fmt.Errorf("unmatched '{'")
	}
	return nil
}

// ExpandBraces expands all alternation groups in a pattern into the concrete
// patterns they denote, preserving order:
//
//	./src/**/*.{js,ts} -> ./src/**/*.js, ./src/**/*.ts
//
// The pattern must already pass CheckPattern.
func ExpandBraces(pattern string) ([]string, error) {
	if err := checkBraces(pattern); err != nil {
		return nil, err
	}
	out := []string{pattern}
	for {
		expanded, changed := expandFirstGroup(out)
		if !changed {
			return expanded, nil
		}
		out = expanded
		if len(out) > maxBraceExpansions {
			return nil, fmt.Errorf("pattern expands to more than %d alternatives", maxBraceExpansions)
		}
	}
}

func expandFirstGroup(patterns []string) ([]string, bool) {
	out := make([]string, 0, len(patterns))
	changed := false
	for _, p := range patterns {
		open := strings.IndexByte(p, '{')
		if open < 0 {
			out = append(out, p)
			continue
		}
		closing := strings.IndexByte(p[open:], '}') + open
		for _, alt := range strings.Split(p[open+1:closing], ",") {
			out = append(out, p[:open]+alt+p[closing+1:])
		}
		changed = true
	}
	return out, changed
}

// ScanRoot returns the longest literal directory prefix of a pattern, the
// point where the generator starts walking. A pattern whose first segment is
// already a wildcard roots at ".".
func ScanRoot(pattern string) string {
	p := strings.TrimPrefix(strings.TrimSpace(pattern), "./")
	segs := strings.Split(p, "/")
	var root []string
	for i, seg := range segs {
		if strings.ContainsAny(seg, "*?{") {
			break
		}
		// The final segment is a file name, not a directory.
		if i == len(segs)-1 {
			break
		}
		root = append(root, seg)
	}
	if len(root) == 0 {
		return "."
	}
	return strings.Join(root, "/")
}
