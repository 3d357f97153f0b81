// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"fmt"
	"strings"
)

// Plugin references are opaque handles ("typography", "@acme/forms") passed
// through to the generator, which resolves and invokes them. This package
// only normalizes and validates the list.

// NormalizePlugins trims plugin references and rejects empties and
// duplicates. Order is preserved because the generator invokes plugins in
// declaration order.
func NormalizePlugins(refs []string) ([]string, error) {
	out := make([]string, 0, len(refs))
	seen := make(map[string]struct{}, len(refs))
	for i, ref := range refs {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			return nil, fmt.Errorf("plugins[%d]: empty plugin reference", i)
		}
		if err := checkPluginRef(ref); err != nil {
			return nil, fmt.Errorf("plugins[%d]: %w", i, err)
		}
		if _, dup := seen[ref]; dup {
			return nil, fmt.Errorf("plugins[%d]: duplicate plugin reference %q", i, ref)
		}
		seen[ref] = struct{}{}
		out = append(out, ref)
	}
	return out, nil
}

func checkPluginRef(ref string) error {
	for _, r := range ref {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '@' || r == '/' || r == '-' || r == '_' || r == '.':
		default:
			return fmt.Errorf("invalid character %q in plugin reference %q", r, ref)
		}
	}
	return nil
}
