// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"reflect"
	"sort"
)

// ChangeSummary describes the result of comparing two Configs.
type ChangeSummary struct {
	ChangedFields   []string // List of field paths that changed
	RestartRequired bool     // True if any changed field is NOT hot-reloadable
}

// hotReloadAllowlist defines the fields a running generator may pick up
// without a restart. Content changes only alter the scan set of the next
// pass; theme and plugin changes invalidate already-emitted CSS.
var hotReloadAllowlist = map[string]struct{}{
	"Content":  {},
	"LogLevel": {},
}

// Diff compares two configurations and returns a summary of changes.
func Diff(old, next Config) ChangeSummary {
	summary := ChangeSummary{}
	summary.compareStruct("", reflect.ValueOf(old), reflect.ValueOf(next))
	sort.Strings(summary.ChangedFields)
	return summary
}

func (s *ChangeSummary) compareStruct(prefix string, oldVal, nextVal reflect.Value) {
	t := oldVal.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		fieldPath := f.Name
		if prefix != "" {
			fieldPath = prefix + "." + f.Name
		}

		ov := oldVal.Field(i)
		nv := nextVal.Field(i)

		if ov.Kind() == reflect.Struct {
			s.compareStruct(fieldPath, ov, nv)
			continue
		}

		// Leaf field comparison (slices and maps included)
		if !reflect.DeepEqual(ov.Interface(), nv.Interface()) {
			s.recordChange(fieldPath)
		}
	}
}

func (s *ChangeSummary) recordChange(fieldPath string) {
	s.ChangedFields = append(s.ChangedFields, fieldPath)
	if _, ok := hotReloadAllowlist[fieldPath]; !ok {
		s.RestartRequired = true
	}
}
