// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package log

// Canonical field name constants for structured logging.
const (
	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"
	FieldRunID     = "run_id"

	// Configuration fields
	FieldConfigPath = "config_path"
	FieldKey        = "key"
	FieldSource     = "source"
	FieldPattern    = "pattern"
	FieldPlugin     = "plugin"

	// State fields
	FieldChanged         = "changed_fields"
	FieldRestartRequired = "restart_required"

	// Path fields
	FieldPath = "path"
)
