// SPDX-License-Identifier: MIT

// Package validate provides configuration validation utilities for the utilcss
// configuration layer.
package validate

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Error represents a validation error
type Error struct {
	Field   string      // Field name that failed validation
	Value   interface{} // The invalid value
	Message string      // Human-readable error message
}

// Error implements the error interface
func (e Error) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// Validator accumulates validation errors and can produce a ValidationError when invalid.
type Validator struct {
	errors []Error
}

// ValidationError bundles multiple validation errors into a single error value.
type ValidationError struct {
	errors []Error
}

// New creates a new validator
func New() *Validator {
	return &Validator{
		errors: make([]Error, 0),
	}
}

// AddError adds a validation error
func (v *Validator) AddError(field, message string, value interface{}) {
	v.errors = append(v.errors, Error{
		Field:   field,
		Value:   value,
		Message: message,
	})
}

// IsValid returns true if no errors have been accumulated
func (v *Validator) IsValid() bool {
	return len(v.errors) == 0
}

// Errors returns all accumulated validation errors
func (v *Validator) Errors() []Error {
	return v.errors
}

// Err converts the accumulated validation errors into an error value.
func (v *Validator) Err() error {
	if len(v.errors) == 0 {
		return nil
	}

	copied := make([]Error, len(v.errors))
	copy(copied, v.errors)

	return ValidationError{errors: copied}
}

// Errors returns the individual validation errors making up the validation failure.
func (e ValidationError) Errors() []Error {
	return e.errors
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	if len(e.errors) == 0 {
		return ""
	}

	if len(e.errors) == 1 {
		return e.errors[0].Error()
	}

	// Multiple errors - format as list
	msgs := make([]string, len(e.errors))
	for i, err := range e.errors {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// NonEmpty validates that a string is not empty after trimming whitespace.
func (v *Validator) NonEmpty(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "must not be empty", value)
	}
}

// NonEmptySlice validates that a slice has at least one element.
func (v *Validator) NonEmptySlice(field string, length int) {
	if length == 0 {
		v.AddError(field, "must contain at least one entry", length)
	}
}

// OneOf validates that a value is one of the allowed options.
func (v *Validator) OneOf(field, value string, allowed []string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.AddError(field,
		fmt.Sprintf("must be one of %v, got %q", allowed, value),
		value)
}

// Glob validates a glob pattern using the supplied syntax checker. The checker
// is injected so the pattern grammar lives next to the configuration model.
func (v *Validator) Glob(field, pattern string, check func(string) error) {
	if strings.TrimSpace(pattern) == "" {
		v.AddError(field, "glob pattern cannot be empty", pattern)
		return
	}
	if check == nil {
		return
	}
	if err := check(pattern); err != nil {
		v.AddError(field, err.Error(), pattern)
	}
}

// RelPath validates that a path stays inside the project root: it must be
// relative and must not traverse upwards once cleaned.
func (v *Validator) RelPath(field, value string) {
	if value == "" {
		v.AddError(field, "path cannot be empty", value)
		return
	}
	if filepath.IsAbs(value) {
		v.AddError(field, "path must be relative to the project root", value)
		return
	}
	clean := filepath.Clean(value)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		v.AddError(field, "path must not traverse outside the project root", value)
	}
}
