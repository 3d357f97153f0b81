// SPDX-License-Identifier: MIT
package validate

import (
	"errors"
	"fmt"
	"strings"
)

// LogLevel is the logger verbosity accepted in the descriptor's logLevel
// field.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// ErrInvalidLogLevel classifies log levels outside the accepted set.
// Callers check with errors.Is.
var ErrInvalidLogLevel = errors.New("invalid log level")

// Levels returns the accepted log levels in increasing severity.
func Levels() []LogLevel {
	return []LogLevel{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}
}

// IsValid reports whether the log level is one of the accepted values.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	default:
		return false
	}
}

// String returns the string representation
func (l LogLevel) String() string {
	return string(l)
}

// ParseLogLevel parses a string into a LogLevel. Input is trimmed and
// lowercased so "WARN" from an env override parses the same as "warn".
func ParseLogLevel(s string) (LogLevel, error) {
	level := LogLevel(strings.ToLower(strings.TrimSpace(s)))
	if !level.IsValid() {
		return "", fmt.Errorf("%w: %q (must be one of %v)", ErrInvalidLogLevel, s, Levels())
	}
	return level, nil
}
