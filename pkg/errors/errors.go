package errors

import (
	stdErrors "errors"
	"fmt"
	"strings"
)

// ErrConfig matches every ConfigError through errors.Is.
var ErrConfig = stdErrors.New("config error")

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ConfigError rejects a resolution call because a configuration value is
// structurally invalid. It is always fatal to the call that produced it.
type ConfigError struct {
	Component string
	Field     string
	Value     string
	Message   string
	Err       error
}

// NewConfigError constructs a ConfigError.
func NewConfigError(component, field, message string, err error) error {
	return &ConfigError{Component: component, Field: field, Message: message, Err: err}
}

// UnknownValue reports a dimension value outside its allowed set.
func UnknownValue(component, dimension, value string, allowed []string) error {
	return &ConfigError{
		Component: component,
		Field:     dimension,
		Value:     value,
		Message:   fmt.Sprintf("unknown value %q (allowed: %s)", value, strings.Join(allowed, ", ")),
	}
}

// UnknownPreset reports a layout preset name that is not registered.
func UnknownPreset(name string, known []string) error {
	return &ConfigError{
		Component: "layout",
		Field:     "preset",
		Value:     name,
		Message:   fmt.Sprintf("unknown preset %q (known: %s)", name, strings.Join(known, ", ")),
	}
}

// UnknownMaxWidth reports a max-width key missing from the width table.
func UnknownMaxWidth(key string, known []string) error {
	return &ConfigError{
		Component: "layout",
		Field:     "max_width",
		Value:     key,
		Message:   fmt.Sprintf("unknown max width %q (known: %s)", key, strings.Join(known, ", ")),
	}
}

// MissingField reports a required field that was left empty.
func MissingField(component, field string) error {
	return &ConfigError{
		Component: component,
		Field:     field,
		Message:   "missing required field",
	}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}

	var location string
	switch {
	case e.Component != "" && e.Field != "":
		location = e.Component + "." + e.Field
	case e.Component != "":
		location = e.Component
	default:
		location = e.Field
	}

	if location == "" {
		return fmt.Sprintf("config error: %s", e.Message)
	}
	return fmt.Sprintf("config error: %s: %s", location, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is the ErrConfig sentinel.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// DeprecatedKeyWarning flags a legacy configuration key that was honored.
// It is reported alongside a successful result and never fails a call.
type DeprecatedKeyWarning struct {
	Component   string
	Key         string
	Replacement string
}

// NewDeprecatedKeyWarning constructs a DeprecatedKeyWarning.
func NewDeprecatedKeyWarning(component, key, replacement string) DeprecatedKeyWarning {
	return DeprecatedKeyWarning{Component: component, Key: key, Replacement: replacement}
}

func (w DeprecatedKeyWarning) Error() string {
	if w.Replacement == "" {
		return fmt.Sprintf("deprecated key: %s.%s", w.Component, w.Key)
	}
	return fmt.Sprintf("deprecated key: %s.%s (use %s)", w.Component, w.Key, w.Replacement)
}
