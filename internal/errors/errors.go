// Package errors provides the typed error system lice uses for exit
// code handling.
//
// Every failure mode the tool can hit maps to one of the types below,
// and each type carries a fixed exit code so the CLI layer never has
// to inspect error strings.
//
// Exit code conventions:
//   - 1: runtime failures (missing template, bad encoding, I/O,
//     missing template variables)
//   - 2: validation and configuration errors (malformed flags,
//     unknown language tags, broken config files)
//
// Example usage:
//
//	if !yearPattern.MatchString(year) {
//		return errors.NewValidationError("must be a four digit year", nil)
//	}
//
//	exitCode := errors.GetExitCode(err)
package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a usage error: improper flags or
// arguments. Exit code 2.
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap supports error chain inspection.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// ConfigurationError represents a broken table or config file: an
// unknown language tag, a comment style that no longer exists, or an
// unparsable user config. These indicate a misconfiguration rather
// than bad per-invocation input. Exit code 2.
type ConfigurationError struct {
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap supports error chain inspection.
func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NotFoundError represents a missing template: a filesystem path that
// does not exist, or a license with no header variant. This is the
// expected, recoverable failure when probing for header templates.
// Exit code 1.
type NotFoundError struct {
	Message string
	Cause   error
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// Unwrap supports error chain inspection.
func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

// EncodingError represents template bytes that are not valid UTF-8.
// Exit code 1.
type EncodingError struct {
	Message string
	Cause   error
}

func (e *EncodingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap supports error chain inspection.
func (e *EncodingError) Unwrap() error {
	return e.Cause
}

// MissingVariableError represents a template placeholder with no value
// in the substitution context. It always names the variable so the
// user knows which flag to supply. Exit code 1.
type MissingVariableError struct {
	Variable string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("%s is missing from the template context", e.Variable)
}

// RuntimeError represents any other failure during execution (file
// I/O, subprocess trouble). Exit code 1.
type RuntimeError struct {
	Message string
	Cause   error
}

func (e *RuntimeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap supports error chain inspection.
func (e *RuntimeError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a ValidationError with the given message and cause.
func NewValidationError(msg string, cause error) error {
	return &ValidationError{Message: msg, Cause: cause}
}

// NewConfigurationError creates a ConfigurationError with the given message and cause.
func NewConfigurationError(msg string, cause error) error {
	return &ConfigurationError{Message: msg, Cause: cause}
}

// NewNotFoundError creates a NotFoundError with the given message and cause.
func NewNotFoundError(msg string, cause error) error {
	return &NotFoundError{Message: msg, Cause: cause}
}

// NewEncodingError creates an EncodingError with the given message and cause.
func NewEncodingError(msg string, cause error) error {
	return &EncodingError{Message: msg, Cause: cause}
}

// NewMissingVariableError creates a MissingVariableError naming the
// placeholder the context lacks.
func NewMissingVariableError(variable string) error {
	return &MissingVariableError{Variable: variable}
}

// NewRuntimeError creates a RuntimeError with the given message and cause.
func NewRuntimeError(msg string, cause error) error {
	return &RuntimeError{Message: msg, Cause: cause}
}

// GetExitCode extracts the exit code an error should terminate the
// process with. Unknown error types are treated as runtime failures.
func GetExitCode(err error) int {
	var validationErr *ValidationError
	var configurationErr *ConfigurationError

	if errors.As(err, &validationErr) {
		return 2
	}
	if errors.As(err, &configurationErr) {
		return 2
	}
	return 1
}
