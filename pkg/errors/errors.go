// Package errors provides structured error types for the gridboard engine.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, the HTTP service, and the
//     customization controller
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The engine's geometry layer is total and never errors; only the stateful
// layers surface recoverable failures:
//   - TEMPLATE_NOT_FOUND: an unregistered template name was requested
//   - INVALID_LAYOUT_FORMAT: a malformed layout document was imported
//   - PERSISTENCE_FAILURE: the preferences collaborator rejected a save
//   - COMPONENT_NOT_FOUND: an operation referenced an unknown component id
//   - INVALID_CONFIG: the engine configuration failed validation
//
// Residual collision overlap is deliberately not an error code: the
// collision resolver reports cap exhaustion as a flag and the layout stays
// usable.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeTemplateNotFound, "template %q is not registered", name)
//	if errors.Is(err, errors.ErrCodeTemplateNotFound) {
//	    // Offer another template
//	}
//
//	// Wrap collaborator errors
//	err := errors.Wrap(errors.ErrCodePersistenceFailure, cause, "save layout %s", key)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the recoverable failure categories.
const (
	ErrCodeTemplateNotFound    Code = "TEMPLATE_NOT_FOUND"
	ErrCodeInvalidLayoutFormat Code = "INVALID_LAYOUT_FORMAT"
	ErrCodePersistenceFailure  Code = "PERSISTENCE_FAILURE"
	ErrCodeComponentNotFound   Code = "COMPONENT_NOT_FOUND"
	ErrCodeInvalidConfig       Code = "INVALID_CONFIG"
	ErrCodeInternal            Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err carries the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
