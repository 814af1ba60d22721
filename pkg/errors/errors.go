// Package errors provides structured error types for surfplot.
//
// Every failure surfaced by the layout engine, the layer registry, the
// loaders, and the build step carries a machine-readable [Code] so that
// callers (library users and the CLI alike) can branch on the failure
// category without parsing messages.
//
// # Error Codes
//
//   - CONFIGURATION: no hemisphere supplied, inconsistent plot settings
//   - INVALID_*: a tag, key, type, or file format outside the accepted set
//   - SHAPE_MISMATCH: vertex counts of data and mesh disagree
//   - EMPTY_RANGE: a colour range cannot be derived from all-NaN data
//   - FILE_NOT_FOUND, UNSUPPORTED, INTERNAL: I/O and unexpected failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidView, "unknown view %q", v)
//	if errors.Is(err, errors.ErrCodeInvalidView) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors
	ErrCodeConfiguration Code = "CONFIGURATION"

	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidLayout   Code = "INVALID_LAYOUT"
	ErrCodeInvalidView     Code = "INVALID_VIEW"
	ErrCodeInvalidKey      Code = "INVALID_KEY"
	ErrCodeInvalidType     Code = "INVALID_TYPE"
	ErrCodeInvalidDataset  Code = "INVALID_DATASET"
	ErrCodeInvalidLocation Code = "INVALID_LOCATION"
	ErrCodeInvalidColorMap Code = "INVALID_COLORMAP"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"

	// Data errors
	ErrCodeShapeMismatch Code = "SHAPE_MISMATCH"
	ErrCodeEmptyRange    Code = "EMPTY_RANGE"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// Is reports whether err has the given error code.
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
