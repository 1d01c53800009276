// Package errors provides structured error types for slidegraph.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the layout engine
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input or configuration validation failures
//   - NOT_FOUND_*: Resource not found
//   - LAYOUT_*: Geometry failures raised by the engine
//   - INTERNAL_*: Unexpected internal errors
//
// # Engine Errors
//
// The geometry engine raises three typed errors, [DegenerateLayoutError],
// [UnknownNodeError] and [InvalidMetricsConfigError]. Each reports its code
// through a Code method, so [GetCode] and [Is] work on them as well:
//
//	if errors.Is(err, errors.ErrCodeDegenerateLayout) {
//	    // ask the caller for explicit positions
//	}
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", name)
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeLayoutFailed, origErr, "graphviz %s", engine)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidGraph  Code = "INVALID_GRAPH"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Engine errors
	ErrCodeInvalidMetrics   Code = "INVALID_METRICS_CONFIG"
	ErrCodeDegenerateLayout Code = "LAYOUT_DEGENERATE"
	ErrCodeUnknownNode      Code = "LAYOUT_UNKNOWN_NODE"
	ErrCodeLayoutFailed     Code = "LAYOUT_FAILED"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
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

// coder is implemented by the typed engine errors.
type coder interface {
	error
	Code() Code
}

// Is reports whether err has the given error code.
// It walks the error chain and returns true at the first *Error or typed
// engine error with a matching code.
func Is(err error, code Code) bool {
	for err != nil {
		if GetCode(err) == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if no coded error is found in the chain.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return ""
}

// UserMessage returns err without error code prefixes. Causes are kept, so
// a wrapped decode error still shows the line it failed on.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	msg := e.Message
	if e.Cause != nil {
		msg += ": " + UserMessage(e.Cause)
	}
	if outer := err.Error(); err != error(e) {
		// Plain fmt wrapping above the coded error.
		if i := strings.Index(outer, e.Error()); i > 0 {
			msg = outer[:i] + msg
		}
	}
	return msg
}
