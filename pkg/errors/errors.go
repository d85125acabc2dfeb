// Package errors provides structured error types for cargoport.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across all commands
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Each code identifies where a failure originated:
//   - PARSE_ERROR: the lockfile contents could not be parsed
//   - IO_ERROR: reading a local file or stdin failed
//   - NETWORK_ERROR: a crates.io request failed
//   - NOT_FOUND: the requested crate or version does not exist
//   - MISSING_LOCKFILE: a fetched crate archive contains no Cargo.lock
//   - INVALID_CRATE_SPEC: a crate: source string is malformed
//   - INTERNAL_ERROR: reserved for failures not covered above
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidCrateSpec, "invalid crate specifier: %s", spec)
//	if errors.Is(err, errors.ErrCodeInvalidCrateSpec) {
//	    // Handle malformed specifier
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "failed to fetch %s", url)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different failure origins. The set is closed;
// ErrCodeInternal is the reserved catch-all for anything new.
const (
	ErrCodeParse            Code = "PARSE_ERROR"
	ErrCodeIO               Code = "IO_ERROR"
	ErrCodeNetwork          Code = "NETWORK_ERROR"
	ErrCodeNotFound         Code = "NOT_FOUND"
	ErrCodeMissingLockfile  Code = "MISSING_LOCKFILE"
	ErrCodeInvalidCrateSpec Code = "INVALID_CRATE_SPEC"
	ErrCodeInternal         Code = "INTERNAL_ERROR"
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
