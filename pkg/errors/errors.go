// Package errors provides structured error types for graphml2gv.
//
// Errors fall into three classes that decide what the driver does next:
//   - MALFORMED_DOCUMENT: the markup scanner rejected the input. The current
//     document is abandoned and the driver moves on to the next input.
//   - INTERNAL_ERROR: a converter invariant was violated (stack underflow,
//     duplicate rename). The whole run is aborted.
//   - everything else: input, configuration and file errors reported to the user.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", f)
//	if errors.Is(err, errors.ErrCodeInvalidFormat) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Document errors
	ErrCodeMalformed Code = "MALFORMED_DOCUMENT"

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

// IsFatal reports whether err signals a broken converter invariant.
// A fatal error ends the whole run, not just the current document.
func IsFatal(err error) bool { return Is(err, ErrCodeInternal) }

// IsMalformed reports whether err was raised by the markup scanner.
func IsMalformed(err error) bool { return Is(err, ErrCodeMalformed) }

// SyntaxError describes malformed markup at a given input line.
type SyntaxError struct {
	Line int    // 1-based line number where the scanner gave up
	Msg  string // scanner message
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at line %d", e.Msg, e.Line)
}

// Malformed wraps a scanner failure at line into a MALFORMED_DOCUMENT error.
func Malformed(line int, msg string) *Error {
	return Wrap(ErrCodeMalformed, &SyntaxError{Line: line, Msg: msg}, "malformed document")
}

// LineOf returns the line carried by a *SyntaxError in err's chain, or 0.
func LineOf(err error) int {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se.Line
	}
	return 0
}
