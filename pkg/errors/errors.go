// Package errors provides structured error types for boxorbit.
//
// Every failure that crosses a package boundary carries a machine-readable
// [Code] so the CLI, the HTTP server and tests can branch on the category
// without matching strings.
//
// # Error Codes
//
//   - INVALID_*: input validation failures (CSV, config, format, source)
//   - *_NOT_FOUND: missing files
//   - FETCH_FAILED: the dataset could not be retrieved
//   - EMPTY_DATASET: a scale domain was requested over zero numeric values
//   - INVALID_TRANSITION: the build pipeline was driven out of order
//   - INTERNAL_ERROR: unexpected failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", f)
//	if errors.Is(err, errors.ErrCodeInvalidFormat) {
//	    // reject the request
//	}
//
//	err = errors.Wrap(errors.ErrCodeFetchFailed, origErr, "GET %s", url)
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
	ErrCodeInvalidCSV    Code = "INVALID_CSV"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidSource Code = "INVALID_SOURCE"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeFetchFailed  Code = "FETCH_FAILED"

	// Dataset errors
	ErrCodeEmptyDataset Code = "EMPTY_DATASET"

	// Pipeline errors
	ErrCodeInvalidTransition Code = "INVALID_TRANSITION"

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

// EmptyDataset reports that no numeric values were available for field.
// Scale domains are percentile based and cannot be derived from nothing.
func EmptyDataset(field string) *Error {
	return New(ErrCodeEmptyDataset, "no numeric values for %s", field)
}

// FetchError describes a dataset retrieval that finished with a non-success
// HTTP status.
type FetchError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

// Code returns the error code for this error type.
func (e *FetchError) Code() Code {
	return ErrCodeFetchFailed
}
