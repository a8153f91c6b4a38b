// Package errors provides structured error types for tmd.
//
// Tree analysis distinguishes three kinds of failure:
//   - Malformed input (mismatched attribute lengths, broken parent structure)
//     is rejected with a coded *Error when a tree is constructed.
//   - Degenerate geometry (coincident points, zero-length directions) is not
//     an error at all; it propagates as sentinel values such as the zero
//     vector or NaN.
//   - Programmer errors (index out of range, mismatched weight and axis
//     counts) panic.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - NOT_FOUND*: Lookup failures
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeLengthMismatch, "y has %d points, want %d", len(y), n)
//	if errors.Is(err, errors.ErrCodeLengthMismatch) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, origErr, "decode %s", path)
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
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidAxis    Code = "INVALID_AXIS"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeEmptyTree      Code = "INVALID_EMPTY_TREE"
	ErrCodeLengthMismatch Code = "INVALID_LENGTH_MISMATCH"
	ErrCodeInvalidParent  Code = "INVALID_PARENT"
	ErrCodeCycle          Code = "INVALID_CYCLE"

	// Lookup errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// IsMalformedInput reports whether err is one of the INVALID_* codes that
// tree construction returns for structurally broken input.
func IsMalformedInput(err error) bool {
	switch GetCode(err) {
	case ErrCodeEmptyTree, ErrCodeLengthMismatch, ErrCodeInvalidParent, ErrCodeCycle:
		return true
	}
	return false
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
