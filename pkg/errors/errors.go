package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Dispatch errors
	ErrNoValues        ErrorCode = "NO_VALUES"
	ErrBadPath         ErrorCode = "BAD_PATH"
	ErrUnknownSeverity ErrorCode = "UNKNOWN_SEVERITY"

	// FileSystem errors
	ErrFileOpen  ErrorCode = "FILE_OPEN"
	ErrFileWrite ErrorCode = "FILE_WRITE"

	// Chain errors
	ErrChainRead   ErrorCode = "CHAIN_READ"
	ErrChainBroken ErrorCode = "CHAIN_BROKEN"

	// Serialization errors
	ErrXmlWrite ErrorCode = "XML_WRITE"
)

// OutmuxError represents a structured error with code and details
type OutmuxError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *OutmuxError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *OutmuxError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *OutmuxError) Is(target error) bool {
	var targetErr *OutmuxError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new OutmuxError with the given code and message
func New(code ErrorCode, message string) *OutmuxError {
	return &OutmuxError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new OutmuxError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *OutmuxError {
	return &OutmuxError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an OutmuxError
func Wrap(err error, code ErrorCode, message string) *OutmuxError {
	if err == nil {
		return nil
	}
	return &OutmuxError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *OutmuxError {
	if err == nil {
		return nil
	}
	return &OutmuxError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *OutmuxError) WithDetail(key string, value interface{}) *OutmuxError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var outmuxErr *OutmuxError
	if errors.As(err, &outmuxErr) {
		return outmuxErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an OutmuxError
func GetErrorCode(err error) ErrorCode {
	var outmuxErr *OutmuxError
	if errors.As(err, &outmuxErr) {
		return outmuxErr.Code
	}
	return ErrUnknown
}
