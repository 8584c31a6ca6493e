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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Directive errors
	ErrMountMalformed ErrorCode = "MOUNT_MALFORMED"

	// Plugin errors
	ErrPluginLoad      ErrorCode = "PLUGIN_LOAD"
	ErrPluginAmbiguous ErrorCode = "PLUGIN_AMBIGUOUS"
	ErrPluginNoInput   ErrorCode = "PLUGIN_NO_INPUT"
	ErrBundlerLoad     ErrorCode = "BUNDLER_LOAD"
)

// DriftError represents a structured error with code and details
type DriftError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DriftError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DriftError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DriftError) Is(target error) bool {
	var targetErr *DriftError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DriftError with the given code and message
func New(code ErrorCode, message string) *DriftError {
	return &DriftError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DriftError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DriftError {
	return &DriftError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DriftError
func Wrap(err error, code ErrorCode, message string) *DriftError {
	if err == nil {
		return nil
	}
	return &DriftError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DriftError {
	if err == nil {
		return nil
	}
	return &DriftError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DriftError) WithDetail(key string, value interface{}) *DriftError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var driftErr *DriftError
	if errors.As(err, &driftErr) {
		return driftErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DriftError
func GetErrorCode(err error) ErrorCode {
	var driftErr *DriftError
	if errors.As(err, &driftErr) {
		return driftErr.Code
	}
	return ErrUnknown
}
