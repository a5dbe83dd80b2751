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
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Validation errors, raised before generation
	ErrInvalidIdentifier ErrorCode = "INVALID_IDENTIFIER"
	ErrInvalidPort       ErrorCode = "INVALID_PORT"

	// Configuration errors
	ErrConfigLoad     ErrorCode = "CONFIG_LOAD"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrInvalidVariant ErrorCode = "INVALID_VARIANT"

	// FileSystem errors, raised during normalization
	ErrDirCreate  ErrorCode = "DIR_CREATE"
	ErrFileMove   ErrorCode = "FILE_MOVE"
	ErrFileRead   ErrorCode = "FILE_READ"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrFileRemove ErrorCode = "FILE_REMOVE"
)

// GenError represents a structured error with code and details
type GenError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GenError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GenError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *GenError) Is(target error) bool {
	var targetErr *GenError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GenError with the given code and message
func New(code ErrorCode, message string) *GenError {
	return &GenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GenError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GenError {
	return &GenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GenError
func Wrap(err error, code ErrorCode, message string) *GenError {
	if err == nil {
		return nil
	}
	return &GenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GenError {
	if err == nil {
		return nil
	}
	return &GenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GenError) WithDetail(key string, value interface{}) *GenError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *GenError) WithDetails(details map[string]interface{}) *GenError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var genErr *GenError
	if errors.As(err, &genErr) {
		return genErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GenError
func GetErrorCode(err error) ErrorCode {
	var genErr *GenError
	if errors.As(err, &genErr) {
		return genErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a GenError
func GetErrorDetails(err error) map[string]interface{} {
	var genErr *GenError
	if errors.As(err, &genErr) {
		return genErr.Details
	}
	return nil
}

// IsValidation reports whether err was raised by input validation.
// Validation errors carry their own user-facing diagnostic.
func IsValidation(err error) bool {
	switch GetErrorCode(err) {
	case ErrInvalidIdentifier, ErrInvalidPort:
		return true
	}
	return false
}
