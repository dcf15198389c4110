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
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"

	// External command errors
	ErrSpawn         ErrorCode = "SPAWN"
	ErrCommandFailed ErrorCode = "COMMAND_FAILED"
	ErrInconsistent  ErrorCode = "INCONSISTENT"

	// Identity errors
	ErrParseIdentity ErrorCode = "PARSE_IDENTITY"

	// FileSystem errors
	ErrStagingCreate ErrorCode = "STAGING_CREATE"
	ErrInvalidPath   ErrorCode = "INVALID_PATH"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
	ErrDirRead       ErrorCode = "DIR_READ"
)

// DetailExitCode is the detail key holding the exit status the process
// should terminate with.
const DetailExitCode = "exit_code"

// BrewError represents a structured error with code and details
type BrewError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BrewError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

// Unwrap implements the errors.Unwrap interface
func (e *BrewError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BrewError) Is(target error) bool {
	var targetErr *BrewError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BrewError with the given code and message
func New(code ErrorCode, message string) *BrewError {
	return &BrewError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BrewError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BrewError {
	return &BrewError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BrewError
func Wrap(err error, code ErrorCode, message string) *BrewError {
	if err == nil {
		return nil
	}
	return &BrewError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BrewError {
	if err == nil {
		return nil
	}
	return &BrewError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BrewError) WithDetail(key string, value interface{}) *BrewError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithExitCode records the exit status the process should use when this
// error terminates the run.
func (e *BrewError) WithExitCode(code int) *BrewError {
	return e.WithDetail(DetailExitCode, code)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var brewErr *BrewError
	if errors.As(err, &brewErr) {
		return brewErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BrewError
func GetErrorCode(err error) ErrorCode {
	var brewErr *BrewError
	if errors.As(err, &brewErr) {
		return brewErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BrewError
func GetErrorDetails(err error) map[string]interface{} {
	var brewErr *BrewError
	if errors.As(err, &brewErr) {
		return brewErr.Details
	}
	return nil
}

// ExitCode returns the exit status for err. Nil errors map to 0; errors
// without a recorded exit code (or with a non-positive one) map to 1.
// The outermost recorded code in the wrap chain wins.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		brewErr, ok := e.(*BrewError)
		if !ok {
			continue
		}
		if code, ok := brewErr.Details[DetailExitCode].(int); ok && code > 0 {
			return code
		}
	}
	return 1
}
