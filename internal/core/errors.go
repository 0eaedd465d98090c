package core

import "fmt"

// Error represents a structured error with code and optional cause.
type Error struct {
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is matching by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// WrapError creates a new error with the same code but with a cause.
func WrapError(base *Error, cause error) *Error {
	return &Error{
		Code:    base.Code,
		Message: base.Message,
		Cause:   cause,
	}
}

// UpstreamError reports a non-success response from the data provider.
// The status code is surfaced to callers unchanged.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// Predefined errors
var (
	// Provider errors
	ErrUpstreamUnavailable = &Error{Code: "UPSTREAM_UNAVAILABLE", Message: "error when obtaining cryptocurrency data"}
	ErrNotFound            = &Error{Code: "NOT_FOUND", Message: "cryptocurrency not found"}
	ErrNoData              = &Error{Code: "NO_DATA", Message: "market snapshot not yet available"}

	// Indicator errors
	ErrInsufficientData = &Error{Code: "INSUFFICIENT_DATA", Message: "insufficient data for analysis"}
	ErrInvalidInput     = &Error{Code: "INVALID_INPUT", Message: "input values out of domain"}
	ErrLengthMismatch   = &Error{Code: "LENGTH_MISMATCH", Message: "series lengths differ"}
	ErrInvalidWindow    = &Error{Code: "INVALID_WINDOW", Message: "window must be a positive integer"}
	ErrMissingParameter = &Error{Code: "MISSING_PARAMETER", Message: "please provide the required parameters"}

	// Config errors
	ErrConfigInvalid = &Error{Code: "CONFIG_INVALID", Message: "configuration invalid"}
	ErrConfigMissing = &Error{Code: "CONFIG_MISSING", Message: "required configuration missing"}
)
