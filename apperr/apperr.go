package apperr

import "net/http"

// FieldViolation represents a single field-level validation failure.
type FieldViolation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ApiError is the canonical error type for the API. It carries an HTTP
// status code and a message safe to return to the client. Cause is kept
// for server-side logging only and is never sent to clients.
type ApiError struct {
	StatusCode    int
	Message       string
	IsOperational bool
	Cause         error
	Violations    []FieldViolation
}

// Error implements the error interface. It returns the client-safe message.
func (e *ApiError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.StatusCode)
}

// Unwrap allows errors.Is and errors.As to traverse the cause chain.
func (e *ApiError) Unwrap() error {
	return e.Cause
}

// New creates an operational error with the given status code and message.
func New(statusCode int, message string) *ApiError {
	return &ApiError{
		StatusCode:    statusCode,
		Message:       message,
		IsOperational: true,
	}
}

// NewNotFound creates an operational 404 error.
func NewNotFound(message string) *ApiError {
	return New(http.StatusNotFound, message)
}

// NewInternal creates an operational 500 error. The original cause is
// retained for logging.
func NewInternal(message string, cause error) *ApiError {
	return &ApiError{
		StatusCode:    http.StatusInternalServerError,
		Message:       message,
		IsOperational: true,
		Cause:         cause,
	}
}

// NewValidation creates a 400 error carrying field-level violations in the
// order the schema produced them.
func NewValidation(violations []FieldViolation) *ApiError {
	return &ApiError{
		StatusCode:    http.StatusBadRequest,
		Message:       "Validation error.",
		IsOperational: true,
		Violations:    violations,
	}
}
