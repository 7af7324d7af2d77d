package errors

import (
	"net/http"

	"tracker/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. Messages mirror the public API contract; anything
// an attacker could use (why a token or signature failed) stays out of the
// message and is only logged server-side.
var (
	// Candidate-related errors
	ErrCandidateNotFound = NewBaseError(
		http.StatusNotFound,
		"CANDIDATE_NOT_FOUND",
		"Candidate not found",
		"",
	)

	ErrMissingStage = NewBaseError(
		http.StatusBadRequest,
		"MISSING_STAGE",
		"Missing stage",
		"",
	)

	// Tracking-link errors
	ErrMissingTrackToken = NewBaseError(
		http.StatusBadRequest,
		"TOKEN_REQUIRED",
		"Token required",
		"",
	)

	ErrInvalidTrackToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid token",
		"",
	)

	// Webhook ingestion errors
	ErrMissingSignature = NewBaseError(
		http.StatusBadRequest,
		"MISSING_SIGNATURE",
		"Missing signature",
		"",
	)

	ErrMissingEventID = NewBaseError(
		http.StatusBadRequest,
		"MISSING_EVENT_ID",
		"Missing event_id",
		"",
	)

	ErrInvalidSignature = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_SIGNATURE",
		"Invalid signature",
		"",
	)

	ErrWebhookNotConfigured = NewBaseError(
		http.StatusNotImplemented,
		"WEBHOOK_NOT_CONFIGURED",
		"Webhook secret not configured",
		"",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid request input",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
