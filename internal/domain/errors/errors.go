// Package errors defines the application error taxonomy: NotFound,
// InvalidArgument and InvalidState conditions carry an HTTP status and a
// stable business error code for the transport layer. Simulated failures
// (payment declines, interceptions) are normal results, never errors.
package errors

import (
	"net/http"

	"freeport/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Marketplace errors
	ErrListingNotFound = NewBaseError(
		http.StatusNotFound,
		"LISTING_NOT_FOUND",
		"listing not found",
		"",
	)

	ErrUnknownCategory = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_CATEGORY",
		"listing category is not in the category table",
		"",
	)

	// Payment errors
	ErrPaymentNotFound = NewBaseError(
		http.StatusNotFound,
		"PAYMENT_NOT_FOUND",
		"payment not found",
		"",
	)

	ErrPaymentNotRefundable = NewBaseError(
		http.StatusConflict,
		"PAYMENT_NOT_REFUNDABLE",
		"payment is not in a refundable state",
		"",
	)

	// Subscription errors
	ErrSubscriptionNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBSCRIPTION_NOT_FOUND",
		"subscription not found",
		"",
	)

	ErrInvalidPlan = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PLAN",
		"plan is not in the plan table",
		"",
	)

	// Acquisition errors
	ErrInvalidEventType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EVENT_TYPE",
		"funnel event type is not in the fixed set",
		"",
	)

	// Revenue errors
	ErrInvalidStream = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STREAM",
		"revenue stream is not in the fixed set",
		"",
	)

	// World simulation errors
	ErrInvalidCapacity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CAPACITY",
		"ship capacity must be positive",
		"",
	)

	ErrJobNotFound = NewBaseError(
		http.StatusNotFound,
		"JOB_NOT_FOUND",
		"job not found",
		"",
	)

	ErrInvalidJobState = NewBaseError(
		http.StatusConflict,
		"INVALID_JOB_STATE",
		"job state does not permit this transition",
		"",
	)

	ErrMarketListingNotFound = NewBaseError(
		http.StatusNotFound,
		"MARKET_LISTING_NOT_FOUND",
		"black market listing not found",
		"",
	)

	ErrMarketListingSold = NewBaseError(
		http.StatusConflict,
		"MARKET_LISTING_SOLD",
		"black market listing is already sold",
		"",
	)

	ErrRunNotFound = NewBaseError(
		http.StatusNotFound,
		"RUN_NOT_FOUND",
		"smuggling run not found",
		"",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)
