package errors

import (
	"net/http"

	"storefront/internal/errors"
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

// Predefined error types
var (
	// Request-shape errors
	ErrEmptyBody = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_BODY",
		"Request body is empty",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	// Identifier-format errors, named per role
	ErrInvalidUserID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_USER_ID",
		"Invalid user id",
		"",
	)

	ErrInvalidProductID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRODUCT_ID",
		"Invalid product id",
		"",
	)

	ErrInvalidOrderID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ORDER_ID",
		"Invalid order id",
		"",
	)

	// Missing-record errors, named per resource
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	// Referential-integrity errors
	ErrProductInUse = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_IN_USE",
		"Product cannot be deleted because it has been ordered",
		"",
	)

	// Authentication errors
	ErrAuthMismatch = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_MISMATCH",
		"Email or password does not match",
		"",
	)

	// Constraint errors surfaced by the store
	ErrEmailTaken = NewBaseError(
		http.StatusInternalServerError,
		"EMAIL_TAKEN",
		"Email is already registered",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// NewMissingFieldError reports the first required attribute absent from a
// request body. Only key presence is checked, so the field name is the whole
// story and goes into the details.
func NewMissingFieldError(field string) AppError {
	return NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELD",
		"Missing body attribute "+field,
		field,
	)
}

// StoreExecuteError represents a store execution failure, implementing the
// AppError interface. The underlying error is retained for logging but never
// rendered to the caller.
type StoreExecuteError struct {
	err     error
	details string
}

// NewStoreExecuteError creates a store-related error
func NewStoreExecuteError(err error, details string) AppError {
	return &StoreExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface. The operation detail is part of the
// logged message, not the rendered response.
func (e *StoreExecuteError) Error() string {
	if e.details != "" {
		return errors.Wrap(e.err, e.details).Error()
	}

	return errors.Wrap(e.err, "store execution failed").Error()
}

// Unwrap exposes the underlying store error for errors.Is/As.
func (e *StoreExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StoreExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StoreExecuteError) ErrorCode() string {
	return "STORE_FAILED"
}

// Message returns the user-friendly error message
func (e *StoreExecuteError) Message() string {
	return "Internal server error"
}

// Details returns detailed error information. Internal store detail stays out
// of responses, so this is always empty; the wrapped error is for logs only.
func (e *StoreExecuteError) Details() string {
	return ""
}
