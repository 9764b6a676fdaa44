// Package errors holds the domain errors the API renders to clients. Each
// carries the HTTP status and the stable machine-readable code sent in the
// error envelope.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError is an error that knows how it is presented over HTTP.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError is a domain error identified by its code. Copies made with
// WithDetails still match the original under errors.Is.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WrapMessage prefixes the error with context for logs; the rendered
// response is unchanged.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails returns a copy of e carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

var (
	ErrPurchaseNotFound = NewBaseError(http.StatusNotFound,
		"PURCHASE_NOT_FOUND", "Purchase not found", "")
	ErrInvalidPurchaseID = NewBaseError(http.StatusBadRequest,
		"INVALID_PURCHASE_ID", "Purchase id must be a positive integer", "")
	ErrConfirmationCodeMissing = NewBaseError(http.StatusUnprocessableEntity,
		"CONFIRMATION_CODE_MISSING", "Purchase has no confirmation code", "")

	ErrNotificationNotFound = NewBaseError(http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND", "Notification not found", "")
	ErrNotificationCreationFailed = NewBaseError(http.StatusInternalServerError,
		"NOTIFICATION_CREATION_FAILED", "Failed to create notification", "")

	ErrTodoNotFound = NewBaseError(http.StatusNotFound,
		"TODO_NOT_FOUND", "Todo not found", "")

	ErrDeviceNotFound = NewBaseError(http.StatusNotFound,
		"DEVICE_NOT_FOUND", "Device not found", "")
	ErrDeviceOwnershipViolation = NewBaseError(http.StatusForbidden,
		"DEVICE_OWNERSHIP_VIOLATION", "You do not have access to this device", "")

	ErrValidationFailed = NewBaseError(http.StatusBadRequest,
		"VALIDATION_FAILED", "Input validation failed", "")
	ErrInvalidDateRange = NewBaseError(http.StatusBadRequest,
		"INVALID_DATE_RANGE", "Start date must not be after end date", "")

	// ErrUpstreamUnavailable covers every failed call to the purchases
	// backend, carriers included.
	ErrUpstreamUnavailable = NewBaseError(http.StatusBadGateway,
		"UPSTREAM_UNAVAILABLE", "Purchases backend is unavailable", "")
	ErrLogStoreUnavailable = NewBaseError(http.StatusServiceUnavailable,
		"LOG_STORE_UNAVAILABLE", "Log store is not configured", "")

	ErrUnauthorized = NewBaseError(http.StatusUnauthorized,
		"UNAUTHORIZED", "Authentication required", "")
	ErrForbidden = NewBaseError(http.StatusForbidden,
		"FORBIDDEN", "Access denied", "")
)

// DatabaseExecuteError is a failed statement. The driver error stays
// reachable through Unwrap but is never sent to the client.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
