package errors

import (
	"fmt"
	"net/http"

	"github.com/calvin-79/food-delivery-tracking/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code, identifies the error kind
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

// Is matches any BaseError of the same kind, so errors.Is(err, ErrNotFound)
// holds for every NotFound regardless of its message.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
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

// Newf returns an error of the same kind with a formatted diagnostic message.
func (e *BaseError) Newf(format string, args ...any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   fmt.Sprintf(format, args...),
		details:   e.details,
	}
}

// Error kinds returned to callers.
var (
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource could not be found",
		"",
	)

	ErrAlreadyDelivered = NewBaseError(
		http.StatusConflict,
		"ALREADY_DELIVERED",
		"order is already delivered",
		"",
	)

	ErrInvalidPayload = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAYLOAD",
		"invalid payload",
		"",
	)

	// ErrUnauthorized is an ownership failure: the caller is authenticated but
	// is not the recorded owner.
	ErrUnauthorized = NewBaseError(
		http.StatusForbidden,
		"UNAUTHORIZED",
		"caller is not the owner",
		"",
	)
)

// Identity-related errors
var (
	ErrPrincipalAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PRINCIPAL_ALREADY_EXISTS",
		"principal name is already taken",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid name or secret",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"invalid or expired refresh token",
		"",
	)

	ErrSecretHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"SECRET_HASH_FAILED",
		"secret processing failed",
		"",
	)
)

// DatabaseExecuteError represents a storage execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a storage-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the storage error for errors.Is checks.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
