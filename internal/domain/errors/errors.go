package errors

import (
	"net/http"

	"panel/internal/errors"
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

// Is lets wrapped WithDetails copies match their template error, so
// errors.Is(err, ErrPasswordExpired) holds regardless of attached details.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// Predefined error types
var (
	// Credential and session errors. Unknown identity and wrong password
	// share one error so responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid login identity or password",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Invalid session token",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Session has expired, please log in again",
		"",
	)

	// Password policy errors.
	ErrPasswordExpired = NewBaseError(
		http.StatusForbidden,
		"PASSWORD_EXPIRED",
		"Password has exceeded its maximum age and must be changed",
		"",
	)

	ErrPasswordReused = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_REUSED",
		"New password must differ from the current password and the last 3 passwords",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password does not meet the strength requirements",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Reset flow errors.
	ErrResetTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"RESET_TOKEN_INVALID",
		"Invalid or expired reset token",
		"",
	)

	// Notification routing errors. The routing invariant is enforced on
	// every profile update, so MissingContactEmail should be unreachable.
	ErrMissingContactEmail = NewBaseError(
		http.StatusInternalServerError,
		"MISSING_CONTACT_EMAIL",
		"No contact email configured for notification routing",
		"",
	)

	ErrMailDeliveryFailed = NewBaseError(
		http.StatusBadGateway,
		"MAIL_DELIVERY_FAILED",
		"Failed to deliver notification email",
		"",
	)

	// Admin and managed-user errors.
	ErrAdminNotFound = NewBaseError(
		http.StatusNotFound,
		"ADMIN_NOT_FOUND",
		"Administrator account not found",
		"",
	)

	ErrAdminAlreadyExists = NewBaseError(
		http.StatusConflict,
		"ADMIN_ALREADY_EXISTS",
		"An administrator with this login or employee id already exists",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email address is already registered",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to create user",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_UPDATE_FAILED",
		"Failed to update user",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Storage and export errors.
	ErrStorageFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_FAILED",
		"Object storage operation failed",
		"",
	)

	ErrExportFailed = NewBaseError(
		http.StatusInternalServerError,
		"EXPORT_FAILED",
		"Failed to generate export",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
