package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Application state errors
var (
	ErrConfirmationRequired = errors.New("explicit confirmation required")
	ErrUnknownPage          = errors.New("unknown page")
	ErrNotInitialized       = errors.New("application state not initialized")
	ErrAlreadyInitialized   = errors.New("application state already initialized")
	ErrPersistFailed        = errors.New("failed to persist state")
	ErrRateLimited          = errors.New("too many requests")
)

// Identity collaborator errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrPhoneAlreadyExists  = errors.New("phone already registered")
	ErrInvalidOTP          = errors.New("invalid or expired one-time code")
	ErrIdentityUnavailable = errors.New("identity service unavailable")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewValidationError reports a rejected form field.
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Details: map[string]interface{}{"field": field},
	}
}

// NewIdentityError wraps a collaborator failure, keeping the collaborator's message for the user.
func NewIdentityError(err error) error {
	msg := ErrIdentityUnavailable.Error()
	if err != nil {
		msg = err.Error()
	}
	return &CustomError{
		Err:     ErrIdentityUnavailable,
		Message: msg,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// MessageOf returns the text shown to the user for err.
func MessageOf(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Error()
	}
	return err.Error()
}
