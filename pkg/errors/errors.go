package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain errors - input that the view refuses to act on
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound

	// Backend errors - failures talking to the remote weather API
	ErrorTypeNetwork
	ErrorTypeBackendStatus
	ErrorTypeDecode

	// Local infrastructure errors
	ErrorTypeStorage
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeNetwork:
		return "NETWORK_ERROR"
	case ErrorTypeBackendStatus:
		return "BACKEND_STATUS_ERROR"
	case ErrorTypeDecode:
		return "DECODE_ERROR"
	case ErrorTypeStorage:
		return "STORAGE_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	// StatusCode is set for ErrorTypeBackendStatus
	StatusCode int
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

func NewValidationError(message string) *AppError {
	return New(ErrorTypeValidation, message)
}

func NewNotFoundError(message string) *AppError {
	return New(ErrorTypeNotFound, message)
}

func NewNetworkError(message string, cause error) *AppError {
	return Wrap(ErrorTypeNetwork, message, cause)
}

// NewBackendStatusError reports a non-success HTTP status from the backend.
func NewBackendStatusError(message string, statusCode int) *AppError {
	return &AppError{
		Type:       ErrorTypeBackendStatus,
		Message:    message,
		StatusCode: statusCode,
	}
}

func NewDecodeError(message string, cause error) *AppError {
	return Wrap(ErrorTypeDecode, message, cause)
}

func NewStorageError(message string, cause error) *AppError {
	return Wrap(ErrorTypeStorage, message, cause)
}

func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ErrorTypeConfiguration, message, cause)
}

// Message returns the user-facing text of err: the AppError message when err
// wraps one, the plain error text otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

func isType(err error, t ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}

// Helper functions for error type checking
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

func IsNetworkError(err error) bool {
	return isType(err, ErrorTypeNetwork)
}

func IsBackendStatusError(err error) bool {
	return isType(err, ErrorTypeBackendStatus)
}

func IsDecodeError(err error) bool {
	return isType(err, ErrorTypeDecode)
}

func IsStorageError(err error) bool {
	return isType(err, ErrorTypeStorage)
}

func IsConfigurationError(err error) bool {
	return isType(err, ErrorTypeConfiguration)
}
