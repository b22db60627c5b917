package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Pre-flight errors - raised before any network activity
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeConfiguration
	ErrorTypeValidation

	// Load errors - template or recipient source could not be read
	ErrorTypeNotFound
	ErrorTypePermissionDenied
	ErrorTypeLoad

	// Transport errors - session setup and per-recipient delivery
	ErrorTypeConnection
	ErrorTypeSend

	// Merge errors - substitution failures and whole-run aborts
	ErrorTypeSubstitution
	ErrorTypeMerge

	// Infrastructure errors
	ErrorTypeDatabase
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypePermissionDenied:
		return "PERMISSION_DENIED_ERROR"
	case ErrorTypeLoad:
		return "LOAD_ERROR"
	case ErrorTypeConnection:
		return "CONNECTION_ERROR"
	case ErrorTypeSend:
		return "SEND_ERROR"
	case ErrorTypeSubstitution:
		return "SUBSTITUTION_ERROR"
	case ErrorTypeMerge:
		return "MERGE_ERROR"
	case ErrorTypeDatabase:
		return "DATABASE_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used across the codebase
const (
	ConfigurationError    = ErrorTypeConfiguration
	ValidationError       = ErrorTypeValidation
	NotFoundError         = ErrorTypeNotFound
	PermissionDeniedError = ErrorTypePermissionDenied
	LoadError             = ErrorTypeLoad
	ConnectionError       = ErrorTypeConnection
	SendError             = ErrorTypeSend
	SubstitutionError     = ErrorTypeSubstitution
	MergeError            = ErrorTypeMerge
	DatabaseError         = ErrorTypeDatabase
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
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

// Pre-flight Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

// Load Error Constructors
func NewNotFoundError(message string, cause error) *AppError {
	return Wrap(NotFoundError, message, cause)
}

func NewPermissionDeniedError(message string, cause error) *AppError {
	return Wrap(PermissionDeniedError, message, cause)
}

func NewLoadError(message string, cause error) *AppError {
	return Wrap(LoadError, message, cause)
}

// Transport Error Constructors
func NewConnectionError(message string, cause error) *AppError {
	return Wrap(ConnectionError, message, cause)
}

func NewSendError(message string, cause error) *AppError {
	return Wrap(SendError, message, cause)
}

// Merge Error Constructors
func NewSubstitutionError(message string, cause error) *AppError {
	return Wrap(SubstitutionError, message, cause)
}

func NewMergeError(message string, cause error) *AppError {
	return Wrap(MergeError, message, cause)
}

// Infrastructure Error Constructors
func NewDatabaseError(message string, cause error) *AppError {
	return Wrap(DatabaseError, message, cause)
}

// TypeOf returns the type of the outermost AppError in the chain, or ErrorTypeUnknown.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// HasType reports whether any AppError in the chain has the given type.
func HasType(err error, errorType ErrorType) bool {
	for err != nil {
		var appErr *AppError
		if !stderrors.As(err, &appErr) {
			return false
		}
		if appErr.Type == errorType {
			return true
		}
		err = appErr.Cause
	}
	return false
}

// Helper functions for error type checking
func IsConfigurationError(err error) bool {
	return HasType(err, ConfigurationError)
}

func IsValidationError(err error) bool {
	return HasType(err, ValidationError)
}

func IsNotFoundError(err error) bool {
	return HasType(err, NotFoundError)
}

func IsPermissionDeniedError(err error) bool {
	return HasType(err, PermissionDeniedError)
}

func IsLoadError(err error) bool {
	return HasType(err, LoadError)
}

func IsConnectionError(err error) bool {
	return HasType(err, ConnectionError)
}

func IsSendError(err error) bool {
	return HasType(err, SendError)
}

func IsSubstitutionError(err error) bool {
	return HasType(err, SubstitutionError)
}

func IsMergeError(err error) bool {
	return HasType(err, MergeError)
}

func IsDatabaseError(err error) bool {
	return HasType(err, DatabaseError)
}
