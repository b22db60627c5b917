package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ValidationError, "test validation error")
			},
			expected: "VALIDATION_ERROR: test validation error",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("dial tcp: i/o timeout")
				return Wrap(ConnectionError, "failed to create email connection", cause)
			},
			expected: "CONNECTION_ERROR: failed to create email connection (caused by: dial tcp: i/o timeout)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("original error")

	assert.Equal(t, cause, Wrap(LoadError, "read failed", cause).Unwrap())
	assert.Nil(t, New(ValidationError, "bad input").Unwrap())
}

func TestSpecificErrorConstructors(t *testing.T) {
	cause := fmt.Errorf("underlying")

	tests := []struct {
		name         string
		constructor  func() *AppError
		expectedType ErrorType
		expectedMsg  string
		hasCause     bool
	}{
		{
			name:         "NewConfigurationError",
			constructor:  func() *AppError { return NewConfigurationError("unsupported email service", nil) },
			expectedType: ConfigurationError,
			expectedMsg:  "unsupported email service",
		},
		{
			name:         "NewValidationError",
			constructor:  func() *AppError { return NewValidationError("password is required") },
			expectedType: ValidationError,
			expectedMsg:  "password is required",
		},
		{
			name:         "NewNotFoundError",
			constructor:  func() *AppError { return NewNotFoundError("template file not found", cause) },
			expectedType: NotFoundError,
			expectedMsg:  "template file not found",
			hasCause:     true,
		},
		{
			name:         "NewPermissionDeniedError",
			constructor:  func() *AppError { return NewPermissionDeniedError("permission denied", cause) },
			expectedType: PermissionDeniedError,
			expectedMsg:  "permission denied",
			hasCause:     true,
		},
		{
			name:         "NewLoadError",
			constructor:  func() *AppError { return NewLoadError("error loading CSV file", cause) },
			expectedType: LoadError,
			expectedMsg:  "error loading CSV file",
			hasCause:     true,
		},
		{
			name:         "NewConnectionError",
			constructor:  func() *AppError { return NewConnectionError("failed to authenticate", cause) },
			expectedType: ConnectionError,
			expectedMsg:  "failed to authenticate",
			hasCause:     true,
		},
		{
			name:         "NewSendError",
			constructor:  func() *AppError { return NewSendError("failed to send email", cause) },
			expectedType: SendError,
			expectedMsg:  "failed to send email",
			hasCause:     true,
		},
		{
			name:         "NewSubstitutionError",
			constructor:  func() *AppError { return NewSubstitutionError("unfilled placeholders", nil) },
			expectedType: SubstitutionError,
			expectedMsg:  "unfilled placeholders",
		},
		{
			name:         "NewMergeError",
			constructor:  func() *AppError { return NewMergeError("an error occurred during mail merge", cause) },
			expectedType: MergeError,
			expectedMsg:  "an error occurred during mail merge",
			hasCause:     true,
		},
		{
			name:         "NewDatabaseError",
			constructor:  func() *AppError { return NewDatabaseError("failed to save run", cause) },
			expectedType: DatabaseError,
			expectedMsg:  "failed to save run",
			hasCause:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.constructor()

			assert.Equal(t, tt.expectedType, err.Type)
			assert.Equal(t, tt.expectedMsg, err.Message)

			if tt.hasCause {
				assert.NotNil(t, err.Cause)
			} else {
				assert.Nil(t, err.Cause)
			}
		})
	}
}

func TestErrorTypes(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ConfigurationError, "CONFIGURATION_ERROR"},
		{ValidationError, "VALIDATION_ERROR"},
		{NotFoundError, "NOT_FOUND_ERROR"},
		{PermissionDeniedError, "PERMISSION_DENIED_ERROR"},
		{LoadError, "LOAD_ERROR"},
		{ConnectionError, "CONNECTION_ERROR"},
		{SendError, "SEND_ERROR"},
		{SubstitutionError, "SUBSTITUTION_ERROR"},
		{MergeError, "MERGE_ERROR"},
		{DatabaseError, "DATABASE_ERROR"},
		{ErrorTypeUnknown, "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestErrorChaining(t *testing.T) {
	originalErr := fmt.Errorf("connection refused")
	connErr := NewConnectionError("failed to create email connection", originalErr)
	mergeErr := NewMergeError("an error occurred during mail merge", connErr)

	expected := "MERGE_ERROR: an error occurred during mail merge (caused by: CONNECTION_ERROR: failed to create email connection (caused by: connection refused))"
	assert.Equal(t, expected, mergeErr.Error())

	assert.Equal(t, MergeError, TypeOf(mergeErr))
	assert.True(t, IsMergeError(mergeErr))
	assert.True(t, IsConnectionError(mergeErr))
	assert.False(t, IsSendError(mergeErr))
}

func TestHasType_ThroughForeignWrapping(t *testing.T) {
	inner := NewSubstitutionError("unfilled placeholders", nil)
	wrapped := fmt.Errorf("fill recipient 2: %w", inner)

	assert.True(t, IsSubstitutionError(wrapped))
	assert.Equal(t, SubstitutionError, TypeOf(wrapped))
	assert.False(t, IsLoadError(wrapped))
	assert.False(t, IsLoadError(nil))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(fmt.Errorf("plain")))
}
