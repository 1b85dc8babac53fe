package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromStatus(t *testing.T) {
	tests := []struct {
		name           string
		status         int
		backendMessage string
		wantClass      Class
		wantCode       ErrorCode
		wantMessage    string
	}{
		{
			name:           "conflict keeps backend wording verbatim",
			status:         http.StatusConflict,
			backendMessage: "Appointment already claimed by another staff member",
			wantClass:      ClassConflict,
			wantCode:       ErrCodeBackendRejected,
			wantMessage:    "Appointment already claimed by another staff member",
		},
		{
			name:           "unauthorized maps to unauthenticated",
			status:         http.StatusUnauthorized,
			backendMessage: "Invalid token",
			wantClass:      ClassConflict,
			wantCode:       ErrCodeUnauthenticated,
			wantMessage:    "Invalid token",
		},
		{
			name:        "not found without message falls back to status text",
			status:      http.StatusNotFound,
			wantClass:   ClassConflict,
			wantCode:    ErrCodeNotFound,
			wantMessage: "Not Found",
		},
		{
			name:           "server error is transport",
			status:         http.StatusBadGateway,
			backendMessage: "upstream exploded",
			wantClass:      ClassTransport,
			wantCode:       ErrCodeTransportFailed,
			wantMessage:    "request failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromStatus(tt.status, tt.backendMessage)
			assert.Equal(t, tt.wantClass, err.Class)
			assert.Equal(t, tt.wantCode, err.Code)
			assert.Equal(t, tt.wantMessage, err.Message)
		})
	}
}

func TestClassPredicates(t *testing.T) {
	valErr := NewValidationError(ErrCodeOTPFormat, "OTP must be 6 digits")
	assert.True(t, IsValidation(valErr))
	assert.False(t, IsConflict(valErr))

	transErr := NewTransportError(fmt.Errorf("connection refused"))
	assert.True(t, IsTransport(transErr))
	assert.True(t, transErr.Retryable)

	wrapped := fmt.Errorf("claim: %w", NewConflictError(ErrCodeAlreadyClaimed, "taken"))
	assert.True(t, IsConflict(wrapped))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "taken", UserMessage(NewConflictError(ErrCodeAlreadyClaimed, "taken")))
	assert.Equal(t, "request failed, please try again", UserMessage(NewTransportError(fmt.Errorf("eof"))))
	assert.Equal(t, "something went wrong", UserMessage(fmt.Errorf("plain")))
}
