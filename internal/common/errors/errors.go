// Package errors provides the standardized error taxonomy for the booking client.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Class buckets errors the way they are surfaced to the user.
type Class string

const (
	// ClassValidation marks errors detected client-side before any network call.
	ClassValidation Class = "VALIDATION"
	// ClassConflict marks authorization/conflict errors detected by the backend;
	// the backend's message field is surfaced verbatim.
	ClassConflict Class = "CONFLICT"
	// ClassTransport marks network failures and unexpected statuses.
	ClassTransport Class = "TRANSPORT"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeFieldRequired    ErrorCode = "FIELD_REQUIRED"
	ErrCodePhoneTooShort    ErrorCode = "PHONE_TOO_SHORT"
	ErrCodeOTPFormat        ErrorCode = "OTP_FORMAT_INVALID"
	ErrCodeRatingOutOfRange ErrorCode = "RATING_OUT_OF_RANGE"
	ErrCodeDateInPast       ErrorCode = "DATE_IN_PAST"
	ErrCodeStepOrder        ErrorCode = "STEP_ORDER_VIOLATION"

	ErrCodeActionNotPermitted ErrorCode = "ACTION_NOT_PERMITTED"
	ErrCodeTerminalState      ErrorCode = "TERMINAL_STATE"
	ErrCodeAlreadyClaimed     ErrorCode = "ALREADY_CLAIMED"
	ErrCodeBackendRejected    ErrorCode = "BACKEND_REJECTED"
	ErrCodeUnauthenticated    ErrorCode = "UNAUTHENTICATED"
	ErrCodeNotFound           ErrorCode = "NOT_FOUND"

	ErrCodeTransportFailed ErrorCode = "TRANSPORT_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Class     Class     `json:"class"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewValidationError creates a client-detected validation error. Callers must
// return it before issuing any network request.
func NewValidationError(code ErrorCode, message string) *StandardError {
	return &StandardError{
		Code:      code,
		Class:     ClassValidation,
		Message:   message,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPermissionError creates a non-retryable capability denial.
func NewPermissionError(role, action string) *StandardError {
	return &StandardError{
		Code:      ErrCodeActionNotPermitted,
		Class:     ClassConflict,
		Message:   fmt.Sprintf("role %s may not perform %s", role, action),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTerminalStateError rejects a transition attempted on a finished appointment.
func NewTerminalStateError(status string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTerminalState,
		Class:     ClassConflict,
		Message:   fmt.Sprintf("appointment is %s and can no longer change", status),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewConflictError wraps a backend rejection, keeping the backend message verbatim.
func NewConflictError(code ErrorCode, backendMessage string) *StandardError {
	return &StandardError{
		Code:      code,
		Class:     ClassConflict,
		Message:   backendMessage,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTransportError wraps a network-level failure. No automatic retry is
// performed at call sites; Retryable only signals that a manual retry may help.
func NewTransportError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTransportFailed,
		Class:     ClassTransport,
		Message:   "request failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// FromStatus maps an HTTP response to the taxonomy. Backend-detected failures
// (4xx) carry the backend message verbatim; everything else is a generic
// transport failure.
func FromStatus(status int, backendMessage string) *StandardError {
	if backendMessage == "" {
		backendMessage = http.StatusText(status)
	}
	switch {
	case status == http.StatusUnauthorized:
		return NewConflictError(ErrCodeUnauthenticated, backendMessage)
	case status == http.StatusNotFound:
		return NewConflictError(ErrCodeNotFound, backendMessage)
	case status >= 400 && status < 500:
		return NewConflictError(ErrCodeBackendRejected, backendMessage)
	default:
		return &StandardError{
			Code:      ErrCodeTransportFailed,
			Class:     ClassTransport,
			Message:   "request failed",
			Details:   fmt.Sprintf("status %d: %s", status, backendMessage),
			Retryable: true,
			Timestamp: time.Now().UTC(),
		}
	}
}

// IsClass reports whether err is a StandardError of the given class.
func IsClass(err error, class Class) bool {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Class == class
	}
	return false
}

// IsValidation reports whether err was detected client-side.
func IsValidation(err error) bool { return IsClass(err, ClassValidation) }

// IsConflict reports whether err carries a backend rejection.
func IsConflict(err error) bool { return IsClass(err, ClassConflict) }

// IsTransport reports whether err is a network-level failure.
func IsTransport(err error) bool { return IsClass(err, ClassTransport) }

// UserMessage returns the text to surface for err. Conflict errors keep the
// backend wording; transport errors collapse to a generic failure line.
func UserMessage(err error) string {
	var stdErr *StandardError
	if !errors.As(err, &stdErr) {
		return "something went wrong"
	}
	if stdErr.Class == ClassTransport {
		return "request failed, please try again"
	}
	return stdErr.Message
}
