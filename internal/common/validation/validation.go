// Package validation holds the client-side field checks that run before any
// network request is issued.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"glowbook/internal/common/errors"
)

const (
	MinPhoneDigits    = 10
	OTPLength         = 6
	MinPasswordLength = 6
	MinRating         = 1
	MaxRating         = 5
)

var (
	otpPattern   = regexp.MustCompile(`^[0-9]{6}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Required rejects empty or whitespace-only values.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewValidationError(errors.ErrCodeFieldRequired, fmt.Sprintf("%s is required", field))
	}
	return nil
}

// Phone checks the contact number stored before an appointment is created.
func Phone(phone string) error {
	if len(strings.TrimSpace(phone)) < MinPhoneDigits {
		return errors.NewValidationError(errors.ErrCodePhoneTooShort,
			fmt.Sprintf("phone number must be at least %d digits", MinPhoneDigits))
	}
	return nil
}

// OTP checks the completion code format: exactly six ASCII digits.
func OTP(code string) error {
	if !otpPattern.MatchString(code) {
		return errors.NewValidationError(errors.ErrCodeOTPFormat, "OTP must be exactly 6 digits")
	}
	return nil
}

// Rating checks a review score.
func Rating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errors.NewValidationError(errors.ErrCodeRatingOutOfRange,
			fmt.Sprintf("rating must be between %d and %d", MinRating, MaxRating))
	}
	return nil
}

// Password checks the minimum length used at registration and invitation
// acceptance.
func Password(password string) error {
	if len(password) < MinPasswordLength {
		return errors.NewValidationError(errors.ErrCodeFieldRequired,
			fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}
	return nil
}

// Email checks basic address shape.
func Email(email string) error {
	if !emailPattern.MatchString(email) {
		return errors.NewValidationError(errors.ErrCodeFieldRequired, "email address is invalid")
	}
	return nil
}
