package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"glowbook/internal/common/errors"
)

func TestOTP(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr bool
	}{
		{name: "six digits", code: "123456", wantErr: false},
		{name: "five digits", code: "12345", wantErr: true},
		{name: "seven digits", code: "1234567", wantErr: true},
		{name: "letters", code: "12a456", wantErr: true},
		{name: "empty", code: "", wantErr: true},
		{name: "unicode digits rejected", code: "١٢٣٤٥٦", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := OTP(tt.code)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPhone(t *testing.T) {
	assert.NoError(t, Phone("0123456789"))
	assert.Error(t, Phone("12345"))
	assert.Error(t, Phone("   123456  "))
}

func TestRating(t *testing.T) {
	for rating := MinRating; rating <= MaxRating; rating++ {
		assert.NoError(t, Rating(rating))
	}
	assert.Error(t, Rating(0))
	assert.Error(t, Rating(6))
}

func TestRequired(t *testing.T) {
	assert.NoError(t, Required("name", "Aria"))
	assert.Error(t, Required("name", "   "))
}

func TestPassword(t *testing.T) {
	assert.NoError(t, Password("hunter2!"))
	assert.Error(t, Password("12345"))
}
