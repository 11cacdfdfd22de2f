package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		ok       bool
	}{
		{name: "valid", username: "alice42", ok: true},
		{name: "two chars", username: "ab", ok: true},
		{name: "empty", username: "", ok: false},
		{name: "one char", username: "a", ok: false},
		{name: "space", username: "ali ce", ok: false},
		{name: "punctuation", username: "alice!", ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateUsername(tt.username)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrValidation)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		email string
		ok    bool
	}{
		{name: "plain", email: "alice@example.com", ok: true},
		{name: "subdomain", email: "a@b.co.uk", ok: true},
		{name: "no at", email: "alice.example.com", ok: false},
		{name: "no dot after at", email: "alice@example", ok: false},
		{name: "whitespace", email: "ali ce@example.com", ok: false},
		{name: "empty", email: "", ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateEmail(tt.email)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrValidation)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		ok       bool
	}{
		{name: "policy example", password: "ValidPass123!@#$%", ok: true},
		{name: "too short", password: "Short1!", ok: false},
		{name: "sixteen but no symbol", password: "ValidPassword123", ok: false},
		{name: "no uppercase", password: "validpass123!@#$%", ok: false},
		{name: "no lowercase", password: "VALIDPASS123!@#$%", ok: false},
		{name: "no digit", password: "ValidPassword!@#$%", ok: false},
		{name: "empty", password: "", ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidatePassword(tt.password)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrValidation)
			}
		})
	}
}

func TestGeneratePassword_SatisfiesPolicy(t *testing.T) {
	t.Parallel()

	for i := 0; i < 50; i++ {
		password, err := GeneratePassword()
		require.NoError(t, err)
		require.Len(t, password, 16)
		require.NoError(t, ValidatePassword(password))
	}
}
