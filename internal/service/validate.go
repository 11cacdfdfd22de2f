package service

import (
	"fmt"
	"regexp"
	"strings"
)

// passwordSymbols is the fixed punctuation set a password must draw at least
// one character from. Same set the generator uses.
const passwordSymbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

const minPasswordLen = 16

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty: %w", ErrValidation)
	}
	if len(username) < 2 {
		return fmt.Errorf("username must be at least 2 characters: %w", ErrValidation)
	}
	for _, r := range username {
		if !isAlnum(r) {
			return fmt.Errorf("username must contain only letters and numbers: %w", ErrValidation)
		}
	}
	return nil
}

// ValidateEmail is a permissive shape check, not RFC validation: something
// before an '@', a '.' after it, no whitespace anywhere.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email address: %w", ErrValidation)
	}
	return nil
}

// ValidatePassword enforces the signup policy: at least 16 characters with
// one uppercase letter, one lowercase letter, one digit and one symbol.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters: %w", minPasswordLen, ErrValidation)
	}
	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	if !upper || !lower || !digit || !symbol {
		return fmt.Errorf("password must contain an uppercase letter, a lowercase letter, a digit and a symbol: %w", ErrValidation)
	}
	return nil
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
