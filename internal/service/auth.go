package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/adewale/termshop/internal/hash"
	"github.com/adewale/termshop/internal/logging"
	"github.com/adewale/termshop/internal/models"
	"github.com/adewale/termshop/internal/store"
)

type AuthService struct {
	Users *store.Users
}

// SignUp validates shape and uniqueness, appends the user and persists the
// store. Duplicates are rejected up front, before any more input is taken.
func (s *AuthService) SignUp(ctx context.Context, username, email, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.signup")

	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	if _, err := s.Users.FindByUsername(username); err == nil {
		return nil, fmt.Errorf("username already exists: %w", ErrConflict)
	}
	if _, err := s.Users.FindByEmail(email); err == nil {
		return nil, fmt.Errorf("email already exists: %w", ErrConflict)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash.Password(password),
		Balance:      0,
	}
	if err := s.Users.Add(user); err != nil {
		return nil, err
	}
	if err := s.Users.Save(); err != nil {
		l.Error("signup save failed", "error", err)
		return nil, err
	}

	l.Info("user registered", "username", username)
	return user, nil
}

// SignIn matches the identifier against username or email and compares
// digests. Unknown identifier and wrong password both come back as
// ErrInvalidCredentials.
func (s *AuthService) SignIn(ctx context.Context, identifier, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.signin")

	user, err := s.Users.FindByIdentifier(identifier)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Warn("sign-in failed", "reason", "unknown identifier")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("sign-in failed", "reason", "digest mismatch", "username", user.Username)
		return nil, ErrInvalidCredentials
	}

	l.Info("user signed in", "username", user.Username)
	return user, nil
}

func (s *AuthService) UsernameTaken(username string) bool {
	_, err := s.Users.FindByUsername(username)
	return err == nil
}

func (s *AuthService) EmailTaken(email string) bool {
	_, err := s.Users.FindByEmail(email)
	return err == nil
}

const (
	passwordDigits = "0123456789"
	passwordLower  = "abcdefghijklmnopqrstuvwxyz"
	passwordUpper  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// GeneratePassword produces a random 16-character password that satisfies
// the signup policy by construction: one digit, one lowercase, one uppercase
// and one symbol are placed first, the rest drawn from the full alphabet,
// then the whole thing is shuffled.
func GeneratePassword() (string, error) {
	all := passwordDigits + passwordLower + passwordUpper + passwordSymbols

	chars := make([]byte, 0, minPasswordLen)
	for _, set := range []string{passwordDigits, passwordLower, passwordUpper, passwordSymbols} {
		c, err := randByte(set)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}
	for len(chars) < minPasswordLen {
		c, err := randByte(all)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}

	for i := len(chars) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return "", err
		}
		chars[i], chars[j] = chars[j], chars[i]
	}
	return string(chars), nil
}

func randByte(set string) (byte, error) {
	i, err := randInt(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func randInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("generate password: %w", err)
	}
	return int(v.Int64()), nil
}
