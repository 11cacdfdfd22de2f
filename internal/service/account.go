package service

import (
	"context"
	"fmt"

	"github.com/adewale/termshop/internal/hash"
	"github.com/adewale/termshop/internal/logging"
	"github.com/adewale/termshop/internal/models"
	"github.com/adewale/termshop/internal/store"
)

// Funding limits, in wallet currency. LargeBalanceThreshold is where the CLI
// demands the extra RESET confirmation.
const (
	MaxFundAmount         = 100_000_000
	LargeBalanceThreshold = 50_000
)

// AccountService wraps every mutation of the signed-in user. Callers are
// expected to have passed the VerifyPassword gate first; the CLI prompts for
// the current password before each of these.
type AccountService struct {
	Users *store.Users
}

// VerifyPassword is the reauthentication gate for account changes: digest
// comparison against the current user, nothing token-based.
func (s *AccountService) VerifyPassword(user *models.User, password string) bool {
	if password == "" {
		return false
	}
	return hash.CheckPassword(user.PasswordHash, password)
}

func (s *AccountService) ChangeUsername(ctx context.Context, user *models.User, username string) error {
	if err := ValidateUsername(username); err != nil {
		return err
	}
	if err := s.Users.Rename(user, username); err != nil {
		return fmt.Errorf("username already taken: %w", ErrConflict)
	}
	if err := s.Users.Save(); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("username changed", "username", username)
	return nil
}

func (s *AccountService) ChangeEmail(ctx context.Context, user *models.User, email string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if err := s.Users.ChangeEmail(user, email); err != nil {
		return fmt.Errorf("email already taken: %w", ErrConflict)
	}
	if err := s.Users.Save(); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("email changed", "username", user.Username)
	return nil
}

// ChangePassword enforces the policy and refuses to reuse the current
// password.
func (s *AccountService) ChangePassword(ctx context.Context, user *models.User, password string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}
	digest := hash.Password(password)
	if digest == user.PasswordHash {
		return fmt.Errorf("new password cannot match the current one: %w", ErrPasswordReuse)
	}
	user.PasswordHash = digest
	if err := s.Users.Save(); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("password changed", "username", user.Username)
	return nil
}

// FundWallet credits the wallet. Amounts must be positive and no more than
// MaxFundAmount per top-up.
func (s *AccountService) FundWallet(ctx context.Context, user *models.User, amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive: %w", ErrValidation)
	}
	if amount > MaxFundAmount {
		return fmt.Errorf("maximum funding amount is %d at a time: %w", MaxFundAmount, ErrValidation)
	}
	user.Balance += amount
	if err := s.Users.Save(); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("wallet funded", "username", user.Username, "amount", amount)
	return nil
}

func (s *AccountService) ResetBalance(ctx context.Context, user *models.User) error {
	user.Balance = 0
	if err := s.Users.Save(); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("balance reset", "username", user.Username)
	return nil
}

// DeleteAccount removes the user from the store and ends the session, cart
// included.
func (s *AccountService) DeleteAccount(ctx context.Context, session *Session) error {
	user := session.User
	if err := s.Users.Remove(user); err != nil {
		return err
	}
	if err := s.Users.Save(); err != nil {
		return err
	}
	session.End()
	logging.FromContext(ctx).Info("account deleted", "username", user.Username)
	return nil
}
