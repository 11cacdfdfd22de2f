package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adewale/termshop/internal/hash"
	"github.com/adewale/termshop/internal/store"
)

const testPassword = "ValidPass123!@#$%"

func newTestAuth(t *testing.T) (*AuthService, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "accounts.txt")
	users := store.NewUsers(path)
	require.NoError(t, users.Load())
	return &AuthService{Users: users}, path
}

func TestAuthService_SignUp(t *testing.T) {
	t.Parallel()

	svc, path := newTestAuth(t)
	ctx := context.Background()

	user, err := svc.SignUp(ctx, "alice", "alice@example.com", testPassword)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, hash.Password(testPassword), user.PasswordHash)
	assert.Equal(t, 0.0, user.Balance)

	// the store was persisted
	reloaded := store.NewUsers(path)
	require.NoError(t, reloaded.Load())
	require.Len(t, reloaded.All(), 1)
	assert.Equal(t, user.PasswordHash, reloaded.All()[0].PasswordHash)
}

func TestAuthService_SignUpRejections(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuth(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "alice", "alice@example.com", testPassword)
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{name: "bad username", username: "a", email: "x@y.z", password: testPassword, wantErr: ErrValidation},
		{name: "bad email", username: "bob", email: "nope", password: testPassword, wantErr: ErrValidation},
		{name: "weak password", username: "bob", email: "bob@example.com", password: "Short1!", wantErr: ErrValidation},
		{name: "duplicate username", username: "alice", email: "new@example.com", password: testPassword, wantErr: ErrConflict},
		{name: "duplicate email", username: "bob", email: "alice@example.com", password: testPassword, wantErr: ErrConflict},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignUp(ctx, tt.username, tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Len(t, svc.Users.All(), 1)
}

func TestAuthService_SignIn(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuth(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "alice", "alice@example.com", testPassword)
	require.NoError(t, err)

	byName, err := svc.SignIn(ctx, "alice", testPassword)
	require.NoError(t, err)
	assert.Equal(t, "alice", byName.Username)

	byEmail, err := svc.SignIn(ctx, "alice@example.com", testPassword)
	require.NoError(t, err)
	assert.Same(t, byName, byEmail)

	_, err = svc.SignIn(ctx, "alice", "WrongPass123!@#$%")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn(ctx, "nobody", testPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_TakenHelpers(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuth(t)
	_, err := svc.SignUp(context.Background(), "alice", "alice@example.com", testPassword)
	require.NoError(t, err)

	assert.True(t, svc.UsernameTaken("alice"))
	assert.False(t, svc.UsernameTaken("bob"))
	assert.True(t, svc.EmailTaken("alice@example.com"))
	assert.False(t, svc.EmailTaken("bob@example.com"))
}
