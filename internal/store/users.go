package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adewale/termshop/internal/models"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// Users owns the in-memory user list for the process lifetime. The backing
// file is one comma-separated record per line:
//
//	username,email,password_hash,balance
//
// Saves rewrite the whole file. There is no write atomicity: a crash mid-save
// can truncate the store.
type Users struct {
	path  string
	users []*models.User
}

func NewUsers(path string) *Users {
	return &Users{path: path}
}

// Load parses the accounts file. Records with a wrong field count, an empty
// trimmed field or a bad balance are dropped, not fatal. A missing file just
// means an empty store.
func (s *Users) Load() error {
	s.users = nil

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open accounts file: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		u, ok := parseUser(line)
		if !ok {
			continue
		}
		s.users = append(s.users, u)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read accounts file: %w", err)
	}
	return nil
}

func parseUser(line string) (*models.User, bool) {
	fields := strings.Split(line, ",")
	if len(fields) != 4 {
		return nil, false
	}
	username := strings.TrimSpace(fields[0])
	email := strings.TrimSpace(fields[1])
	digest := strings.TrimSpace(fields[2])
	if username == "" || email == "" || digest == "" {
		return nil, false
	}
	balance, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
	if err != nil || balance < 0 {
		return nil, false
	}
	return &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: digest,
		Balance:      balance,
	}, true
}

// Save serializes every record back to the accounts file, creating the data
// directory on first use.
func (s *Users) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	var b strings.Builder
	for _, u := range s.users {
		fmt.Fprintf(&b, "%s,%s,%s,%g\n", u.Username, u.Email, u.PasswordHash, u.Balance)
	}
	if err := os.WriteFile(s.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write accounts file: %w", err)
	}
	return nil
}

func (s *Users) All() []*models.User {
	return s.users
}

func (s *Users) FindByUsername(username string) (*models.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Users) FindByEmail(email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

// FindByIdentifier matches a sign-in identifier against username or email.
func (s *Users) FindByIdentifier(identifier string) (*models.User, error) {
	for _, u := range s.users {
		if u.Username == identifier || u.Email == identifier {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

// Add appends a user. Uniqueness of username and email is enforced here, at
// write time, not only in the prompts above.
func (s *Users) Add(u *models.User) error {
	if _, err := s.FindByUsername(u.Username); err == nil {
		return fmt.Errorf("username %q: %w", u.Username, ErrConflict)
	}
	if _, err := s.FindByEmail(u.Email); err == nil {
		return fmt.Errorf("email %q: %w", u.Email, ErrConflict)
	}
	s.users = append(s.users, u)
	return nil
}

// Rename checks the new username is free before applying it.
func (s *Users) Rename(u *models.User, username string) error {
	if other, err := s.FindByUsername(username); err == nil && other != u {
		return fmt.Errorf("username %q: %w", username, ErrConflict)
	}
	u.Username = username
	return nil
}

// ChangeEmail checks the new email is free before applying it.
func (s *Users) ChangeEmail(u *models.User, email string) error {
	if other, err := s.FindByEmail(email); err == nil && other != u {
		return fmt.Errorf("email %q: %w", email, ErrConflict)
	}
	u.Email = email
	return nil
}

func (s *Users) Remove(u *models.User) error {
	for i, have := range s.users {
		if have == u {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
