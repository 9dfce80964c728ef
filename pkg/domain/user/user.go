// Package user holds the registration-side user entity. It is glue around
// the banking core: accounts reference users by id only.
package user

import (
	"errors"
	"strings"
	"time"

	"github.com/antoniopaulocuyo/MCASH2/pkg/utils"
)

var (
	// ErrUserNotFound is returned when a user cannot be found.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("username already exists")
)

// User is a registered customer.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// New creates a user with a bcrypt-hashed password. Username and password
// must be non-blank.
func New(id, username, password string) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, errors.New("username cannot be empty")
	}
	if strings.TrimSpace(password) == "" {
		return nil, errors.New("password cannot be empty")
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &User{
		ID:           id,
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// Authenticate compares a plain password against the stored hash.
func (u *User) Authenticate(password string) bool {
	return utils.CheckPasswordHash(password, u.PasswordHash)
}
