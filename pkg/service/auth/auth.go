// Package auth provides registration, login and the in-process session
// the shell holds while a user is logged in. It is glue around the
// banking core, not part of its invariants.
package auth

import (
	"log/slog"
	"time"

	"github.com/antoniopaulocuyo/MCASH2/pkg/domain/user"
	"github.com/antoniopaulocuyo/MCASH2/pkg/idgen"
	"github.com/antoniopaulocuyo/MCASH2/pkg/registry"
	"github.com/google/uuid"
)

// Session identifies a logged-in user for the lifetime of the process.
type Session struct {
	Token     uuid.UUID
	UserID    string
	Username  string
	CreatedAt time.Time
}

// Service implements registration and login.
type Service struct {
	users  *registry.Users
	ids    *idgen.Generator
	logger *slog.Logger
}

// New creates a Service.
func New(users *registry.Users, ids *idgen.Generator, logger *slog.Logger) *Service {
	return &Service{users: users, ids: ids, logger: logger}
}

// Register creates a user with a bcrypt-hashed password. The username
// must be unused.
func (s *Service) Register(username, password string) (*user.User, error) {
	u, err := user.New(s.ids.UserID(), username, password)
	if err != nil {
		return nil, err
	}
	if err := s.users.Put(u); err != nil {
		s.logger.Warn("registration rejected", "username", username, "error", err)
		return nil, err
	}
	s.logger.Info("user registered", "user_id", u.ID, "username", username)
	return u, nil
}

// Login verifies the credentials and returns a fresh session. A missing
// user and a wrong password both yield ErrInvalidCredentials.
func (s *Service) Login(username, password string) (*Session, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		s.logger.Warn("login failed", "username", username)
		return nil, user.ErrInvalidCredentials
	}
	if !u.Authenticate(password) {
		s.logger.Warn("login failed", "username", username)
		return nil, user.ErrInvalidCredentials
	}
	sess := &Session{
		Token:     uuid.New(),
		UserID:    u.ID,
		Username:  u.Username,
		CreatedAt: time.Now(),
	}
	s.logger.Info("login successful", "user_id", u.ID, "session", sess.Token)
	return sess, nil
}
