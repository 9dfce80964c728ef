package auth_test

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/antoniopaulocuyo/MCASH2/pkg/domain/user"
	"github.com/antoniopaulocuyo/MCASH2/pkg/idgen"
	"github.com/antoniopaulocuyo/MCASH2/pkg/registry"
	"github.com/antoniopaulocuyo/MCASH2/pkg/service/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

func newTestService(t *testing.T) *auth.Service {
	t.Helper()
	return auth.New(
		registry.New().Users,
		idgen.New(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	u, err := svc.Register("alice", "correct horse")
	require.NoError(t, err)
	assert.Regexp(t, `^USR-\d+-\d{4}-\d{4}$`, u.ID)
	assert.NotEqual(t, "correct horse", u.PasswordHash)

	sess, err := svc.Login("alice", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, u.ID, sess.UserID)
	assert.Equal(t, "alice", sess.Username)
	assert.NotEqual(t, uuid.Nil, sess.Token)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	_, err := svc.Register("alice", "password1")
	require.NoError(t, err)

	_, err = svc.Register("alice", "password2")
	assert.ErrorIs(t, err, user.ErrUsernameTaken)
}

func TestRegisterRejectsBlankInput(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	_, err := svc.Register("  ", "password")
	assert.Error(t, err)
	_, err = svc.Register("bob", "   ")
	assert.Error(t, err)
}

func TestLoginFailures(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	_, err := svc.Register("alice", "correct horse")
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login("alice", "battery staple")
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})
	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login("mallory", "whatever")
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})
}

func TestSessionsAreUnique(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	_, err := svc.Register("alice", "correct horse")
	require.NoError(t, err)

	s1, err := svc.Login("alice", "correct horse")
	require.NoError(t, err)
	s2, err := svc.Login("alice", "correct horse")
	require.NoError(t, err)

	assert.NotEqual(t, s1.Token, s2.Token)
}
