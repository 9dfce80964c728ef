package user_test

import (
	"testing"

	"github.com/antoniopaulocuyo/MCASH2/pkg/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHashesPassword(t *testing.T) {
	t.Parallel()
	u, err := user.New("USR-1", "alice", "secret")
	require.NoError(t, err)

	assert.Equal(t, "USR-1", u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.NotEqual(t, "secret", u.PasswordHash)
	assert.False(t, u.CreatedAt.IsZero())
}

func TestNewRejectsBlankInput(t *testing.T) {
	t.Parallel()
	_, err := user.New("USR-1", "  ", "secret")
	assert.Error(t, err)

	_, err = user.New("USR-1", "alice", "")
	assert.Error(t, err)
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()
	u, err := user.New("USR-1", "alice", "secret")
	require.NoError(t, err)

	assert.True(t, u.Authenticate("secret"))
	assert.False(t, u.Authenticate("wrong"))
}
