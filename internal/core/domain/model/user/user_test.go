package user_test

import (
	"strings"
	"testing"
	"time"

	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/model/user"
	"sepulka/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates an active non staff user", func(t *testing.T) {
		u, err := user.NewUser("alice", "alice@example.com", "hash", user.Shmurdik)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		require.NoError(t, u.ID().Validate())
		assert.Equal(t, "alice", u.Username())
		assert.Equal(t, "alice@example.com", u.Email())
		assert.Equal(t, user.Shmurdik, u.Role())
		assert.True(t, u.IsActive())
		assert.False(t, u.IsStaff())
		assert.False(t, u.DateJoined().IsZero())
	})

	t.Run("email is optional", func(t *testing.T) {
		u, err := user.NewUser("bob", "", "hash", user.Grymzik)

		require.NoError(t, err)
		assert.Empty(t, u.Email())
	})

	tests := []struct {
		name     string
		username string
		email    string
		hash     string
		role     user.Role
		sentinel error
	}{
		{"empty username", "", "", "hash", user.Grymzik, errs.ErrValueIsRequired},
		{"long username", strings.Repeat("a", user.MaxUsernameLength+1), "", "hash", user.Grymzik, errs.ErrValueIsOutOfRange},
		{"username with spaces", "al ice", "", "hash", user.Grymzik, errs.ErrValueIsInvalid},
		{"bad email", "carol", "not-an-email", "hash", user.Grymzik, errs.ErrValueIsInvalid},
		{"missing hash", "carol", "", "", user.Grymzik, errs.ErrValueIsRequired},
		{"unknown role", "carol", "", "hash", user.Role(7), errs.ErrValueIsInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := user.NewUser(tt.username, tt.email, tt.hash, tt.role)

			require.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestRestoreUser(t *testing.T) {
	id := kernel.NewUUID()
	joined := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	u, err := user.RestoreUser(id, "root", "", "hash", user.Fufelnitsa, true, false, joined)

	require.NoError(t, err)
	assert.True(t, u.ID().IsEqual(id))
	assert.True(t, u.IsStaff())
	assert.False(t, u.IsActive())
	assert.Equal(t, joined, u.DateJoined())

	_, err = user.RestoreUser(kernel.UUID{}, "root", "", "hash", user.Fufelnitsa, false, true, joined)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestUser_ChangeProfile(t *testing.T) {
	t.Run("replaces username email and role", func(t *testing.T) {
		u, _ := user.NewUser("alice", "", "hash", user.Shmurdik)

		require.NoError(t, u.ChangeProfile("alice2", "a2@example.com", user.Grymzik))

		assert.Equal(t, "alice2", u.Username())
		assert.Equal(t, "a2@example.com", u.Email())
		assert.Equal(t, user.Grymzik, u.Role())
		assert.False(t, u.IsStaff())
	})

	t.Run("leaves the user untouched on error", func(t *testing.T) {
		u, _ := user.NewUser("alice", "", "hash", user.Shmurdik)

		err := u.ChangeProfile("alice2", "broken", user.Grymzik)

		require.Error(t, err)
		assert.Equal(t, "alice", u.Username())
		assert.Equal(t, user.Shmurdik, u.Role())
	})
}

func TestUser_ZeroValueIsNotConstructed(t *testing.T) {
	var u *user.User
	assert.Equal(t, user.ErrUserIsNotConstructed, u.Validate())
	assert.Equal(t, user.ErrUserIsNotConstructed, (&user.User{}).Validate())
}

func TestUser_GrantStaff(t *testing.T) {
	u, _ := user.NewUser("admin", "", "hash", user.Fufelnitsa)

	u.GrantStaff()

	assert.True(t, u.IsStaff())
	assert.Equal(t, user.Fufelnitsa, u.Role())
}
