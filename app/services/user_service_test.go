package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService(t *testing.T) {
	repo := newMockUserRepo()
	service := NewUserService(repo)

	t.Run("register", func(t *testing.T) {
		user, err := service.Register("alice", "secret", "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, "alice", user.Name)
		assert.True(t, strings.Contains(user.PwHash, ","), "hash must be salt,digest")
		assert.NotContains(t, user.PwHash, "secret")
	})

	t.Run("duplicate register rejected, first user unchanged", func(t *testing.T) {
		first, err := repo.GetByName("alice")
		require.NoError(t, err)
		originalHash := first.PwHash

		_, err = service.Register("alice", "other", "")
		assert.ErrorIs(t, err, ErrUserExists)

		again, err := repo.GetByName("alice")
		require.NoError(t, err)
		assert.Equal(t, originalHash, again.PwHash)
	})

	t.Run("register with invalid name", func(t *testing.T) {
		_, err := service.Register("!", "secret", "")
		assert.Error(t, err)
	})

	t.Run("login with correct password", func(t *testing.T) {
		user, err := service.Login("alice", "secret")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Name)
	})

	t.Run("login with wrong password", func(t *testing.T) {
		_, err := service.Login("alice", "wrong")
		assert.ErrorIs(t, err, ErrInvalidLogin)
	})

	t.Run("login with unknown user gives the same error", func(t *testing.T) {
		_, err := service.Login("nobody", "secret")
		assert.ErrorIs(t, err, ErrInvalidLogin)
	})
}
