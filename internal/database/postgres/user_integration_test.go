package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

func TestUserRepository_Integration(t *testing.T) {
	pool := setupTestDB(t)
	repo := &UserRepository{db: pool}
	ctx := context.Background()

	alice := createTestUser(t, repo, "alice")
	assert.NotZero(t, alice.ID)
	assert.False(t, alice.CreatedAt.IsZero())

	t.Run("duplicate email", func(t *testing.T) {
		err := repo.CreateUser(ctx, &domain.User{Email: "alice@example.com", Username: "alice3", PasswordHash: "x"})
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("duplicate username", func(t *testing.T) {
		err := repo.CreateUser(ctx, &domain.User{Email: "other@example.com", Username: "alice", PasswordHash: "x"})
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})

	t.Run("get by id and email", func(t *testing.T) {
		got, err := repo.GetUserByID(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, "hash", got.PasswordHash)

		got, err = repo.GetUserByEmail(ctx, "Alice@Example.com")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, got.ID)

		_, err = repo.GetUserByID(ctx, 999999)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("avatar set and clear", func(t *testing.T) {
		path := "users/avatars/a.jpg"
		require.NoError(t, repo.UpdateAvatar(ctx, alice.ID, &path))
		got, err := repo.GetUserByID(ctx, alice.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Avatar)
		assert.Equal(t, path, *got.Avatar)

		require.NoError(t, repo.UpdateAvatar(ctx, alice.ID, nil))
		got, err = repo.GetUserByID(ctx, alice.ID)
		require.NoError(t, err)
		assert.Nil(t, got.Avatar)
	})

	t.Run("password hash", func(t *testing.T) {
		require.NoError(t, repo.UpdatePasswordHash(ctx, alice.ID, "new-hash"))
		got, err := repo.GetUserByID(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "new-hash", got.PasswordHash)
		assert.ErrorIs(t, repo.UpdatePasswordHash(ctx, 999999, "x"), domain.ErrUserNotFound)
	})

	t.Run("list paginates", func(t *testing.T) {
		createTestUser(t, repo, "bob")
		createTestUser(t, repo, "carol")

		users, total, err := repo.ListUsers(ctx, domain.Page{Limit: 2, Offset: 0})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, total, 3)
		assert.Len(t, users, 2)

		rest, _, err := repo.ListUsers(ctx, domain.Page{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.NotEmpty(t, rest)
		assert.NotEqual(t, users[0].ID, rest[0].ID)
	})
}
