package repositories

import (
	"testing"

	"multiblog/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgerPostRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewBadgerPostRepository(db)

	t.Run("create assigns ID and timestamps", func(t *testing.T) {
		post := &models.Post{Subject: "First", Content: "content", OwnerID: 1}
		require.NoError(t, repo.Create(post))
		assert.Equal(t, 1, post.ID)
		assert.False(t, post.CreatedAt.IsZero())
		assert.False(t, post.LastModified.IsZero())
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetByID(1)
		require.NoError(t, err)
		assert.Equal(t, "First", got.Subject)
		assert.Equal(t, 0, got.Likes)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.GetByID(999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list returns all posts", func(t *testing.T) {
		require.NoError(t, repo.Create(&models.Post{Subject: "Second", Content: "content", OwnerID: 2}))
		posts, err := repo.List()
		require.NoError(t, err)
		assert.Len(t, posts, 2)
	})

	t.Run("update touches last modified only", func(t *testing.T) {
		post, err := repo.GetByID(1)
		require.NoError(t, err)
		created := post.CreatedAt

		post.Subject = "Edited"
		require.NoError(t, repo.Update(post))

		got, err := repo.GetByID(1)
		require.NoError(t, err)
		assert.Equal(t, "Edited", got.Subject)
		assert.Equal(t, created.Unix(), got.CreatedAt.Unix())
	})

	t.Run("update missing post", func(t *testing.T) {
		err := repo.Update(&models.Post{ID: 999, Subject: "s", Content: "c", OwnerID: 1})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(1))
		_, err := repo.GetByID(1)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete missing post", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(1), ErrNotFound)
	})
}
