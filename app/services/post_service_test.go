package services

import (
	"testing"
	"time"

	"multiblog/app/models"
	"multiblog/app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostServiceFixture() (*PostService, *mockPostRepo, *mockCommentRepo, *mockLikeRepo) {
	postRepo := newMockPostRepo()
	commentRepo := newMockCommentRepo()
	likeRepo := newMockLikeRepo(postRepo)
	return NewPostService(postRepo, commentRepo, likeRepo), postRepo, commentRepo, likeRepo
}

func TestPostServiceCRUD(t *testing.T) {
	service, _, commentRepo, likeRepo := newPostServiceFixture()

	t.Run("create post", func(t *testing.T) {
		post, err := service.CreatePost(1, "Test Post", "This is a test post")
		require.NoError(t, err)
		assert.Equal(t, 1, post.ID)
		assert.Equal(t, 1, post.OwnerID)
		assert.False(t, post.CreatedAt.IsZero())
	})

	t.Run("create requires subject and content", func(t *testing.T) {
		_, err := service.CreatePost(1, "", "content")
		assert.Error(t, err)
		_, err = service.CreatePost(1, "subject", "")
		assert.Error(t, err)
	})

	t.Run("get post", func(t *testing.T) {
		post, err := service.GetPost(1)
		require.NoError(t, err)
		assert.Equal(t, "Test Post", post.Subject)
	})

	t.Run("get missing post", func(t *testing.T) {
		_, err := service.GetPost(999)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("owner can update subject and content", func(t *testing.T) {
		updated, err := service.UpdatePost(1, 1, "Edited", "New content")
		require.NoError(t, err)
		assert.Equal(t, "Edited", updated.Subject)

		got, err := service.GetPost(1)
		require.NoError(t, err)
		assert.Equal(t, "New content", got.Content)
	})

	t.Run("non-owner update rejected and post unchanged", func(t *testing.T) {
		_, err := service.UpdatePost(2, 1, "Hijacked", "Hijacked")
		assert.ErrorIs(t, err, ErrNotOwner)

		got, err := service.GetPost(1)
		require.NoError(t, err)
		assert.Equal(t, "Edited", got.Subject)
	})

	t.Run("update of missing post is not-found, not authorization", func(t *testing.T) {
		_, err := service.UpdatePost(2, 999, "s", "c")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
		assert.NotErrorIs(t, err, ErrNotOwner)
	})

	t.Run("update preserves owner and likes", func(t *testing.T) {
		require.NoError(t, likeRepo.Add(1, 5))
		updated, err := service.UpdatePost(1, 1, "Edited again", "content")
		require.NoError(t, err)
		assert.Equal(t, 1, updated.OwnerID)
		assert.Equal(t, 1, updated.Likes)
	})

	t.Run("delete cascades comments and likes", func(t *testing.T) {
		require.NoError(t, commentRepo.Create(&models.Comment{PostID: 1, Content: "c", OwnerID: 2}))

		require.NoError(t, service.DeletePost(1, 1))

		_, err := service.GetPost(1)
		assert.ErrorIs(t, err, repositories.ErrNotFound)

		comments, err := commentRepo.ListByPost(1)
		require.NoError(t, err)
		assert.Empty(t, comments)

		exists, err := likeRepo.Exists(1, 5)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("non-owner delete rejected", func(t *testing.T) {
		post, err := service.CreatePost(1, "Another", "content")
		require.NoError(t, err)

		assert.ErrorIs(t, service.DeletePost(2, post.ID), ErrNotOwner)

		_, err = service.GetPost(post.ID)
		assert.NoError(t, err)
	})
}

func TestPostServiceListOrder(t *testing.T) {
	service, postRepo, _, _ := newPostServiceFixture()

	base := time.Now()
	for i := 0; i < 3; i++ {
		post := &models.Post{Subject: "Post", Content: "content", OwnerID: 1}
		require.NoError(t, postRepo.Create(post))
		// space creation times out so ordering is deterministic
		postRepo.posts[post.ID].CreatedAt = base.Add(time.Duration(i) * time.Minute)
	}

	posts, err := service.ListPosts()
	require.NoError(t, err)
	require.Len(t, posts, 3)
	for i := 1; i < len(posts); i++ {
		assert.True(t, posts[i-1].CreatedAt.After(posts[i].CreatedAt),
			"posts must be ordered newest first")
	}
}

func TestPostServiceLikes(t *testing.T) {
	service, postRepo, _, _ := newPostServiceFixture()

	post, err := service.CreatePost(1, "Likeable", "content")
	require.NoError(t, err)

	t.Run("like someone else's post", func(t *testing.T) {
		require.NoError(t, service.LikePost(2, post.ID))
		assert.Equal(t, 1, postRepo.posts[post.ID].Likes)
	})

	t.Run("self-like rejected, counter unchanged", func(t *testing.T) {
		assert.ErrorIs(t, service.LikePost(1, post.ID), ErrSelfLike)
		assert.Equal(t, 1, postRepo.posts[post.ID].Likes)
	})

	t.Run("duplicate like rejected, counter unchanged", func(t *testing.T) {
		assert.ErrorIs(t, service.LikePost(2, post.ID), ErrAlreadyLiked)
		assert.Equal(t, 1, postRepo.posts[post.ID].Likes)
	})

	t.Run("like a missing post", func(t *testing.T) {
		assert.ErrorIs(t, service.LikePost(2, 999), repositories.ErrNotFound)
	})
}
