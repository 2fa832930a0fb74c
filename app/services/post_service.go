package services

import (
	"errors"
	"fmt"
	"sort"

	"multiblog/app/models"
	"multiblog/app/repositories"
)

// PostService handles business logic for blog posts and likes
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
	likeRepo    repositories.LikeRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository, likeRepo repositories.LikeRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
	}
}

// CreatePost creates a new blog post owned by ownerID
func (s *PostService) CreatePost(ownerID int, subject, content string) (*models.Post, error) {
	post := &models.Post{
		Subject: subject,
		Content: content,
		OwnerID: ownerID,
	}
	post.BeforeCreate()
	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("invalid post: %v", err)
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id int) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// ListPosts retrieves all posts ordered by creation descending
func (s *PostService) ListPosts() ([]*models.Post, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, err
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

// UpdatePost replaces a post's subject and content. The post must exist
// and belong to userID; existence is checked before ownership so missing
// posts surface as not-found rather than as an authorization failure.
func (s *PostService) UpdatePost(userID, postID int, subject, content string) (*models.Post, error) {
	existing, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != userID {
		return nil, ErrNotOwner
	}

	existing.Subject = subject
	existing.Content = content
	if err := existing.Validate(); err != nil {
		return nil, fmt.Errorf("invalid post: %v", err)
	}

	if err := s.postRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeletePost deletes a post owned by userID along with its comments and
// likes
func (s *PostService) DeletePost(userID, postID int) error {
	existing, err := s.postRepo.GetByID(postID)
	if err != nil {
		return err
	}
	if existing.OwnerID != userID {
		return ErrNotOwner
	}

	if err := s.commentRepo.DeleteByPost(postID); err != nil {
		return fmt.Errorf("failed to delete comments: %v", err)
	}
	if err := s.likeRepo.DeleteByPost(postID); err != nil {
		return fmt.Errorf("failed to delete likes: %v", err)
	}
	return s.postRepo.Delete(postID)
}

// LikePost records a like by userID. Self-likes and duplicate likes are
// rejected; the like record and counter increment commit atomically.
func (s *PostService) LikePost(userID, postID int) error {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return err
	}
	if post.OwnerID == userID {
		return ErrSelfLike
	}

	err = s.likeRepo.Add(postID, userID)
	if errors.Is(err, repositories.ErrExists) {
		return ErrAlreadyLiked
	}
	return err
}
