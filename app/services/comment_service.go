package services

import (
	"fmt"
	"sort"

	"multiblog/app/models"
	"multiblog/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *CommentService {
	return &CommentService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// AddComment creates a comment under the given post. The post must exist.
func (s *CommentService) AddComment(ownerID, postID int, content string) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:  postID,
		Content: content,
		OwnerID: ownerID,
	}
	comment.BeforeCreate()
	if err := comment.Validate(); err != nil {
		return nil, fmt.Errorf("invalid comment: %v", err)
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListByPost retrieves a post's comments ordered by creation descending
func (s *CommentService) ListByPost(postID int) ([]*models.Comment, error) {
	comments, err := s.commentRepo.ListByPost(postID)
	if err != nil {
		return nil, err
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

// GetComment retrieves a comment scoped to its parent post
func (s *CommentService) GetComment(postID, commentID int) (*models.Comment, error) {
	return s.commentRepo.GetByID(postID, commentID)
}

// DeleteComment deletes a comment owned by userID
func (s *CommentService) DeleteComment(userID, postID, commentID int) error {
	existing, err := s.commentRepo.GetByID(postID, commentID)
	if err != nil {
		return err
	}
	if existing.OwnerID != userID {
		return ErrNotOwner
	}
	return s.commentRepo.Delete(postID, commentID)
}
