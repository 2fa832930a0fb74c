package repositories

import "multiblog/app/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByName(name string) (*models.User, error)
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	List() ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id int) error
}

// CommentRepository defines the interface for comment data access.
// Comments live under their parent post, so access is keyed by the
// (post, comment) pair.
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(postID, commentID int) (*models.Comment, error)
	ListByPost(postID int) ([]*models.Comment, error)
	Delete(postID, commentID int) error
	DeleteByPost(postID int) error
}

// LikeRepository defines the interface for like data access
type LikeRepository interface {
	// Add records a like and increments the post's counter in one
	// transaction. Returns ErrExists when the pair already liked and
	// ErrNotFound when the post is gone.
	Add(postID, userID int) error
	Exists(postID, userID int) (bool, error)
	DeleteByPost(postID int) error
}
