package models

import "time"

// User represents a registered account. Name is unique and immutable
// after creation.
type User struct {
	ID        int       `validate:"gte=0"`
	Name      string    `validate:"required,username"`
	PwHash    string    `validate:"required"`
	Email     string    `validate:"omitempty,loose_email"`
	CreatedAt time.Time `validate:"-"`
}

// Post represents a blog post with a like counter.
type Post struct {
	ID           int       `validate:"gte=0"`
	Subject      string    `validate:"required,max=200"`
	Content      string    `validate:"required"`
	CreatedAt    time.Time `validate:"-"`
	LastModified time.Time `validate:"-"`
	OwnerID      int       `validate:"required,gte=1"`
	Likes        int       `validate:"gte=0"`
}

// Comment represents a comment scoped under its parent post.
type Comment struct {
	ID           int       `validate:"gte=0"`
	PostID       int       `validate:"required,gte=1"`
	Content      string    `validate:"required"`
	CreatedAt    time.Time `validate:"-"`
	LastModified time.Time `validate:"-"`
	OwnerID      int       `validate:"required,gte=1"`
}

// Like joins one post and one user. At most one exists per pair.
type Like struct {
	PostID int `validate:"required,gte=1"`
	UserID int `validate:"required,gte=1"`
}
