package services

import "errors"

var (
	ErrUserExists   = errors.New("that user already exists")
	ErrInvalidLogin = errors.New("invalid login")
	ErrNotOwner     = errors.New("not the owner")
	ErrSelfLike     = errors.New("cannot like your own post")
	ErrAlreadyLiked = errors.New("post already liked")
)
