package services

import (
	"errors"
	"fmt"

	"multiblog/app/auth"
	"multiblog/app/models"
	"multiblog/app/repositories"
)

// UserService handles registration and authentication
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates a new user from an already form-validated submission.
// Returns ErrUserExists when the name is taken.
func (s *UserService) Register(name, password, email string) (*models.User, error) {
	user := &models.User{
		Name:   name,
		PwHash: auth.MakeHash(name, password),
		Email:  email,
	}
	user.BeforeCreate()
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("invalid user: %v", err)
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrExists) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return user, nil
}

// Login looks up a user by exact name and verifies the password. Any
// failure yields ErrInvalidLogin without revealing which check failed.
func (s *UserService) Login(name, password string) (*models.User, error) {
	user, err := s.userRepo.GetByName(name)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrInvalidLogin
	}
	if err != nil {
		return nil, err
	}
	if !auth.VerifyHash(name, password, user.PwHash) {
		return nil, ErrInvalidLogin
	}
	return user, nil
}
