package server

import (
	"context"
	"fmt"

	"github.com/skillbridge/resume-analyzer/internal/config"
	"github.com/skillbridge/resume-analyzer/internal/db"
)

// UserService handles user registration and login.
type UserService struct {
	users          UserStore
	passwordConfig *config.PasswordConfig
}

func NewUserService(users UserStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		users:          users,
		passwordConfig: passwordConfig,
	}
}

// Register creates a new account. Duplicate usernames or emails are
// rejected before any hashing work happens.
func (s *UserService) Register(ctx context.Context, username, email, password string) (int64, error) {
	exists, err := s.users.UserExists(ctx, username, email)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing users: %w", err)
	}
	if exists {
		return 0, &ErrUserAlreadyExists{Username: username}
	}

	hash, err := s.passwordConfig.HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.users.CreateUser(ctx, username, email, hash)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

// Login verifies credentials and returns the account. Missing users and
// wrong passwords produce the same error so callers cannot probe for
// valid usernames.
func (s *UserService) Login(ctx context.Context, username, password string) (*db.User, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(password, user.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}
	return user, nil
}
