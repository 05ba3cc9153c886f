package services

import (
	"fmt"

	"lastkart/internal/models"
	"lastkart/internal/repositories"
)

// DirectoryService resolves accounts against the user directory. Sign-in
// is a plain lookup — the platform carries no credentials.
type DirectoryService struct {
	userRepo repositories.UserRepository
}

// NewDirectoryService creates a new DirectoryService.
func NewDirectoryService(userRepo repositories.UserRepository) *DirectoryService {
	return &DirectoryService{
		userRepo: userRepo,
	}
}

// Login finds the account for an email address, ignoring case.
func (s *DirectoryService) Login(email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("unknown account: %w", err)
	}
	return user, nil
}

// Register creates a new account, rejecting an email already on file.
func (s *DirectoryService) Register(name, email string, role models.Role) (*models.User, error) {
	if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
		return nil, fmt.Errorf("email '%s' already registered", email)
	}

	user := &models.User{Name: name, Email: email, Role: role}
	if err := models.Validate(*user); err != nil {
		return nil, fmt.Errorf("invalid registration: %w", err)
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}
