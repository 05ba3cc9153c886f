package repositories

import "lastkart/internal/models"

// UserRepository defines the interface for directory data access.
// Email lookup is case-insensitive, matching how sign-in works.
type UserRepository interface {
	GetAll() ([]models.User, error)
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Delete(id int) error
}
