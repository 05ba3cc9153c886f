package repositories

import (
	"lastkart/internal/models"
)

// ProductRepository defines the interface for catalog data access.
// GetAll and GetByRetailer return products in insertion order; the
// discovery engine relies on that order for stable sorting.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id int) (*models.Product, error)
	GetByRetailer(retailerID int) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id int) error
}
