package repositories

import "lastkart/internal/models"

// CartRepository defines the interface for cart data access. The cart is
// an ordered collection keyed by product ID: Items returns entries in the
// order they were first added, and Save keeps an existing entry's position.
type CartRepository interface {
	Items() ([]models.CartItem, error)
	Get(productID int) (*models.CartItem, error)
	Save(item models.CartItem) error
	Remove(productID int) error
	Clear() error
}
