package repositories

import (
	"fmt"
	"sync"

	"lastkart/internal/models"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	items map[int]models.CartItem
	order []int
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		items: make(map[int]models.CartItem),
	}
}

// Items returns the cart entries in the order they were first added.
func (r *MockCartRepository) Items() ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	itemList := make([]models.CartItem, 0, len(r.order))
	for _, id := range r.order {
		itemList = append(itemList, r.items[id])
	}
	return itemList, nil
}

// Get returns the cart entry for a product ID.
func (r *MockCartRepository) Get(productID int) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[productID]
	if !ok {
		return nil, fmt.Errorf("cart item for product %d not found", productID)
	}
	return &item, nil
}

// Save stores a cart entry, appending new products and keeping the
// position of ones already in the cart.
func (r *MockCartRepository) Save(item models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.Product.ID]; !ok {
		r.order = append(r.order, item.Product.ID)
	}
	r.items[item.Product.ID] = item
	return nil
}

// Remove deletes the cart entry for a product ID.
func (r *MockCartRepository) Remove(productID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[productID]; !ok {
		return fmt.Errorf("cart item for product %d not found", productID)
	}
	delete(r.items, productID)
	for i, existing := range r.order {
		if existing == productID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Clear empties the cart.
func (r *MockCartRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make(map[int]models.CartItem)
	r.order = nil
	return nil
}
