package services

import (
	"fmt"

	"lastkart/internal/models"
	"lastkart/internal/repositories"

	"github.com/shopspring/decimal"
)

// PricingConfig holds the checkout constants applied to every cart.
type PricingConfig struct {
	ShippingFee decimal.Decimal
	TaxRate     decimal.Decimal
}

// DefaultPricingConfig returns the platform defaults: flat 5.00 shipping
// and an 8% tax rate on the subtotal.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		ShippingFee: decimal.New(500, -2),
		TaxRate:     decimal.New(8, -2),
	}
}

// CartService handles cart mutations and order-summary pricing.
type CartService struct {
	cartRepo repositories.CartRepository
	pricing  PricingConfig
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, pricing PricingConfig) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		pricing:  pricing,
	}
}

// Items returns the cart entries in the order they were first added.
func (s *CartService) Items() ([]models.CartItem, error) {
	return s.cartRepo.Items()
}

// AddToCart adds a product to the cart. Re-adding a product already in the
// cart increments its quantity instead of creating a second entry.
func (s *CartService) AddToCart(product models.Product) error {
	existing, err := s.cartRepo.Get(product.ID)
	if err == nil {
		existing.Quantity++
		return s.cartRepo.Save(*existing)
	}
	return s.cartRepo.Save(models.CartItem{Product: product, Quantity: 1})
}

// RemoveFromCart removes a product's entry from the cart.
func (s *CartService) RemoveFromCart(productID int) error {
	return s.cartRepo.Remove(productID)
}

// UpdateQuantity sets the stored quantity for a product. A quantity below
// 1 is rejected and the stored quantity is left unchanged, so a zero or
// negative count can never reach pricing.
func (s *CartService) UpdateQuantity(productID, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", quantity)
	}
	item, err := s.cartRepo.Get(productID)
	if err != nil {
		return err
	}
	item.Quantity = quantity
	return s.cartRepo.Save(*item)
}

// Clear empties the cart.
func (s *CartService) Clear() error {
	return s.cartRepo.Clear()
}

// PriceCart computes the order summary for the current cart contents.
// Shipping is the flat fee even for an empty cart — the checkout summary
// has always rendered the fixed shipping line at a zero subtotal, and that
// behavior is kept as-is. Tax applies to the subtotal only.
func (s *CartService) PriceCart() (models.OrderSummary, error) {
	items, err := s.cartRepo.Items()
	if err != nil {
		return models.OrderSummary{}, fmt.Errorf("failed to load cart: %w", err)
	}

	subtotal := decimal.Zero
	for i := range items {
		subtotal = subtotal.Add(items[i].LineTotal())
	}
	shipping := s.pricing.ShippingFee
	tax := subtotal.Mul(s.pricing.TaxRate)

	return models.OrderSummary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}, nil
}
