package models

import (
	"github.com/shopspring/decimal"
)

// CategoryAll is the sentinel category that matches every product.
const CategoryAll = "All"

// SortKey selects the ordering applied to a discovery result.
type SortKey string

const (
	SortByExpiryDate   SortKey = "expiryDate"
	SortByPriceLowHigh SortKey = "priceLowHigh"
	SortByPriceHighLow SortKey = "priceHighLow"
	SortByDistance     SortKey = "distance"
)

// GeoPoint is a location in decimal degrees.
type GeoPoint struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}

// Product represents a surplus listing in the marketplace catalog.
// Catalog entries are immutable as far as the discovery engine is concerned;
// Distance is a transient value recomputed per query and never persisted.
type Product struct {
	ID              int             `json:"id" gorm:"primaryKey"`
	Name            string          `json:"name" validate:"required,min=2,max=100"`
	Description     string          `json:"description" validate:"omitempty,max=500"`
	ImageURL        string          `json:"image_url" validate:"omitempty,url"`
	OriginalPrice   decimal.Decimal `json:"original_price" gorm:"type:decimal(10,2)" validate:"gte=0"`
	DiscountedPrice decimal.Decimal `json:"discounted_price" gorm:"type:decimal(10,2)" validate:"gte=0"`
	ExpiryDate      string          `json:"expiry_date" validate:"required,datetime=2006-01-02"`
	Category        string          `json:"category" validate:"required"`
	RetailerID      int             `json:"retailer_id"`
	Stock           int             `json:"stock" validate:"gte=0"`
	Lat             *float64        `json:"lat,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Lon             *float64        `json:"lon,omitempty" validate:"omitempty,gte=-180,lte=180"`
	Distance        *float64        `json:"distance,omitempty" gorm:"-"` // km from the querying user, when known
}

// HasLocation reports whether the product carries retailer coordinates.
func (p *Product) HasLocation() bool {
	return p.Lat != nil && p.Lon != nil
}

// Location returns the product's coordinates, or nil when it has none.
func (p *Product) Location() *GeoPoint {
	if !p.HasLocation() {
		return nil
	}
	return &GeoPoint{Lat: *p.Lat, Lon: *p.Lon}
}

// DiscountPercent returns the rounded discount percentage for display.
// A zero original price yields 0 by convention rather than a division error.
func (p *Product) DiscountPercent() int {
	if p.OriginalPrice.IsZero() {
		return 0
	}
	pct := p.OriginalPrice.Sub(p.DiscountedPrice).
		Div(p.OriginalPrice).
		Mul(decimal.NewFromInt(100)).
		Round(0)
	return int(pct.IntPart())
}

// CartItem is a product plus the quantity held in a shopper's cart.
type CartItem struct {
	Product
	Quantity int `json:"quantity" validate:"gte=1"`
}

// LineTotal is the item's contribution to the cart subtotal.
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.DiscountedPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Query captures every user-adjustable discovery parameter. RadiusKm of 0
// means no radius constraint; a nil UserLocation disables distance
// annotation entirely.
type Query struct {
	SearchTerm   string    `json:"search_term"`
	Category     string    `json:"category"`
	SortKey      SortKey   `json:"sort_key"`
	UserLocation *GeoPoint `json:"user_location,omitempty"`
	RadiusKm     float64   `json:"radius_km" validate:"gte=0"`
}

// OrderSummary is the priced breakdown of a cart.
type OrderSummary struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}
