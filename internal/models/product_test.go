package models_test

import (
	"testing"

	"lastkart/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validProduct() models.Product {
	return models.Product{
		ID:              1,
		Name:            "Organic Milk (1L)",
		OriginalPrice:   decimal.NewFromFloat(4.50),
		DiscountedPrice: decimal.NewFromFloat(2.25),
		ExpiryDate:      "2026-09-02",
		Category:        "Dairy",
		RetailerID:      3,
		Stock:           20,
	}
}

func TestDiscountPercent(t *testing.T) {
	p := validProduct()
	assert.Equal(t, 50, p.DiscountPercent())

	p.OriginalPrice = decimal.NewFromFloat(8.99)
	p.DiscountedPrice = decimal.NewFromFloat(4.49)
	assert.Equal(t, 50, p.DiscountPercent())

	p.OriginalPrice = decimal.NewFromFloat(5.20)
	p.DiscountedPrice = decimal.NewFromFloat(3.90)
	assert.Equal(t, 25, p.DiscountPercent())

	// Zero original price yields 0 by convention, never a division error.
	p.OriginalPrice = decimal.Zero
	p.DiscountedPrice = decimal.Zero
	assert.Equal(t, 0, p.DiscountPercent())
}

func TestValidate_Product(t *testing.T) {
	assert.NoError(t, models.Validate(validProduct()))

	overpriced := validProduct()
	overpriced.DiscountedPrice = decimal.NewFromFloat(9.99)
	assert.Error(t, models.Validate(overpriced), "discounted price above original")

	badDate := validProduct()
	badDate.ExpiryDate = "02-09-2026"
	assert.Error(t, models.Validate(badDate))

	negativeStock := validProduct()
	negativeStock.Stock = -1
	assert.Error(t, models.Validate(negativeStock))

	lat := 34.0522
	halfLocated := validProduct()
	halfLocated.Lat = &lat
	assert.Error(t, models.Validate(halfLocated), "latitude without longitude")

	lon := -118.2437
	located := validProduct()
	located.Lat = &lat
	located.Lon = &lon
	assert.NoError(t, models.Validate(located))

	outOfRange := located
	badLat := 123.4
	outOfRange.Lat = &badLat
	assert.Error(t, models.Validate(outOfRange))
}

func TestValidate_GeoPoint(t *testing.T) {
	assert.NoError(t, models.Validate(models.GeoPoint{Lat: 34.0522, Lon: -118.2437}))
	assert.NoError(t, models.Validate(models.GeoPoint{Lat: -90, Lon: 180}))
	assert.Error(t, models.Validate(models.GeoPoint{Lat: 91, Lon: 0}))
	assert.Error(t, models.Validate(models.GeoPoint{Lat: 0, Lon: -181}))
}

func TestHasLocation(t *testing.T) {
	p := validProduct()
	assert.False(t, p.HasLocation())
	assert.Nil(t, p.Location())

	lat, lon := 40.7128, -74.0060
	p.Lat, p.Lon = &lat, &lon
	assert.True(t, p.HasLocation())
	assert.Equal(t, &models.GeoPoint{Lat: lat, Lon: lon}, p.Location())
}

func TestLineTotal(t *testing.T) {
	item := models.CartItem{Product: validProduct(), Quantity: 3}
	assert.True(t, item.LineTotal().Equal(decimal.NewFromFloat(6.75)))
}
