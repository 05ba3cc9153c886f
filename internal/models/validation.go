package models

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

// newValidator builds the shared validator. Decimal fields are validated
// through their float value so the numeric tags (gte, lte) apply to them.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(decimalAsFloat, decimal.Decimal{})
	v.RegisterStructValidation(productStructLevel, Product{})
	v.RegisterStructValidation(userStructLevel, User{})
	return v
}

func decimalAsFloat(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// productStructLevel enforces the cross-field catalog invariants:
// discounted price never exceeds original price, and coordinates come in
// pairs or not at all.
func productStructLevel(sl validator.StructLevel) {
	p := sl.Current().Interface().(Product)
	if p.DiscountedPrice.GreaterThan(p.OriginalPrice) {
		sl.ReportError(p.DiscountedPrice, "DiscountedPrice", "discounted_price", "ltefield", "OriginalPrice")
	}
	if (p.Lat == nil) != (p.Lon == nil) {
		sl.ReportError(p.Lat, "Lat", "lat", "required_with_all", "Lon")
	}
}

func userStructLevel(sl validator.StructLevel) {
	u := sl.Current().Interface().(User)
	if (u.Lat == nil) != (u.Lon == nil) {
		sl.ReportError(u.Lat, "Lat", "lat", "required_with_all", "Lon")
	}
}

// Validate checks a model value against its declared constraints.
func Validate(v interface{}) error {
	return validate.Struct(v)
}
