package models

import "github.com/shopspring/decimal"

// SalesData is one month of platform-wide sales for the admin bar chart.
type SalesData struct {
	Month string          `json:"month"`
	Sales decimal.Decimal `json:"sales"`
}

// CategoryData is a category's share of the catalog for the admin pie chart.
type CategoryData struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// TopRetailer pairs a retailer with their total sales.
type TopRetailer struct {
	Name  string          `json:"name"`
	Sales decimal.Decimal `json:"sales"`
}
