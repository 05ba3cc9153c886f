package services

import (
	"fmt"
	"sort"
	"time"

	"lastkart/internal/expiry"
	"lastkart/internal/models"
	"lastkart/internal/repositories"
)

// ListedProduct is a retailer dashboard row: a product annotated with its
// day count and whether it sits inside the 7-day alert window.
type ListedProduct struct {
	models.Product
	DaysUntilExpiry int  `json:"days_until_expiry"`
	ExpiringSoon    bool `json:"expiring_soon"`
}

// Overview is the admin dashboard payload.
type Overview struct {
	MonthlySales      []models.SalesData    `json:"monthly_sales"`
	CategoryBreakdown []models.CategoryData `json:"category_breakdown"`
	TopRetailers      []models.TopRetailer  `json:"top_retailers"`
}

// DashboardService backs the retailer listing table and the admin
// overview.
type DashboardService struct {
	productRepo  repositories.ProductRepository
	userRepo     repositories.UserRepository
	monthlySales []models.SalesData
	topRetailers []models.TopRetailer
}

// NewDashboardService creates a new DashboardService. Sales figures come
// from the external analytics feed and are passed in at construction.
func NewDashboardService(productRepo repositories.ProductRepository, userRepo repositories.UserRepository, monthlySales []models.SalesData, topRetailers []models.TopRetailer) *DashboardService {
	return &DashboardService{
		productRepo:  productRepo,
		userRepo:     userRepo,
		monthlySales: monthlySales,
		topRetailers: topRetailers,
	}
}

// RetailerListings returns the retailer's products annotated with their
// day counts, soonest-expiring first. A malformed expiry date is surfaced
// as an error rather than silently mis-ranked.
func (s *DashboardService) RetailerListings(retailerID int, now time.Time) ([]ListedProduct, error) {
	products, err := s.productRepo.GetByRetailer(retailerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load retailer products: %w", err)
	}

	listings := make([]ListedProduct, 0, len(products))
	for _, p := range products {
		days, err := expiry.DaysUntil(p.ExpiryDate, now)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", p.ID, err)
		}
		listings = append(listings, ListedProduct{
			Product:         p,
			DaysUntilExpiry: days,
			ExpiringSoon:    expiry.WithinDashboardWindow(days),
		})
	}
	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].DaysUntilExpiry < listings[j].DaysUntilExpiry
	})
	return listings, nil
}

// ExpiringSoonCount returns how many of the retailer's products fall
// inside the 7-day window, for the dashboard alert banner.
func (s *DashboardService) ExpiringSoonCount(retailerID int, now time.Time) (int, error) {
	listings, err := s.RetailerListings(retailerID, now)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, l := range listings {
		if l.ExpiringSoon {
			count++
		}
	}
	return count, nil
}

// AdminOverview assembles the admin charts: the sales series, a category
// breakdown computed from the live catalog, and the top retailers.
func (s *DashboardService) AdminOverview() (Overview, error) {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return Overview{}, fmt.Errorf("failed to load catalog: %w", err)
	}

	counts := map[string]int{}
	var breakdown []models.CategoryData
	for _, p := range products {
		if _, ok := counts[p.Category]; !ok {
			breakdown = append(breakdown, models.CategoryData{Name: p.Category})
		}
		counts[p.Category]++
	}
	for i := range breakdown {
		breakdown[i].Value = counts[breakdown[i].Name]
	}

	return Overview{
		MonthlySales:      s.monthlySales,
		CategoryBreakdown: breakdown,
		TopRetailers:      s.topRetailers,
	}, nil
}

// Users lists every account for the admin management table.
func (s *DashboardService) Users() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// RemoveUser deletes an account.
func (s *DashboardService) RemoveUser(id int) error {
	return s.userRepo.Delete(id)
}

// RemoveProduct deletes a catalog entry.
func (s *DashboardService) RemoveProduct(id int) error {
	return s.productRepo.Delete(id)
}
