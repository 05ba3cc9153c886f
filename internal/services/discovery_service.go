package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"lastkart/internal/expiry"
	"lastkart/internal/geo"
	"lastkart/internal/models"
	"lastkart/internal/repositories"
)

// DiscoveryService runs the product discovery pipeline: it takes a catalog
// snapshot, annotates distances against the buyer's location, applies the
// query predicates, and orders the result. The pipeline is pure — the same
// catalog and query always produce the same list, and stored products are
// never mutated.
type DiscoveryService struct {
	productRepo repositories.ProductRepository
}

// NewDiscoveryService creates a new DiscoveryService.
func NewDiscoveryService(productRepo repositories.ProductRepository) *DiscoveryService {
	return &DiscoveryService{
		productRepo: productRepo,
	}
}

// Discover returns the filtered, ordered product list for a query.
func (s *DiscoveryService) Discover(query models.Query) ([]models.Product, error) {
	if err := models.Validate(query); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	annotateDistances(products, query.UserLocation)
	results := filterProducts(products, query)
	sortProducts(results, query.SortKey)
	return results, nil
}

// Categories returns "All" followed by every catalog category, first-seen
// order, for the filter dropdown.
func (s *DiscoveryService) Categories() ([]string, error) {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	categories := []string{models.CategoryAll}
	seen := map[string]bool{}
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories, nil
}

// annotateDistances fills each product's transient Distance when both the
// buyer location and the product's coordinates are known. The annotation is
// request-scoped: it lives on the snapshot, never on the stored product.
func annotateDistances(products []models.Product, userLocation *models.GeoPoint) {
	for i := range products {
		if userLocation != nil && products[i].HasLocation() {
			d := geo.Distance(*userLocation, *products[i].Location())
			products[i].Distance = &d
		} else {
			products[i].Distance = nil
		}
	}
}

// filterProducts keeps products passing every query predicate, preserving
// input order. An empty Category behaves like the "All" sentinel: no
// category filter is applied.
func filterProducts(products []models.Product, query models.Query) []models.Product {
	term := strings.ToLower(strings.TrimSpace(query.SearchTerm))

	results := make([]models.Product, 0, len(products))
	for _, p := range products {
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		if query.Category != "" && query.Category != models.CategoryAll && query.Category != p.Category {
			continue
		}
		// An active radius excludes any product without a computed
		// distance, locationless listings included.
		if query.RadiusKm > 0 && (p.Distance == nil || *p.Distance > query.RadiusKm) {
			continue
		}
		results = append(results, p)
	}
	return results
}

// sortProducts orders the result in place. All sorts are stable so equal
// keys keep their catalog order. An unrecognized key leaves the input
// order untouched.
func sortProducts(products []models.Product, key models.SortKey) {
	switch key {
	case models.SortByExpiryDate:
		sort.SliceStable(products, func(i, j int) bool {
			return expirySortValue(products[i].ExpiryDate) < expirySortValue(products[j].ExpiryDate)
		})
	case models.SortByPriceLowHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].DiscountedPrice.LessThan(products[j].DiscountedPrice)
		})
	case models.SortByPriceHighLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].DiscountedPrice.GreaterThan(products[j].DiscountedPrice)
		})
	case models.SortByDistance:
		// Undefined distance ranks after every defined one.
		sort.SliceStable(products, func(i, j int) bool {
			di, dj := products[i].Distance, products[j].Distance
			if di == nil {
				return false
			}
			if dj == nil {
				return true
			}
			return *di < *dj
		})
	}
}

// expirySortValue maps an expiry date to a sortable instant. An
// unparseable date ranks after every valid one instead of corrupting the
// order of valid rows.
func expirySortValue(date string) int64 {
	t, err := expiry.ParseDate(date)
	if err != nil {
		return math.MaxInt64
	}
	return t.Unix()
}
