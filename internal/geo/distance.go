package geo

import (
	"math"

	"lastkart/internal/models"
)

// earthRadiusKm is the mean radius of the spherical Earth model.
const earthRadiusKm = 6371.0

// Distance returns the great-circle distance in kilometers between two
// points, computed with the haversine formula. It is symmetric and returns
// exactly 0 for coincident points.
func Distance(a, b models.GeoPoint) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180
	h := 0.5 - math.Cos(dLat)/2 +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*(1-math.Cos(dLon))/2
	// Floating-point rounding can push h a hair outside [0,1] for coincident
	// or antipodal points, which would take Sqrt/Asin out of domain.
	if h < 0 {
		h = 0
	} else if h > 1 {
		h = 1
	}
	return earthRadiusKm * 2 * math.Asin(math.Sqrt(h))
}
