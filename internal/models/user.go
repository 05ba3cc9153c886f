package models

// Role distinguishes the three account types in the marketplace.
type Role string

const (
	RoleBuyer    Role = "buyer"
	RoleRetailer Role = "retailer"
	RoleAdmin    Role = "admin"
)

// User represents an account in the marketplace directory. Retailers carry
// coordinates so their listings can be distance-ranked for buyers.
type User struct {
	ID    int      `json:"id" gorm:"primaryKey"`
	Name  string   `json:"name" validate:"required,min=2,max=100"`
	Email string   `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Role  Role     `json:"role" validate:"required,oneof=buyer retailer admin"`
	Lat   *float64 `json:"lat,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Lon   *float64 `json:"lon,omitempty" validate:"omitempty,gte=-180,lte=180"`
}

// Location returns the user's coordinates, or nil when none are on file.
func (u *User) Location() *GeoPoint {
	if u.Lat == nil || u.Lon == nil {
		return nil
	}
	return &GeoPoint{Lat: *u.Lat, Lon: *u.Lon}
}
