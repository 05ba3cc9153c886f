// Package expiry derives day counts and urgency buckets from a product's
// expiry date. It is shared by the discovery pipeline, the retailer
// dashboard, and the notification generator.
//
// Two distinct cutoffs exist on purpose: product cards color by the fine
// Tier buckets (critical at 2 days or less, warning up to 5), while the
// retailer dashboard and expiry alerts use the coarser 7-day window. They
// are separate knobs for separate screens and must not be merged.
package expiry

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// DateLayout is the calendar-date format carried by catalog entries.
const DateLayout = "2006-01-02"

// DashboardWindowDays is the "expiring soon" cutoff used by the retailer
// dashboard and the notification generator.
const DashboardWindowDays = 7

// ErrInvalidDate reports an expiry date that does not parse as a calendar
// date. Callers surface it rather than letting a garbage day count corrupt
// ordering or alerts.
var ErrInvalidDate = errors.New("invalid expiry date")

// Tier is the urgency bucket shown on a product card.
type Tier string

const (
	TierCritical Tier = "critical"
	TierWarning  Tier = "warning"
	TierNormal   Tier = "normal"
)

// ParseDate parses a catalog expiry date. The resulting time is midnight
// UTC of that day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// DaysUntil returns the number of days from now until the expiry date,
// rounded up. Already-expired items yield a negative count.
func DaysUntil(expiryDate string, now time.Time) (int, error) {
	t, err := ParseDate(expiryDate)
	if err != nil {
		return 0, err
	}
	return int(math.Ceil(t.Sub(now).Hours() / 24)), nil
}

// TierFor maps a day count to the product-card urgency bucket.
func TierFor(days int) Tier {
	switch {
	case days <= 2:
		return TierCritical
	case days <= 5:
		return TierWarning
	default:
		return TierNormal
	}
}

// WithinDashboardWindow reports whether a day count falls inside the
// 7-day "expiring soon" window.
func WithinDashboardWindow(days int) bool {
	return days <= DashboardWindowDays
}
