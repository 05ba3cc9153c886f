package expiry_test

import (
	"testing"
	"time"

	"lastkart/internal/expiry"

	"github.com/stretchr/testify/assert"
)

var noon = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name string
		date string
		want int
	}{
		{"later this week", "2026-09-02", 3}, // 2.5 days away, rounded up
		{"tomorrow midnight", "2026-08-31", 1},
		{"expires today", "2026-08-30", 0},
		{"already expired", "2026-08-27", -3},
		{"far out", "2026-09-30", 31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := expiry.DaysUntil(tt.date, noon)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, days)
		})
	}
}

func TestDaysUntil_InvalidDate(t *testing.T) {
	for _, bad := range []string{"", "not-a-date", "2026-13-45", "30/08/2026"} {
		_, err := expiry.DaysUntil(bad, noon)
		assert.ErrorIs(t, err, expiry.ErrInvalidDate, "input %q", bad)
	}
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, expiry.TierCritical, expiry.TierFor(-1))
	assert.Equal(t, expiry.TierCritical, expiry.TierFor(0))
	assert.Equal(t, expiry.TierCritical, expiry.TierFor(2))
	assert.Equal(t, expiry.TierWarning, expiry.TierFor(3))
	assert.Equal(t, expiry.TierWarning, expiry.TierFor(5))
	assert.Equal(t, expiry.TierNormal, expiry.TierFor(6))
	assert.Equal(t, expiry.TierNormal, expiry.TierFor(30))
}

func TestWithinDashboardWindow(t *testing.T) {
	// The dashboard window is deliberately wider than the card tiers.
	assert.True(t, expiry.WithinDashboardWindow(7))
	assert.True(t, expiry.WithinDashboardWindow(1))
	assert.False(t, expiry.WithinDashboardWindow(8))
	assert.Equal(t, expiry.TierNormal, expiry.TierFor(7), "day 7 is normal on cards yet inside the dashboard window")
}
