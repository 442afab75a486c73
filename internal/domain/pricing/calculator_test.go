//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"parkcompare/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

var standardTiers = []pricing.Tier{
	{MinDays: 1, MaxDays: 3, Basic: 20, PerDay: 5},
	{MinDays: 4, MaxDays: 7, Basic: 30, PerDay: 4},
}

func TestDays(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{name: "same day counts as one", start: base, end: base, want: 1},
		{name: "sub-day span counts as one", start: base, end: base.Add(6 * time.Hour), want: 1},
		{name: "exactly one day", start: base, end: base.AddDate(0, 0, 1), want: 1},
		{name: "one day and an hour rounds up", start: base, end: base.AddDate(0, 0, 1).Add(time.Hour), want: 2},
		{name: "full week", start: base, end: base.AddDate(0, 0, 7), want: 7},
		{name: "reversed dates use absolute difference", start: base.AddDate(0, 0, 3), end: base, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.Days(tt.start, tt.end))
		})
	}
}

func TestPrice(t *testing.T) {
	tests := []struct {
		name  string
		tiers []pricing.Tier
		days  int
		want  float64
	}{
		{
			name:  "duration inside first tier",
			tiers: standardTiers,
			days:  2,
			want:  30, // 20 + 5*2
		},
		{
			name:  "duration inside second tier",
			tiers: standardTiers,
			days:  5,
			want:  50, // 30 + 4*5
		},
		{
			name:  "tier boundary is inclusive on both ends",
			tiers: standardTiers,
			days:  4,
			want:  46, // 30 + 4*4
		},
		{
			name:  "beyond last tier rebases per-day at its minDays",
			tiers: standardTiers,
			days:  10,
			want:  54, // 30 + 4*(10-4)
		},
		{
			name:  "empty tier table prices to zero",
			tiers: nil,
			days:  3,
			want:  0,
		},
		{
			name: "gap in tier table falls through to last-tier formula",
			tiers: []pricing.Tier{
				{MinDays: 1, MaxDays: 2, Basic: 10, PerDay: 1},
				{MinDays: 5, MaxDays: 7, Basic: 25, PerDay: 2},
			},
			days: 3,
			want: 21, // 25 + 2*(3-5)
		},
		{
			name:  "first matching tier wins when ranges overlap",
			tiers: []pricing.Tier{{MinDays: 1, MaxDays: 5, Basic: 10, PerDay: 1}, {MinDays: 3, MaxDays: 7, Basic: 99, PerDay: 9}},
			days:  4,
			want:  14,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, pricing.Price(tt.tiers, tt.days), 1e-9)
		})
	}
}

func TestPriceCoversAllDurationsWithFullCoverage(t *testing.T) {
	// With contiguous coverage, every in-range duration prices by its own tier.
	for d := 1; d <= 7; d++ {
		want := standardTiers[0].Basic + standardTiers[0].PerDay*float64(d)
		if d >= 4 {
			want = standardTiers[1].Basic + standardTiers[1].PerDay*float64(d)
		}
		assert.InDelta(t, want, pricing.Price(standardTiers, d), 1e-9, "duration %d", d)
	}
}

func TestVehicleTotal(t *testing.T) {
	tests := []struct {
		name  string
		base  float64
		count int
		want  float64
	}{
		{name: "one vehicle", base: 54, count: 1, want: 54},
		{name: "second vehicle doubles the whole total", base: 54, count: 2, want: 108},
		{name: "third vehicle triples the whole total", base: 54, count: 3, want: 162},
		{name: "zero vehicles still charges for one", base: 54, count: 0, want: 54},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, pricing.VehicleTotal(tt.base, tt.count), 1e-9)
		})
	}
}

func TestPence(t *testing.T) {
	assert.Equal(t, int64(10300), pricing.Pence(103.00))
	assert.Equal(t, int64(9550), pricing.Pence(95.495)) // rounds half up
	assert.Equal(t, int64(0), pricing.Pence(0))
}
