package pricing

import (
	"math"
	"time"
)

const hoursPerDay = 24

// Days converts a stay into a whole-day duration: the ceiling of the
// absolute difference, clamped to at least one day. A same-day drop-off
// and pick-up still counts as one chargeable day.
func Days(start, end time.Time) int {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / hoursPerDay))
	if days < 1 {
		days = 1
	}
	return days
}

// Price maps a duration onto an ordered tier list.
//
// The first tier whose [MinDays, MaxDays] range contains the duration wins:
// total = basic + perDay * duration. When no tier matches, the last tier is
// treated as open-ended and the per-day charge is re-based at its MinDays:
// total = basic + perDay * (duration - minDays). The re-basing keeps long
// stays from paying the base fee twice for days already covered by the
// ranges below. An empty tier list prices to zero; callers must treat that
// as "cannot quote", not as a free booking.
func Price(tiers []Tier, days int) float64 {
	if len(tiers) == 0 {
		return 0
	}

	for _, t := range tiers {
		if t.Contains(days) {
			return t.Basic + t.PerDay*float64(days)
		}
	}

	last := tiers[len(tiers)-1]
	return last.Basic + last.PerDay*float64(days-last.MinDays)
}

// VehicleTotal scales a base price by the vehicle count: the second car
// doubles and the third car triples the entire base total. The multiplier
// is deliberately linear over the whole amount, not an incremental
// per-vehicle fee. At least one vehicle is always charged.
func VehicleTotal(base float64, vehicleCount int) float64 {
	if vehicleCount < 1 {
		vehicleCount = 1
	}
	return base * float64(vehicleCount)
}

// Pence converts a pound total to minor currency units for the payment
// provider.
func Pence(total float64) int64 {
	return int64(math.Round(total * 100))
}
