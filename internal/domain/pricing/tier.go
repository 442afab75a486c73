package pricing

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNonNumericField = errors.New("tier field is not numeric")
	ErrNegativeField   = errors.New("tier field cannot be negative")
	ErrInvalidDayRange = errors.New("tier maxDays must not be below minDays")
)

// Tier is a contiguous day range with its own base fee and per-day rate.
// A company owns an ordered list of tiers; the calculator tolerates gaps
// and treats the last tier as open-ended (see Price).
type Tier struct {
	MinDays int     `json:"minDays"`
	MaxDays int     `json:"maxDays"`
	Basic   float64 `json:"basic"`
	PerDay  float64 `json:"perDay"`
}

// rawTier accepts each field as either a JSON number or a numeric string.
// The admin panel historically stored tier fields as strings, so both
// representations exist in the catalog.
type rawTier struct {
	MinDays flexNumber `json:"minDays"`
	MaxDays flexNumber `json:"maxDays"`
	Basic   flexNumber `json:"basic"`
	PerDay  flexNumber `json:"perDay"`
}

type flexNumber struct {
	value float64
	set   bool
}

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
		if s == "" {
			return nil
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrNonNumericField, s)
	}
	n.value = v
	n.set = true
	return nil
}

// ParseTiers decodes an ordered tier list from its stored JSON form.
// Any non-numeric field is a configuration error, reported as such rather
// than coerced to zero; a legitimate "no tier matched" is handled by Price.
func ParseTiers(data []byte) ([]Tier, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var raws []rawTier
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}

	tiers := make([]Tier, 0, len(raws))
	for i, r := range raws {
		if !r.MinDays.set || !r.MaxDays.set || !r.Basic.set || !r.PerDay.set {
			return nil, fmt.Errorf("tier %d: %w", i, ErrNonNumericField)
		}
		t := Tier{
			MinDays: int(r.MinDays.value),
			MaxDays: int(r.MaxDays.value),
			Basic:   r.Basic.value,
			PerDay:  r.PerDay.value,
		}
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("tier %d: %w", i, err)
		}
		tiers = append(tiers, t)
	}
	return tiers, nil
}

func (t Tier) Validate() error {
	if t.MinDays < 0 || t.Basic < 0 || t.PerDay < 0 {
		return ErrNegativeField
	}
	if t.MaxDays < t.MinDays {
		return ErrInvalidDayRange
	}
	return nil
}

// Contains reports whether a duration in days falls inside this tier's range.
func (t Tier) Contains(days int) bool {
	return days >= t.MinDays && days <= t.MaxDays
}
