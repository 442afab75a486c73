package promo

import (
	"errors"
	"strings"
)

var (
	ErrEmptyCode            = errors.New("promo code cannot be empty")
	ErrInvalidDiscountType  = errors.New("invalid discount type")
	ErrNegativeDiscount     = errors.New("discount value cannot be negative")
	ErrNegativeCap          = errors.New("discount cap cannot be negative")
	ErrNegativeMinimumSpend = errors.New("minimum spend cannot be negative")
)

// Code is the case-insensitive promo lookup key. Codes are stored and
// compared in upper case.
type Code string

func NewCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return Code(""), ErrEmptyCode
	}
	return Code(s), nil
}

func (c Code) String() string {
	return string(c)
}

// Matches compares codes case-insensitively.
func (c Code) Matches(s string) bool {
	return string(c) == strings.ToUpper(strings.TrimSpace(s))
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func NewDiscountType(s string) (DiscountType, error) {
	dt := DiscountType(strings.ToLower(strings.TrimSpace(s)))
	switch dt {
	case DiscountPercentage, DiscountFixed:
		return dt, nil
	default:
		return "", ErrInvalidDiscountType
	}
}

func (dt DiscountType) String() string {
	return string(dt)
}

// Discount is either a percentage of the total or a fixed amount, with an
// optional cap on the absolute discount (cap of zero means uncapped).
type Discount struct {
	dtype DiscountType
	value float64
	cap   float64
}

func NewDiscount(dtype DiscountType, value, cap float64) (Discount, error) {
	switch dtype {
	case DiscountPercentage, DiscountFixed:
	default:
		return Discount{}, ErrInvalidDiscountType
	}
	if value < 0 {
		return Discount{}, ErrNegativeDiscount
	}
	if cap < 0 {
		return Discount{}, ErrNegativeCap
	}
	return Discount{dtype: dtype, value: value, cap: cap}, nil
}

func (d Discount) Type() DiscountType { return d.dtype }
func (d Discount) Value() float64     { return d.value }
func (d Discount) Cap() float64       { return d.cap }

// Amount computes the discount for a given total, clamped to the cap when
// one is set. Both discount types honor the cap.
func (d Discount) Amount(total float64) float64 {
	var amount float64
	switch d.dtype {
	case DiscountPercentage:
		amount = total * d.value / 100
	case DiscountFixed:
		amount = d.value
	}
	if d.cap > 0 && amount > d.cap {
		amount = d.cap
	}
	return amount
}
