package booking

import (
	"crypto/rand"
	"errors"
	"strings"
)

var (
	ErrInvalidReference   = errors.New("invalid booking reference")
	ErrNoVehicles         = errors.New("at least one vehicle is required")
	ErrTooManyVehicles    = errors.New("a booking can hold at most three vehicles")
	ErrEmptyRegistration  = errors.New("vehicle registration cannot be empty")
	ErrDuplicateVehicle   = errors.New("duplicate vehicle registration")
	ErrInvalidVehicleList = errors.New("invalid vehicle list")
)

const (
	referencePrefix = "PC"
	referenceLength = 9
	maxVehicles     = 3
)

const referenceAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Reference is the customer-facing booking identifier, e.g. "PC7K2M9QX41".
type Reference string

// NewReference generates a fresh reference: the "PC" prefix followed by
// nine random alphanumerics.
func NewReference() Reference {
	buf := make([]byte, referenceLength)
	// crypto/rand never fails on supported platforms
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = referenceAlphabet[int(b)%len(referenceAlphabet)]
	}
	return Reference(referencePrefix + string(buf))
}

func ParseReference(s string) (Reference, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != len(referencePrefix)+referenceLength || !strings.HasPrefix(s, referencePrefix) {
		return Reference(""), ErrInvalidReference
	}
	for _, r := range s[len(referencePrefix):] {
		if !strings.ContainsRune(referenceAlphabet, r) {
			return Reference(""), ErrInvalidReference
		}
	}
	return Reference(s), nil
}

func (r Reference) String() string {
	return string(r)
}

// VehicleEntry is one car on a booking. PositionIndex is zero-based; the
// price multiplier for the whole booking is the number of vehicles, so the
// second car doubles and the third triples the base total.
type VehicleEntry struct {
	Registration  string `json:"registration"`
	PositionIndex int    `json:"positionIndex"`
}

func (v VehicleEntry) Multiplier() int {
	return v.PositionIndex + 1
}

// NewVehicles builds the vehicle list for a booking from raw registration
// plates: trimmed, upper-cased, blanks dropped, between one and three
// entries, no duplicates.
func NewVehicles(registrations []string) ([]VehicleEntry, error) {
	seen := make(map[string]struct{}, len(registrations))
	entries := make([]VehicleEntry, 0, len(registrations))

	for _, reg := range registrations {
		reg = strings.ToUpper(strings.TrimSpace(reg))
		if reg == "" {
			continue
		}
		if _, dup := seen[reg]; dup {
			return nil, ErrDuplicateVehicle
		}
		seen[reg] = struct{}{}
		entries = append(entries, VehicleEntry{
			Registration:  reg,
			PositionIndex: len(entries),
		})
	}

	if len(entries) == 0 {
		return nil, ErrNoVehicles
	}
	if len(entries) > maxVehicles {
		return nil, ErrTooManyVehicles
	}
	return entries, nil
}

// PriceBreakdown is the quote attached to a finalized booking: the
// vehicle-multiplied total before any discount, the discount applied (zero
// when no promo was used), and what the customer actually paid.
type PriceBreakdown struct {
	OriginalTotal  float64 `json:"originalTotal"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalTotal     float64 `json:"finalTotal"`
	PromoCode      string  `json:"promoCode,omitempty"`
}
