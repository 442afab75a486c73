package promo

import (
	"time"

	"github.com/google/uuid"
)

// Promo is a redeemable discount code with a validity window and a
// minimum-spend gate. Promos are created by the admin panel, consulted at
// checkout, and never mutated by the booking flow.
type Promo struct {
	id           uuid.UUID
	code         Code
	validFrom    time.Time
	validTo      time.Time
	minimumSpend float64
	discount     Discount
	createdAt    time.Time
	updatedAt    time.Time
}

func NewPromo(
	id uuid.UUID,
	code string,
	validFrom, validTo time.Time,
	minimumSpend float64,
	discount Discount,
) (*Promo, error) {
	promoCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}
	if minimumSpend < 0 {
		return nil, ErrNegativeMinimumSpend
	}

	return &Promo{
		id:           id,
		code:         promoCode,
		validFrom:    validFrom,
		validTo:      validTo,
		minimumSpend: minimumSpend,
		discount:     discount,
	}, nil
}

func ReconstructPromo(
	id uuid.UUID,
	code Code,
	validFrom, validTo time.Time,
	minimumSpend float64,
	discount Discount,
	createdAt, updatedAt time.Time,
) *Promo {
	return &Promo{
		id:           id,
		code:         code,
		validFrom:    validFrom,
		validTo:      validTo,
		minimumSpend: minimumSpend,
		discount:     discount,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// IsValidAt reports whether t falls inside the promo window.
func (p *Promo) IsValidAt(t time.Time) bool {
	return !t.Before(p.validFrom) && !t.After(p.validTo)
}

func (p *Promo) ID() uuid.UUID         { return p.id }
func (p *Promo) Code() Code            { return p.code }
func (p *Promo) ValidFrom() time.Time  { return p.validFrom }
func (p *Promo) ValidTo() time.Time    { return p.validTo }
func (p *Promo) MinimumSpend() float64 { return p.minimumSpend }
func (p *Promo) Discount() Discount    { return p.discount }
func (p *Promo) CreatedAt() time.Time  { return p.createdAt }
func (p *Promo) UpdatedAt() time.Time  { return p.updatedAt }
