package request

import (
	"strings"
	"time"

	"parkcompare/internal/domain/catalog"
	"parkcompare/internal/domain/pricing"
	"parkcompare/internal/domain/promo"

	"github.com/google/uuid"
)

type TierRequest struct {
	MinDays int     `json:"minDays" binding:"min=0"`
	MaxDays int     `json:"maxDays" binding:"min=0"`
	Basic   float64 `json:"basic" binding:"min=0"`
	PerDay  float64 `json:"perDay" binding:"min=0"`
}

type CompanyRequest struct {
	Name               string        `json:"name" binding:"required"`
	Airport            string        `json:"airport" binding:"required"`
	Description        string        `json:"description"`
	Services           []string      `json:"services"`
	DistanceToTerminal string        `json:"distanceToTerminal"`
	Tiers              []TierRequest `json:"pricingTiers"`
}

func (r CompanyRequest) ToDomain(id uuid.UUID) (*catalog.Company, error) {
	tiers := make([]pricing.Tier, 0, len(r.Tiers))
	for _, t := range r.Tiers {
		tier := pricing.Tier{MinDays: t.MinDays, MaxDays: t.MaxDays, Basic: t.Basic, PerDay: t.PerDay}
		if err := tier.Validate(); err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}

	company := &catalog.Company{
		ID:                 id,
		Name:               strings.TrimSpace(r.Name),
		Airport:            strings.TrimSpace(r.Airport),
		Description:        r.Description,
		Services:           r.Services,
		DistanceToTerminal: r.DistanceToTerminal,
		Tiers:              tiers,
	}
	if err := company.Validate(); err != nil {
		return nil, err
	}
	return company, nil
}

type LocationRequest struct {
	Name      string   `json:"name" binding:"required"`
	Code      string   `json:"code"`
	Terminals []string `json:"terminals"`
}

func (r LocationRequest) ToDomain(id uuid.UUID) (*catalog.Location, error) {
	location := &catalog.Location{
		ID:        id,
		Name:      strings.TrimSpace(r.Name),
		Code:      strings.ToUpper(strings.TrimSpace(r.Code)),
		Terminals: r.Terminals,
	}
	if err := location.Validate(); err != nil {
		return nil, err
	}
	return location, nil
}

type PromoRequest struct {
	Code          string    `json:"code" binding:"required"`
	ValidFrom     time.Time `json:"validFrom" binding:"required"`
	ValidTo       time.Time `json:"validTo" binding:"required"`
	MinimumSpend  float64   `json:"minimumSpend" binding:"min=0"`
	DiscountType  string    `json:"discountType" binding:"required"`
	DiscountValue float64   `json:"discountValue" binding:"min=0"`
	DiscountCap   float64   `json:"discountCap" binding:"min=0"`
}

func (r PromoRequest) ToDomain(id uuid.UUID) (*promo.Promo, error) {
	dtype, err := promo.NewDiscountType(r.DiscountType)
	if err != nil {
		return nil, err
	}
	discount, err := promo.NewDiscount(dtype, r.DiscountValue, r.DiscountCap)
	if err != nil {
		return nil, err
	}
	return promo.NewPromo(id, r.Code, r.ValidFrom, r.ValidTo, r.MinimumSpend, discount)
}
