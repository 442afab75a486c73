package response

import (
	"time"

	"parkcompare/internal/domain/catalog"
	"parkcompare/internal/domain/pricing"
	"parkcompare/internal/domain/promo"

	"github.com/google/uuid"
)

type TierResponse struct {
	MinDays int     `json:"minDays"`
	MaxDays int     `json:"maxDays"`
	Basic   float64 `json:"basic"`
	PerDay  float64 `json:"perDay"`
}

type CompanyResponse struct {
	ID                 uuid.UUID      `json:"id"`
	Name               string         `json:"name"`
	Airport            string         `json:"airport"`
	Description        string         `json:"description,omitempty"`
	Services           []string       `json:"services,omitempty"`
	DistanceToTerminal string         `json:"distanceToTerminal,omitempty"`
	Tiers              []TierResponse `json:"pricingTiers"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

func FromCompany(c *catalog.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Airport:            c.Airport,
		Description:        c.Description,
		Services:           c.Services,
		DistanceToTerminal: c.DistanceToTerminal,
		Tiers:              fromTiers(c.Tiers),
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func FromCompanies(companies []*catalog.Company) []*CompanyResponse {
	out := make([]*CompanyResponse, len(companies))
	for i, c := range companies {
		out[i] = FromCompany(c)
	}
	return out
}

func fromTiers(tiers []pricing.Tier) []TierResponse {
	out := make([]TierResponse, len(tiers))
	for i, t := range tiers {
		out[i] = TierResponse{MinDays: t.MinDays, MaxDays: t.MaxDays, Basic: t.Basic, PerDay: t.PerDay}
	}
	return out
}

type LocationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code,omitempty"`
	Terminals []string  `json:"terminals,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromLocation(l *catalog.Location) *LocationResponse {
	return &LocationResponse{
		ID:        l.ID,
		Name:      l.Name,
		Code:      l.Code,
		Terminals: l.Terminals,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func FromLocations(locations []*catalog.Location) []*LocationResponse {
	out := make([]*LocationResponse, len(locations))
	for i, l := range locations {
		out[i] = FromLocation(l)
	}
	return out
}

type PromoResponse struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	ValidFrom     time.Time `json:"validFrom"`
	ValidTo       time.Time `json:"validTo"`
	MinimumSpend  float64   `json:"minimumSpend"`
	DiscountType  string    `json:"discountType"`
	DiscountValue float64   `json:"discountValue"`
	DiscountCap   float64   `json:"discountCap"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromPromo(p *promo.Promo) *PromoResponse {
	return &PromoResponse{
		ID:            p.ID(),
		Code:          p.Code().String(),
		ValidFrom:     p.ValidFrom(),
		ValidTo:       p.ValidTo(),
		MinimumSpend:  p.MinimumSpend(),
		DiscountType:  p.Discount().Type().String(),
		DiscountValue: p.Discount().Value(),
		DiscountCap:   p.Discount().Cap(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func FromPromos(promos []*promo.Promo) []*PromoResponse {
	out := make([]*PromoResponse, len(promos))
	for i, p := range promos {
		out[i] = FromPromo(p)
	}
	return out
}

// PromoValidationResponse is the inline checkout result: success and
// failure share the shape so the widget renders either from one payload.
type PromoValidationResponse struct {
	Valid          bool    `json:"valid"`
	OriginalTotal  float64 `json:"originalTotal,omitempty"`
	DiscountAmount float64 `json:"discountAmount,omitempty"`
	NewTotal       float64 `json:"newTotal,omitempty"`
	Reason         string  `json:"reason,omitempty"`
	Message        string  `json:"message"`
}

func FromPromoResult(r promo.Result) *PromoValidationResponse {
	return &PromoValidationResponse{
		Valid:          r.Valid,
		OriginalTotal:  r.OriginalTotal,
		DiscountAmount: r.DiscountAmount,
		NewTotal:       r.NewTotal,
		Reason:         string(r.Reason),
		Message:        r.Message,
	}
}
