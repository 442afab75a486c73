package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"parkcompare/internal/domain/pricing"
)

var (
	ErrEmptyCompanyName = errors.New("company name cannot be empty")
	ErrEmptyAirport     = errors.New("airport cannot be empty")
)

// Company is one parking provider listed on the compare page. Its tier
// table is owned by the admin panel and immutable during a pricing
// calculation.
type Company struct {
	ID                 uuid.UUID      `json:"id"`
	Name               string         `json:"name"`
	Airport            string         `json:"airport"`
	Description        string         `json:"description,omitempty"`
	Services           []string       `json:"services,omitempty"`
	DistanceToTerminal string         `json:"distanceToTerminal,omitempty"`
	Tiers              []pricing.Tier `json:"pricingTiers"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

func (c *Company) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCompanyName
	}
	if strings.TrimSpace(c.Airport) == "" {
		return ErrEmptyAirport
	}
	for _, t := range c.Tiers {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Priceable reports whether the company can be quoted at all. A company
// without tiers prices to zero, which checkout must treat as "cannot
// quote" rather than a free booking.
func (c *Company) Priceable() bool {
	return len(c.Tiers) > 0
}
