package queries

import (
	"context"
	"time"

	"parkcompare/internal/domain/catalog"
	"parkcompare/internal/domain/pricing"
	"parkcompare/internal/domain/promo"
	"parkcompare/internal/infra"
	"parkcompare/internal/pkg/clock"
	"parkcompare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUnpriceable = errs.New("company has no pricing tiers")

type PromoReader interface {
	FindByCode(ctx context.Context, code promo.Code) (*promo.Promo, error)
}

// Quote is a fully evaluated price for one company and stay: duration,
// tier price, vehicle multiplier, then the optional promo on top.
type Quote struct {
	CompanyID      uuid.UUID
	ParkingName    string
	Airport        string
	DurationDays   int
	VehicleCount   int
	BasePrice      float64 // tier price for one vehicle
	OriginalTotal  float64 // base price times vehicle count
	DiscountAmount float64
	FinalTotal     float64
	PromoApplied   bool
	PromoCode      string
	PromoMessage   string
}

type QuoteParams struct {
	StartDate    time.Time
	EndDate      time.Time
	VehicleCount int
	PromoCode    string
}

type QuoteQueries interface {
	QuoteCompany(ctx context.Context, companyID uuid.UUID, params QuoteParams) (*Quote, error)
	CompareAirport(ctx context.Context, airport string, params QuoteParams) ([]*Quote, error)
	ValidatePromo(ctx context.Context, code string, total float64) (promo.Result, error)
}

type quoteQueriesImpl struct {
	catalog CatalogQueries
	promos  PromoReader
	clock   clock.Clock
}

func NewQuoteQueries(cat CatalogQueries, promos PromoReader, clk clock.Clock) QuoteQueries {
	return &quoteQueriesImpl{catalog: cat, promos: promos, clock: clk}
}

func (q *quoteQueriesImpl) QuoteCompany(ctx context.Context, companyID uuid.UUID, params QuoteParams) (*Quote, error) {
	company, err := q.catalog.CompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if !company.Priceable() {
		return nil, ErrUnpriceable
	}
	return q.buildQuote(ctx, company, params)
}

// CompareAirport quotes every provider at an airport for the same stay.
// Providers without tiers are listed unpriced by the page, so they are
// skipped here rather than failing the whole comparison.
func (q *quoteQueriesImpl) CompareAirport(ctx context.Context, airport string, params QuoteParams) ([]*Quote, error) {
	companies, err := q.catalog.CompaniesByAirport(ctx, airport)
	if err != nil {
		return nil, err
	}

	quotes := make([]*Quote, 0, len(companies))
	for _, company := range companies {
		if !company.Priceable() {
			continue
		}
		quote, err := q.buildQuote(ctx, company, params)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, quote)
	}
	return quotes, nil
}

// ValidatePromo is the inline checkout validation. Lookup misses become a
// "not found" result, never an error, so the checkout flow always renders
// a message.
func (q *quoteQueriesImpl) ValidatePromo(ctx context.Context, code string, total float64) (promo.Result, error) {
	p, err := q.findPromo(ctx, code)
	if err != nil {
		return promo.Result{}, err
	}
	return promo.Evaluate(p, total, q.clock.Now()), nil
}

func (q *quoteQueriesImpl) buildQuote(ctx context.Context, company *catalog.Company, params QuoteParams) (*Quote, error) {
	days := pricing.Days(params.StartDate, params.EndDate)
	base := pricing.Price(company.Tiers, days)
	total := pricing.VehicleTotal(base, params.VehicleCount)

	vehicleCount := params.VehicleCount
	if vehicleCount < 1 {
		vehicleCount = 1
	}

	quote := &Quote{
		CompanyID:     company.ID,
		ParkingName:   company.Name,
		Airport:       company.Airport,
		DurationDays:  days,
		VehicleCount:  vehicleCount,
		BasePrice:     base,
		OriginalTotal: total,
		FinalTotal:    total,
	}

	if params.PromoCode == "" {
		return quote, nil
	}

	p, err := q.findPromo(ctx, params.PromoCode)
	if err != nil {
		return nil, err
	}
	result := promo.Evaluate(p, total, q.clock.Now())
	quote.PromoMessage = result.Message
	if result.Valid {
		quote.PromoApplied = true
		quote.PromoCode = params.PromoCode
		quote.DiscountAmount = result.DiscountAmount
		quote.FinalTotal = result.NewTotal
	}
	return quote, nil
}

// findPromo turns a repository miss into a nil promo for the evaluator.
func (q *quoteQueriesImpl) findPromo(ctx context.Context, rawCode string) (*promo.Promo, error) {
	code, err := promo.NewCode(rawCode)
	if err != nil {
		return nil, nil
	}

	p, err := q.promos.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrCatalogReadFailed)
	}
	return p, nil
}
