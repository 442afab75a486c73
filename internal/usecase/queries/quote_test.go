//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"parkcompare/internal/domain/catalog"
	"parkcompare/internal/domain/pricing"
	"parkcompare/internal/domain/promo"
	"parkcompare/internal/infra"
	"parkcompare/internal/pkg/clock"
	"parkcompare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type mockCatalogQueries struct {
	mock.Mock
}

func (m *mockCatalogQueries) CompaniesByAirport(ctx context.Context, airport string) ([]*catalog.Company, error) {
	args := m.Called(ctx, airport)
	if v := args.Get(0); v != nil {
		return v.([]*catalog.Company), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogQueries) AllCompanies(ctx context.Context) ([]*catalog.Company, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*catalog.Company), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogQueries) CompanyByID(ctx context.Context, id uuid.UUID) (*catalog.Company, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*catalog.Company), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogQueries) AllLocations(ctx context.Context) ([]*catalog.Location, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*catalog.Location), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogQueries) AllPromos(ctx context.Context) ([]*promo.Promo, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*promo.Promo), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPromoReader struct {
	mock.Mock
}

func (m *mockPromoReader) FindByCode(ctx context.Context, code promo.Code) (*promo.Promo, error) {
	args := m.Called(ctx, code)
	if v := args.Get(0); v != nil {
		return v.(*promo.Promo), args.Error(1)
	}
	return nil, args.Error(1)
}

type QuoteQueriesTestSuite struct {
	suite.Suite
	catalog *mockCatalogQueries
	promos  *mockPromoReader
	quotes  queries.QuoteQueries
	now     time.Time
}

func (s *QuoteQueriesTestSuite) SetupTest() {
	s.catalog = new(mockCatalogQueries)
	s.promos = new(mockPromoReader)
	s.now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	s.quotes = queries.NewQuoteQueries(s.catalog, s.promos, clock.NewMockClock(s.now))
}

func TestQuoteQueriesSuite(t *testing.T) {
	suite.Run(t, new(QuoteQueriesTestSuite))
}

func testCompany(id uuid.UUID, name string) *catalog.Company {
	return &catalog.Company{
		ID:      id,
		Name:    name,
		Airport: "Heathrow",
		Tiers: []pricing.Tier{
			{MinDays: 1, MaxDays: 3, Basic: 20, PerDay: 5},
			{MinDays: 4, MaxDays: 7, Basic: 30, PerDay: 4},
		},
	}
}

func testPromoPercent(t *testing.T, code string, percent float64) *promo.Promo {
	t.Helper()
	discount, err := promo.NewDiscount(promo.DiscountPercentage, percent, 0)
	require.NoError(t, err)
	p, err := promo.NewPromo(
		uuid.New(), code,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
		0, discount,
	)
	require.NoError(t, err)
	return p
}

func (s *QuoteQueriesTestSuite) stay(days int, vehicles int, code string) queries.QuoteParams {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	return queries.QuoteParams{
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, days),
		VehicleCount: vehicles,
		PromoCode:    code,
	}
}

func (s *QuoteQueriesTestSuite) TestQuoteCompany() {
	companyID := uuid.New()
	company := testCompany(companyID, "SkyPark")

	s.Run("prices a two day stay for two vehicles", func() {
		s.catalog.On("CompanyByID", mock.Anything, companyID).Return(company, nil).Once()

		quote, err := s.quotes.QuoteCompany(context.Background(), companyID, s.stay(2, 2, ""))
		s.Require().NoError(err)

		s.Equal(2, quote.DurationDays)
		s.Equal(2, quote.VehicleCount)
		s.InDelta(30.0, quote.BasePrice, 1e-9)     // 20 + 5*2
		s.InDelta(60.0, quote.OriginalTotal, 1e-9) // base * 2 vehicles
		s.InDelta(60.0, quote.FinalTotal, 1e-9)
		s.False(quote.PromoApplied)
	})

	s.Run("applies a percentage promo to the multiplied total", func() {
		s.catalog.On("CompanyByID", mock.Anything, companyID).Return(company, nil).Once()
		s.promos.On("FindByCode", mock.Anything, promo.Code("SAVE10")).
			Return(testPromoPercent(s.T(), "SAVE10", 10), nil).Once()

		quote, err := s.quotes.QuoteCompany(context.Background(), companyID, s.stay(2, 2, "save10"))
		s.Require().NoError(err)

		s.True(quote.PromoApplied)
		s.InDelta(6.0, quote.DiscountAmount, 1e-9)
		s.InDelta(54.0, quote.FinalTotal, 1e-9)
		s.Equal("save10", quote.PromoCode)
	})

	s.Run("quotes without discount when the code matches nothing", func() {
		s.catalog.On("CompanyByID", mock.Anything, companyID).Return(company, nil).Once()
		s.promos.On("FindByCode", mock.Anything, promo.Code("NOPE")).
			Return(nil, infra.WrapRepoErr("promo not found", errors.New("no rows"), infra.KindNotFound)).Once()

		quote, err := s.quotes.QuoteCompany(context.Background(), companyID, s.stay(2, 1, "NOPE"))
		s.Require().NoError(err)

		s.False(quote.PromoApplied)
		s.InDelta(30.0, quote.FinalTotal, 1e-9)
		s.Equal("Promo code not found", quote.PromoMessage)
	})

	s.Run("rejects a company without tiers", func() {
		bare := &catalog.Company{ID: companyID, Name: "NoTiers", Airport: "Heathrow"}
		s.catalog.On("CompanyByID", mock.Anything, companyID).Return(bare, nil).Once()

		_, err := s.quotes.QuoteCompany(context.Background(), companyID, s.stay(2, 1, ""))
		s.ErrorIs(err, queries.ErrUnpriceable)
	})

	s.Run("propagates a missing company", func() {
		s.catalog.On("CompanyByID", mock.Anything, companyID).
			Return(nil, queries.ErrCompanyNotFound).Once()

		_, err := s.quotes.QuoteCompany(context.Background(), companyID, s.stay(2, 1, ""))
		s.ErrorIs(err, queries.ErrCompanyNotFound)
	})
}

func (s *QuoteQueriesTestSuite) TestCompareAirport() {
	priced := testCompany(uuid.New(), "SkyPark")
	unpriced := &catalog.Company{ID: uuid.New(), Name: "NoTiers", Airport: "Heathrow"}

	s.catalog.On("CompaniesByAirport", mock.Anything, "Heathrow").
		Return([]*catalog.Company{priced, unpriced}, nil).Once()

	quotes, err := s.quotes.CompareAirport(context.Background(), "Heathrow", s.stay(3, 1, ""))
	s.Require().NoError(err)

	s.Require().Len(quotes, 1)
	s.Equal("SkyPark", quotes[0].ParkingName)
	s.InDelta(35.0, quotes[0].FinalTotal, 1e-9) // 20 + 5*3
}

func (s *QuoteQueriesTestSuite) TestValidatePromo() {
	s.Run("valid code", func() {
		s.promos.On("FindByCode", mock.Anything, promo.Code("SAVE10")).
			Return(testPromoPercent(s.T(), "SAVE10", 10), nil).Once()

		result, err := s.quotes.ValidatePromo(context.Background(), "SAVE10", 120)
		s.Require().NoError(err)

		s.True(result.Valid)
		s.InDelta(12.0, result.DiscountAmount, 1e-9)
		s.InDelta(108.0, result.NewTotal, 1e-9)
	})

	s.Run("unknown code is a result, not an error", func() {
		s.promos.On("FindByCode", mock.Anything, promo.Code("MISSING")).
			Return(nil, infra.WrapRepoErr("promo not found", errors.New("no rows"), infra.KindNotFound)).Once()

		result, err := s.quotes.ValidatePromo(context.Background(), "MISSING", 120)
		s.Require().NoError(err)

		s.False(result.Valid)
		s.Equal(promo.ReasonNotFound, result.Reason)
	})
}
