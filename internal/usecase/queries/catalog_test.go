//go:build unit

package queries_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"parkcompare/internal/domain/catalog"
	"parkcompare/internal/domain/promo"
	"parkcompare/internal/infra"
	"parkcompare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type mockCompanyReader struct {
	mock.Mock
}

func (m *mockCompanyReader) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Company, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*catalog.Company), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCompanyReader) FindByAirport(ctx context.Context, airport string) ([]*catalog.Company, error) {
	args := m.Called(ctx, airport)
	if v := args.Get(0); v != nil {
		return v.([]*catalog.Company), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCompanyReader) FindAll(ctx context.Context) ([]*catalog.Company, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*catalog.Company), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockLocationReader struct {
	mock.Mock
}

func (m *mockLocationReader) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Location, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*catalog.Location), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLocationReader) FindAll(ctx context.Context) ([]*catalog.Location, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*catalog.Location), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPromoLister struct {
	mock.Mock
}

func (m *mockPromoLister) FindAll(ctx context.Context) ([]*promo.Promo, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*promo.Promo), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCompanyCache struct {
	mock.Mock
}

func (m *mockCompanyCache) GetCompanies(ctx context.Context, airport string) ([]*catalog.Company, error) {
	args := m.Called(ctx, airport)
	if v := args.Get(0); v != nil {
		return v.([]*catalog.Company), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCompanyCache) SetCompanies(ctx context.Context, airport string, companies []*catalog.Company) error {
	args := m.Called(ctx, airport, companies)
	return args.Error(0)
}

type CatalogQueriesTestSuite struct {
	suite.Suite
	companies *mockCompanyReader
	locations *mockLocationReader
	promos    *mockPromoLister
	cache     *mockCompanyCache
	catalog   queries.CatalogQueries
}

func (s *CatalogQueriesTestSuite) SetupTest() {
	s.companies = new(mockCompanyReader)
	s.locations = new(mockLocationReader)
	s.promos = new(mockPromoLister)
	s.cache = new(mockCompanyCache)
	logger := slog.New(slog.DiscardHandler)
	s.catalog = queries.NewCatalogQueries(s.companies, s.locations, s.promos, s.cache, logger)
}

func TestCatalogQueriesSuite(t *testing.T) {
	suite.Run(t, new(CatalogQueriesTestSuite))
}

func (s *CatalogQueriesTestSuite) TestCompaniesByAirport() {
	listing := []*catalog.Company{{ID: uuid.New(), Name: "SkyPark", Airport: "Gatwick"}}

	s.Run("cache hit never touches the database", func() {
		s.cache.On("GetCompanies", mock.Anything, "Gatwick").Return(listing, nil).Once()

		companies, err := s.catalog.CompaniesByAirport(context.Background(), "Gatwick")
		s.Require().NoError(err)
		s.Equal(listing, companies)
		s.companies.AssertNotCalled(s.T(), "FindByAirport", mock.Anything, mock.Anything)
	})

	s.Run("cache miss loads and backfills", func() {
		s.cache.On("GetCompanies", mock.Anything, "Gatwick").Return(nil, nil).Once()
		s.companies.On("FindByAirport", mock.Anything, "Gatwick").Return(listing, nil).Once()
		s.cache.On("SetCompanies", mock.Anything, "Gatwick", listing).Return(nil).Once()

		companies, err := s.catalog.CompaniesByAirport(context.Background(), "Gatwick")
		s.Require().NoError(err)
		s.Equal(listing, companies)
		s.cache.AssertExpectations(s.T())
	})

	s.Run("cache failure is treated as a miss", func() {
		s.cache.On("GetCompanies", mock.Anything, "Gatwick").
			Return(nil, errors.New("connection refused")).Once()
		s.companies.On("FindByAirport", mock.Anything, "Gatwick").Return(listing, nil).Once()
		s.cache.On("SetCompanies", mock.Anything, "Gatwick", listing).
			Return(errors.New("connection refused")).Once()

		companies, err := s.catalog.CompaniesByAirport(context.Background(), "Gatwick")
		s.Require().NoError(err)
		s.Equal(listing, companies)
	})

	s.Run("database failure surfaces as a read error", func() {
		s.cache.On("GetCompanies", mock.Anything, "Gatwick").Return(nil, nil).Once()
		s.companies.On("FindByAirport", mock.Anything, "Gatwick").
			Return(nil, infra.WrapRepoErr("query failed", errors.New("down"))).Once()

		_, err := s.catalog.CompaniesByAirport(context.Background(), "Gatwick")
		s.ErrorIs(err, queries.ErrCatalogReadFailed)
	})
}

func (s *CatalogQueriesTestSuite) TestCompanyByID() {
	id := uuid.New()

	s.Run("found", func() {
		company := &catalog.Company{ID: id, Name: "SkyPark", Airport: "Gatwick"}
		s.companies.On("FindByID", mock.Anything, id).Return(company, nil).Once()

		got, err := s.catalog.CompanyByID(context.Background(), id)
		s.Require().NoError(err)
		s.Equal(company, got)
	})

	s.Run("missing row maps to the sentinel", func() {
		s.companies.On("FindByID", mock.Anything, id).
			Return(nil, infra.WrapRepoErr("company not found", errors.New("no rows"), infra.KindNotFound)).Once()

		_, err := s.catalog.CompanyByID(context.Background(), id)
		s.ErrorIs(err, queries.ErrCompanyNotFound)
	})
}
