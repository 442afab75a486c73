package queries

import (
	"context"
	"log/slog"

	"parkcompare/internal/domain/catalog"
	"parkcompare/internal/domain/promo"
	"parkcompare/internal/infra"
	"parkcompare/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCompanyNotFound   = errs.New("company not found")
	ErrLocationNotFound  = errs.New("location not found")
	ErrCatalogReadFailed = errs.New("catalog read failed")
)

type CompanyReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Company, error)
	FindByAirport(ctx context.Context, airport string) ([]*catalog.Company, error)
	FindAll(ctx context.Context) ([]*catalog.Company, error)
}

type LocationReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Location, error)
	FindAll(ctx context.Context) ([]*catalog.Location, error)
}

type PromoLister interface {
	FindAll(ctx context.Context) ([]*promo.Promo, error)
}

// CompanyCache is the warm per-airport listing in front of Postgres.
type CompanyCache interface {
	GetCompanies(ctx context.Context, airport string) ([]*catalog.Company, error)
	SetCompanies(ctx context.Context, airport string, companies []*catalog.Company) error
}

type CatalogQueries interface {
	CompaniesByAirport(ctx context.Context, airport string) ([]*catalog.Company, error)
	AllCompanies(ctx context.Context) ([]*catalog.Company, error)
	CompanyByID(ctx context.Context, id uuid.UUID) (*catalog.Company, error)
	AllLocations(ctx context.Context) ([]*catalog.Location, error)
	AllPromos(ctx context.Context) ([]*promo.Promo, error)
}

type catalogQueriesImpl struct {
	companies CompanyReader
	locations LocationReader
	promos    PromoLister
	cache     CompanyCache
	logger    *slog.Logger
}

func NewCatalogQueries(
	companies CompanyReader,
	locations LocationReader,
	promos PromoLister,
	cache CompanyCache,
	logger *slog.Logger,
) CatalogQueries {
	return &catalogQueriesImpl{
		companies: companies,
		locations: locations,
		promos:    promos,
		cache:     cache,
		logger:    logger,
	}
}

// CompaniesByAirport serves the compare page. Cache problems are logged
// and treated as misses so the page never fails on a cold or sick cache.
func (q *catalogQueriesImpl) CompaniesByAirport(ctx context.Context, airport string) ([]*catalog.Company, error) {
	cached, err := q.cache.GetCompanies(ctx, airport)
	if err != nil {
		q.logger.Warn("catalog cache read failed", slog.String("airport", airport), slog.String("error", err.Error()))
	}
	if cached != nil {
		return cached, nil
	}

	companies, err := q.companies.FindByAirport(ctx, airport)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogReadFailed)
	}

	if err := q.cache.SetCompanies(ctx, airport, companies); err != nil {
		q.logger.Warn("catalog cache write failed", slog.String("airport", airport), slog.String("error", err.Error()))
	}
	return companies, nil
}

func (q *catalogQueriesImpl) AllCompanies(ctx context.Context) ([]*catalog.Company, error) {
	companies, err := q.companies.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogReadFailed)
	}
	return companies, nil
}

func (q *catalogQueriesImpl) CompanyByID(ctx context.Context, id uuid.UUID) (*catalog.Company, error) {
	company, err := q.companies.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, errs.Mark(err, ErrCatalogReadFailed)
	}
	return company, nil
}

func (q *catalogQueriesImpl) AllLocations(ctx context.Context) ([]*catalog.Location, error) {
	locations, err := q.locations.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogReadFailed)
	}
	return locations, nil
}

func (q *catalogQueriesImpl) AllPromos(ctx context.Context) ([]*promo.Promo, error) {
	promos, err := q.promos.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogReadFailed)
	}
	return promos, nil
}
