package commands

import (
	"context"
	"log/slog"

	"parkcompare/internal/domain/catalog"
	"parkcompare/internal/domain/promo"
	reqdto "parkcompare/internal/handler/dto/request"
	"parkcompare/internal/infra"
	"parkcompare/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCompanyNotFound  = errs.New("company not found")
	ErrLocationNotFound = errs.New("location not found")
	ErrPromoNotFound    = errs.New("promo code not found")
	ErrDuplicatePromo   = errs.New("promo code already exists")
)

type CatalogCommands interface {
	CreateCompany(ctx context.Context, req reqdto.CompanyRequest) (*catalog.Company, error)
	UpdateCompany(ctx context.Context, id uuid.UUID, req reqdto.CompanyRequest) (*catalog.Company, error)
	DeleteCompany(ctx context.Context, id uuid.UUID) error

	CreateLocation(ctx context.Context, req reqdto.LocationRequest) (*catalog.Location, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, req reqdto.LocationRequest) (*catalog.Location, error)
	DeleteLocation(ctx context.Context, id uuid.UUID) error

	CreatePromo(ctx context.Context, req reqdto.PromoRequest) (*promo.Promo, error)
	UpdatePromo(ctx context.Context, id uuid.UUID, req reqdto.PromoRequest) (*promo.Promo, error)
	DeletePromo(ctx context.Context, id uuid.UUID) error
}

type catalogCommandsImpl struct {
	companies CompanyWriter
	locations LocationWriter
	promos    PromoWriter
	cache     CacheInvalidator
	logger    *slog.Logger
}

func NewCatalogCommands(
	companies CompanyWriter,
	locations LocationWriter,
	promos PromoWriter,
	cache CacheInvalidator,
	logger *slog.Logger,
) CatalogCommands {
	return &catalogCommandsImpl{
		companies: companies,
		locations: locations,
		promos:    promos,
		cache:     cache,
		logger:    logger,
	}
}

func (c *catalogCommandsImpl) CreateCompany(ctx context.Context, req reqdto.CompanyRequest) (*catalog.Company, error) {
	company, err := req.ToDomain(uuid.New())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := c.companies.Create(ctx, company); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	c.invalidate(ctx, company.Airport)
	return company, nil
}

func (c *catalogCommandsImpl) UpdateCompany(ctx context.Context, id uuid.UUID, req reqdto.CompanyRequest) (*catalog.Company, error) {
	existing, err := c.companies.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	company, err := req.ToDomain(id)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := c.companies.Update(ctx, company); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// An airport change leaves a stale listing behind on the old airport.
	c.invalidate(ctx, existing.Airport)
	if company.Airport != existing.Airport {
		c.invalidate(ctx, company.Airport)
	}
	return company, nil
}

func (c *catalogCommandsImpl) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	existing, err := c.companies.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCompanyNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.companies.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCompanyNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	c.invalidate(ctx, existing.Airport)
	return nil
}

func (c *catalogCommandsImpl) CreateLocation(ctx context.Context, req reqdto.LocationRequest) (*catalog.Location, error) {
	location, err := req.ToDomain(uuid.New())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := c.locations.Create(ctx, location); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return location, nil
}

func (c *catalogCommandsImpl) UpdateLocation(ctx context.Context, id uuid.UUID, req reqdto.LocationRequest) (*catalog.Location, error) {
	location, err := req.ToDomain(id)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := c.locations.Update(ctx, location); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return location, nil
}

func (c *catalogCommandsImpl) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	if err := c.locations.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrLocationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *catalogCommandsImpl) CreatePromo(ctx context.Context, req reqdto.PromoRequest) (*promo.Promo, error) {
	p, err := req.ToDomain(uuid.New())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := c.promos.Create(ctx, p); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicatePromo
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return p, nil
}

func (c *catalogCommandsImpl) UpdatePromo(ctx context.Context, id uuid.UUID, req reqdto.PromoRequest) (*promo.Promo, error) {
	p, err := req.ToDomain(id)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := c.promos.Update(ctx, p); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPromoNotFound
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicatePromo
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return p, nil
}

func (c *catalogCommandsImpl) DeletePromo(ctx context.Context, id uuid.UUID) error {
	if err := c.promos.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPromoNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *catalogCommandsImpl) invalidate(ctx context.Context, airport string) {
	if err := c.cache.InvalidateAirport(ctx, airport); err != nil {
		c.logger.Warn("failed to invalidate catalog cache",
			slog.String("airport", airport),
			slog.String("error", err.Error()),
		)
	}
}
