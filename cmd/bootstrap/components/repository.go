package components

import (
	"parkcompare/internal/infra/kv"
	"parkcompare/internal/infra/pg"
	"parkcompare/internal/pkg/config"
	"parkcompare/internal/usecase/commands"
	"parkcompare/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Catalog lives in Postgres.
		fx.Annotate(
			pg.NewCompanyRepository,
			fx.As(new(queries.CompanyReader)),
			fx.As(new(commands.CompanyWriter)),
		),
		fx.Annotate(
			pg.NewLocationRepository,
			fx.As(new(queries.LocationReader)),
			fx.As(new(commands.LocationWriter)),
		),
		fx.Annotate(
			pg.NewPromoRepository,
			fx.As(new(queries.PromoReader)),
			fx.As(new(queries.PromoLister)),
			fx.As(new(commands.PromoWriter)),
		),
		fx.Annotate(
			pg.NewAdminUserRepository,
			fx.As(new(commands.AdminUserReader)),
		),

		// Bookings and support cases live in Redis.
		fx.Annotate(
			kv.NewBookingStore,
			fx.As(new(commands.BookingWriter)),
			fx.As(new(queries.BookingReader)),
		),
		fx.Annotate(
			kv.NewCaseStore,
			fx.As(new(commands.CaseWriter)),
			fx.As(new(queries.CaseReader)),
		),
		fx.Annotate(
			NewCatalogCache,
			fx.As(new(queries.CompanyCache)),
			fx.As(new(commands.CacheInvalidator)),
		),
	),
)

func NewCatalogCache(client *redis.Client, cfg config.Config) *kv.CatalogCache {
	return kv.NewCatalogCache(client, cfg.Redis.CatalogTTL)
}
