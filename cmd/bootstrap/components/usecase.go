package components

import (
	"parkcompare/internal/domain/booking"
	"parkcompare/internal/pkg/clock"
	"parkcompare/internal/usecase/commands"
	"parkcompare/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	booking.NewFactory,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewQuoteQueries,
		queries.NewBookingQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCatalogCommands,
		commands.NewCheckoutCommands,
		commands.NewBookingCommands,
		commands.NewChatCommands,
		commands.NewAuthCommands,
	),
)
