package bootstrap

import (
	"context"
	"log/slog"

	"parkcompare/internal/infra/events"
	"parkcompare/internal/pkg/config"
	"parkcompare/internal/usecase/commands"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		fx.Annotate(
			NewEventProducer,
			fx.As(new(commands.EventPublisher)),
		),
	),
)

func NewEventProducer(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *events.Producer {
	producer := events.NewProducer(cfg.Kafka, logger)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return producer.Close()
		},
	})

	return producer
}
