package bootstrap

import (
	"parkcompare/internal/infra/payment"
	"parkcompare/internal/pkg/config"
	"parkcompare/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(
			NewStripeProvider,
			fx.As(new(commands.PaymentProvider)),
		),
	),
)

func NewStripeProvider(cfg config.Config) *payment.StripeProvider {
	return payment.NewStripeProvider(cfg.Stripe)
}
