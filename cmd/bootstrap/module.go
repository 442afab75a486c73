package bootstrap

import (
	"parkcompare/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	KVModule,
	JWTModule,
	PaymentModule,
	EventsModule,
	ChatModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
