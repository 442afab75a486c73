package components

import (
	"parkcompare/internal/handler"
	"parkcompare/internal/handler/api"
	"parkcompare/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewCheckoutHandler,
		api.NewChatHandler,
		api.NewAuthHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
