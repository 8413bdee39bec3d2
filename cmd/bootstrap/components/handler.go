package components

import (
	"lionrewards/internal/handler"
	"lionrewards/internal/handler/api"
	"lionrewards/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPointsHandler,
		api.NewCartHandler,
		api.NewHistoryHandler,
		api.NewVideoTaskHandler,
		api.NewVoucherHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
