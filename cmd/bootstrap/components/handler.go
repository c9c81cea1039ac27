package components

import (
	"venue-pricing/internal/handler"
	"venue-pricing/internal/handler/api"
	"venue-pricing/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewEstimateHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
