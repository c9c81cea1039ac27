package bootstrap

import (
	"log/slog"

	"venue-pricing/internal/handler/middleware"
	"venue-pricing/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		func(logger *middleware.Logger) *slog.Logger {
			return logger.GetSlogLogger()
		},
	),
)

func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}
