package bootstrap

import (
	"venue-pricing/internal/pkg/config"
	"venue-pricing/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		func(cfg config.Config) *jwt.Service {
			return jwt.NewService(cfg.JWT.Secret)
		},
	),
)
