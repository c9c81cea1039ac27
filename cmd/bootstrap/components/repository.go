package components

import (
	"log/slog"
	"time"

	"venue-pricing/internal/infra/catalogstore"
	"venue-pricing/internal/pkg/config"
	"venue-pricing/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			NewCatalogStore,
			fx.As(new(usecase.CatalogRepository)),
		),
	),
)

func NewCatalogStore(pool *pgxpool.Pool, logger *slog.Logger, cfg config.Config) *catalogstore.Store {
	backoff, err := time.ParseDuration(cfg.DB.LoadBackoff)
	if err != nil {
		backoff = 500 * time.Millisecond
	}
	return catalogstore.New(pool, logger, cfg.DB.LoadRetries, backoff)
}
