package components

import (
	"context"
	"log/slog"

	"dropengine/internal/infra/store"
	"dropengine/internal/pkg/config"
	"dropengine/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSnapshotStore,
	),
)

// NewSnapshotStore picks the store from STORE_DRIVER. The postgres table is
// created on start, before the engine restores from it.
func NewSnapshotStore(lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) usecase.SnapshotStore {
	if cfg.Store.Driver == config.StoreDriverPostgres && pool != nil {
		pg := store.NewPostgresStore(pool, cfg.Store.SnapshotKey, logger)
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return pg.EnsureSchema(ctx)
			},
		})
		logger.Info("Using PostgreSQL snapshot store", "key", cfg.Store.SnapshotKey)
		return pg
	}

	logger.Info("Using file snapshot store", "path", cfg.Store.FilePath)
	return store.NewFileStore(cfg.Store.FilePath, logger)
}
