package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/study-board/internal/config"
	"github.com/adanyl0v/study-board/internal/repository"
	"github.com/adanyl0v/study-board/internal/repository/postgres"
	"github.com/adanyl0v/study-board/internal/repository/sqlite"
)

type storage struct {
	users  repository.UserRepository
	tasks  repository.TaskRepository
	notes  repository.NoteRepository
	pinger repository.Pinger
	close  func()
}

// openStorage connects to the configured driver and makes sure the schema
// exists.
func openStorage(ctx context.Context, logger zerolog.Logger, cfg config.Config) (*storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		pool, err := postgres.Connect(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		err = postgres.Migrate(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info().
			Str("host", cfg.Postgres.Host).
			Int("port", cfg.Postgres.Port).
			Msg("connected to postgres")

		store := postgres.NewStore(pool)
		return &storage{
			users:  store.Users,
			tasks:  store.Tasks,
			notes:  store.Notes,
			pinger: store,
			close: func() {
				store.Close()
				logger.Info().Msg("disconnected from postgres")
			},
		}, nil

	case config.StorageDriverSQLite:
		db, err := sqlite.Open(cfg.SQLite.DSN, logger)
		if err != nil {
			return nil, err
		}
		logger.Info().
			Str("dsn", cfg.SQLite.DSN).
			Msg("opened sqlite")

		store := sqlite.NewStore(db)
		return &storage{
			users:  store.Users,
			tasks:  store.Tasks,
			notes:  store.Notes,
			pinger: store,
			close: func() {
				err := store.Close()
				if err != nil {
					logger.Error().
						Err(err).
						Msg("failed to close sqlite")
					return
				}
				logger.Info().Msg("closed sqlite")
			},
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver: %q", cfg.Storage.Driver)
	}
}

func mustOpenStorage(ctx context.Context, logger zerolog.Logger, cfg config.Config) *storage {
	store, err := openStorage(ctx, logger, cfg)
	if err != nil {
		logger.Error().
			Err(err).
			Str("driver", cfg.Storage.Driver).
			Msg("failed to open storage")
		panic(err)
	}
	return store
}
