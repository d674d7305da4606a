// Package app wires configuration, storage, services and the HTTP server.
package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/study-board/internal/config"
	"github.com/adanyl0v/study-board/internal/delivery/http/v1"
	"github.com/adanyl0v/study-board/internal/services"
	"github.com/adanyl0v/study-board/internal/translator"
)

func Run() {
	logger := newDefaultLogger()
	cfg := mustReadConfig(logger)
	logger = mustInitApplicationLogger(logger, cfg.Env)

	ctx := context.Background()
	store := mustOpenStorage(ctx, logger, cfg)
	defer store.close()

	handler, err := newHandler(ctx, logger, cfg, store)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to initialize handler")
		panic(err)
	}

	mustListenAndServeHTTP(logger, cfg.HTTP, newRouter(cfg.Env, cfg.HTTP, handler))
}

// newHandler builds the services over store, seeds the user table if it is
// empty and returns the HTTP handler.
func newHandler(ctx context.Context, logger zerolog.Logger, cfg config.Config, store *storage) (v1.Handler, error) {
	seeds, err := cfg.Seeds()
	if err != nil {
		return nil, err
	}

	userService := services.NewUserService(logger, store.users)
	seeded, err := userService.Seed(ctx, seeds)
	if err != nil {
		return nil, err
	}
	if seeded {
		logger.Info().
			Int("count", len(seeds)).
			Msg("seeded users")
	}

	tr, err := translator.New(logger, cfg.I18n.DefaultLanguage)
	if err != nil {
		return nil, err
	}

	return v1.New(
		logger,
		tr,
		store.pinger,
		services.NewAuthService(logger, store.users, cfg.JWT.Issuer, []byte(cfg.JWT.SigningKey), cfg.JWT.TTL),
		userService,
		services.NewTaskService(logger, store.tasks, store.users),
		services.NewNoteService(logger, store.notes),
	), nil
}
