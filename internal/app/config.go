package app

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/study-board/internal/config"
)

const configPathEnv = "CONFIG_PATH"

func mustReadConfig(logger zerolog.Logger) config.Config {
	path := os.Getenv(configPathEnv)
	cfg, err := config.NewReader(path).Read()
	if err != nil {
		logger.Error().
			Err(err).
			Str("path", path).
			Msg("failed to read config")
		panic(err)
	}
	logger.Info().
		Str("env", cfg.Env).
		Str("storage", cfg.Storage.Driver).
		Msg("read config")
	return cfg
}
