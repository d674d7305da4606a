package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/study-board/internal/config"
)

func newDefaultLogger() zerolog.Logger {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimestampFieldName = "timestamp"

	logger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Int("pid", os.Getpid()).
		Logger()

	logger.Info().Msg("initialized default logger")
	return logger
}

// newApplicationLogger re-levels logger for env and switches local runs to
// a console writer.
func newApplicationLogger(logger zerolog.Logger, env string, out io.Writer) (zerolog.Logger, error) {
	w := out
	switch env {
	case config.EnvDev:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case config.EnvProd:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case config.EnvLocal:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)

		consoleWriter := zerolog.NewConsoleWriter()
		consoleWriter.TimeFormat = time.DateTime
		consoleWriter.Out = out
		w = consoleWriter
	default:
		return logger, fmt.Errorf("unknown env: %s", env)
	}

	logger = logger.Output(w)
	logger.Info().
		Str("env", env).
		Msg("initialized application logger")
	return logger, nil
}

func mustInitApplicationLogger(logger zerolog.Logger, env string) zerolog.Logger {
	appLogger, err := newApplicationLogger(logger, env, os.Stdout)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to initialize application logger")
		panic(err)
	}
	return appLogger
}
