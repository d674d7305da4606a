package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/study-board/internal/config"
	"github.com/adanyl0v/study-board/internal/delivery/http/v1"
)

func newRouter(env string, httpCfg config.HTTPConfig, handler v1.Handler) *gin.Engine {
	if env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(handler.HandleLoggerMiddleware)
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     httpCfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept-Language"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.NoRoute(handler.HandleNoRoute)

	v1.RegisterRoutes(router, handler)
	return router
}

func mustListenAndServeHTTP(logger zerolog.Logger, httpCfg config.HTTPConfig, router http.Handler) {
	server := &http.Server{
		Addr:              net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler:           router,
		ReadHeaderTimeout: httpCfg.ReadHeaderTimeout,
	}

	go func() {
		logger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// kill (no params) sends SIGTERM, kill -2 sends SIGINT.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	logger.Info().Msg("shut down http server")
}
