// Command hydrocalc-server serves the hydropower potential calculator
// over HTTP.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/aquawatt/hydrocalc/internal/config"
	"github.com/aquawatt/hydrocalc/internal/server"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("component", "hydrocalc-server").Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("loading configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal().Err(err).Str("log_level", cfg.LogLevel).Msg("invalid log level")
	}
	logger = logger.Level(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger, prometheus.DefaultRegisterer)
	if err := srv.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
	logger.Info().Msg("server stopped")
}
