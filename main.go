package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"district-server/config"
	"district-server/di"
	"district-server/observability"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup runs before exiting.
func run() int {
	cfg := config.Load()

	logger := observability.NewLogger(cfg.AppEnv)
	log.Logger = logger
	zerolog.DefaultContextLogger = &log.Logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := di.NewContainer(ctx, cfg, logger)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize container")
		return 1
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close container")
		}
	}()

	if err := container.SheltersIndexerService.IndexShelters(ctx); err != nil {
		log.Error().Err(err).Msg("initial shelter index failed")
	}
	if err := container.SheltersIndexerService.StartPeriodicJob(ctx, cfg.ShelterInterval); err != nil {
		log.Error().Err(err).Msg("failed to start shelter index job")
		return 1
	}

	if err := container.DistrictHttpServer.Start(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return 1
	}
	return 0
}
