package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/note-keeper/internal/config"
	"github.com/MKhiriev/note-keeper/internal/handler"
	"github.com/MKhiriev/note-keeper/internal/logger"
	"github.com/MKhiriev/note-keeper/internal/metrics"
	"github.com/MKhiriev/note-keeper/internal/server"
	"github.com/MKhiriev/note-keeper/internal/service"
	"github.com/MKhiriev/note-keeper/internal/store"
	"github.com/MKhiriev/note-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("note-keeper-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("note-keeper-server", cfg.App.LogLevel)
	zerolog.DefaultContextLogger = &log.Logger

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	m := metrics.NewMetrics()
	if err = m.RegisterDB(storages.DB().DB, "notes"); err != nil {
		log.Fatal().Err(err).Msg("error registering database metrics")
	}

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = services.AuthService.EnsureSeedAccount(ctx); err != nil {
		log.Fatal().Err(err).Msg("error creating seed account")
	}

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		storages.Close()
		os.Exit(1)
	}
}
