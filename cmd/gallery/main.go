package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-gallery-replica/internal/adapter"
	"github.com/MKhiriev/go-gallery-replica/internal/client"
	"github.com/MKhiriev/go-gallery-replica/internal/config"
	"github.com/MKhiriev/go-gallery-replica/internal/handler"
	"github.com/MKhiriev/go-gallery-replica/internal/logger"
	"github.com/MKhiriev/go-gallery-replica/internal/server"
	"github.com/MKhiriev/go-gallery-replica/internal/service"
	"github.com/MKhiriev/go-gallery-replica/internal/store"
	"github.com/MKhiriev/go-gallery-replica/internal/workers"
	"github.com/MKhiriev/go-gallery-replica/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	bootLog := logger.NewLogger("gallery")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log, logCloser := logger.NewFileLogger("gallery", cfg.Logging)
	defer logCloser.Close()

	log.Debug().Any("config", cfg).Msg("received configs")

	if err = run(context.Background(), cfg, log); err != nil {
		log.Error().Err(err).Msg("gallery replica exited with error")
		logCloser.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	catalog, err := adapter.NewHTTPCatalogAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("error creating catalog adapter: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, cfg.Sync, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, catalog, *cfg, build, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	app := client.NewApp(services, workers.NewWorkers(log), srv, cfg.Workers, log)
	return app.Run(ctx)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
