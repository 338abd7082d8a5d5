package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-gallery-replica/internal/config"
	"github.com/MKhiriev/go-gallery-replica/internal/logger"
	"github.com/MKhiriev/go-gallery-replica/internal/server"
	"github.com/MKhiriev/go-gallery-replica/internal/service"
	"github.com/MKhiriev/go-gallery-replica/models"
)

type App struct {
	syncService service.SyncService
	syncJob     *service.SyncJob
	workers     Scheduler
	server      server.Server
	cfg         config.Workers

	logger *logger.Logger
}

func NewApp(services *service.Services, workers Scheduler, srv server.Server, cfg config.Workers, logger *logger.Logger) *App {
	return &App{
		syncService: services.SyncService,
		syncJob:     services.SyncJob,
		workers:     workers,
		server:      srv,
		cfg:         cfg,
		logger:      logger,
	}
}

func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(a.logger.WithContext(ctx))

	a.syncJob.Bind(gctx)
	if err := a.workers.Add(a.cfg.SyncSchedule, a.syncJob); err != nil {
		return fmt.Errorf("schedule sync job: %w", err)
	}

	g.Go(func() error {
		a.startupSync(gctx)
		return nil
	})
	g.Go(func() error {
		return a.workers.Run(gctx)
	})
	g.Go(func() error {
		return a.server.Run(gctx)
	})

	err := g.Wait()
	a.logger.Info().Err(err).Msg("gallery replica stopped")
	return err
}

// startupSync brings a stale or empty replica up to date without blocking
// the API.
func (a *App) startupSync(ctx context.Context) {
	if !a.syncService.ShouldSync(ctx, models.SyncOptions{}) {
		a.logger.Info().Msg("replica is fresh, skipping startup sync")
		return
	}

	result := a.syncService.SyncImages(ctx, models.SyncOptions{})
	if !result.Success {
		a.logger.Warn().
			Str("func", "App.startupSync").
			Str("error", result.Error).
			Msg("startup sync did not succeed, serving the existing replica")
		return
	}

	a.logger.Info().
		Int("new_images", result.NewImages).
		Int("updated_images", result.UpdatedImages).
		Int("total_images", result.TotalImages).
		Msg("startup sync finished")
}
