package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-gallery-replica/internal/adapter"
	"github.com/MKhiriev/go-gallery-replica/internal/config"
	"github.com/MKhiriev/go-gallery-replica/internal/logger"
	"github.com/MKhiriev/go-gallery-replica/internal/store"
	"github.com/MKhiriev/go-gallery-replica/internal/utils"
	"github.com/MKhiriev/go-gallery-replica/models"
)

type syncService struct {
	storage  store.ImageStorage
	adapter  adapter.CatalogAdapter
	checksum ChecksumFunc
	ids      *utils.UUIDGenerator

	pageSize         int
	maxImages        int
	interval         time.Duration
	clearSettleDelay time.Duration
	now              func() time.Time

	syncing atomic.Bool

	mu           sync.RWMutex
	lastSyncTime time.Time

	logger *logger.Logger
}

// NewSyncService builds the reconciliation engine. cfg supplies the default
// page size and image cap, the engine's re-sync interval, the settle delay
// after a clear and the checksum function.
func NewSyncService(storage store.ImageStorage, catalog adapter.CatalogAdapter, cfg config.Sync, logger *logger.Logger) SyncService {
	return &syncService{
		storage:          storage,
		adapter:          catalog,
		checksum:         checksumFor(cfg.Checksum),
		ids:              utils.NewUUIDGenerator(),
		pageSize:         cfg.PageSize,
		maxImages:        cfg.MaxImages,
		interval:         cfg.Interval,
		clearSettleDelay: cfg.ClearSettleDelay,
		now:              time.Now,
		logger:           logger,
	}
}

func (s *syncService) ShouldSync(ctx context.Context, opts models.SyncOptions) bool {
	if opts.ForceSync {
		return true
	}
	if s.syncing.Load() {
		return false
	}

	if s.storage.NeedsSync(ctx) {
		return true
	}

	return s.now().Sub(s.getLastSyncTime()) > s.interval
}

func (s *syncService) SyncImages(ctx context.Context, opts models.SyncOptions) models.SyncResult {
	if !s.syncing.CompareAndSwap(false, true) {
		logger.FromContext(ctx).Warn().
			Str("func", "syncService.SyncImages").
			Msg("sync is already running, request rejected")
		return s.failure(ctx, ErrSyncInProgress)
	}
	defer s.syncing.Store(false)

	ctx = s.withRunLogger(ctx)
	log := logger.FromContext(ctx)

	started := s.now()
	log.Info().
		Str("func", "syncService.SyncImages").
		Bool("force", opts.ForceSync).
		Bool("clear_local", opts.ClearLocal).
		Int64("dataset_id", opts.DatasetID).
		Msg("sync started")

	result, err := s.run(ctx, opts)
	if err != nil {
		log.Err(err).
			Str("func", "syncService.SyncImages").
			Dur("elapsed", s.now().Sub(started)).
			Msg("sync failed")
		return s.failure(ctx, err)
	}

	log.Info().
		Str("func", "syncService.SyncImages").
		Int("new_images", result.NewImages).
		Int("updated_images", result.UpdatedImages).
		Int("total_images", result.TotalImages).
		Dur("elapsed", s.now().Sub(started)).
		Msg("sync finished")

	return result
}

func (s *syncService) ForceSync(ctx context.Context) models.SyncResult {
	return s.SyncImages(ctx, models.SyncOptions{ForceSync: true})
}

func (s *syncService) RefreshImage(ctx context.Context, remoteID int64) models.SyncResult {
	if !s.syncing.CompareAndSwap(false, true) {
		logger.FromContext(ctx).Warn().
			Str("func", "syncService.RefreshImage").
			Msg("sync is already running, refresh rejected")
		return s.failure(ctx, ErrSyncInProgress)
	}
	defer s.syncing.Store(false)

	ctx = s.withRunLogger(ctx)
	log := logger.FromContext(ctx)

	img, err := s.adapter.GetImage(ctx, remoteID)
	if err != nil {
		log.Err(err).
			Str("func", "syncService.RefreshImage").
			Int64("remote_id", remoteID).
			Msg("failed to fetch image")
		return s.failure(ctx, fmt.Errorf("fetch image %d: %w", remoteID, err))
	}

	sum := s.checksum(img)
	result := models.SyncResult{Success: true}

	stored, err := s.storage.GetByID(ctx, models.ImageRecordID(img.ID))
	switch {
	case errors.Is(err, store.ErrImageNotFound):
		result.NewImages = 1
	case err != nil:
		return s.failure(ctx, fmt.Errorf("load local image: %w", err))
	case stored.Checksum != sum:
		result.UpdatedImages = 1
	}

	if result.NewImages+result.UpdatedImages > 0 {
		if err = s.storage.Save(ctx, []models.ImageRecord{ConvertRemoteImage(img, sum)}); err != nil {
			return s.failure(ctx, fmt.Errorf("%w: %w", ErrSaveFailed, err))
		}
	}
	result.TotalImages = s.currentTotal(ctx)

	log.Info().
		Str("func", "syncService.RefreshImage").
		Int64("remote_id", remoteID).
		Int("new_images", result.NewImages).
		Int("updated_images", result.UpdatedImages).
		Msg("image refreshed")

	return result
}

func (s *syncService) GetSyncStatus(_ context.Context) models.SyncStatus {
	return models.SyncStatus{
		IsSyncing:    s.syncing.Load(),
		LastSyncTime: s.getLastSyncTime(),
	}
}

// run performs one reconciliation while the caller holds the run lock.
func (s *syncService) run(ctx context.Context, opts models.SyncOptions) (models.SyncResult, error) {
	log := logger.FromContext(ctx)

	if !s.adapter.Ping(ctx) {
		return models.SyncResult{}, ErrRemoteUnreachable
	}

	if opts.ClearLocal {
		if err := s.storage.Clear(ctx); err != nil {
			return models.SyncResult{}, fmt.Errorf("clear local replica: %w", err)
		}
		if err := s.settle(ctx); err != nil {
			return models.SyncResult{}, err
		}
		log.Info().Str("func", "syncService.run").Msg("local replica cleared")
	}

	local, err := s.storage.GetAll(ctx)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("load local replica: %w", err)
	}
	known := make(map[string]string, len(local))
	for _, rec := range local {
		known[rec.ID] = rec.Checksum
	}

	if stats, statsErr := s.adapter.GetStats(ctx); statsErr == nil {
		log.Info().
			Str("func", "syncService.run").
			Int("local_images", len(local)).
			Int("remote_images", stats.TotalImages).
			Int("remote_datasets", stats.TotalDatasets).
			Bool("approximate", stats.Approximate).
			Msg("reconciling replica")
	}

	batch, newCount, updatedCount, err := s.collectChanges(ctx, known, opts.DatasetID, s.limits(opts))
	if err != nil {
		return models.SyncResult{}, err
	}

	if len(batch) > 0 {
		if err = s.storage.Save(ctx, batch); err != nil {
			return models.SyncResult{}, fmt.Errorf("%w: %w", ErrSaveFailed, err)
		}
	}

	finished := s.now()
	if err = s.storage.MarkSynced(ctx, finished); err != nil {
		log.Warn().Err(err).
			Str("func", "syncService.run").
			Msg("failed to record sync time in the replica")
	}
	s.setLastSyncTime(finished)

	return models.SyncResult{
		Success:       true,
		NewImages:     newCount,
		UpdatedImages: updatedCount,
		TotalImages:   s.currentTotal(ctx),
	}, nil
}

type runLimits struct {
	pageSize  int
	maxImages int
}

func (s *syncService) limits(opts models.SyncOptions) runLimits {
	l := runLimits{pageSize: s.pageSize, maxImages: s.maxImages}
	if opts.BatchSize > 0 {
		l.pageSize = opts.BatchSize
	}
	if opts.MaxImages > 0 {
		l.maxImages = opts.MaxImages
	}
	return l
}

// listPage fetches one page of the whole catalog, or of a single dataset
// when datasetID is positive.
func (s *syncService) listPage(ctx context.Context, datasetID int64, page, pageSize int) (models.RemotePage, error) {
	if datasetID > 0 {
		return s.adapter.ListDatasetImages(ctx, datasetID, page, pageSize)
	}
	return s.adapter.ListImages(ctx, page, pageSize)
}

// collectChanges pages through the catalog in order and returns the new and
// changed items converted to records. A failing page ends paging; what was
// collected so far is kept.
func (s *syncService) collectChanges(ctx context.Context, known map[string]string, datasetID int64, limits runLimits) ([]models.ImageRecord, int, int, error) {
	log := logger.FromContext(ctx)

	var (
		batch        []models.ImageRecord
		newCount     int
		updatedCount int
		seen         = make(map[string]struct{})
	)

	for page := 1; len(batch) < limits.maxImages; page++ {
		resp, err := s.listPage(ctx, datasetID, page, limits.pageSize)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, 0, 0, fmt.Errorf("sync cancelled: %w", ctxErr)
			}
			log.Warn().Err(err).
				Str("func", "syncService.collectChanges").
				Int("page", page).
				Msg("failed to fetch page, stopping")
			break
		}

		if len(resp.Images) == 0 {
			break
		}

		for _, img := range resp.Images {
			if len(batch) >= limits.maxImages {
				break
			}

			id := models.ImageRecordID(img.ID)
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}

			sum := s.checksum(img)
			stored, exists := known[id]
			switch {
			case !exists:
				newCount++
			case stored != sum:
				updatedCount++
			default:
				continue
			}

			batch = append(batch, ConvertRemoteImage(img, sum))
		}

		log.Debug().
			Str("func", "syncService.collectChanges").
			Int("page", page).
			Int("page_images", len(resp.Images)).
			Int("collected", len(batch)).
			Msg("page processed")

		if resp.TotalPages > 0 && page >= resp.TotalPages {
			break
		}
	}

	return batch, newCount, updatedCount, nil
}

// settle waits for the clear-settle delay or until ctx is done.
func (s *syncService) settle(ctx context.Context) error {
	if s.clearSettleDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.clearSettleDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("sync cancelled: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

func (s *syncService) failure(ctx context.Context, err error) models.SyncResult {
	return models.SyncResult{
		Success:     false,
		TotalImages: s.currentTotal(ctx),
		Error:       err.Error(),
	}
}

// currentTotal reads the live record count, zero when the store fails.
func (s *syncService) currentTotal(ctx context.Context) int {
	stats, err := s.storage.Stats(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncService.currentTotal").
			Msg("failed to read replica stats")
		return 0
	}
	return stats.TotalImages
}

// withRunLogger tags ctx and its logger with a fresh run id.
func (s *syncService) withRunLogger(ctx context.Context) context.Context {
	runID := s.ids.Generate()

	runLogger := s.logger.GetChildLogger()
	runLogger.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("run_id", runID)
	})

	return runLogger.WithContext(utils.WithRunID(ctx, runID))
}

func (s *syncService) getLastSyncTime() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSyncTime
}

func (s *syncService) setLastSyncTime(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSyncTime = t
}
