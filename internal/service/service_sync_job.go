package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-gallery-replica/internal/logger"
	"github.com/MKhiriev/go-gallery-replica/models"
)

// SyncJobName is the scheduler key of the background sync job.
const SyncJobName = "sync-images"

// SyncJob runs a reconciliation when one is due. It satisfies cron.Job, so
// the scheduler decides when Run fires and ShouldSync decides whether it
// does any work.
type SyncJob struct {
	syncService SyncService

	mu  sync.Mutex
	ctx context.Context

	logger *logger.Logger
}

// NewSyncJob creates a job bound to context.Background until Bind is called.
func NewSyncJob(syncService SyncService, logger *logger.Logger) *SyncJob {
	return &SyncJob{
		syncService: syncService,
		ctx:         context.Background(),
		logger:      logger,
	}
}

// Bind makes later runs use ctx. Runs started after ctx is done are skipped.
func (j *SyncJob) Bind(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.ctx = ctx
}

func (j *SyncJob) Name() string {
	return SyncJobName
}

// Run implements cron.Job.
func (j *SyncJob) Run() {
	j.mu.Lock()
	ctx := j.ctx
	j.mu.Unlock()

	if ctx.Err() != nil {
		return
	}
	ctx = j.logger.WithContext(ctx)

	if !j.syncService.ShouldSync(ctx, models.SyncOptions{}) {
		j.logger.Debug().Str("func", "SyncJob.Run").Msg("replica is fresh, skipping sync")
		return
	}

	result := j.syncService.SyncImages(ctx, models.SyncOptions{})
	if !result.Success {
		j.logger.Warn().
			Str("func", "SyncJob.Run").
			Str("error", result.Error).
			Int("total_images", result.TotalImages).
			Msg("scheduled sync did not succeed")
	}
}
