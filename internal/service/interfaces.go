package service

import (
	"context"

	"github.com/MKhiriev/go-gallery-replica/models"
)

// SyncService reconciles the local replica with the remote catalog. At most
// one run is in flight per instance.
type SyncService interface {
	// ShouldSync reports whether a run is due. It is true when forced, false
	// while a run is in flight, and otherwise true when the store asks for a
	// sync or the last successful run is older than the sync interval.
	ShouldSync(ctx context.Context, opts models.SyncOptions) bool

	// SyncImages performs one run. Failures, including a rejected concurrent
	// call, are reported through the result and never as a Go error.
	SyncImages(ctx context.Context, opts models.SyncOptions) models.SyncResult

	// ForceSync runs SyncImages with ForceSync set.
	ForceSync(ctx context.Context) models.SyncResult

	// RefreshImage re-fetches one catalog item and saves it when it is new
	// or its checksum changed. It takes the same single-run lock as
	// SyncImages and does not count as a full sync.
	RefreshImage(ctx context.Context, remoteID int64) models.SyncResult

	GetSyncStatus(ctx context.Context) models.SyncStatus
}

// ImageService answers read queries over the replica. Storage read failures
// degrade to empty results.
type ImageService interface {
	// Sample returns min(n, total) distinct records chosen uniformly at
	// random.
	Sample(ctx context.Context, n int) []models.ImageRecord

	// Search returns the records matching every whitespace-separated keyword
	// of query, best matches first.
	Search(ctx context.Context, query string) models.SearchResult

	GetByID(ctx context.Context, id string) (models.ImageRecord, error)

	// Report summarises the replica for display.
	Report(ctx context.Context) (models.ReplicaReport, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SyncServiceWrapper defines middleware composition for SyncService.
// Implementations wrap an existing SyncService to add behavior such as
// validating.
type SyncServiceWrapper interface {
	Wrap(SyncService) SyncService // returns a decorated SyncService applying additional behavior
}
