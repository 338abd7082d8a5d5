package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-gallery-replica/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/image_storage_mock.go -package=mock

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ImageRepository is the SQL-level access to the replica tables.
type ImageRepository interface {
	// GetAllImages returns every record in insertion order.
	GetAllImages(ctx context.Context) ([]models.ImageRecord, error)

	// GetImageByID returns [ErrImageNotFound] when id is unknown.
	GetImageByID(ctx context.Context, id string) (models.ImageRecord, error)

	// SaveImages upserts records by id in one transaction, stamps
	// last_updated with writtenAt and recomputes the stats row. Either every
	// record is written or none is.
	SaveImages(ctx context.Context, records []models.ImageRecord, writtenAt time.Time) (models.ReplicaStats, error)

	// ClearImages deletes every record and the stats row in one transaction.
	ClearImages(ctx context.Context) error

	CountImages(ctx context.Context) (int, error)

	// CountImagesBy groups record counts by one of the grouping columns
	// ("source_website" or "format").
	CountImagesBy(ctx context.Context, column string) (map[string]int, error)

	// GetStats returns the stored stats row or zero stats when none exists.
	GetStats(ctx context.Context) (models.ReplicaStats, error)

	// SetLastSyncTime records a successful sync and refreshes the counts.
	SetLastSyncTime(ctx context.Context, at time.Time) (models.ReplicaStats, error)
}

// ImageStorage is the replica store used by the services. It combines the
// repository with the volatile read cache and the staleness policy.
type ImageStorage interface {
	// GetAll returns every record. An empty replica yields an empty slice.
	GetAll(ctx context.Context) ([]models.ImageRecord, error)

	// Resident returns the cached full snapshot without touching the
	// database. The slice is shared and must not be modified.
	Resident() ([]models.ImageRecord, bool)

	GetByID(ctx context.Context, id string) (models.ImageRecord, error)

	// Save upserts the batch atomically. The read cache is invalid before
	// Save returns.
	Save(ctx context.Context, records []models.ImageRecord) error

	// Clear erases the replica and resets stats. The read cache is invalid
	// before Clear returns.
	Clear(ctx context.Context) error

	// Stats reports the live record count even if the stats row lags.
	Stats(ctx context.Context) (models.ReplicaStats, error)

	// NeedsSync is true when the replica is empty, has never been synced,
	// or the last sync is older than the staleness threshold.
	NeedsSync(ctx context.Context) bool

	// MarkSynced records a successful reconciliation run.
	MarkSynced(ctx context.Context, at time.Time) error

	// CountBy groups record counts by "source_website" or "format".
	CountBy(ctx context.Context, column string) (map[string]int, error)
}
