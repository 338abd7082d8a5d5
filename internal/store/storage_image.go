package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-gallery-replica/internal/logger"
	"github.com/MKhiriev/go-gallery-replica/models"
)

type imageStorage struct {
	repo       ImageRepository
	cache      *ReadCache
	staleAfter time.Duration
	now        func() time.Time
	logger     *logger.Logger
}

// NewImageStorage combines repo with cache. Records synced longer than
// staleAfter ago make [ImageStorage.NeedsSync] report true.
func NewImageStorage(repo ImageRepository, cache *ReadCache, staleAfter time.Duration, log *logger.Logger) ImageStorage {
	return &imageStorage{
		repo:       repo,
		cache:      cache,
		staleAfter: staleAfter,
		now:        time.Now,
		logger:     log,
	}
}

func (s *imageStorage) GetAll(ctx context.Context) ([]models.ImageRecord, error) {
	if snapshot, ok := s.cache.Get(); ok {
		return cloneRecords(snapshot), nil
	}

	gen := s.cache.Generation()
	records, err := s.repo.GetAllImages(ctx)
	if err != nil {
		return nil, err
	}

	if !s.cache.Put(gen, records) {
		logger.FromContext(ctx).Debug().
			Str("func", "imageStorage.GetAll").
			Msg("replica changed while loading, snapshot not cached")
	}

	return cloneRecords(records), nil
}

func (s *imageStorage) Resident() ([]models.ImageRecord, bool) {
	return s.cache.Get()
}

func (s *imageStorage) GetByID(ctx context.Context, id string) (models.ImageRecord, error) {
	if snapshot, ok := s.cache.Get(); ok {
		for _, rec := range snapshot {
			if rec.ID == id {
				return rec.Clone(), nil
			}
		}
		return models.ImageRecord{}, ErrImageNotFound
	}

	return s.repo.GetImageByID(ctx, id)
}

func (s *imageStorage) Save(ctx context.Context, records []models.ImageRecord) error {
	if len(records) == 0 {
		return nil
	}

	// invalidate even when the transaction failed: the caller must not keep
	// reading a snapshot taken before the attempt
	defer s.cache.Invalidate()

	_, err := s.repo.SaveImages(ctx, records, s.now())
	return err
}

func (s *imageStorage) Clear(ctx context.Context) error {
	defer s.cache.Invalidate()

	return s.repo.ClearImages(ctx)
}

func (s *imageStorage) Stats(ctx context.Context) (models.ReplicaStats, error) {
	stats, err := s.repo.GetStats(ctx)
	if err != nil {
		return models.ReplicaStats{}, err
	}

	total, err := s.repo.CountImages(ctx)
	if err != nil {
		return models.ReplicaStats{}, err
	}
	stats.TotalImages = total
	stats.StorageSize = int64(total) * models.BytesPerImage

	return stats, nil
}

func (s *imageStorage) NeedsSync(ctx context.Context) bool {
	log := logger.FromContext(ctx)

	stats, err := s.Stats(ctx)
	if err != nil {
		log.Err(err).Str("func", "imageStorage.NeedsSync").Msg("cannot read replica stats, assuming sync is needed")
		return true
	}

	if stats.TotalImages == 0 || stats.LastSyncTime.IsZero() {
		return true
	}

	return s.now().Sub(stats.LastSyncTime) > s.staleAfter
}

func (s *imageStorage) MarkSynced(ctx context.Context, at time.Time) error {
	_, err := s.repo.SetLastSyncTime(ctx, at)
	return err
}

func (s *imageStorage) CountBy(ctx context.Context, column string) (map[string]int, error) {
	return s.repo.CountImagesBy(ctx, column)
}

func cloneRecords(records []models.ImageRecord) []models.ImageRecord {
	out := make([]models.ImageRecord, len(records))
	for i, rec := range records {
		out[i] = rec.Clone()
	}
	return out
}
