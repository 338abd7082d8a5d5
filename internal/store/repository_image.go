package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-gallery-replica/internal/logger"
	"github.com/MKhiriev/go-gallery-replica/models"
)

type imageRepository struct {
	*DB
	logger *logger.Logger
}

// NewImageRepository returns the SQLite-backed [ImageRepository].
func NewImageRepository(db *DB, logger *logger.Logger) ImageRepository {
	return &imageRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanImage(row rowScanner) (models.ImageRecord, error) {
	var (
		rec         models.ImageRecord
		lastUpdated int64
	)

	err := row.Scan(
		&rec.ID,
		&rec.RemoteID,
		&rec.DatasetID,
		&rec.URL,
		&rec.Title,
		&rec.Description,
		&rec.Date,
		&rec.Tags,
		&rec.Width,
		&rec.Height,
		&rec.Format,
		&rec.SourceWebsite,
		&rec.Filename,
		&rec.OriginalFilename,
		&rec.TypeTags,
		&rec.PhraseTags,
		&rec.Checksum,
		&lastUpdated,
	)
	if err != nil {
		return models.ImageRecord{}, err
	}
	rec.LastUpdated = models.FromEpochMillis(lastUpdated)

	return rec, nil
}

func (r *imageRepository) GetAllImages(ctx context.Context) ([]models.ImageRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllImagesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "imageRepository.GetAllImages").
			Msg("failed to execute query for getting all images")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	images := make([]models.ImageRecord, 0)
	for rows.Next() {
		rec, scanErr := scanImage(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "imageRepository.GetAllImages").
				Msg("failed to scan image row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		images = append(images, rec)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "imageRepository.GetAllImages").
			Msg("error during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return images, nil
}

func (r *imageRepository) GetImageByID(ctx context.Context, id string) (models.ImageRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectImageByIDQuery(id)
	if err != nil {
		return models.ImageRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rec, err := scanImage(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ImageRecord{}, ErrImageNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "imageRepository.GetImageByID").
			Str("id", id).
			Msg("failed to scan image row")
		return models.ImageRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return rec, nil
}

func (r *imageRepository) SaveImages(ctx context.Context, records []models.ImageRecord, writtenAt time.Time) (models.ReplicaStats, error) {
	var stats models.ReplicaStats

	err := r.retry(ctx, func() error {
		var txErr error
		stats, txErr = r.saveImagesTx(ctx, records, writtenAt)
		return txErr
	})
	if err != nil {
		if r.classify(err) == StorageFull {
			return models.ReplicaStats{}, fmt.Errorf("%w: %w", ErrStorageQuotaExceeded, err)
		}
		return models.ReplicaStats{}, err
	}

	return stats, nil
}

func (r *imageRepository) saveImagesTx(ctx context.Context, records []models.ImageRecord, writtenAt time.Time) (models.ReplicaStats, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "imageRepository.SaveImages").
			Int("records_count", len(records)).
			Msg("failed to begin transaction")
		return models.ReplicaStats{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for start := 0; start < len(records); start += saveChunkSize {
		end := min(start+saveChunkSize, len(records))

		query, args, buildErr := buildUpsertImagesQuery(records[start:end], writtenAt)
		if buildErr != nil {
			return models.ReplicaStats{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			log.Err(execErr).
				Str("func", "imageRepository.SaveImages").
				Int("chunk_start", start).
				Int("chunk_end", end).
				Msg("failed to upsert images")
			return models.ReplicaStats{}, fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	total, err := countImages(ctx, tx)
	if err != nil {
		return models.ReplicaStats{}, err
	}

	stats := models.ReplicaStats{
		TotalImages:  total,
		LastSyncTime: time.UnixMilli(writtenAt.UnixMilli()),
		StorageSize:  int64(total) * models.BytesPerImage,
	}
	if err = upsertStats(ctx, tx, stats); err != nil {
		log.Err(err).
			Str("func", "imageRepository.SaveImages").
			Msg("failed to update replica stats")
		return models.ReplicaStats{}, err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "imageRepository.SaveImages").
			Int("records_count", len(records)).
			Msg("failed to commit transaction")
		return models.ReplicaStats{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Debug().
		Str("func", "imageRepository.SaveImages").
		Int("records_count", len(records)).
		Int("total_images", total).
		Msg("images saved")

	return stats, nil
}

func (r *imageRepository) ClearImages(ctx context.Context) error {
	log := logger.FromContext(ctx)

	return r.retry(ctx, func() error {
		tx, err := r.DB.BeginTx(ctx, nil)
		if err != nil {
			log.Err(err).Str("func", "imageRepository.ClearImages").Msg("failed to begin transaction")
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		for _, build := range []func() (string, []any, error){buildDeleteImagesQuery, buildDeleteStatsQuery} {
			query, args, buildErr := build()
			if buildErr != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
			}
			if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
				log.Err(execErr).Str("func", "imageRepository.ClearImages").Msg("failed to clear replica")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
			}
		}

		if commitErr := tx.Commit(); commitErr != nil {
			log.Err(commitErr).Str("func", "imageRepository.ClearImages").Msg("failed to commit transaction")
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
		}

		return nil
	})
}

func (r *imageRepository) CountImages(ctx context.Context) (int, error) {
	return countImages(ctx, r.DB)
}

func (r *imageRepository) CountImagesBy(ctx context.Context, column string) (map[string]int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountImagesByQuery(column)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "imageRepository.CountImagesBy").
			Str("column", column).
			Msg("failed to execute grouping query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			key   string
			count int
		)
		if err = rows.Scan(&key, &count); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if key == "" {
			key = "unknown"
		}
		counts[key] += count
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return counts, nil
}

func (r *imageRepository) GetStats(ctx context.Context) (models.ReplicaStats, error) {
	return selectStats(ctx, r.DB)
}

func (r *imageRepository) SetLastSyncTime(ctx context.Context, at time.Time) (models.ReplicaStats, error) {
	log := logger.FromContext(ctx)

	var stats models.ReplicaStats
	err := r.retry(ctx, func() error {
		tx, err := r.DB.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		total, err := countImages(ctx, tx)
		if err != nil {
			return err
		}

		stats = models.ReplicaStats{
			TotalImages:  total,
			LastSyncTime: time.UnixMilli(at.UnixMilli()),
			StorageSize:  int64(total) * models.BytesPerImage,
		}
		if err = upsertStats(ctx, tx, stats); err != nil {
			return err
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "imageRepository.SetLastSyncTime").Msg("failed to record sync time")
		return models.ReplicaStats{}, err
	}

	return stats, nil
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func countImages(ctx context.Context, q querier) (int, error) {
	query, args, err := buildCountImagesQuery()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err = q.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return total, nil
}

func selectStats(ctx context.Context, q querier) (models.ReplicaStats, error) {
	query, args, err := buildSelectStatsQuery()
	if err != nil {
		return models.ReplicaStats{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		stats        models.ReplicaStats
		lastSyncTime int64
	)
	err = q.QueryRowContext(ctx, query, args...).Scan(&stats.TotalImages, &lastSyncTime, &stats.StorageSize)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ReplicaStats{}, nil
	}
	if err != nil {
		return models.ReplicaStats{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	stats.LastSyncTime = models.FromEpochMillis(lastSyncTime)

	return stats, nil
}

func upsertStats(ctx context.Context, q querier, stats models.ReplicaStats) error {
	query, args, err := buildUpsertStatsQuery(stats)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
