package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gallery-replica/internal/config"
	"github.com/MKhiriev/go-gallery-replica/internal/logger"
)

// Storages groups the replica storage used by the service layer.
type Storages struct {
	// ImageStorage is the SQLite-backed replica with its read cache.
	ImageStorage ImageStorage

	db *DB
}

// NewStorages opens the replica database named by cfg.DB.DSN, applies the
// pending migrations and wires the image storage with a read cache of
// cfg.Cache.TTL. syncCfg.StaleAfter drives [ImageStorage.NeedsSync].
func NewStorages(ctx context.Context, cfg config.Storage, syncCfg config.Sync, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		ImageStorage: NewImageStorage(
			NewImageRepository(db, logger),
			NewReadCache(cfg.Cache.TTL),
			syncCfg.StaleAfter,
			logger,
		),
		db: db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
