package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-gallery-replica/internal/logger"
	"github.com/MKhiriev/go-gallery-replica/migrations"
)

const (
	defaultRetryAttempts = 3
	defaultRetryDelay    = 50 * time.Millisecond
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	retryAttempts int
	retryDelay    time.Duration
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// classify returns the classification of err, [NonRetryable] without a
// classifier.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

// retry runs op until it succeeds, fails with an error that is not
// [Retryable], the attempts are used up or ctx is done. The delay doubles
// after every attempt.
func (db *DB) retry(ctx context.Context, op func() error) error {
	attempts := max(db.retryAttempts, 1)
	delay := db.retryDelay

	var err error
	for attempt := 1; ; attempt++ {
		err = op()
		if err == nil || attempt >= attempts || db.classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).
			Str("func", "DB.retry").
			Int("attempt", attempt).
			Dur("delay", delay).
			Msg("database is busy, retrying")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(delay):
		}
		delay *= 2
	}
}
