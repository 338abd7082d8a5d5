// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var logLevels = []any{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

// validate checks that the final merged [StructuredConfig] is usable before
// anything is constructed from it. Each group is validated with
// ozzo-validation and failures are wrapped with the group's sentinel error.
func (cfg *StructuredConfig) validate() error {
	adapter := &cfg.Adapter
	if err := validation.ValidateStruct(adapter,
		validation.Field(&adapter.HTTPAddress, validation.Required),
		validation.Field(&adapter.RequestTimeout, validation.Required, validation.Min(time.Millisecond)),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}

	storage := &cfg.Storage
	if err := validation.ValidateStruct(&storage.DB,
		validation.Field(&storage.DB.DSN, validation.Required, validation.By(notInMemoryDSN)),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
	}
	if err := validation.ValidateStruct(&storage.Cache,
		validation.Field(&storage.Cache.TTL, validation.Required, validation.Min(time.Second)),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
	}

	server := &cfg.Server
	if err := validation.ValidateStruct(server,
		validation.Field(&server.HTTPAddress, validation.Required),
		validation.Field(&server.RequestTimeout, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	sync := &cfg.Sync
	if err := validation.ValidateStruct(sync,
		validation.Field(&sync.StaleAfter, validation.Required, validation.Min(30*time.Minute), validation.Max(60*time.Minute)),
		validation.Field(&sync.Interval, validation.Required, validation.Min(time.Minute)),
		validation.Field(&sync.PageSize, validation.Required, validation.Min(1), validation.Max(1000)),
		validation.Field(&sync.MaxImages, validation.Required, validation.Min(1)),
		validation.Field(&sync.ClearSettleDelay, validation.Min(time.Duration(0))),
		validation.Field(&sync.Checksum, validation.Required, validation.In(ChecksumRolling32, ChecksumXXHash64)),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSyncConfigs, err)
	}

	workers := &cfg.Workers
	if err := validation.ValidateStruct(workers,
		validation.Field(&workers.SyncSchedule, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWorkerConfigs, err)
	}

	logging := &cfg.Logging
	if err := validation.ValidateStruct(logging,
		validation.Field(&logging.Level, validation.Required, validation.In(logLevels...)),
		validation.Field(&logging.MaxSizeMB, validation.Min(0)),
		validation.Field(&logging.MaxBackups, validation.Min(0)),
		validation.Field(&logging.MaxAgeDays, validation.Min(0)),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLoggingConfigs, err)
	}

	return nil
}

func notInMemoryDSN(value any) error {
	dsn, _ := value.(string)
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return fmt.Errorf("in-memory databases cannot hold a replica")
	}
	return nil
}
