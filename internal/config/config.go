// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Checksum algorithm names accepted by [Sync.Checksum].
const (
	ChecksumRolling32 = "rolling32"
	ChecksumXXHash64  = "xxhash64"
)

// StructuredConfig is the top-level configuration of the gallery replica.
// It is populated by merging defaults, environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	App App `envPrefix:"APP_"`

	// Adapter points at the remote image catalog.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local replica database and read cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the local HTTP API settings.
	Server Server `envPrefix:"SERVER_"`

	// Sync tunes the reconciliation engine.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds background scheduler settings.
	Workers Workers `envPrefix:"WORKERS_"`

	Logging Logging `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Version is reported by the version endpoint when no build version was
	// linked into the binary.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds the remote catalog connection settings.
type Adapter struct {
	// HTTPAddress is the base URL of the remote catalog API
	// (e.g. "http://catalog:8000/api"). A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the replica storage settings.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds the SQLite connection settings.
type DB struct {
	// DSN is the SQLite database file path. The file is created when absent.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Cache holds the volatile read cache settings.
type Cache struct {
	// TTL is how long a full replica snapshot stays valid in memory.
	// Env: STORAGE_CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// Server holds the local HTTP API settings.
type Server struct {
	// HTTPAddress is the TCP address of the local API in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of one inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds the reconciliation engine settings.
type Sync struct {
	// StaleAfter is the staleness threshold used by the store's NeedsSync.
	// Env: SYNC_STALE_AFTER
	StaleAfter time.Duration `env:"STALE_AFTER"`

	// Interval is the engine's own re-sync interval used by ShouldSync.
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// PageSize is the remote page size when a run does not pass a batch size.
	// Env: SYNC_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// MaxImages caps new and updated records accumulated by one run.
	// Env: SYNC_MAX_IMAGES
	MaxImages int `env:"MAX_IMAGES"`

	// ClearSettleDelay is the pause after a clear before the replica is read.
	// Env: SYNC_CLEAR_SETTLE_DELAY
	ClearSettleDelay time.Duration `env:"CLEAR_SETTLE_DELAY"`

	// Checksum selects the fingerprint function: "rolling32" or "xxhash64".
	// Env: SYNC_CHECKSUM
	Checksum string `env:"CHECKSUM"`
}

// Workers holds background scheduler settings.
type Workers struct {
	// SyncSchedule is a robfig/cron spec for the background sync job
	// (e.g. "@every 5m", "*/10 * * * *").
	// Env: WORKERS_SYNC_SCHEDULE
	SyncSchedule string `env:"SYNC_SCHEDULE"`
}

// Logging holds log level and optional rotating log file settings.
type Logging struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// FilePath enables a rotating log file next to stdout when set.
	// Env: LOG_FILE_PATH
	FilePath string `env:"FILE_PATH"`

	// Env: LOG_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB"`
	// Env: LOG_MAX_BACKUPS
	MaxBackups int `env:"MAX_BACKUPS"`
	// Env: LOG_MAX_AGE_DAYS
	MaxAgeDays int `env:"MAX_AGE_DAYS"`
	// Env: LOG_COMPRESS
	Compress bool `env:"COMPRESS"`
}

// Defaults returns the configuration used for every field no source sets.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			DB:    DB{DSN: "gallery.db"},
			Cache: Cache{TTL: 5 * time.Minute},
		},
		Server: Server{
			HTTPAddress:    "localhost:8090",
			RequestTimeout: 15 * time.Second,
		},
		Sync: Sync{
			StaleAfter:       60 * time.Minute,
			Interval:         30 * time.Minute,
			PageSize:         100,
			MaxImages:        1000,
			ClearSettleDelay: 100 * time.Millisecond,
			Checksum:         ChecksumRolling32,
		},
		Workers: Workers{
			SyncSchedule: "@every 5m",
		},
		Logging: Logging{
			Level:      "debug",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources (later sources win for non-zero fields):
//  1. Environment variables (a .env file in the working directory is loaded first)
//  2. Command-line flags from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields left unset by every source take their value from [Defaults].
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
