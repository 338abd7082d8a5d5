package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration file.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Cache struct {
			TTL Duration `json:"ttl"`
		} `json:"cache,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Sync struct {
		StaleAfter       Duration `json:"stale_after"`
		Interval         Duration `json:"interval"`
		PageSize         int      `json:"page_size"`
		MaxImages        int      `json:"max_images"`
		ClearSettleDelay Duration `json:"clear_settle_delay"`
		Checksum         string   `json:"checksum"`
	} `json:"sync,omitempty"`

	Workers struct {
		SyncSchedule string `json:"sync_schedule"`
	} `json:"workers,omitempty"`

	Logging struct {
		Level      string `json:"level"`
		FilePath   string `json:"file_path"`
		MaxSizeMB  int    `json:"max_size_mb"`
		MaxBackups int    `json:"max_backups"`
		MaxAgeDays int    `json:"max_age_days"`
		Compress   bool   `json:"compress"`
	} `json:"logging,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB:    DB{DSN: jsonCfg.Storage.DB.DSN},
			Cache: Cache{TTL: time.Duration(jsonCfg.Storage.Cache.TTL)},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Sync: Sync{
			StaleAfter:       time.Duration(jsonCfg.Sync.StaleAfter),
			Interval:         time.Duration(jsonCfg.Sync.Interval),
			PageSize:         jsonCfg.Sync.PageSize,
			MaxImages:        jsonCfg.Sync.MaxImages,
			ClearSettleDelay: time.Duration(jsonCfg.Sync.ClearSettleDelay),
			Checksum:         jsonCfg.Sync.Checksum,
		},
		Workers: Workers{
			SyncSchedule: jsonCfg.Workers.SyncSchedule,
		},
		Logging: Logging{
			Level:      jsonCfg.Logging.Level,
			FilePath:   jsonCfg.Logging.FilePath,
			MaxSizeMB:  jsonCfg.Logging.MaxSizeMB,
			MaxBackups: jsonCfg.Logging.MaxBackups,
			MaxAgeDays: jsonCfg.Logging.MaxAgeDays,
			Compress:   jsonCfg.Logging.Compress,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
