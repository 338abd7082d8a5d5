package models

import "time"

// SyncOptions configures a single reconciliation run.
type SyncOptions struct {
	// ForceSync bypasses the staleness check in ShouldSync. It never
	// bypasses the single-run lock.
	ForceSync bool `json:"forceSync"`

	// BatchSize is used as the remote page size when positive.
	BatchSize int `json:"batchSize"`

	// MaxImages caps the number of new and updated records one run may
	// accumulate. Zero means the configured default.
	MaxImages int `json:"maxImages"`

	// ClearLocal wipes the replica before resyncing.
	ClearLocal bool `json:"clearLocal"`

	// DatasetID limits paging to one remote dataset when positive.
	DatasetID int64 `json:"datasetId,omitempty"`
}

// SyncResult is the outcome of one reconciliation run. It is never persisted.
type SyncResult struct {
	Success       bool   `json:"success"`
	NewImages     int    `json:"newImages"`
	UpdatedImages int    `json:"updatedImages"`
	TotalImages   int    `json:"totalImages"`
	Error         string `json:"error,omitempty"`
}

// SyncStatus reports whether a run is in flight and when the last
// successful run finished. LastSyncTime is zero if no run has succeeded in
// this process and is encoded as epoch milliseconds.
type SyncStatus struct {
	IsSyncing    bool      `json:"isSyncing"`
	LastSyncTime time.Time `json:"lastSyncTime"`
}
