package models

import "time"

// BytesPerImage is the storage estimate used for every replicated record.
const BytesPerImage = 1024

// ReplicaStats is the singleton statistics record of the replica.
type ReplicaStats struct {
	TotalImages  int       `json:"totalImages"`
	LastSyncTime time.Time `json:"lastSyncTime"`
	StorageSize  int64     `json:"storageSize"`
}

// ReplicaReport is a diagnostic view of the replica grouped by source and
// format.
type ReplicaReport struct {
	TotalImages      int            `json:"totalImages"`
	StorageSize      int64          `json:"storageSize"`
	StorageSizeHuman string         `json:"storageSizeHuman"`
	LastSyncTime     time.Time      `json:"lastSyncTime"`
	NeedsSync        bool           `json:"needsSync"`
	BySource         map[string]int `json:"bySource"`
	ByFormat         map[string]int `json:"byFormat"`
}

// SearchStats describes one keyword search.
type SearchStats struct {
	TotalImages    int           `json:"totalImages"`
	MatchedImages  int           `json:"matchedImages"`
	SearchKeywords []string      `json:"searchKeywords"`
	SearchTime     time.Duration `json:"searchTime"`
}

// SearchResult holds ranked search matches and the search stats.
type SearchResult struct {
	Results []ImageRecord `json:"results"`
	Stats   SearchStats   `json:"stats"`
}
