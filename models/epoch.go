package models

import (
	"encoding/json"
	"time"
)

// Timestamps leave the process as epoch milliseconds and durations as whole
// milliseconds. A zero time is 0.

// EpochMillis returns t as Unix milliseconds, 0 for the zero time.
func EpochMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

// FromEpochMillis is the inverse of [EpochMillis].
func FromEpochMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

func (s ReplicaStats) MarshalJSON() ([]byte, error) {
	type Alias ReplicaStats
	return json.Marshal(struct {
		Alias
		LastSyncTime int64 `json:"lastSyncTime"`
	}{Alias(s), EpochMillis(s.LastSyncTime)})
}

func (s *ReplicaStats) UnmarshalJSON(b []byte) error {
	type Alias ReplicaStats
	aux := struct {
		*Alias
		LastSyncTime int64 `json:"lastSyncTime"`
	}{Alias: (*Alias)(s)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	s.LastSyncTime = FromEpochMillis(aux.LastSyncTime)
	return nil
}

func (r ReplicaReport) MarshalJSON() ([]byte, error) {
	type Alias ReplicaReport
	return json.Marshal(struct {
		Alias
		LastSyncTime int64 `json:"lastSyncTime"`
	}{Alias(r), EpochMillis(r.LastSyncTime)})
}

func (r *ReplicaReport) UnmarshalJSON(b []byte) error {
	type Alias ReplicaReport
	aux := struct {
		*Alias
		LastSyncTime int64 `json:"lastSyncTime"`
	}{Alias: (*Alias)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	r.LastSyncTime = FromEpochMillis(aux.LastSyncTime)
	return nil
}

func (s SyncStatus) MarshalJSON() ([]byte, error) {
	type Alias SyncStatus
	return json.Marshal(struct {
		Alias
		LastSyncTime int64 `json:"lastSyncTime"`
	}{Alias(s), EpochMillis(s.LastSyncTime)})
}

func (s *SyncStatus) UnmarshalJSON(b []byte) error {
	type Alias SyncStatus
	aux := struct {
		*Alias
		LastSyncTime int64 `json:"lastSyncTime"`
	}{Alias: (*Alias)(s)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	s.LastSyncTime = FromEpochMillis(aux.LastSyncTime)
	return nil
}

func (s SearchStats) MarshalJSON() ([]byte, error) {
	type Alias SearchStats
	return json.Marshal(struct {
		Alias
		SearchTime int64 `json:"searchTime"`
	}{Alias(s), s.SearchTime.Milliseconds()})
}

func (s *SearchStats) UnmarshalJSON(b []byte) error {
	type Alias SearchStats
	aux := struct {
		*Alias
		SearchTime int64 `json:"searchTime"`
	}{Alias: (*Alias)(s)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	s.SearchTime = time.Duration(aux.SearchTime) * time.Millisecond
	return nil
}
