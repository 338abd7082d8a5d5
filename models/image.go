// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ImageRecord is the unit of replication: one remote catalog image as it is
// stored in the local replica.
//
// ID is derived from the remote numeric id ("photo-<remote id>") and never
// changes between syncs. Checksum is the fingerprint of the remote mutable
// fields and is the only signal used to detect remote-side updates.
// Optional fields use their zero value ("" or 0) for "absent"; defaults are
// applied once when the record is converted from a [RemoteImage].
type ImageRecord struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Tags        Tags   `json:"tags"`

	Width         int    `json:"width,omitempty"`
	Height        int    `json:"height,omitempty"`
	Format        string `json:"format,omitempty"`
	SourceWebsite string `json:"source_website,omitempty"`

	RemoteID         int64  `json:"remote_id"`
	DatasetID        int64  `json:"dataset_id"`
	Filename         string `json:"filename,omitempty"`
	OriginalFilename string `json:"original_filename,omitempty"`
	TypeTags         Tags   `json:"type_tags"`
	PhraseTags       Tags   `json:"phrase_tags"`

	// LastUpdated is the local write time, stamped by the store on save.
	LastUpdated time.Time `json:"last_updated"`
	Checksum    string    `json:"checksum"`
}

// Clone returns a copy of r that shares no tag slices with it.
func (r ImageRecord) Clone() ImageRecord {
	r.Tags = r.Tags.clone()
	r.TypeTags = r.TypeTags.clone()
	r.PhraseTags = r.PhraseTags.clone()
	return r
}

// ImageRecordID returns the stable local identity for a remote image id.
func ImageRecordID(remoteID int64) string {
	return fmt.Sprintf("%s%d", imageRecordIDPrefix, remoteID)
}

const imageRecordIDPrefix = "photo-"

// ParseImageRecordID is the inverse of [ImageRecordID]. ok is false unless
// id carries a positive remote id.
func ParseImageRecordID(id string) (remoteID int64, ok bool) {
	raw, found := strings.CutPrefix(id, imageRecordIDPrefix)
	if !found {
		return 0, false
	}

	remoteID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || remoteID <= 0 {
		return 0, false
	}
	return remoteID, true
}

// Tags is an ordered list of tags. Insertion order is relevance order and
// duplicates are allowed. It is stored as a JSON array in a TEXT column.
type Tags []string

func (t Tags) clone() Tags {
	if t == nil {
		return nil
	}
	out := make(Tags, len(t))
	copy(out, t)
	return out
}

// Value implements [driver.Valuer].
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements [sql.Scanner]. NULL and empty values become an empty list.
func (t *Tags) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = Tags{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return errors.New("tags: unsupported source type")
	}

	if len(raw) == 0 {
		*t = Tags{}
		return nil
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("tags: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*t = out
	return nil
}
