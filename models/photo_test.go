package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToPhoto_HidesInternalFields(t *testing.T) {
	rec := ImageRecord{
		ID:            "photo-1",
		URL:           "http://minio/a.jpg",
		Title:         "A",
		Description:   "desc",
		Date:          "2024-01-01",
		Tags:          Tags{"x"},
		Width:         10,
		Height:        20,
		Format:        "jpg",
		SourceWebsite: "dataset-3",
		LastUpdated:   time.Now(),
		Checksum:      "123",
	}

	p := ToPhoto(rec)

	assert.Equal(t, Photo{
		ID:            "photo-1",
		URL:           "http://minio/a.jpg",
		Title:         "A",
		Description:   "desc",
		Date:          "2024-01-01",
		Tags:          []string{"x"},
		Width:         10,
		Height:        20,
		Format:        "jpg",
		SourceWebsite: "dataset-3",
	}, p)

	// the display copy must not alias the record's tags
	p.Tags[0] = "changed"
	assert.Equal(t, "x", rec.Tags[0])
}

func TestFromPhoto_RoundTrip(t *testing.T) {
	p := Photo{ID: "photo-7", URL: "u", Title: "T", Tags: []string{"a", "b"}, Format: "png"}

	rec := FromPhoto(p)

	assert.Empty(t, rec.Checksum)
	assert.True(t, rec.LastUpdated.IsZero())
	assert.Equal(t, p, ToPhoto(rec))
}

func TestToPhotos_PreservesOrder(t *testing.T) {
	photos := ToPhotos([]ImageRecord{{ID: "b"}, {ID: "a"}})

	assert.Equal(t, "b", photos[0].ID)
	assert.Equal(t, "a", photos[1].ID)
	assert.Empty(t, ToPhotos(nil))
}
