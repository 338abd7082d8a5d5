package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-gallery-replica/models"
)

func TestReadCache_EmptyMisses(t *testing.T) {
	c := NewReadCache(time.Minute)

	got, ok := c.Get()
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestReadCache_PutThenGet(t *testing.T) {
	c := NewReadCache(time.Minute)
	snapshot := []models.ImageRecord{testRecord(1, "a")}

	assert.True(t, c.Put(c.Generation(), snapshot))

	got, ok := c.Get()
	assert.True(t, ok)
	assert.Equal(t, snapshot, got)
}

func TestReadCache_Expires(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewReadCache(time.Minute)
	c.now = func() time.Time { return now }

	c.Put(c.Generation(), []models.ImageRecord{testRecord(1, "a")})

	now = now.Add(59 * time.Second)
	_, ok := c.Get()
	assert.True(t, ok)

	now = now.Add(time.Second)
	_, ok = c.Get()
	assert.False(t, ok)
}

func TestReadCache_InvalidateDropsSnapshot(t *testing.T) {
	c := NewReadCache(time.Minute)
	c.Put(c.Generation(), []models.ImageRecord{testRecord(1, "a")})

	before := c.Generation()
	c.Invalidate()

	assert.Equal(t, before+1, c.Generation())
	_, ok := c.Get()
	assert.False(t, ok)
}

// TestReadCache_StaleGenerationRejected covers a reader that started loading
// before a write and finishes after it.
func TestReadCache_StaleGenerationRejected(t *testing.T) {
	c := NewReadCache(time.Minute)

	gen := c.Generation()
	c.Invalidate()

	assert.False(t, c.Put(gen, []models.ImageRecord{testRecord(1, "old")}))
	_, ok := c.Get()
	assert.False(t, ok)
}
