package store

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-gallery-replica/models"
)

// ReadCache holds the last full snapshot of the replica for a limited time.
//
// Every write bumps the generation. A reader that loaded a snapshot while a
// write was in flight presents the generation it saw before loading, and
// Put drops the snapshot when it no longer matches. A stale snapshot can
// therefore never be installed after a write has invalidated the cache.
type ReadCache struct {
	mu         sync.RWMutex
	snapshot   []models.ImageRecord
	storedAt   time.Time
	generation uint64
	valid      bool

	ttl time.Duration
	now func() time.Time
}

func NewReadCache(ttl time.Duration) *ReadCache {
	return &ReadCache{
		ttl: ttl,
		now: time.Now,
	}
}

// Get returns the cached snapshot while it is valid and younger than the
// TTL. The slice is shared with other readers.
func (c *ReadCache) Get() ([]models.ImageRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.valid || c.now().Sub(c.storedAt) >= c.ttl {
		return nil, false
	}
	return c.snapshot, true
}

// Generation returns the current write generation.
func (c *ReadCache) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.generation
}

// Put stores snapshot if no write happened since gen was read. It reports
// whether the snapshot was stored.
func (c *ReadCache) Put(gen uint64, snapshot []models.ImageRecord) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return false
	}
	c.snapshot = snapshot
	c.storedAt = c.now()
	c.valid = true
	return true
}

// Invalidate drops the snapshot and starts a new generation.
func (c *ReadCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.snapshot = nil
	c.valid = false
}
