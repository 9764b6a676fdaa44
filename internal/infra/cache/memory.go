// Package cache stores the last computed purchase status per purchase id.
package cache

import (
	"context"
	"sync"
	"time"

	"vradmin/internal/domain/entity"
	"vradmin/internal/domain/service"
)

type memoryEntry struct {
	status   entity.CachedStatus
	storedAt time.Time
}

type memoryCache struct {
	mu      sync.RWMutex
	entries map[int64]memoryEntry
	ttl     time.Duration
	clock   service.Clock
}

// NewMemoryCache creates a process-local status cache. A zero ttl keeps
// entries until they are overwritten or deleted.
func NewMemoryCache(ttl time.Duration, clock service.Clock) service.StatusCache {
	return &memoryCache{
		entries: make(map[int64]memoryEntry),
		ttl:     ttl,
		clock:   clock,
	}
}

func (c *memoryCache) Get(_ context.Context, purchaseID int64) (*entity.CachedStatus, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[purchaseID]
	c.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if c.ttl > 0 && c.clock.Now().Sub(entry.storedAt) >= c.ttl {
		c.mu.Lock()
		if current, still := c.entries[purchaseID]; still && current.storedAt.Equal(entry.storedAt) {
			delete(c.entries, purchaseID)
		}
		c.mu.Unlock()

		return nil, false, nil
	}

	status := entry.status

	return &status, true, nil
}

func (c *memoryCache) Set(_ context.Context, purchaseID int64, status *entity.CachedStatus) error {
	if status == nil {
		return nil
	}

	c.mu.Lock()
	c.entries[purchaseID] = memoryEntry{status: *status, storedAt: c.clock.Now()}
	c.mu.Unlock()

	return nil
}

func (c *memoryCache) Delete(_ context.Context, purchaseID int64) error {
	c.mu.Lock()
	delete(c.entries, purchaseID)
	c.mu.Unlock()

	return nil
}
