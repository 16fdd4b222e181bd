package cache

import (
	"context"
	"sync"
	"time"

	"github.com/piresc/routecalc/internal/pkg/constants"
	"github.com/piresc/routecalc/internal/pkg/models"
	"github.com/piresc/routecalc/internal/utils"
)

// MemoryCache is an in-process segment cache for single instance deployments and tests
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]models.CacheEntry
	now     func() time.Time
}

// NewMemoryCache creates an empty in-memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]models.CacheEntry),
		now:     time.Now,
	}
}

// Get returns a copy of the entry, or nil when missing or expired
func (c *MemoryCache) Get(_ context.Context, key string) (*models.CacheEntry, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if entry.Expired(c.now()) {
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && current.Expired(c.now()) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, nil
	}
	return &entry, nil
}

// Put stores the entry. The ttl caps the entry's own expiry.
func (c *MemoryCache) Put(_ context.Context, key string, entry models.CacheEntry, ttl time.Duration) error {
	if deadline := c.now().Add(ttl); entry.ExpiresAt.IsZero() || entry.ExpiresAt.After(deadline) {
		entry.ExpiresAt = deadline
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
	return nil
}

// InvalidateArea drops entries whose origin falls in the cell of coord or a neighbouring one
func (c *MemoryCache) InvalidateArea(_ context.Context, coord models.Coordinate) (int, error) {
	cells := make(map[string]struct{})
	for _, cell := range utils.CellWithNeighbors(coord, constants.CacheCellPrecision) {
		cells[cell] = struct{}{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, entry := range c.entries {
		if _, ok := cells[utils.EncodeCoordinate(entry.Origin, constants.CacheCellPrecision)]; ok {
			delete(c.entries, key)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of stored entries, expired ones included
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
