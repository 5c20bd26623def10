package hashing

import (
	"sync"
	"sync/atomic"
)

// cacheKey pairs a position key with the depth its count was taken at.
type cacheKey struct {
	hash  uint64
	depth int
}

// PerftCache stores node counts by position and depth. It is safe for
// concurrent use by perft workers.
type PerftCache struct {
	mu          sync.RWMutex
	entries     map[cacheKey]uint64
	maxCapacity int
	hits        atomic.Uint64
	misses      atomic.Uint64
}

// NewPerftCache creates an empty cache.
// maxCapacity of 0 means unlimited capacity.
func NewPerftCache(maxCapacity int) *PerftCache {
	return &PerftCache{
		entries:     make(map[cacheKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the count stored for hash at depth.
func (c *PerftCache) Lookup(hash uint64, depth int) (uint64, bool) {
	c.mu.RLock()
	nodes, ok := c.entries[cacheKey{hash, depth}]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return nodes, ok
}

// Store records the count for hash at depth. Once the cache is full new
// entries are dropped.
func (c *PerftCache) Store(hash uint64, depth int, nodes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity {
		return
	}
	c.entries[cacheKey{hash, depth}] = nodes
}

// Len returns the number of stored counts.
func (c *PerftCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *PerftCache) IsFull() bool {
	if c.maxCapacity <= 0 {
		return false
	}
	return c.Len() >= c.maxCapacity
}

// Hits returns the number of successful lookups.
func (c *PerftCache) Hits() uint64 {
	return c.hits.Load()
}

// Misses returns the number of failed lookups.
func (c *PerftCache) Misses() uint64 {
	return c.misses.Load()
}

// Reset clears all entries and counters.
func (c *PerftCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]uint64)
	c.hits.Store(0)
	c.misses.Store(0)
}
