// Package cache stores compiled template structure keyed by source text. The
// default store is unbounded and append-only, which suits a small set of
// template sources known ahead of time. Engines that render generated sources
// should configure the bounded LRU store instead.
package cache

import (
	"sync"
	"sync/atomic"
)

// Store is the contract the render engine uses for its fragment cache.
// Implementations must be safe for concurrent use.
type Store[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V)
	Len() int
	Stats() Stats
}

// Stats holds cache counters.
type Stats struct {
	Size     int
	Capacity int
	Hits     uint64
	Misses   uint64
	Evicts   uint64
	Sets     uint64
	HitRate  float64
}

// counters is embedded by both stores.
type counters struct {
	hits   atomic.Uint64
	misses atomic.Uint64
	evicts atomic.Uint64
	sets   atomic.Uint64
}

func (c *counters) stats(size, capacity int) Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()
	total := hits + misses

	var hitRate float64
	if total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Size:     size,
		Capacity: capacity,
		Hits:     hits,
		Misses:   misses,
		Evicts:   c.evicts.Load(),
		Sets:     c.sets.Load(),
		HitRate:  hitRate,
	}
}

// Unbounded is a map guarded by a RWMutex. Entries are never evicted; a Set
// for an existing key overwrites it (last write wins).
type Unbounded[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
	counters
}

var _ Store[string, int] = (*Unbounded[string, int])(nil)

// NewUnbounded returns an empty Unbounded store.
func NewUnbounded[K comparable, V any]() *Unbounded[K, V] {
	return &Unbounded[K, V]{items: make(map[K]V)}
}

// Get returns the value for key.
func (c *Unbounded[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	value, ok := c.items[key]
	c.mu.RUnlock()

	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return value, ok
}

// Set stores value under key.
func (c *Unbounded[K, V]) Set(key K, value V) {
	c.sets.Add(1)

	c.mu.Lock()
	c.items[key] = value
	c.mu.Unlock()
}

// Len returns the number of entries.
func (c *Unbounded[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stats returns counters; Capacity is 0 for an unbounded store.
func (c *Unbounded[K, V]) Stats() Stats {
	return c.stats(c.Len(), 0)
}
