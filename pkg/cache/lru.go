package cache

import (
	"container/list"
	"sync"
)

const defaultCapacity = 128

// LRU is a bounded store evicting the least recently used entry once full.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	items    map[K]*list.Element
	order    *list.List
	capacity int
	counters
}

type lruEntry[K comparable, V any] struct {
	key   K
	value V
}

var _ Store[string, int] = (*LRU[string, int])(nil)

// NewLRU returns an LRU store holding at most capacity entries. A
// non-positive capacity falls back to 128.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &LRU[K, V]{
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
		capacity: capacity,
	}
}

// Get returns the value for key and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	element, ok := c.items[key]
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.hits.Add(1)
	c.order.MoveToFront(element)
	return element.Value.(*lruEntry[K, V]).value, true
}

// Set stores value under key, evicting the oldest entry when at capacity.
func (c *LRU[K, V]) Set(key K, value V) {
	c.sets.Add(1)

	c.mu.Lock()
	defer c.mu.Unlock()

	if element, ok := c.items[key]; ok {
		element.Value.(*lruEntry[K, V]).value = value
		c.order.MoveToFront(element)
		return
	}

	if len(c.items) >= c.capacity {
		c.evictOldest()
	}

	c.items[key] = c.order.PushFront(&lruEntry[K, V]{key: key, value: value})
}

// evictOldest must be called with mu held.
func (c *LRU[K, V]) evictOldest() {
	oldest := c.order.Back()
	if oldest == nil {
		return
	}
	delete(c.items, oldest.Value.(*lruEntry[K, V]).key)
	c.order.Remove(oldest)
	c.evicts.Add(1)
}

// Len returns the number of entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stats returns counters and the configured capacity.
func (c *LRU[K, V]) Stats() Stats {
	return c.stats(c.Len(), c.capacity)
}
