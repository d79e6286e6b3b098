// Package cache provides the bounded memoization store shared by the extraction components.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// DefaultMaxSize is the default bound on the number of entries
const DefaultMaxSize = 100

// FIFO is a bounded cache that evicts strictly by insertion order.
// Reads never refresh an entry's position. It is safe for concurrent use.
type FIFO[K comparable, V any] struct {
	mu      sync.Mutex
	maxSize int
	entries map[K]V
	order   []K // insertion order, oldest first

	hits      int
	misses    int
	evictions int
}

// Stats is a snapshot of cache counters
type Stats struct {
	Size      int `json:"size"`
	MaxSize   int `json:"max_size"`
	Hits      int `json:"hits"`
	Misses    int `json:"misses"`
	Evictions int `json:"evictions"`
}

// NewFIFO creates a cache holding at most maxSize entries.
// A non-positive maxSize falls back to DefaultMaxSize.
func NewFIFO[K comparable, V any](maxSize int) *FIFO[K, V] {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &FIFO[K, V]{
		maxSize: maxSize,
		entries: make(map[K]V, maxSize),
		order:   make([]K, 0, maxSize),
	}
}

// Get returns the cached value for key
func (c *FIFO[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return v, ok
}

// Put stores value under key. Overwriting an existing key keeps its
// original insertion position. When the bound is exceeded the oldest
// inserted entry is evicted.
func (c *FIFO[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = value
		return
	}

	c.entries[key] = value
	c.order = append(c.order, key)

	for len(c.order) > c.maxSize {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
		c.evictions++
	}
}

// Len returns the number of cached entries
func (c *FIFO[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Keys returns the cached keys, oldest first
func (c *FIFO[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]K, len(c.order))
	copy(out, c.order)
	return out
}

// Clear removes all entries and resets counters
func (c *FIFO[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]V, c.maxSize)
	c.order = c.order[:0]
	c.hits, c.misses, c.evictions = 0, 0, 0
}

// Stats returns a snapshot of the cache counters
func (c *FIFO[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Size:      len(c.entries),
		MaxSize:   c.maxSize,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}

// HashText returns the SHA-256 hex digest used as a cache key for text
func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
