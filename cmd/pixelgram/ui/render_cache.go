// Package ui provides rendering cache for the gallery grid.
package ui

import (
	"hash/fnv"
	"sync"
)

// RenderCache provides hash-based caching for rendered content.
// Entries beyond maxSize evict the whole cache; gallery inputs change rarely
// enough that a full reset is cheaper than tracking recency.
type RenderCache struct {
	mu      sync.Mutex
	entries map[uint64]string
	maxSize int
	hits    int
	misses  int
}

// NewRenderCache creates a new render cache with the specified max size.
func NewRenderCache(maxSize int) *RenderCache {
	if maxSize <= 0 {
		maxSize = 1
	}
	return &RenderCache{
		entries: make(map[uint64]string),
		maxSize: maxSize,
	}
}

// DefaultRenderCache is shared by all gallery renders.
var DefaultRenderCache = NewRenderCache(128)

// computeHash computes a FNV-1a hash for cache keys.
//
// Supported types are intentionally limited to avoid allocations in hot paths.
func computeHash(inputs ...interface{}) uint64 {
	h := fnv.New64a()
	var b [8]byte
	putUint := func(u uint64) {
		for i := 0; i < 8; i++ {
			b[i] = byte(u >> (8 * i))
		}
		h.Write(b[:])
	}

	for _, input := range inputs {
		switch v := input.(type) {
		case string:
			putUint(uint64(len(v)))
			h.Write([]byte(v))
		case int:
			putUint(uint64(v))
		case uint:
			putUint(uint64(v))
		case bool:
			if v {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}

	return h.Sum64()
}

// ComputeKey generates a cache key from multiple inputs.
func ComputeKey(inputs ...interface{}) uint64 {
	return computeHash(inputs...)
}

// Get retrieves cached content if available.
func (rc *RenderCache) Get(key uint64) (string, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	content, ok := rc.entries[key]
	if ok {
		rc.hits++
	} else {
		rc.misses++
	}
	return content, ok
}

// Set stores rendered content in the cache.
func (rc *RenderCache) Set(key uint64, content string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if _, exists := rc.entries[key]; !exists && len(rc.entries) >= rc.maxSize {
		rc.entries = make(map[uint64]string)
	}
	rc.entries[key] = content
}

// Clear empties the cache.
func (rc *RenderCache) Clear() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.entries = make(map[uint64]string)
	rc.hits, rc.misses = 0, 0
}

// Len returns the number of cached entries.
func (rc *RenderCache) Len() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.entries)
}

// Stats returns hit and miss counters.
func (rc *RenderCache) Stats() (hits, misses int) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.hits, rc.misses
}

// GetOrCompute retrieves from cache or computes if missing.
func (rc *RenderCache) GetOrCompute(key uint64, compute func() string) string {
	if content, ok := rc.Get(key); ok {
		return content
	}
	content := compute()
	rc.Set(key, content)
	return content
}
