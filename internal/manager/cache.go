package manager

import (
	"sort"
	"sync"
	"time"

	"bodyfatd/internal/bodyfat"
)

// cacheEntry is a loaded artifact. It is never modified after insertion.
type cacheEntry struct {
	model    bodyfat.Predictor
	path     string
	loadedAt time.Time
}

// Cache holds loaded models keyed by variant. An entry, once stored, is
// read-only; a second store for the same variant keeps the first entry.
type Cache struct {
	mu      sync.RWMutex
	entries map[bodyfat.Variant]cacheEntry
}

func newCache() *Cache {
	return &Cache{entries: make(map[bodyfat.Variant]cacheEntry)}
}

func (c *Cache) get(v bodyfat.Variant) (cacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[v]
	return e, ok
}

func (c *Cache) has(v bodyfat.Variant) bool {
	_, ok := c.get(v)
	return ok
}

// store inserts e unless v is already cached and returns the entry in effect.
func (c *Cache) store(v bodyfat.Variant, e cacheEntry) cacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cur, ok := c.entries[v]; ok {
		return cur
	}
	c.entries[v] = e
	return e
}

// variants lists the cached variants in stable order.
func (c *Cache) variants() []bodyfat.Variant {
	c.mu.RLock()
	out := make([]bodyfat.Variant, 0, len(c.entries))
	for v := range c.entries {
		out = append(out, v)
	}
	c.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
