package dictionary

import "sync"

// Cache holds resolved entries for the lifetime of the process. Entries are
// immutable once written and there is no eviction; each worker process keeps
// its own copy and converges on the same values, so no cross-process
// coherence is needed.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]Entry)}
}

func (c *Cache) Get(word string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[word]
	return e, ok
}

func (c *Cache) Put(word string, entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[word] = entry
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
