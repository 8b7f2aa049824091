package cache

import "sync"

// Cache memoizes shader compilation results keyed by source text.
// When the cache grows past its soft limit, least recently used entries
// are evicted in batches.
//
// Cache is safe for concurrent use.
// Cache must not be copied after creation (has mutex).
type Cache struct {
	mu        sync.Mutex
	entries   map[string]*entry
	softLimit int
	tick      int64 // Monotonic access counter
	hits      uint64
	misses    uint64
}

// entry holds a compiled blob with its access time.
type entry struct {
	words []uint32
	atime int64 // Access time (tick value)
}

// New creates a cache with the given soft limit.
// A softLimit of 0 means unlimited.
func New(softLimit int) *Cache {
	return &Cache{
		entries:   make(map[string]*entry),
		softLimit: softLimit,
	}
}

// Get returns the compiled words for source, if cached.
func (c *Cache) Get(source string) ([]uint32, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[source]
	if !ok {
		c.misses++
		return nil, false
	}

	c.tick++
	e.atime = c.tick
	c.hits++
	return e.words, true
}

// GetOrCompile returns the cached words for source, invoking compile on
// a miss. Compilation failures are returned as-is and never cached, so
// a corrected source recompiles cleanly.
//
// compile runs under the cache lock; concurrent calls for the same
// source compile at most once.
func (c *Cache) GetOrCompile(source string, compile func() ([]uint32, error)) ([]uint32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[source]; ok {
		c.tick++
		e.atime = c.tick
		c.hits++
		return e.words, nil
	}
	c.misses++

	words, err := compile()
	if err != nil {
		return nil, err
	}

	c.tick++
	c.entries[source] = &entry{words: words, atime: c.tick}

	// Evict if over soft limit
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return words, nil
}

// Clear removes all entries and resets the statistics.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*entry)
	c.tick = 0
	c.hits = 0
	c.misses = 0
}

// Len returns the number of cached blobs.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Stats returns cache statistics.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Len:      len(c.entries),
		Capacity: c.softLimit,
		Hits:     c.hits,
		Misses:   c.misses,
	}
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the soft limit, 0 for unlimited.
	Capacity int
	// Hits is the number of lookups answered from the cache.
	Hits uint64
	// Misses is the number of lookups that had to compile.
	Misses uint64
}

// evictOldest removes entries until under softLimit.
// Called internally when adding new entries.
// Caller must hold c.mu.
func (c *Cache) evictOldest() {
	// Remove 25% of entries (or until under soft limit)
	targetSize := c.softLimit * 3 / 4
	if targetSize < 1 {
		targetSize = 1
	}

	toEvict := len(c.entries) - targetSize
	if toEvict <= 0 {
		return
	}

	// Collect entries with their access times
	type candidate struct {
		source string
		atime  int64
	}
	candidates := make([]candidate, 0, len(c.entries))
	for source, e := range c.entries {
		candidates = append(candidates, candidate{source: source, atime: e.atime})
	}

	// Simple selection sort for eviction - good enough for small batches
	for i := 0; i < toEvict && i < len(candidates); i++ {
		minIdx := i
		for j := i + 1; j < len(candidates); j++ {
			if candidates[j].atime < candidates[minIdx].atime {
				minIdx = j
			}
		}
		if minIdx != i {
			candidates[i], candidates[minIdx] = candidates[minIdx], candidates[i]
		}
		delete(c.entries, candidates[i].source)
	}
}
