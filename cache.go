package filterexpr

import (
	"context"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/querykit/go-filterexpr/internal/observability"
)

const defaultParseCacheSize = 256

// ParseCache is a bounded cache mapping filter strings to their parsed group
// lists. It is designed to be shared across requests so that repeated
// identical filters (common with paginated listings re-submitting the same
// query) do not incur a full re-parse every time.
//
// Eviction strategy: when the cache reaches its capacity the entire map is
// replaced. This is simpler than a true LRU and sufficient for the target
// use-case (a small number of distinct filter templates repeated many times).
//
// Thread safety: all methods are safe for concurrent use.
type ParseCache struct {
	mu    sync.RWMutex
	items map[uint64]parseCacheEntry
	max   int
}

// parseCacheEntry keeps the original input alongside the result so that a
// 64-bit hash collision degrades to a miss instead of a wrong answer.
type parseCacheEntry struct {
	input  string
	groups ExprGroups
}

// NewParseCache creates a cache holding at most max parsed filters. A max of
// zero or less falls back to the default capacity.
func NewParseCache(max int) *ParseCache {
	if max <= 0 {
		max = defaultParseCacheSize
	}
	return &ParseCache{
		items: make(map[uint64]parseCacheEntry, max),
		max:   max,
	}
}

var defaultParseCache = NewParseCache(defaultParseCacheSize)

func (c *ParseCache) get(input string) (ExprGroups, bool) {
	key := xxhash.Sum64String(input)
	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()
	if !ok || entry.input != input {
		return nil, false
	}
	return entry.groups, true
}

func (c *ParseCache) put(input string, groups ExprGroups) {
	key := xxhash.Sum64String(input)
	c.mu.Lock()
	if len(c.items) >= c.max {
		// Evict everything and start fresh rather than tracking entry ages.
		c.items = make(map[uint64]parseCacheEntry, c.max)
	}
	c.items[key] = parseCacheEntry{input: input, groups: groups}
	c.mu.Unlock()
}

// Parse returns the parsed groups for input, falling back to Parse and caching
// the result on a miss. Only successful parses are cached. The returned groups
// MUST NOT be modified by the caller because they may be shared with other
// goroutines.
func (c *ParseCache) Parse(input string) (ExprGroups, error) {
	if groups, ok := c.get(input); ok {
		observability.RecordCacheLookup(context.Background(), true)
		return groups, nil
	}
	observability.RecordCacheLookup(context.Background(), false)

	groups, err := Parse(input)
	if err != nil {
		return nil, err
	}
	c.put(input, groups)
	return groups, nil
}

// CachedParse is ParseCache.Parse on a package-level default cache.
func CachedParse(input string) (ExprGroups, error) {
	return defaultParseCache.Parse(input)
}
