package text

import (
	"fmt"

	"github.com/gogpu/glyph/internal/cache"
)

// DefaultGlyphCacheCapacity is the number of masks a cache holds when no
// capacity is given.
const DefaultGlyphCacheCapacity = 256

// GlyphKey identifies a cached glyph mask. Colors are deliberately absent:
// a mask is rasterized once and composited with any color pair.
type GlyphKey struct {
	// Font is the ID allocated when the font was loaded.
	Font FontID

	// Size is the pixel size (pixels per em).
	Size uint32

	// GID is the glyph index within the font.
	GID GlyphID
}

// String returns a compact form such as "font#3/16px/g42".
func (k GlyphKey) String() string {
	return fmt.Sprintf("%s/%dpx/g%d", k.Font, k.Size, k.GID)
}

// GlyphCache is a fixed-capacity LRU cache of glyph masks.
//
// Keys compare by exact equality. A hit promotes the entry, and inserting
// into a full cache evicts exactly the least recently used entry.
//
// GlyphCache is not safe for concurrent use: because hits reorder the
// recency list, concurrent owners must serialize lookups as well as
// inserts (see SyncRenderer).
type GlyphCache struct {
	lru *cache.LRU[GlyphKey, GlyphMask]
}

// GlyphCacheStats holds cache statistics.
type GlyphCacheStats = cache.Stats

// NewGlyphCache creates a cache holding at most capacity masks.
// capacity <= 0 selects DefaultGlyphCacheCapacity.
func NewGlyphCache(capacity int) *GlyphCache {
	if capacity <= 0 {
		capacity = DefaultGlyphCacheCapacity
	}
	return &GlyphCache{lru: cache.New[GlyphKey, GlyphMask](capacity)}
}

// Lookup returns the mask stored for key and marks it most recently used.
func (c *GlyphCache) Lookup(key GlyphKey) (GlyphMask, bool) {
	return c.lru.Get(key)
}

// Contains reports whether key is cached, without changing recency.
func (c *GlyphCache) Contains(key GlyphKey) bool {
	return c.lru.Contains(key)
}

// Insert stores mask under key as the most recently used entry. If key is
// already present its mask is replaced; otherwise a full cache first
// evicts its least recently used entry.
func (c *GlyphCache) Insert(key GlyphKey, mask GlyphMask) {
	c.lru.Set(key, mask)
}

// OnEvict registers fn to be called for every entry evicted by Insert.
func (c *GlyphCache) OnEvict(fn func(GlyphKey, GlyphMask)) {
	c.lru.OnEvict(fn)
}

// Keys returns the cached keys from most to least recently used.
func (c *GlyphCache) Keys() []GlyphKey {
	return c.lru.Keys()
}

// Len returns the number of cached masks.
func (c *GlyphCache) Len() int {
	return c.lru.Len()
}

// Capacity returns the maximum number of cached masks.
func (c *GlyphCache) Capacity() int {
	return c.lru.Capacity()
}

// Clear removes all entries. Statistics are kept.
func (c *GlyphCache) Clear() {
	c.lru.Clear()
}

// ResetStats zeroes the hit, miss, insertion and eviction counters,
// for measuring one phase of work at a time.
func (c *GlyphCache) ResetStats() {
	c.lru.ResetStats()
}

// Stats returns hit, miss, insertion and eviction counts.
func (c *GlyphCache) Stats() GlyphCacheStats {
	return c.lru.Stats()
}
