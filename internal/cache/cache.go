package cache

// LRU is a generic least-recently-used cache with a fixed capacity.
// Inserting into a full cache evicts exactly one entry, the least recently
// used one. Get promotes the entry it finds, so lookups mutate state.
//
// LRU is not safe for concurrent use: it is meant to be owned by a single
// goroutine, or guarded by the owner's mutex (a hit also needs the lock).
type LRU[K comparable, V any] struct {
	entries  map[K]*lruNode[K, V]
	order    lruList[K, V]
	capacity int
	onEvict  func(K, V)
	stats    Stats
}

// New creates an LRU cache holding at most capacity entries.
// A capacity below 1 is raised to 1.
func New[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &LRU[K, V]{
		entries:  make(map[K]*lruNode[K, V], capacity),
		capacity: capacity,
	}
}

// OnEvict registers fn to be called with every entry evicted to make room.
// Clear does not call it.
func (c *LRU[K, V]) OnEvict(fn func(K, V)) {
	c.onEvict = fn
}

// Get retrieves a value and marks it most recently used.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	node, ok := c.entries[key]
	if !ok {
		c.stats.Misses++
		var zero V
		return zero, false
	}
	c.order.MoveToFront(node)
	c.stats.Hits++
	return node.value, true
}

// Contains reports whether key is cached, without changing its recency.
func (c *LRU[K, V]) Contains(key K) bool {
	_, ok := c.entries[key]
	return ok
}

// Set stores a value and marks it most recently used. An existing entry
// for key is replaced in place. When a new key arrives at capacity, the
// least recently used entry is evicted first and reported via OnEvict.
func (c *LRU[K, V]) Set(key K, value V) {
	if node, ok := c.entries[key]; ok {
		node.value = value
		c.order.MoveToFront(node)
		return
	}

	if c.order.Len() >= c.capacity {
		c.evictOldest()
	}

	c.entries[key] = c.order.PushFront(key, value)
	c.stats.Insertions++
}

// Keys returns the cached keys from most to least recently used.
func (c *LRU[K, V]) Keys() []K {
	keys := make([]K, 0, c.order.Len())
	for node := c.order.Front(); node != nil; node = node.next {
		keys = append(keys, node.key)
	}
	return keys
}

// Clear removes all entries. Statistics are kept.
func (c *LRU[K, V]) Clear() {
	c.entries = make(map[K]*lruNode[K, V], c.capacity)
	c.order.Clear()
}

// Len returns the number of entries in the cache.
func (c *LRU[K, V]) Len() int {
	return c.order.Len()
}

// Capacity returns the maximum number of entries.
func (c *LRU[K, V]) Capacity() int {
	return c.capacity
}

// Stats returns cache statistics.
func (c *LRU[K, V]) Stats() Stats {
	s := c.stats
	s.Len = c.order.Len()
	s.Capacity = c.capacity
	return s
}

// ResetStats zeroes the hit, miss, insertion and eviction counters.
func (c *LRU[K, V]) ResetStats() {
	c.stats = Stats{}
}

// evictOldest removes the tail of the recency list.
func (c *LRU[K, V]) evictOldest() {
	node := c.order.Back()
	if node == nil {
		return
	}
	c.order.Remove(node)
	delete(c.entries, node.key)
	c.stats.Evictions++
	if c.onEvict != nil {
		c.onEvict(node.key, node.value)
	}
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the maximum number of entries.
	Capacity int
	// Hits is the number of Get calls that found their key.
	Hits uint64
	// Misses is the number of Get calls that did not.
	Misses uint64
	// Insertions is the number of new keys stored by Set.
	Insertions uint64
	// Evictions is the number of entries dropped to make room.
	Evictions uint64
}

// HitRate returns hits / (hits + misses), or 0 with no lookups.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
