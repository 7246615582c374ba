// Package cache provides a generic least-recently-used cache.
//
// LRU[K, V] pairs a map with a doubly-linked recency list, so lookups,
// inserts and evictions are all O(1). Capacity is an exact entry count:
// inserting into a full cache evicts exactly the least recently used entry.
//
//	c := cache.New[string, int](256)
//	c.Set("key", 42)
//	value, ok := c.Get("key") // promotes "key"
//
// # Thread Safety
//
// LRU is not safe for concurrent use. A hit reorders the recency list, so a
// concurrent owner must serialize Get as well as Set behind one mutex.
package cache
