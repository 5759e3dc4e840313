// Package memo provides a small unbounded memoization cache keyed by a
// comparable argument tuple. Entries live for the lifetime of the process,
// there is no eviction. The cache is NOT synchronized - callers that share a
// cache between goroutines must provide their own guard or use a per-goroutine
// instance.
package memo

// Cache maps an argument tuple K to a previously computed result V.
type Cache[K comparable, V any] struct {
	entries map[K]V
}

// New creates an empty cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{entries: make(map[K]V)}
}

// Do returns the cached result for key, computing and storing it via fn on
// the first call. fn is invoked at most once per distinct key.
func (c *Cache[K, V]) Do(key K, fn func() V) V {
	if v, ok := c.entries[key]; ok {
		return v
	}
	v := fn()
	c.entries[key] = v
	return v
}

// Get returns the cached result for key if present.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.entries[key]
	return v, ok
}

// Put stores a result for key, replacing any previous one.
func (c *Cache[K, V]) Put(key K, v V) {
	c.entries[key] = v
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}
