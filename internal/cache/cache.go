// Package cache provides the injectable lookup cache used for resolved
// tiers and creation dates. It replaces process-wide static state so
// tests can inject a fresh cache per run and assert hit behavior.
package cache

// Cache is a write-once-per-key lookup cache. Entries are immutable
// after the first write and keyed by exact string. Concurrent callers
// may race to populate a key; resolution is idempotent so the race is
// harmless beyond a duplicate computation.
type Cache interface {
	// Get returns the cached value for key, if present.
	Get(key string) (interface{}, bool)
	// GetOrCompute returns the cached value for key, computing and
	// storing it on a miss. The computed value is stored even when it
	// is a negative sentinel, so failing lookups are not repeated.
	GetOrCompute(key string, compute func() interface{}) interface{}
	// Count returns the number of cached entries.
	Count() int
}
