package cache

import "time"

// Store is the minimal contract the prediction cache needs from its backing
// key/value store. The in-memory implementation below is the default; a shared
// external store (e.g. a distributed key-value cache) can replace it without
// touching calling code, which closes the multi-instance consistency gap of
// per-process caches.
type Store interface {
	// Get returns the value for key, or (nil, false) when the key is absent
	// or its entry has expired. Expired entries are removed on access.
	Get(key string) (any, bool)
	// Set stores value under key with the given TTL. The owner ID is recorded
	// so InvalidateUser can remove entries by payload owner.
	Set(key string, value any, ownerID string, ttl time.Duration)
	// InvalidateUser removes every entry whose owner ID matches and returns
	// the number of entries removed.
	InvalidateUser(ownerID string) int
	// Clear removes all entries.
	Clear()
	// Len returns the current entry count, including not-yet-swept expired entries.
	Len() int
}

// Stats reports cache performance counters.
type Stats struct {
	Entries int64 `json:"entries"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}
