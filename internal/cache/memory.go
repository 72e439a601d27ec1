package cache

import (
	"sort"
	"sync"
	"time"
)

const (
	// DefaultMaxEntries bounds a memory store's size. When exceeded, the
	// oldest entries are evicted until the store shrinks to evictTargetRatio.
	DefaultMaxEntries = 10000
	// evictTargetRatio is the fill level eviction shrinks the store to.
	evictTargetRatio = 0.8
	// DefaultSweepInterval is how often the background sweeper removes
	// expired entries that lazy expiry never touched.
	DefaultSweepInterval = time.Hour
)

// entry is a stored value with its lifecycle metadata.
type entry struct {
	value     any
	ownerID   string
	timestamp time.Time
	expiresAt time.Time
	seq       uint64 // insertion order tie-break for equal timestamps
}

// MemoryStore is an in-process Store with lazy expiry on Get, a periodic
// sweeper, and oldest-first eviction once maxEntries is exceeded.
type MemoryStore struct {
	mu         sync.Mutex
	entries    map[string]*entry
	maxEntries int
	seq        uint64
	hits       int64
	misses     int64

	now      func() time.Time // replaceable for tests
	stopOnce sync.Once
	stop     chan struct{}
}

// NewMemoryStore creates a store bounded to maxEntries and starts its
// background sweeper, so write-only traffic is bounded by expiry as well as
// eviction. Call Close to stop the sweeper. A maxEntries of 0 uses
// DefaultMaxEntries.
func NewMemoryStore(maxEntries int) *MemoryStore {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	s := &MemoryStore{
		entries:    make(map[string]*entry),
		maxEntries: maxEntries,
		now:        time.Now,
		stop:       make(chan struct{}),
	}
	s.StartSweeper(DefaultSweepInterval)
	return s
}

// Get returns the live value for key. Expired entries are deleted and reported
// as misses.
func (s *MemoryStore) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		s.misses++
		return nil, false
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, key)
		s.misses++
		return nil, false
	}
	s.hits++
	return e.value, true
}

// Set stores value under key and evicts oldest entries if the store grew past
// its bound.
func (s *MemoryStore) Set(key string, value any, ownerID string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.seq++
	s.entries[key] = &entry{
		value:     value,
		ownerID:   ownerID,
		timestamp: now,
		expiresAt: now.Add(ttl),
		seq:       s.seq,
	}

	if len(s.entries) > s.maxEntries {
		s.evictOldestLocked()
	}
}

// evictOldestLocked removes oldest-by-timestamp entries until the store is at
// evictTargetRatio of its bound. Eviction is unconditional by insertion age,
// not LRU-by-access.
func (s *MemoryStore) evictOldestLocked() {
	target := int(float64(s.maxEntries) * evictTargetRatio)

	type aged struct {
		key string
		ts  time.Time
		seq uint64
	}
	ordered := make([]aged, 0, len(s.entries))
	for k, e := range s.entries {
		ordered = append(ordered, aged{key: k, ts: e.timestamp, seq: e.seq})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].ts.Equal(ordered[j].ts) {
			return ordered[i].seq < ordered[j].seq
		}
		return ordered[i].ts.Before(ordered[j].ts)
	})

	for _, a := range ordered {
		if len(s.entries) <= target {
			break
		}
		delete(s.entries, a.key)
	}
}

// InvalidateUser removes every entry owned by ownerID.
func (s *MemoryStore) InvalidateUser(ownerID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for k, e := range s.entries {
		if e.ownerID == ownerID {
			delete(s.entries, k)
			removed++
		}
	}
	return removed
}

// Clear removes all entries.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*entry)
}

// Len returns the current entry count.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Stats returns performance counters for the store.
func (s *MemoryStore) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Entries: int64(len(s.entries)),
		Hits:    s.hits,
		Misses:  s.misses,
	}
}

// Sweep removes all expired entries immediately and returns the number removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for k, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, k)
			removed++
		}
	}
	return removed
}

// StartSweeper launches a background goroutine sweeping expired entries at the
// given interval until Close is called. The sweeper never blocks callers.
func (s *MemoryStore) StartSweeper(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-s.stop:
				return
			}
		}
	}()
}

// Close stops the background sweeper if one is running.
func (s *MemoryStore) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}
