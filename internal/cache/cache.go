// Package cache provides a session-scoped key/value store with per-entry
// freshness expiry. Entries older than the TTL are evicted lazily on read;
// there is no capacity bound and no background sweep.
package cache

import (
	"sync"
	"time"
)

// DefaultTTL is the freshness window applied when none is configured.
const DefaultTTL = 5 * time.Minute

type entry struct {
	value     any
	writtenAt time.Time
}

// Store is a TTL cache. Safe for concurrent use: fetch completions write
// from their own goroutines.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// New returns a store with the given freshness window. A non-positive ttl
// falls back to DefaultTTL.
func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// NewWithClock is New with an injected clock, for tests.
func NewWithClock(ttl time.Duration, now func() time.Time) *Store {
	s := New(ttl)
	if now != nil {
		s.now = now
	}
	return s
}

// Get returns the stored value for key. An entry older than the freshness
// window is deleted and reported as a miss; it is never returned stale.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if s.now().Sub(e.writtenAt) > s.ttl {
		delete(s.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key, overwriting any prior entry and restamping
// the write time.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{value: value, writtenAt: s.now()}
}

// Clear drops all entries.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]entry)
}

// Len reports the number of entries currently held, including any that have
// expired but not yet been read.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
