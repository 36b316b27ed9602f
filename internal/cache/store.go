/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package cache

import (
	"fmt"
	"sync"
	"time"
)

// Store is an in-memory key-value store bounded by the maximum number of entries.
// Capacity overflow is resolved with LRU eviction, and every entry may carry a TTL.
// All operations are serialized through a single exclusive lock, so the whole
// aggregate (entries, recency order, statistics) advances through one total
// order of operations.
type Store struct {
	mu      sync.Mutex
	entries map[string]*Entry
	recency *RecencyTracker
	stats   *Statistics

	maxEntries   int
	defaultTTL   time.Duration
	maxKeyLength int
	maxValueSize int

	metricsCollector MetricsCollector

	now func() time.Time
}

// New creates a new Store with the provided configuration and metrics collector.
// Metrics collector may be nil, in this case metrics are disabled.
// Zero MaxEntries is allowed, but such a store rejects every new key with CacheFullError.
func New(cfg *Config, metricsCollector MetricsCollector) (*Store, error) {
	if cfg.MaxEntries < 0 {
		return nil, fmt.Errorf("maxEntries must be greater or equal to 0")
	}
	if cfg.DefaultTTL < 0 {
		return nil, fmt.Errorf("defaultTTL must be greater or equal to 0 (no expiration)")
	}
	if cfg.MaxKeyLength <= 0 {
		return nil, fmt.Errorf("maxKeyLength must be greater than 0")
	}
	if cfg.MaxValueSize == 0 {
		return nil, fmt.Errorf("maxValueSize must be greater than 0")
	}
	if metricsCollector == nil {
		metricsCollector = disabledMetrics{}
	}

	return &Store{
		entries:          make(map[string]*Entry),
		recency:          NewRecencyTracker(),
		stats:            NewStatistics(),
		maxEntries:       cfg.MaxEntries,
		defaultTTL:       time.Duration(cfg.DefaultTTL),
		maxKeyLength:     cfg.MaxKeyLength,
		maxValueSize:     int(cfg.MaxValueSize),
		metricsCollector: metricsCollector,
		now:              time.Now,
	}, nil
}

// Set stores a key-value pair with the default TTL.
// If the key already exists, the value is overwritten and its TTL is reset.
func (s *Store) Set(key string, value []byte) error {
	return s.SetWithTTL(key, value, s.defaultTTL)
}

// SetWithTTL stores a key-value pair with the provided TTL (0 means no expiration).
// If the key already exists, the value is overwritten and its TTL is reset, not extended.
// If the store is full, the least recently used entry is evicted to free space.
func (s *Store) SetWithTTL(key string, value []byte, ttl time.Duration) error {
	if len(key) == 0 {
		return &InvalidRequestError{Reason: "key must not be empty"}
	}
	if len(key) > s.maxKeyLength {
		return &InvalidRequestError{Reason: fmt.Sprintf("key exceeds maximum length of %d bytes", s.maxKeyLength)}
	}
	if len(value) > s.maxValueSize {
		return &InvalidRequestError{Reason: fmt.Sprintf("value exceeds maximum size of %d bytes", s.maxValueSize)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if ent, ok := s.entries[key]; ok {
		*ent = newEntry(value, ttl, s.now())
		s.recency.Touch(key)
		return nil
	}

	if len(s.entries) >= s.maxEntries {
		if s.maxEntries == 0 {
			return &CacheFullError{Reason: "cache capacity is zero"}
		}
		evictedKey, ok := s.recency.EvictOldest()
		if !ok {
			return &InternalError{Reason: "recency tracker is empty while the store is full"}
		}
		delete(s.entries, evictedKey)
		s.stats.RecordEviction()
		s.metricsCollector.AddEvictions(1)
	}

	ent := newEntry(value, ttl, s.now())
	s.entries[key] = &ent
	s.recency.Touch(key)
	s.metricsCollector.SetAmount(len(s.entries))
	return nil
}

// Get returns the value stored under the provided key and refreshes its recency.
// An entry found expired is removed and reported as a miss,
// indistinguishable from a key that was never present.
func (s *Store) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.entries[key]
	if !ok {
		s.stats.RecordMiss()
		s.metricsCollector.IncMisses()
		return nil, &NotFoundError{Key: key}
	}
	if ent.IsExpired(s.now()) {
		delete(s.entries, key)
		s.recency.Remove(key)
		s.stats.RecordMiss()
		s.metricsCollector.IncMisses()
		s.metricsCollector.SetAmount(len(s.entries))
		return nil, &NotFoundError{Key: key}
	}

	s.recency.Touch(key)
	s.stats.RecordHit()
	s.metricsCollector.IncHits()
	return append([]byte(nil), ent.Value...), nil
}

// Delete removes the entry stored under the provided key.
// It does not affect hit/miss counters.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok {
		return &NotFoundError{Key: key}
	}
	delete(s.entries, key)
	s.recency.Remove(key)
	s.metricsCollector.SetAmount(len(s.entries))
	return nil
}

// CleanupExpired removes all currently expired entries and returns their number.
// Unlike lazy expiration in Get, sweep removals are counted as evictions.
// Cost is proportional to the number of live entries.
func (s *Store) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for key, ent := range s.entries {
		if !ent.IsExpired(now) {
			continue
		}
		delete(s.entries, key)
		s.recency.Remove(key)
		s.stats.RecordEviction()
		removed++
	}
	if removed > 0 {
		s.metricsCollector.AddEvictions(removed)
		s.metricsCollector.SetAmount(len(s.entries))
	}
	return removed
}

// Stats returns a snapshot of the store statistics.
func (s *Store) Stats() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.Snapshot(len(s.entries))
}

// Len returns the current number of entries in the store.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
