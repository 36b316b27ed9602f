/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package cache

import "go.uber.org/atomic"

// Statistics holds monotonic counters of cache usage.
type Statistics struct {
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// NewStatistics creates a new Statistics with all counters at zero.
func NewStatistics() *Statistics {
	return &Statistics{}
}

// RecordHit increments the hit counter.
func (s *Statistics) RecordHit() {
	s.hits.Inc()
}

// RecordMiss increments the miss counter.
func (s *Statistics) RecordMiss() {
	s.misses.Inc()
}

// RecordEviction increments the eviction counter.
func (s *Statistics) RecordEviction() {
	s.evictions.Inc()
}

// Snapshot returns an immutable copy of the counters.
// The current number of entries is supplied by the caller (Store knows it, Statistics doesn't).
func (s *Statistics) Snapshot(totalEntries int) StatsSnapshot {
	return StatsSnapshot{
		Hits:         s.hits.Load(),
		Misses:       s.misses.Load(),
		Evictions:    s.evictions.Load(),
		TotalEntries: totalEntries,
	}
}

// StatsSnapshot is a point-in-time copy of cache statistics.
type StatsSnapshot struct {
	Hits         uint64
	Misses       uint64
	Evictions    uint64
	TotalEntries int
}

// HitRate returns hits / (hits + misses), or 0 if there were no reads yet.
func (s StatsSnapshot) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
