/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package cache

import "time"

// Entry represents a single cache entry with its value and expiration metadata.
// Zero ExpiresAt means the entry never expires.
type Entry struct {
	Value     []byte
	CreatedAt time.Time
	ExpiresAt time.Time
}

func newEntry(value []byte, ttl time.Duration, now time.Time) Entry {
	e := Entry{Value: append([]byte(nil), value...), CreatedAt: now}
	if ttl > 0 {
		e.ExpiresAt = now.Add(ttl)
	}
	return e
}

// IsExpired reports whether the entry is expired at the passed moment.
// The boundary is inclusive: the entry is already expired at the exact expiration instant.
func (e *Entry) IsExpired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && !now.Before(e.ExpiresAt)
}

// TTLRemaining returns the time left until the entry expires.
// The second result is false if the entry has no expiration or is already expired.
func (e *Entry) TTLRemaining(now time.Time) (time.Duration, bool) {
	if e.ExpiresAt.IsZero() {
		return 0, false
	}
	d := e.ExpiresAt.Sub(now)
	if d <= 0 {
		return 0, false
	}
	return d, true
}
