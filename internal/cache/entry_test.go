/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	now := time.Now()

	t.Run("no ttl", func(t *testing.T) {
		e := newEntry([]byte("value"), 0, now)
		require.Equal(t, []byte("value"), e.Value)
		require.Equal(t, now, e.CreatedAt)
		require.True(t, e.ExpiresAt.IsZero())
		require.False(t, e.IsExpired(now.Add(time.Hour*24*365)))
	})

	t.Run("with ttl", func(t *testing.T) {
		e := newEntry([]byte("value"), time.Minute, now)
		require.Equal(t, now, e.CreatedAt)
		require.Equal(t, now.Add(time.Minute), e.ExpiresAt)
		require.False(t, e.ExpiresAt.Before(e.CreatedAt))
		require.False(t, e.IsExpired(now))
	})

	t.Run("value is copied", func(t *testing.T) {
		val := []byte("value")
		e := newEntry(val, 0, now)
		val[0] = 'x'
		require.Equal(t, []byte("value"), e.Value)
	})
}

func TestEntryIsExpired(t *testing.T) {
	now := time.Now()
	e := newEntry([]byte("value"), time.Second, now)

	require.False(t, e.IsExpired(now))
	require.False(t, e.IsExpired(now.Add(999*time.Millisecond)))

	// The boundary is inclusive: expired at the exact expiration instant.
	require.True(t, e.IsExpired(now.Add(time.Second)))
	require.True(t, e.IsExpired(now.Add(time.Second+time.Millisecond)))
}

func TestEntryTTLRemaining(t *testing.T) {
	now := time.Now()

	t.Run("no expiration", func(t *testing.T) {
		e := newEntry([]byte("value"), 0, now)
		_, ok := e.TTLRemaining(now)
		require.False(t, ok)
	})

	t.Run("before expiration", func(t *testing.T) {
		e := newEntry([]byte("value"), 10*time.Second, now)
		d, ok := e.TTLRemaining(now.Add(4 * time.Second))
		require.True(t, ok)
		require.Equal(t, 6*time.Second, d)
	})

	t.Run("already expired", func(t *testing.T) {
		e := newEntry([]byte("value"), time.Second, now)
		_, ok := e.TTLRemaining(now.Add(time.Second))
		require.False(t, ok)
	})
}
