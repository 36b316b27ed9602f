/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecencyTrackerTouch(t *testing.T) {
	tracker := NewRecencyTracker()

	tracker.Touch("a")
	tracker.Touch("b")
	tracker.Touch("c")
	require.Equal(t, 3, tracker.Len())

	oldest, ok := tracker.OldestKey()
	require.True(t, ok)
	require.Equal(t, "a", oldest)

	// Touching an existing key relocates it to the most-recent position.
	tracker.Touch("a")
	require.Equal(t, 3, tracker.Len())
	oldest, ok = tracker.OldestKey()
	require.True(t, ok)
	require.Equal(t, "b", oldest)
}

func TestRecencyTrackerTouchSameKeyMultipleTimes(t *testing.T) {
	tracker := NewRecencyTracker()

	tracker.Touch("a")
	tracker.Touch("a")
	tracker.Touch("a")

	require.Equal(t, 1, tracker.Len())
	key, ok := tracker.EvictOldest()
	require.True(t, ok)
	require.Equal(t, "a", key)
	require.Equal(t, 0, tracker.Len())
}

func TestRecencyTrackerRemove(t *testing.T) {
	tracker := NewRecencyTracker()

	tracker.Touch("a")
	tracker.Touch("b")
	tracker.Touch("c")

	tracker.Remove("b")
	require.Equal(t, 2, tracker.Len())

	// Removing an untracked key is a no-op.
	tracker.Remove("nonexistent")
	require.Equal(t, 2, tracker.Len())

	key, ok := tracker.EvictOldest()
	require.True(t, ok)
	require.Equal(t, "a", key)
	key, ok = tracker.EvictOldest()
	require.True(t, ok)
	require.Equal(t, "c", key)
}

func TestRecencyTrackerEvictOldest(t *testing.T) {
	tracker := NewRecencyTracker()

	_, ok := tracker.EvictOldest()
	require.False(t, ok)

	tracker.Touch("a")
	tracker.Touch("b")
	tracker.Touch("c")

	// Access in a different order and check the resulting eviction order.
	tracker.Touch("a")
	tracker.Touch("c")
	tracker.Touch("b")

	wantOrder := []string{"a", "c", "b"}
	for _, want := range wantOrder {
		key, evicted := tracker.EvictOldest()
		require.True(t, evicted)
		require.Equal(t, want, key)
	}
	require.Equal(t, 0, tracker.Len())
}

func TestRecencyTrackerOldestKeyDoesNotRemove(t *testing.T) {
	tracker := NewRecencyTracker()

	_, ok := tracker.OldestKey()
	require.False(t, ok)

	tracker.Touch("a")
	tracker.Touch("b")

	oldest, ok := tracker.OldestKey()
	require.True(t, ok)
	require.Equal(t, "a", oldest)
	require.Equal(t, 2, tracker.Len())
}
