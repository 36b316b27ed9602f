/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/acronis/go-appkit/log"
	"github.com/acronis/go-appkit/service"
	"github.com/stretchr/testify/require"
)

func TestCleanupWorkerRun(t *testing.T) {
	store, _ := makeStore(t, 100)
	clock := newFakeClock()
	store.now = clock.Now

	require.NoError(t, store.SetWithTTL("expiring", []byte("v"), time.Second))
	require.NoError(t, store.SetWithTTL("live", []byte("v"), time.Hour))
	require.NoError(t, store.Set("permanent", []byte("v")))

	worker := NewCleanupWorker(store, log.NewDisabledLogger())

	require.NoError(t, worker.Run(context.Background()))
	require.Equal(t, 3, store.Len())

	clock.Advance(2 * time.Second)
	require.NoError(t, worker.Run(context.Background()))
	require.Equal(t, 2, store.Len())

	_, err := store.Get("live")
	require.NoError(t, err)
	_, err = store.Get("permanent")
	require.NoError(t, err)
}

func TestCleanupWorkerPeriodic(t *testing.T) {
	cfg := NewDefaultConfig()
	store, err := New(cfg, nil)
	require.NoError(t, err)

	require.NoError(t, store.SetWithTTL("expiring", []byte("v"), 20*time.Millisecond))
	require.NoError(t, store.SetWithTTL("live", []byte("v"), time.Hour))

	worker := service.NewPeriodicWorker(
		NewCleanupWorker(store, log.NewDisabledLogger()), 10*time.Millisecond, log.NewDisabledLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = worker.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		return store.Len() == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("periodic worker did not stop after context cancellation")
	}

	_, err = store.Get("live")
	require.NoError(t, err)
}
