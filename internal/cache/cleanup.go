/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package cache

import (
	"context"

	"github.com/acronis/go-appkit/log"
	"github.com/acronis/go-appkit/service"
)

// CleanupWorker sweeps expired entries out of the Store through its public
// CleanupExpired operation. It implements service.Worker and is supposed to be
// driven by service.PeriodicWorker on the configured cleanup interval.
type CleanupWorker struct {
	store  *Store
	logger log.FieldLogger
}

var _ service.Worker = (*CleanupWorker)(nil)

// NewCleanupWorker creates a new CleanupWorker for the provided Store.
func NewCleanupWorker(store *Store, logger log.FieldLogger) *CleanupWorker {
	return &CleanupWorker{store: store, logger: logger}
}

// Run performs a single cleanup pass.
// A problem with a single entry is scoped to that entry; the pass itself never fails.
func (w *CleanupWorker) Run(_ context.Context) error {
	removed := w.store.CleanupExpired()
	if removed > 0 {
		w.logger.Info("expired cache entries removed", log.Int("removed", removed))
	} else {
		w.logger.Debug("no expired cache entries found")
	}
	return nil
}
