/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

// Package cache provides an in-memory key-value store with LRU eviction policy,
// per-entry TTL expiration, statistics counters, and Prometheus metrics.
package cache
