/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package api

// SetRequest is a request body for the set operation (PUT /set).
type SetRequest struct {
	// Key is a cache key to store the value under.
	Key string `json:"key"`

	// Value is a value to store.
	Value string `json:"value"`

	// TTL is an optional TTL in seconds. The store's default TTL is used when omitted.
	TTL *uint64 `json:"ttl,omitempty"`
}

// SetResponse is a response body for the set operation.
type SetResponse struct {
	Message string `json:"message"`
	Key     string `json:"key"`
}

// GetResponse is a response body for the get operation (GET /get/{key}).
type GetResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// DeleteResponse is a response body for the delete operation (DELETE /del/{key}).
type DeleteResponse struct {
	Message string `json:"message"`
	Key     string `json:"key"`
}

// StatsResponse is a response body for the statistics endpoint (GET /stats).
type StatsResponse struct {
	Hits         uint64  `json:"hits"`
	Misses       uint64  `json:"misses"`
	Evictions    uint64  `json:"evictions"`
	TotalEntries int     `json:"totalEntries"`
	HitRate      float64 `json:"hitRate"`
}
