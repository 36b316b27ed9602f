/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/acronis/go-appkit/httpserver/middleware"
	"github.com/acronis/go-appkit/log"
	"github.com/acronis/go-appkit/restapi"
	"github.com/go-chi/chi/v5"

	"github.com/acronis/go-kvcache/internal/cache"
)

// ErrorDomain is used for error response formatting.
const ErrorDomain = "KVCache"

// Error codes specific to the cache API.
// restapi.ErrCodeNotFound and restapi.ErrCodeInternal are reused for the rest.
var (
	ErrCodeInvalidRequest = "invalidRequest"
	ErrCodeCacheFull      = "cacheFull"
)

// NewSetHandler creates an http.HandlerFunc for the set operation (PUT /set).
func NewSetHandler(store *cache.Store) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		logger := middleware.GetLoggerFromContext(r.Context())

		var req SetRequest
		if err := restapi.DecodeRequestJSON(r, &req); err != nil {
			restapi.RespondMalformedRequestOrInternalError(rw, ErrorDomain, err, logger)
			return
		}

		var err error
		if req.TTL != nil {
			err = store.SetWithTTL(req.Key, []byte(req.Value), time.Duration(*req.TTL)*time.Second)
		} else {
			err = store.Set(req.Key, []byte(req.Value))
		}
		if err != nil {
			respondCacheError(rw, err, logger)
			return
		}

		restapi.RespondJSON(rw, &SetResponse{
			Message: fmt.Sprintf("Key %q set successfully", req.Key),
			Key:     req.Key,
		}, logger)
	}
}

// NewGetHandler creates an http.HandlerFunc for the get operation (GET /get/{key}).
func NewGetHandler(store *cache.Store) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		logger := middleware.GetLoggerFromContext(r.Context())
		key := chi.URLParam(r, "key")

		value, err := store.Get(key)
		if err != nil {
			respondCacheError(rw, err, logger)
			return
		}

		restapi.RespondJSON(rw, &GetResponse{Key: key, Value: string(value)}, logger)
	}
}

// NewDeleteHandler creates an http.HandlerFunc for the delete operation (DELETE /del/{key}).
func NewDeleteHandler(store *cache.Store) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		logger := middleware.GetLoggerFromContext(r.Context())
		key := chi.URLParam(r, "key")

		if err := store.Delete(key); err != nil {
			respondCacheError(rw, err, logger)
			return
		}

		restapi.RespondJSON(rw, &DeleteResponse{
			Message: fmt.Sprintf("Key %q deleted successfully", key),
			Key:     key,
		}, logger)
	}
}

// NewStatsHandler creates an http.HandlerFunc for the statistics endpoint (GET /stats).
func NewStatsHandler(store *cache.Store) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		logger := middleware.GetLoggerFromContext(r.Context())

		stats := store.Stats()
		restapi.RespondJSON(rw, &StatsResponse{
			Hits:         stats.Hits,
			Misses:       stats.Misses,
			Evictions:    stats.Evictions,
			TotalEntries: stats.TotalEntries,
			HitRate:      stats.HitRate(),
		}, logger)
	}
}

// Routes returns a configuration function that registers all cache API routes on a chi.Router.
func Routes(store *cache.Store) func(chi.Router) {
	return func(router chi.Router) {
		router.Put("/set", NewSetHandler(store))
		router.Get("/get/{key}", NewGetHandler(store))
		router.Delete("/del/{key}", NewDeleteHandler(store))
		router.Get("/stats", NewStatsHandler(store))
	}
}

// respondCacheError maps cache error kinds to HTTP status codes:
// NotFound -> 404, InvalidRequest -> 400, CacheFull -> 503, everything else -> 500.
func respondCacheError(rw http.ResponseWriter, err error, logger log.FieldLogger) {
	var notFoundErr *cache.NotFoundError
	var invalidReqErr *cache.InvalidRequestError
	var cacheFullErr *cache.CacheFullError

	switch {
	case errors.As(err, &notFoundErr):
		apiErr := restapi.NewError(ErrorDomain, restapi.ErrCodeNotFound, notFoundErr.Error())
		restapi.RespondError(rw, http.StatusNotFound, apiErr, logger)
	case errors.As(err, &invalidReqErr):
		apiErr := restapi.NewError(ErrorDomain, ErrCodeInvalidRequest, invalidReqErr.Error())
		restapi.RespondError(rw, http.StatusBadRequest, apiErr, logger)
	case errors.As(err, &cacheFullErr):
		apiErr := restapi.NewError(ErrorDomain, ErrCodeCacheFull, cacheFullErr.Error())
		restapi.RespondError(rw, http.StatusServiceUnavailable, apiErr, logger)
	default:
		if logger != nil {
			logger.Error("unexpected cache error", log.Error(err))
		}
		restapi.RespondInternalError(rw, ErrorDomain, logger)
	}
}
