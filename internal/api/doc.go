/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

// Package api contains HTTP handlers and routes of the cache service.
package api
