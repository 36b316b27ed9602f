/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package cache

import "fmt"

// NotFoundError occurs when the requested key is absent or was found expired.
// Expired and never-present keys are deliberately indistinguishable for the caller.
type NotFoundError struct {
	Key string
}

// Error returns a string representation of NotFoundError.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("key %q not found", e.Key)
}

// InvalidRequestError occurs when the key or value violates configured limits.
type InvalidRequestError struct {
	Reason string
}

// Error returns a string representation of InvalidRequestError.
func (e *InvalidRequestError) Error() string {
	return "invalid request: " + e.Reason
}

// CacheFullError occurs when a new key cannot be admitted
// because eviction is structurally impossible.
type CacheFullError struct {
	Reason string
}

// Error returns a string representation of CacheFullError.
func (e *CacheFullError) Error() string {
	return "cache full: " + e.Reason
}

// InternalError indicates an invariant violation inside the store.
// It is never a normal user-triggerable condition and is fatal to the operation,
// but not to the process.
type InternalError struct {
	Reason string
}

// Error returns a string representation of InternalError.
func (e *InternalError) Error() string {
	return "internal error: " + e.Reason
}
