/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package cache

import "container/list"

// RecencyTracker maintains a total order over keys from most- to least-recently-used.
// Keys are addressable through a map of list elements, so Touch, Remove,
// and EvictOldest all run in constant time.
//
// It is not safe for concurrent use; Store serializes access to it.
type RecencyTracker struct {
	order *list.List // front is the most recently used key
	elems map[string]*list.Element
}

// NewRecencyTracker creates a new empty RecencyTracker.
func NewRecencyTracker() *RecencyTracker {
	return &RecencyTracker{
		order: list.New(),
		elems: make(map[string]*list.Element),
	}
}

// Touch marks the key as the most recently used one,
// inserting it if it is not tracked yet.
func (t *RecencyTracker) Touch(key string) {
	if elem, ok := t.elems[key]; ok {
		t.order.MoveToFront(elem)
		return
	}
	t.elems[key] = t.order.PushFront(key)
}

// Remove detaches the key from the tracker. It is a no-op if the key is not tracked.
func (t *RecencyTracker) Remove(key string) {
	elem, ok := t.elems[key]
	if !ok {
		return
	}
	t.order.Remove(elem)
	delete(t.elems, key)
}

// EvictOldest removes and returns the least recently used key.
// The second result is false if the tracker is empty.
func (t *RecencyTracker) EvictOldest() (string, bool) {
	elem := t.order.Back()
	if elem == nil {
		return "", false
	}
	key := elem.Value.(string)
	t.order.Remove(elem)
	delete(t.elems, key)
	return key, true
}

// OldestKey returns the least recently used key without removing it.
func (t *RecencyTracker) OldestKey() (string, bool) {
	elem := t.order.Back()
	if elem == nil {
		return "", false
	}
	return elem.Value.(string), true
}

// Len returns the number of tracked keys.
func (t *RecencyTracker) Len() int {
	return len(t.elems)
}
