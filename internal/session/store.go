// Package session keeps per-user conversation state in memory. State
// is intentionally not persisted: a restart drops all in-progress
// flows.
package session

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value    *T
	lastSeen time.Time
}

// Store is a mutex-guarded map of per-user state, keyed by Telegram
// user id. The store tracks each record's last activity itself, so the
// sweeper never has to read fields of a record a handler may be
// mutating. Distinct users never alias the same key, so no further
// coordination is needed.
type Store[T any] struct {
	mu    sync.Mutex
	items map[int64]*entry[T]
}

// NewStore creates an empty store
func NewStore[T any]() *Store[T] {
	return &Store[T]{items: make(map[int64]*entry[T])}
}

// Get returns the state for a user, if any, and refreshes its activity
// timestamp. Every handler starts with a Get, so a session in active
// use is never swept.
func (s *Store[T]) Get(userID int64) (*T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[userID]
	if !ok {
		return nil, false
	}
	item.lastSeen = time.Now()
	return item.value, true
}

// Put replaces the state for a user
func (s *Store[T]) Put(userID int64, value *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[userID] = &entry[T]{value: value, lastSeen: time.Now()}
}

// Delete removes the state for a user
func (s *Store[T]) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, userID)
}

// Sweep removes every entry idle for longer than maxAge and reports
// how many were dropped.
func (s *Store[T]) Sweep(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for userID, item := range s.items {
		if item.lastSeen.Before(cutoff) {
			delete(s.items, userID)
			removed++
		}
	}
	return removed
}
