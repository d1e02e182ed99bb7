// Package memory provides an in-memory snapshot store used for development
// and tests. It keeps code paths easy to follow while allowing a real
// backend to be plugged in unchanged.
package memory

import (
	"context"
	"sync"
)

// Store is an in-memory implementation of storage.Store, guarded by an
// RWMutex for concurrent reads/writes.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Load implements storage.Store.
func (s *Store) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, true, nil
}

// Save implements storage.Store.
func (s *Store) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := make([]byte, len(data))
	copy(b, data)
	s.data[key] = b
	return nil
}

// Ready implements storage.Store.
func (s *Store) Ready(context.Context) error { return nil }

// Close implements storage.Store.
func (s *Store) Close() error { return nil }

// Reset drops all snapshots, for tests.
func (s *Store) Reset() {
	s.mu.Lock()
	s.data = make(map[string][]byte)
	s.mu.Unlock()
}
