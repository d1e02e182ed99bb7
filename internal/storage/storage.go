// Package storage defines the snapshot store the engine persists through.
// Each entity collection is serialized as one JSON document under a fixed
// key and rewritten after every mutating command.
package storage

import "context"

// Store is an opaque get/set facility for serialized collections.
type Store interface {
	// Load returns the snapshot stored under key. The boolean is false when
	// no snapshot exists yet (first run).
	Load(ctx context.Context, key string) ([]byte, bool, error)
	// Save overwrites the snapshot stored under key.
	Save(ctx context.Context, key string, data []byte) error
	// Ready verifies the backing store is reachable.
	Ready(ctx context.Context) error
	// Close releases backend resources.
	Close() error
}
