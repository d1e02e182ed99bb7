// Package redis persists snapshots in a Redis instance, for deployments
// where the bookkeeping state should outlive the host process.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is a redis-backed implementation of storage.Store.
type Store struct {
	client *redis.Client
}

// New connects to the Redis instance at addr and verifies the connection.
func New(ctx context.Context, addr string) (*Store, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("storage/redis: ping: %w", err)
	}
	return &Store{client: client}, nil
}

// NewFromClient wraps an existing client, for tests.
func NewFromClient(client *redis.Client) *Store {
	return &Store{client: client}
}

// Load implements storage.Store.
func (s *Store) Load(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Save implements storage.Store. Snapshots never expire.
func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	return s.client.Set(ctx, key, data, 0).Err()
}

// Ready implements storage.Store.
func (s *Store) Ready(ctx context.Context) error { return s.client.Ping(ctx).Err() }

// Close implements storage.Store.
func (s *Store) Close() error { return s.client.Close() }
