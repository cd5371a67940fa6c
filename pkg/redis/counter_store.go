package redis

import (
	"context"
	"time"
)

// CounterStore exposes the atomic counter primitives the security layer
// relies on (fail counters, ban flags, rate-limit windows). All mutation
// goes through Redis commands that are atomic server-side, so callers
// need no in-process locking.
type CounterStore struct{}

// NewCounterStore returns a counter store backed by the package client.
func NewCounterStore() *CounterStore {
	return &CounterStore{}
}

// Incr atomically increments the counter at key, creating it at 1.
func (s *CounterStore) Incr(ctx context.Context, key string) (int64, error) {
	return client.Incr(ctx, key).Result()
}

// Expire sets a TTL on an existing key.
func (s *CounterStore) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return client.Expire(ctx, key, ttl).Err()
}

// TTL returns the remaining time to live of a key. Redis reports -2 for
// a missing key and -1 for a key without expiry; both come back as
// negative durations.
func (s *CounterStore) TTL(ctx context.Context, key string) (time.Duration, error) {
	return client.TTL(ctx, key).Result()
}

// SetWithTTL stores value at key with an expiry.
func (s *CounterStore) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	return client.Set(ctx, key, value, ttl).Err()
}

// Del removes a key.
func (s *CounterStore) Del(ctx context.Context, key string) error {
	return client.Del(ctx, key).Err()
}
