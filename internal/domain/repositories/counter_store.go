package repositories

import (
	"context"
	"time"
)

// CounterStore abstracts the shared low-latency counter store holding
// the ephemeral security state: fail counters, ban flags and rate
// windows. Every operation maps to a single atomic server-side command;
// errors must propagate to the caller so checks fail closed.
type CounterStore interface {
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
	TTL(ctx context.Context, key string) (time.Duration, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}
