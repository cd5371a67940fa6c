package usecases

import (
	"context"
	"time"

	"appforge.backend/internal/config"
	"appforge.backend/internal/domain/repositories"
	"appforge.backend/internal/observability"
)

const (
	banKeyPrefix  = "ban:"
	failKeyPrefix = "fail:"
)

// BanTracker runs the per-IP failure/ban state machine on top of the
// shared counter store. States: clean (no keys), flagged (fail counter
// below threshold), banned (ban flag with TTL). Ban expiry is purely
// TTL-driven; there is no explicit unban.
type BanTracker struct {
	store      repositories.CounterStore
	threshold  int64
	failWindow time.Duration
	banTTL     time.Duration
}

func NewBanTracker(store repositories.CounterStore, cfg config.BanConfig) *BanTracker {
	return &BanTracker{
		store:      store,
		threshold:  int64(cfg.AfterFails),
		failWindow: cfg.FailWindow,
		banTTL:     cfg.BanTTL,
	}
}

// Check reports whether the IP currently carries a ban flag, and how
// long the ban has left. A store error propagates so the caller fails
// closed instead of skipping the check.
func (t *BanTracker) Check(ctx context.Context, ip string) (bool, time.Duration, error) {
	ttl, err := t.store.TTL(ctx, banKeyPrefix+ip)
	if err != nil {
		return false, 0, err
	}
	if ttl > 0 {
		return true, ttl, nil
	}
	return false, 0, nil
}

// RegisterFailure counts one authentication failure for the IP. The
// fail counter gets its window TTL on first increment only; reaching
// the threshold sets the ban flag and deletes the counter. Successful
// authentications never touch the counter, so failures accumulate
// across them until the window expires.
func (t *BanTracker) RegisterFailure(ctx context.Context, ip string) error {
	fails, err := t.store.Incr(ctx, failKeyPrefix+ip)
	if err != nil {
		return err
	}
	if fails == 1 {
		if err := t.store.Expire(ctx, failKeyPrefix+ip, t.failWindow); err != nil {
			return err
		}
	}
	if fails >= t.threshold {
		if err := t.store.SetWithTTL(ctx, banKeyPrefix+ip, "1", t.banTTL); err != nil {
			return err
		}
		if err := t.store.Del(ctx, failKeyPrefix+ip); err != nil {
			return err
		}
		observability.BansTotal.Inc()
	}
	return nil
}
