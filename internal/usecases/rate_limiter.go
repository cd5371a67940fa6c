package usecases

import (
	"context"
	"time"

	"appforge.backend/internal/config"
	domainerrors "appforge.backend/internal/domain/errors"
	"appforge.backend/internal/domain/repositories"
	"appforge.backend/internal/observability"
)

// Rate policy names, surfaced in RateLimitError and metrics.
const (
	PolicyGlobal = "global"
	PolicyPerKey = "per_key"
)

// RatePolicy is one fixed-window counting policy. The window starts at
// the first request and resets only when the TTL lapses, so a client
// can burst up to twice the nominal rate across a window boundary;
// that trade-off buys O(1) counter operations.
type RatePolicy struct {
	Name   string
	Max    int64
	Window time.Duration
}

// RateLimiter applies the two fixed policies: per-IP before
// authentication, per-(raw key, IP) after it.
type RateLimiter struct {
	store  repositories.CounterStore
	global RatePolicy
	perKey RatePolicy
}

func NewRateLimiter(store repositories.CounterStore, cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		store:  store,
		global: RatePolicy{Name: PolicyGlobal, Max: int64(cfg.GlobalPerIPPerMin), Window: time.Minute},
		perKey: RatePolicy{Name: PolicyPerKey, Max: int64(cfg.PerKeyPerMin), Window: time.Minute},
	}
}

// AllowGlobal counts a request against the per-IP window.
func (l *RateLimiter) AllowGlobal(ctx context.Context, ip string) error {
	return l.allow(ctx, l.global, "ip:"+ip)
}

// AllowPerKey counts a request against the (raw key, IP) window.
func (l *RateLimiter) AllowPerKey(ctx context.Context, rawKey, ip string) error {
	return l.allow(ctx, l.perKey, "key:"+rawKey+":"+ip)
}

func (l *RateLimiter) allow(ctx context.Context, p RatePolicy, key string) error {
	cur, err := l.store.Incr(ctx, key)
	if err != nil {
		return err
	}
	if cur == 1 {
		if err := l.store.Expire(ctx, key, p.Window); err != nil {
			return err
		}
	}
	if cur > p.Max {
		observability.RateLimitedTotal.WithLabelValues(p.Name).Inc()
		return &domainerrors.RateLimitError{Policy: p.Name}
	}
	return nil
}
