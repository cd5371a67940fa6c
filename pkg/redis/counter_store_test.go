package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*CounterStore, *miniredis.Miniredis) {
	t.Helper()
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable: %v", err)
	}
	t.Cleanup(srv.Close)
	SetClient(redisv9.NewClient(&redisv9.Options{Addr: srv.Addr()}))
	return NewCounterStore(), srv
}

func TestCounterStore_IncrStartsAtOne(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	n, err := store.Incr(ctx, "fail:1.2.3.4")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = store.Incr(ctx, "fail:1.2.3.4")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestCounterStore_ExpireAndTTL(t *testing.T) {
	store, srv := newStore(t)
	ctx := context.Background()

	_, err := store.Incr(ctx, "win:k")
	require.NoError(t, err)
	require.NoError(t, store.Expire(ctx, "win:k", time.Minute))

	ttl, err := store.TTL(ctx, "win:k")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, ttl)

	srv.FastForward(61 * time.Second)
	assert.False(t, srv.Exists("win:k"))
}

func TestCounterStore_TTLOfMissingKeyIsNegative(t *testing.T) {
	store, _ := newStore(t)

	ttl, err := store.TTL(context.Background(), "nope")
	require.NoError(t, err)
	assert.Negative(t, ttl)
}

func TestCounterStore_SetWithTTLAndDel(t *testing.T) {
	store, srv := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetWithTTL(ctx, "ban:ip", "1", time.Hour))
	assert.True(t, srv.Exists("ban:ip"))

	require.NoError(t, store.Del(ctx, "ban:ip"))
	assert.False(t, srv.Exists("ban:ip"))
}
