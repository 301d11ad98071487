package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezhulati/choose-my-power-sub003/internal/cache"
)

// newRedisCache starts an in-process Redis and returns a cache wired to it.
func newRedisCache(t *testing.T, ttl time.Duration) (*cache.Redis, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() {
		_ = client.Close()
	})

	return cache.NewRedis(client, ttl), mr
}

func TestRedisPutGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newRedisCache(t, 0)

	require.NoError(t, store.Put(ctx, "a", []byte("one")))

	value, found, err := store.Get(ctx, "a")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("one"), value)

	_, found, err = store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisTTLExpiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, mr := newRedisCache(t, time.Minute)

	require.NoError(t, store.Put(ctx, "a", []byte("one")))

	mr.FastForward(2 * time.Minute)

	_, found, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisEvict(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newRedisCache(t, 0)

	require.NoError(t, store.Put(ctx, "a", []byte("one")))
	require.NoError(t, store.Evict(ctx, "a"))

	_, found, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisLen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newRedisCache(t, 0)

	require.NoError(t, store.Put(ctx, "a", []byte("one")))
	require.NoError(t, store.Put(ctx, "b", []byte("two")))

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRedisConnectionFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := cache.NewRedis(client, 0)

	mr.Close()

	// Errors surface so callers can fall back to recomputation.
	_, _, err := store.Get(ctx, "a")
	assert.Error(t, err)
	assert.Error(t, store.Put(ctx, "a", []byte("one")))
}
