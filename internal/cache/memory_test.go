package cache_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezhulati/choose-my-power-sub003/internal/cache"
)

func TestMemoryPutGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := cache.NewMemory(10)

	require.NoError(t, store.Put(ctx, "a", []byte("one")))

	value, found, err := store.Get(ctx, "a")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("one"), value)

	_, found, err = store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryOverwrite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := cache.NewMemory(10)

	require.NoError(t, store.Put(ctx, "a", []byte("one")))
	require.NoError(t, store.Put(ctx, "a", []byte("two")))

	value, found, err := store.Get(ctx, "a")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("two"), value)

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMemoryFIFOEviction(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := cache.NewMemory(3)

	for i := 0; i < 4; i++ {
		require.NoError(t, store.Put(ctx, fmt.Sprintf("k%d", i), []byte{byte(i)}))
	}

	// Oldest entry is gone; the rest survive.
	_, found, err := store.Get(ctx, "k0")
	require.NoError(t, err)
	assert.False(t, found)

	for i := 1; i < 4; i++ {
		_, found, err = store.Get(ctx, fmt.Sprintf("k%d", i))
		require.NoError(t, err)
		assert.True(t, found, "k%d", i)
	}

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMemoryEvict(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := cache.NewMemory(10)

	require.NoError(t, store.Put(ctx, "a", []byte("one")))
	require.NoError(t, store.Evict(ctx, "a"))
	require.NoError(t, store.Evict(ctx, "a")) // absent key is not an error

	_, found, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryConcurrentAccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := cache.NewMemory(100)

	var wg sync.WaitGroup

	for worker := 0; worker < 8; worker++ {
		wg.Add(1)

		go func(worker int) {
			defer wg.Done()

			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("w%d-k%d", worker, i%20)
				_ = store.Put(ctx, key, []byte("v"))
				_, _, _ = store.Get(ctx, key)
			}
		}(worker)
	}

	wg.Wait()

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.LessOrEqual(t, n, 100)
}

func TestNoOpNeverStores(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := cache.NewNoOp()

	require.NoError(t, store.Put(ctx, "a", []byte("one")))

	_, found, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, found)

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
