package canonical_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezhulati/choose-my-power-sub003/internal/cache"
	"github.com/ezhulati/choose-my-power-sub003/internal/canonical"
	"github.com/ezhulati/choose-my-power-sub003/internal/logger"
	"github.com/ezhulati/choose-my-power-sub003/internal/market"
	"github.com/ezhulati/choose-my-power-sub003/internal/registry"
)

func TestResolveUnknownCity(t *testing.T) {
	t.Parallel()

	resolver := newResolver(t)

	_, err := resolver.Resolve(context.Background(), "tulsa", nil, nil, canonical.SeasonNone)
	require.ErrorIs(t, err, canonical.ErrUnknownCity)
}

func TestResolveWithMemoryCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	reg, err := registry.New([]registry.City{dallas, waco})
	require.NoError(t, err)

	store := cache.NewMemory(100)
	resolver := canonical.NewResolver(reg, store, logger.NewNoOp())

	filters := filtersOf(t, "fixed-rate")

	first, err := resolver.Resolve(ctx, "dallas", filters, nil, canonical.SeasonNone)
	require.NoError(t, err)

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	second, err := resolver.Resolve(ctx, "dallas", filters, nil, canonical.SeasonNone)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolveCacheKeyCoversContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	reg, err := registry.New([]registry.City{dallas, galveston})
	require.NoError(t, err)

	store := cache.NewMemory(100)
	resolver := canonical.NewResolver(reg, store, logger.NewNoOp())

	filters := filtersOf(t, "fixed-rate")

	plain, err := resolver.Resolve(ctx, "galveston", filters, nil, canonical.SeasonNone)
	require.NoError(t, err)

	summer, err := resolver.Resolve(ctx, "galveston", filters, nil, canonical.SeasonSummer)
	require.NoError(t, err)

	// Different season context must not collide in the cache.
	assert.NotEqual(t, plain.Reason, summer.Reason)

	withMarket, err := resolver.Resolve(ctx, "dallas", filters,
		&market.Data{SearchVolume: 2400, Competition: 0.2}, canonical.SeasonNone)
	require.NoError(t, err)

	withoutMarket, err := resolver.Resolve(ctx, "dallas", filters, nil, canonical.SeasonNone)
	require.NoError(t, err)

	assert.NotEqual(t, withMarket.Priority, withoutMarket.Priority)
}

func TestResolveToleratesCorruptCacheEntry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	reg, err := registry.New([]registry.City{dallas})
	require.NoError(t, err)

	store := cache.NewMemory(100)
	resolver := canonical.NewResolver(reg, store, logger.NewNoOp())

	filters := filtersOf(t, "fixed-rate")

	clean, err := resolver.Resolve(ctx, "dallas", filters, nil, canonical.SeasonNone)
	require.NoError(t, err)

	// Poison the only entry; resolution must recompute, not fail.
	require.NoError(t, store.Put(ctx, "dallas|fixed-rate||-", []byte("not json")))

	recomputed, err := resolver.Resolve(ctx, "dallas", filters, nil, canonical.SeasonNone)
	require.NoError(t, err)
	assert.Equal(t, clean, recomputed)
}

func TestResolveCityMatchesResolve(t *testing.T) {
	t.Parallel()

	resolver := newResolver(t)
	filters := filtersOf(t, "green-energy")

	viaSlug, err := resolver.Resolve(context.Background(), "waco", filters, nil, canonical.SeasonNone)
	require.NoError(t, err)

	direct := resolver.ResolveCity(waco, filters, nil, canonical.SeasonNone)
	assert.Equal(t, viaSlug, direct)
}
