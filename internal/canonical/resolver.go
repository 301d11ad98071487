package canonical

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ezhulati/choose-my-power-sub003/internal/cache"
	"github.com/ezhulati/choose-my-power-sub003/internal/facets"
	"github.com/ezhulati/choose-my-power-sub003/internal/logger"
	"github.com/ezhulati/choose-my-power-sub003/internal/market"
	"github.com/ezhulati/choose-my-power-sub003/internal/registry"
)

// ErrUnknownCity reports a precondition violation: the routing layer must
// 404 unknown cities before the engine is reached.
var ErrUnknownCity = errors.New("unknown city slug")

// Resolver evaluates the decision chain against the city registry, with an
// optional decision cache in front. The cache never changes semantics; any
// cache failure falls back to recomputation.
type Resolver struct {
	registry *registry.Registry
	store    cache.Interface
	logger   logger.Interface
}

// NewResolver creates a resolver. A nil store disables memoization.
func NewResolver(reg *registry.Registry, store cache.Interface, log logger.Interface) *Resolver {
	if store == nil {
		store = cache.NewNoOp()
	}

	return &Resolver{registry: reg, store: store, logger: log}
}

// Resolve returns the canonical decision for a city slug and normalized
// filter set. Filters must come from facets validation (sorted, known
// tokens); an unknown city slug is a hard input error.
func (r *Resolver) Resolve(
	ctx context.Context,
	citySlug string,
	filters []registry.Filter,
	marketData *market.Data,
	season Season,
) (Decision, error) {
	city, ok := r.registry.City(citySlug)
	if !ok {
		return Decision{}, fmt.Errorf("%w: %q", ErrUnknownCity, citySlug)
	}

	in := Input{City: city, Filters: filters, Market: marketData, Season: season}
	key := cacheKey(in)

	if decision, found := r.cached(ctx, key); found {
		return decision, nil
	}

	decision := evaluate(in)
	r.memoize(ctx, key, decision)

	return decision, nil
}

// ResolveCity evaluates the chain for an already-looked-up city. Pure and
// cache-free; the planner uses this on its hot path where the city record is
// already in hand.
func (r *Resolver) ResolveCity(
	city registry.City,
	filters []registry.Filter,
	marketData *market.Data,
	season Season,
) Decision {
	return evaluate(Input{City: city, Filters: filters, Market: marketData, Season: season})
}

// cached fetches and decodes a memoized decision. Any failure is a miss.
func (r *Resolver) cached(ctx context.Context, key string) (Decision, bool) {
	data, found, err := r.store.Get(ctx, key)
	if err != nil {
		r.logger.Debug("Decision cache read failed, recomputing", "key", key, "error", err)

		return Decision{}, false
	}

	if !found {
		return Decision{}, false
	}

	var decision Decision
	if unmarshalErr := json.Unmarshal(data, &decision); unmarshalErr != nil {
		r.logger.Warn("Corrupt decision cache entry, recomputing", "key", key, "error", unmarshalErr)

		return Decision{}, false
	}

	return decision, true
}

// memoize stores a decision. Failures are logged and ignored.
func (r *Resolver) memoize(ctx context.Context, key string, decision Decision) {
	data, err := json.Marshal(decision)
	if err != nil {
		return
	}

	if putErr := r.store.Put(ctx, key, data); putErr != nil {
		r.logger.Debug("Decision cache write failed", "key", key, "error", putErr)
	}
}

// cacheKey builds a key covering every resolution input: path identity plus
// the optional market and season context.
func cacheKey(in Input) string {
	marketPart := "-"
	if in.Market != nil {
		marketPart = fmt.Sprintf("%d:%.2f", in.Market.SearchVolume, in.Market.Competition)
	}

	return fmt.Sprintf("%s|%s|%s|%s",
		in.City.Slug, facets.Segment(in.Filters), in.Season, marketPart)
}
