// Package planner decides which faceted pages are worth materializing at
// build time. It enumerates candidate filter combinations per city under
// per-tier caps, ranks them by the same SEO-value heuristic the canonical
// rules use, and assembles a generation plan bounded by a global page cap and
// a wall-clock time budget. Cities are processed batch-at-a-time so peak
// memory stays bounded and the budget can be checked between batches; a plan
// that stops early is partial but always internally consistent.
package planner

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ezhulati/choose-my-power-sub003/internal/canonical"
	"github.com/ezhulati/choose-my-power-sub003/internal/facets"
	"github.com/ezhulati/choose-my-power-sub003/internal/logger"
	"github.com/ezhulati/choose-my-power-sub003/internal/market"
	"github.com/ezhulati/choose-my-power-sub003/internal/registry"
)

// Default planning knobs, overridable through configuration.
const (
	DefaultTier1Cap      = 30
	DefaultTier2Cap      = 12
	DefaultTier3Cap      = 5
	DefaultBatchSize     = 25
	DefaultGlobalPageCap = 5000
	DefaultTimeBudget    = 60 * time.Second
	DefaultPageBuildCost = 45 * time.Millisecond
	DefaultISRThreshold  = 1500
	DefaultConcurrency   = 8
)

// Config carries the planner's budgets and caps.
type Config struct {
	// TierCaps bounds filter combinations per city by tier; the hub page is
	// not counted against the cap.
	TierCaps map[int]int
	// GlobalPageCap is the hard ceiling on total emitted paths.
	GlobalPageCap int
	// BatchSize is the number of cities processed per batch.
	BatchSize int
	// TimeBudget is the wall-clock budget checked between batches.
	TimeBudget time.Duration
	// PageBuildCost is the estimated per-page build cost.
	PageBuildCost time.Duration
	// ISRThreshold switches the plan to incremental regeneration when the
	// page count exceeds it.
	ISRThreshold int
	// Concurrency bounds per-city fan-out within a batch.
	Concurrency int
}

// DefaultConfig returns the standard planning configuration.
func DefaultConfig() Config {
	return Config{
		TierCaps: map[int]int{
			1: DefaultTier1Cap,
			2: DefaultTier2Cap,
			3: DefaultTier3Cap,
		},
		GlobalPageCap: DefaultGlobalPageCap,
		BatchSize:     DefaultBatchSize,
		TimeBudget:    DefaultTimeBudget,
		PageBuildCost: DefaultPageBuildCost,
		ISRThreshold:  DefaultISRThreshold,
		Concurrency:   DefaultConcurrency,
	}
}

// normalize fills zero fields with defaults.
func (c Config) normalize() Config {
	defaults := DefaultConfig()

	if len(c.TierCaps) == 0 {
		c.TierCaps = defaults.TierCaps
	}

	if c.GlobalPageCap <= 0 {
		c.GlobalPageCap = defaults.GlobalPageCap
	}

	if c.BatchSize <= 0 {
		c.BatchSize = defaults.BatchSize
	}

	if c.TimeBudget <= 0 {
		c.TimeBudget = defaults.TimeBudget
	}

	if c.PageBuildCost <= 0 {
		c.PageBuildCost = defaults.PageBuildCost
	}

	if c.ISRThreshold <= 0 {
		c.ISRThreshold = defaults.ISRThreshold
	}

	if c.Concurrency <= 0 {
		c.Concurrency = defaults.Concurrency
	}

	return c
}

// ValueRank buckets a combination by SEO value, high first.
type ValueRank int

// Value ranks, in preference order.
const (
	RankHigh ValueRank = iota
	RankMedium
	RankLow
)

// PlannedPage is one path the static build should materialize.
type PlannedPage struct {
	Path     string          `json:"path"`
	CitySlug string          `json:"city"`
	Tier     int             `json:"tier"`
	Priority float64         `json:"priority"`
	Reason   canonical.Reason `json:"reason"`
	Rank     ValueRank       `json:"rank"`
}

// Plan summarizes one planning run. It is built once and never mutated.
type Plan struct {
	RunID             string         `json:"run_id"`
	TotalPages        int            `json:"total_pages"`
	PerTierCounts     map[int]int    `json:"per_tier_counts"`
	PerCityCounts     map[string]int `json:"per_city_counts"`
	EstimatedDuration time.Duration  `json:"estimated_duration"`
	// UseIncrementalRegeneration is set when the plan is too large for full
	// rebuilds on every deploy.
	UseIncrementalRegeneration bool `json:"use_incremental_regeneration"`
	// Partial is set when the time budget expired before all cities were
	// processed. A partial plan is valid, not a failure.
	Partial bool `json:"partial"`
	// Fallback is set when the plan came from the fixed fallback set.
	Fallback bool `json:"fallback"`
}

// Planner assembles generation plans over the city registry.
type Planner struct {
	registry *registry.Registry
	resolver *canonical.Resolver
	market   market.Provider
	config   Config
	logger   logger.Interface
	now      func() time.Time
}

// New creates a planner. The market provider may be nil when no figures are
// available; market-gated rules then fall back to their allow/deny lists.
func New(
	reg *registry.Registry,
	resolver *canonical.Resolver,
	provider market.Provider,
	config Config,
	log logger.Interface,
) *Planner {
	return &Planner{
		registry: reg,
		resolver: resolver,
		market:   provider,
		config:   config.normalize(),
		logger:   log,
		now:      time.Now,
	}
}

// Plan builds a generation plan for every city in the registry. A panic
// anywhere in the pipeline degrades to the fixed fallback plan rather than
// failing the build.
func (p *Planner) Plan(ctx context.Context) (plan *Plan, pages []PlannedPage, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			p.logger.Error("Planning pipeline panicked, using fallback plan", "panic", recovered)
			plan, pages = p.FallbackPlan()
			err = nil
		}
	}()

	start := p.now()
	runID := uuid.NewString()
	log := p.logger.WithRunID(runID)

	cities := p.registry.Cities()
	pages = make([]PlannedPage, 0, len(cities)*4)
	partial := false

	for offset := 0; offset < len(cities); offset += p.config.BatchSize {
		if ctx.Err() != nil {
			log.Warn("Planning cancelled, returning partial plan", "error", ctx.Err())
			partial = true

			break
		}

		end := offset + p.config.BatchSize
		if end > len(cities) {
			end = len(cities)
		}

		batchPages, batchErr := p.planBatch(ctx, cities[offset:end])
		if batchErr != nil {
			return nil, nil, batchErr
		}

		pages = append(pages, batchPages...)

		if elapsed := p.now().Sub(start); elapsed > p.config.TimeBudget && end < len(cities) {
			log.Warn("Time budget exceeded, returning partial plan",
				"elapsed", elapsed, "budget", p.config.TimeBudget,
				"cities_done", end, "cities_total", len(cities))
			partial = true

			break
		}
	}

	pages = p.enforceGlobalCap(pages)
	plan = p.summarize(runID, pages, partial)

	log.Info("Generation plan built",
		"total_pages", plan.TotalPages,
		"partial", plan.Partial,
		"isr", plan.UseIncrementalRegeneration,
		"duration", p.now().Sub(start))

	return plan, pages, nil
}

// planBatch enumerates one batch of cities concurrently. Results land in
// per-city slots so output order is deterministic regardless of goroutine
// scheduling. A single city's failure is logged and skipped, never fatal.
func (p *Planner) planBatch(ctx context.Context, cities []registry.City) ([]PlannedPage, error) {
	perCity := make([][]PlannedPage, len(cities))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(p.config.Concurrency)

	for i := range cities {
		group.Go(func() error {
			cityPages, err := p.planCity(groupCtx, cities[i])
			if err != nil {
				p.logger.WithCity(cities[i].Slug).Warn(
					"City enumeration failed, skipping city", "error", err)

				return nil
			}

			perCity[i] = cityPages

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("plan batch: %w", err)
	}

	var out []PlannedPage
	for _, cityPages := range perCity {
		out = append(out, cityPages...)
	}

	return out, nil
}

// planCity returns the hub page plus the city's capped, ranked filter
// combinations.
func (p *Planner) planCity(ctx context.Context, city registry.City) ([]PlannedPage, error) {
	hub := p.resolver.ResolveCity(city, nil, nil, canonical.SeasonNone)

	pages := []PlannedPage{{
		Path:     hub.CanonicalPath,
		CitySlug: city.Slug,
		Tier:     city.Tier,
		Priority: hub.Priority,
		Reason:   hub.Reason,
		Rank:     RankHigh,
	}}

	candidates, err := p.enumerateCandidates(ctx, city)
	if err != nil {
		return nil, err
	}

	tierCap := p.config.TierCaps[city.Tier]
	if tierCap < len(candidates) {
		candidates = candidates[:tierCap]
	}

	return append(pages, candidates...), nil
}

// enumerateCandidates builds every conflict-free single and pair combination
// for a city, keeps the self-canonical ones, and sorts them high > medium >
// low, then priority descending.
func (p *Planner) enumerateCandidates(ctx context.Context, city registry.City) ([]PlannedPage, error) {
	var candidates []PlannedPage

	consider := func(filters []registry.Filter) error {
		page, keep, err := p.evaluateCombination(ctx, city, filters)
		if err != nil {
			return err
		}

		if keep {
			candidates = append(candidates, page)
		}

		return nil
	}

	catalog := registry.Filters()

	for i, first := range catalog {
		if err := consider([]registry.Filter{first}); err != nil {
			return nil, err
		}

		for _, second := range catalog[i+1:] {
			if first.Category == second.Category && first.Category.Conflicting() {
				continue
			}

			pair := []registry.Filter{first, second}
			facets.Sort(pair)

			if err := consider(pair); err != nil {
				return nil, err
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Rank != candidates[j].Rank {
			return candidates[i].Rank < candidates[j].Rank
		}

		if candidates[i].Priority != candidates[j].Priority {
			return candidates[i].Priority > candidates[j].Priority
		}

		return candidates[i].Path < candidates[j].Path
	})

	return candidates, nil
}

// evaluateCombination resolves one combination and reports whether it earns a
// place in the plan. Only self-canonical pages are materialized; everything
// else is a duplicate of its canonical target.
func (p *Planner) evaluateCombination(
	ctx context.Context,
	city registry.City,
	filters []registry.Filter,
) (PlannedPage, bool, error) {
	marketData, err := p.lookupMarket(ctx, city, filters)
	if err != nil {
		return PlannedPage{}, false, err
	}

	decision := p.resolver.ResolveCity(city, filters, marketData, canonical.SeasonNone)

	path := facets.PathFor(city, filters)
	if !decision.SelfCanonical(path) {
		return PlannedPage{}, false, nil
	}

	rank := RankLow

	switch {
	case decision.Reason == canonical.ReasonHighValue:
		rank = RankHigh
	case decision.ShouldIndex:
		rank = RankMedium
	}

	return PlannedPage{
		Path:     path,
		CitySlug: city.Slug,
		Tier:     city.Tier,
		Priority: decision.Priority,
		Reason:   decision.Reason,
		Rank:     rank,
	}, true, nil
}

// lookupMarket fetches market figures when a provider is configured.
func (p *Planner) lookupMarket(
	ctx context.Context,
	city registry.City,
	filters []registry.Filter,
) (*market.Data, error) {
	if p.market == nil {
		return nil, nil
	}

	tokens := make([]string, 0, len(filters))
	for _, f := range filters {
		tokens = append(tokens, f.Token)
	}

	data, err := p.market.Lookup(ctx, city.Slug, tokens)
	if err != nil {
		return nil, fmt.Errorf("market lookup for %s: %w", city.Slug, err)
	}

	return data, nil
}

// enforceGlobalCap truncates the page list to the global cap, keeping the
// highest-priority entries. The sort is stable so equal-priority pages retain
// their deterministic enumeration order.
func (p *Planner) enforceGlobalCap(pages []PlannedPage) []PlannedPage {
	if len(pages) <= p.config.GlobalPageCap {
		return pages
	}

	sort.SliceStable(pages, func(i, j int) bool {
		return pages[i].Priority > pages[j].Priority
	})

	p.logger.Warn("Global page cap reached, truncating plan",
		"planned", len(pages), "cap", p.config.GlobalPageCap)

	return pages[:p.config.GlobalPageCap]
}

// summarize builds the immutable plan summary for a page list.
func (p *Planner) summarize(runID string, pages []PlannedPage, partial bool) *Plan {
	perTier := make(map[int]int)
	perCity := make(map[string]int)

	for _, page := range pages {
		perTier[page.Tier]++
		perCity[page.CitySlug]++
	}

	total := len(pages)

	return &Plan{
		RunID:                      runID,
		TotalPages:                 total,
		PerTierCounts:              perTier,
		PerCityCounts:              perCity,
		EstimatedDuration:          time.Duration(total) * p.config.PageBuildCost,
		UseIncrementalRegeneration: total > p.config.ISRThreshold,
		Partial:                    partial,
	}
}
