package rebuild

import (
	"context"
	"fmt"
	"time"

	"github.com/ezhulati/choose-my-power-sub003/internal/canonical"
	"github.com/ezhulati/choose-my-power-sub003/internal/facets"
	"github.com/ezhulati/choose-my-power-sub003/internal/logger"
	"github.com/ezhulati/choose-my-power-sub003/internal/market"
	"github.com/ezhulati/choose-my-power-sub003/internal/metrics"
	"github.com/ezhulati/choose-my-power-sub003/internal/planner"
	"github.com/ezhulati/choose-my-power-sub003/internal/registry"
	"github.com/ezhulati/choose-my-power-sub003/internal/sitemap"
)

// Pipeline runs one full generation pass: plan, resolve, emit sitemaps, and
// write artifacts. It is the unit of work both the CLI and the cron scheduler
// execute.
type Pipeline struct {
	registry  *registry.Registry
	resolver  *canonical.Resolver
	planner   *planner.Planner
	market    market.Provider
	emitter   *sitemap.Emitter
	artifacts *Artifacts
	baseURL   string
	logger    logger.Interface
	metrics   *metrics.Metrics
}

// NewPipeline wires a pipeline. provider must be the same market provider the
// planner resolves with, or every artifact of one run would not describe the
// same decisions; metrics may be nil.
func NewPipeline(
	reg *registry.Registry,
	resolver *canonical.Resolver,
	p *planner.Planner,
	provider market.Provider,
	emitter *sitemap.Emitter,
	artifacts *Artifacts,
	baseURL string,
	log logger.Interface,
	m *metrics.Metrics,
) *Pipeline {
	return &Pipeline{
		registry:  reg,
		resolver:  resolver,
		planner:   p,
		market:    provider,
		emitter:   emitter,
		artifacts: artifacts,
		baseURL:   baseURL,
		logger:    log,
		metrics:   m,
	}
}

// Run executes one pass and returns the resulting plan.
func (p *Pipeline) Run(ctx context.Context) (*planner.Plan, error) {
	start := time.Now()

	plan, pages, err := p.planner.Plan(ctx)
	if err != nil {
		p.recordPlan("error", plan, start)

		return nil, fmt.Errorf("plan: %w", err)
	}

	decisions, err := p.decisionsFor(ctx, pages)
	if err != nil {
		return nil, err
	}

	output, err := p.emitter.Emit(p.registry.Cities(), decisions)
	if err != nil {
		return nil, fmt.Errorf("emit sitemaps: %w", err)
	}

	if err := p.artifacts.WritePlan(plan, pages); err != nil {
		return nil, err
	}

	if err := p.artifacts.WriteSitemaps(output); err != nil {
		return nil, err
	}

	if err := p.artifacts.WriteRobots(p.baseURL); err != nil {
		return nil, err
	}

	p.recordPlan(planStatus(plan), plan, start)
	p.logger.Info("Generation pass complete",
		"run_id", plan.RunID,
		"pages", plan.TotalPages,
		"partial", plan.Partial,
		"isr", plan.UseIncrementalRegeneration,
		"duration", time.Since(start))

	return plan, nil
}

// decisionsFor re-resolves every planned path under the same market context
// the planner used. The planner only emits self-canonical pages, so this is a
// pure re-derivation, but the sitemap emitter needs the full decision (change
// frequency, priority) per path.
func (p *Pipeline) decisionsFor(
	ctx context.Context,
	pages []planner.PlannedPage,
) (map[string]canonical.Decision, error) {
	decisions := make(map[string]canonical.Decision, len(pages))

	for _, page := range pages {
		city, ok := p.registry.City(page.CitySlug)
		if !ok {
			return nil, fmt.Errorf("%w: %q", canonical.ErrUnknownCity, page.CitySlug)
		}

		_, segment, ok := facets.ParsePath(page.Path)
		if !ok {
			return nil, fmt.Errorf("planned page has malformed path: %q", page.Path)
		}

		result := facets.Validate(city, segment)
		if !result.IsValid {
			return nil, fmt.Errorf("planned page has invalid segment: %q", page.Path)
		}

		marketData, err := p.lookupMarket(ctx, city, result.Normalized)
		if err != nil {
			return nil, err
		}

		decisions[page.Path] = p.resolver.ResolveCity(city, result.Normalized, marketData, canonical.SeasonNone)
	}

	return decisions, nil
}

// lookupMarket fetches market figures when a provider is configured.
func (p *Pipeline) lookupMarket(
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

// recordPlan updates plan metrics when metrics are wired.
func (p *Pipeline) recordPlan(status string, plan *planner.Plan, start time.Time) {
	if p.metrics == nil {
		return
	}

	var perTier map[int]int
	if plan != nil {
		perTier = plan.PerTierCounts
	}

	p.metrics.RecordPlan(status, perTier, time.Since(start))
}

// planStatus maps a plan outcome onto its metric label.
func planStatus(plan *planner.Plan) string {
	switch {
	case plan.Fallback:
		return "fallback"
	case plan.Partial:
		return "partial"
	default:
		return "complete"
	}
}
