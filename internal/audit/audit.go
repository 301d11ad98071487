// Package audit verifies that deployed pages agree with the routing engine.
// It fetches a sample of catalog URLs, extracts the canonical link and robots
// meta each page actually serves, and compares them against a fresh engine
// resolution. Drift between the two means some layer is caching or computing
// decisions independently, which is exactly the failure mode the engine's
// determinism is supposed to prevent.
package audit

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"github.com/google/uuid"

	"github.com/ezhulati/choose-my-power-sub003/internal/canonical"
	"github.com/ezhulati/choose-my-power-sub003/internal/facets"
	"github.com/ezhulati/choose-my-power-sub003/internal/logger"
	"github.com/ezhulati/choose-my-power-sub003/internal/market"
	"github.com/ezhulati/choose-my-power-sub003/internal/planner"
	"github.com/ezhulati/choose-my-power-sub003/internal/registry"
	"github.com/ezhulati/choose-my-power-sub003/internal/sitemap"
)

// userAgent identifies audit traffic in server logs.
const userAgent = "seogen-audit/1.0"

// pageFacts is what a deployed page actually serves.
type pageFacts struct {
	canonical  string
	robotsMeta string
}

// Drift records one field where a deployed page disagrees with the engine.
type Drift struct {
	Path  string `json:"path"`
	Field string `json:"field"`
	Want  string `json:"want"`
	Got   string `json:"got"`
}

// Report summarizes one audit run.
type Report struct {
	RunID     string    `json:"run_id"`
	StartedAt time.Time `json:"started_at"`
	Checked   int       `json:"checked"`
	// Failed lists paths that could not be fetched or parsed.
	Failed []string `json:"failed,omitempty"`
	// Drifts lists every disagreement found. Empty means the deployment is
	// consistent with the engine.
	Drifts []Drift `json:"drifts,omitempty"`
}

// Clean reports whether the audit found no drift and no fetch failures.
func (r *Report) Clean() bool {
	return len(r.Drifts) == 0 && len(r.Failed) == 0
}

// Auditor fetches deployed pages and compares them against engine decisions.
type Auditor struct {
	baseURL  string
	registry *registry.Registry
	resolver *canonical.Resolver
	market   market.Provider
	logger   logger.Interface
}

// New creates an auditor for the site at baseURL. provider must be the market
// provider the pages were built with so expectations reproduce the build-time
// decisions; nil when the build ran without market data.
func New(
	baseURL string,
	reg *registry.Registry,
	resolver *canonical.Resolver,
	provider market.Provider,
	log logger.Interface,
) *Auditor {
	return &Auditor{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		registry: reg,
		resolver: resolver,
		market:   provider,
		logger:   log,
	}
}

// Audit fetches every path and compares the served canonical link and robots
// meta against a fresh resolution. Fetch failures land in Report.Failed; only
// a setup error fails the run itself.
func (a *Auditor) Audit(ctx context.Context, paths []string) (*Report, error) {
	report := &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}

	log := a.logger.WithRunID(report.RunID)
	log.Info("Starting page audit", "base_url", a.baseURL, "paths", len(paths))

	facts, failed := a.fetch(ctx, paths)
	report.Failed = failed

	for _, path := range paths {
		served, ok := facts[path]
		if !ok {
			continue
		}

		report.Checked++

		expected, err := a.expectedFacts(ctx, path)
		if err != nil {
			log.Warn("Skipping unresolvable path", "path", path, "error", err)
			report.Failed = append(report.Failed, path)

			continue
		}

		report.Drifts = append(report.Drifts, diff(path, expected, served)...)
	}

	log.Info("Audit finished",
		"checked", report.Checked, "failed", len(report.Failed), "drifts", len(report.Drifts))

	return report, nil
}

// fetch retrieves all paths and extracts the served facts, keyed by path.
func (a *Auditor) fetch(ctx context.Context, paths []string) (map[string]pageFacts, []string) {
	facts := make(map[string]pageFacts, len(paths))

	var (
		mu     sync.Mutex
		failed []string
	)

	collector := colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.AllowURLRevisit(),
	)

	collector.OnResponse(func(response *colly.Response) {
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(response.Body))
		if err != nil {
			mu.Lock()
			failed = append(failed, response.Request.URL.Path)
			mu.Unlock()

			return
		}

		served := pageFacts{
			canonical:  doc.Find(`link[rel="canonical"]`).AttrOr("href", ""),
			robotsMeta: doc.Find(`meta[name="robots"]`).AttrOr("content", ""),
		}

		mu.Lock()
		facts[response.Request.URL.Path] = served
		mu.Unlock()
	})

	collector.OnError(func(response *colly.Response, err error) {
		a.logger.Warn("Fetch failed", "url", response.Request.URL.String(), "error", err)

		mu.Lock()
		failed = append(failed, response.Request.URL.Path)
		mu.Unlock()
	})

	for _, path := range paths {
		if ctx.Err() != nil {
			a.logger.Warn("Audit cancelled", "remaining", len(paths)-len(facts)-len(failed))

			break
		}

		if err := collector.Visit(a.baseURL + path); err != nil {
			mu.Lock()
			failed = append(failed, path)
			mu.Unlock()
		}
	}

	collector.Wait()

	return facts, failed
}

// expectedFacts resolves a path through the engine and renders the canonical
// URL and robots meta the page should serve.
func (a *Auditor) expectedFacts(ctx context.Context, path string) (pageFacts, error) {
	slug, segment, ok := facets.ParsePath(path)
	if !ok {
		return pageFacts{}, fmt.Errorf("not a catalog path: %q", path)
	}

	city, found := a.registry.City(slug)
	if !found {
		return pageFacts{}, fmt.Errorf("%w: %q", canonical.ErrUnknownCity, slug)
	}

	result := facets.Validate(city, segment)
	if !result.IsValid {
		return pageFacts{}, fmt.Errorf("invalid filter segment: %q", segment)
	}

	marketData, err := a.lookupMarket(ctx, city, result.Normalized)
	if err != nil {
		return pageFacts{}, err
	}

	decision, err := a.resolver.Resolve(ctx, city.Slug, result.Normalized, marketData, canonical.SeasonNone)
	if err != nil {
		return pageFacts{}, fmt.Errorf("resolve %q: %w", path, err)
	}

	return pageFacts{
		canonical:  a.baseURL + decision.CanonicalPath,
		robotsMeta: sitemap.RobotsMeta(decision),
	}, nil
}

// lookupMarket fetches market figures when a provider is configured.
func (a *Auditor) lookupMarket(
	ctx context.Context,
	city registry.City,
	filters []registry.Filter,
) (*market.Data, error) {
	if a.market == nil {
		return nil, nil
	}

	tokens := make([]string, 0, len(filters))
	for _, f := range filters {
		tokens = append(tokens, f.Token)
	}

	data, err := a.market.Lookup(ctx, city.Slug, tokens)
	if err != nil {
		return nil, fmt.Errorf("market lookup for %s: %w", city.Slug, err)
	}

	return data, nil
}

// diff compares served facts against expectations for one path.
func diff(path string, want, got pageFacts) []Drift {
	var drifts []Drift

	if want.canonical != got.canonical {
		drifts = append(drifts, Drift{Path: path, Field: "canonical", Want: want.canonical, Got: got.canonical})
	}

	if want.robotsMeta != got.robotsMeta {
		drifts = append(drifts, Drift{Path: path, Field: "robots", Want: want.robotsMeta, Got: got.robotsMeta})
	}

	return drifts
}

// SampleFromPlan picks up to limit paths from a plan, preserving plan order
// so the highest-priority pages are audited first.
func SampleFromPlan(pages []planner.PlannedPage, limit int) []string {
	if limit <= 0 || limit > len(pages) {
		limit = len(pages)
	}

	paths := make([]string, 0, limit)
	for _, page := range pages[:limit] {
		paths = append(paths, page.Path)
	}

	return paths
}
