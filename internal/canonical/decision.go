// Package canonical decides, for every (city, filter set) pair, which URL
// search engines should index for it. The decision logic is a fixed, ordered
// rule chain evaluated first-match-wins; it is pure and deterministic, so
// build-time generation, request-time rendering, and sitemap emission all
// reach identical conclusions from identical inputs.
package canonical

import (
	"github.com/ezhulati/choose-my-power-sub003/internal/market"
	"github.com/ezhulati/choose-my-power-sub003/internal/registry"
)

// Reason names the rule that produced a decision.
type Reason string

// Decision reasons, one per rule in chain order.
const (
	ReasonCityHub          Reason = "city-hub"
	ReasonConflictResolved Reason = "conflict-resolved"
	ReasonHighValue        Reason = "high-value"
	ReasonSeasonal         Reason = "seasonal-override"
	ReasonDepthReduced     Reason = "depth-reduced"
	ReasonSmallCityReduced Reason = "small-city-reduced"
	ReasonLowSearchVolume  Reason = "low-search-volume"
	ReasonDefault          Reason = "default"
)

// ChangeFreq is the sitemap change-frequency hint carried on a decision. The
// sitemap emitter copies it verbatim and computes nothing of its own.
type ChangeFreq string

// Change frequencies used by the engine.
const (
	ChangeFreqDaily   ChangeFreq = "daily"
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
)

// Decision is the canonical resolution for one (city, filter set) pair. It is
// never persisted as a source of truth; it is always recomputable.
type Decision struct {
	// CanonicalPath is the URL search engines should treat as authoritative.
	CanonicalPath string `json:"canonical_path"`
	// Reason names the rule that fired.
	Reason Reason `json:"reason"`
	// Priority is the sitemap priority, 0..1.
	Priority float64 `json:"priority"`
	// ShouldIndex is false when the page must carry a noindex directive.
	ShouldIndex bool `json:"should_index"`
	// ChangeFreq is the sitemap change-frequency hint.
	ChangeFreq ChangeFreq `json:"change_freq"`
}

// SelfCanonical reports whether the decision points at the given path itself.
func (d Decision) SelfCanonical(path string) bool {
	return d.CanonicalPath == path
}

// Input bundles everything a resolution needs. Market and Season are optional
// signals; their zero values disable the market- and season-gated rules.
type Input struct {
	City    registry.City
	Filters []registry.Filter
	Market  *market.Data
	Season  Season
}

// depth returns the filter count.
func (in Input) depth() int {
	return len(in.Filters)
}

// tokens returns the filter tokens in their given (canonical) order.
func (in Input) tokens() []string {
	tokens := make([]string, 0, len(in.Filters))
	for _, f := range in.Filters {
		tokens = append(tokens, f.Token)
	}

	return tokens
}
