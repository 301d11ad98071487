// Package metrics provides Prometheus collectors for the faceted SEO engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Namespace is the namespace for all engine metrics.
	Namespace = "seogen"
)

// Metrics holds all Prometheus metrics for the engine.
type Metrics struct {
	// Canonical resolution metrics
	DecisionsTotal     *prometheus.CounterVec
	DecisionCacheHits  prometheus.Counter
	DecisionCacheMiss  prometheus.Counter
	ValidationsTotal   *prometheus.CounterVec
	ValidationConflict prometheus.Counter

	// Planner metrics
	PlansTotal          *prometheus.CounterVec
	PlannedPages        *prometheus.GaugeVec
	PlanDurationSeconds prometheus.Histogram

	// Sitemap metrics
	SitemapEntries *prometheus.GaugeVec
}

// New creates and registers all engine metrics.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)
	m := &Metrics{}

	m.initResolutionMetrics(factory)
	m.initPlannerMetrics(factory)
	m.initSitemapMetrics(factory)

	return m
}

// initResolutionMetrics initializes canonical resolution and validation metrics.
func (m *Metrics) initResolutionMetrics(factory promauto.Factory) {
	m.DecisionsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "canonical",
			Name:      "decisions_total",
			Help:      "Total canonical decisions, by rule reason and index outcome",
		},
		[]string{"reason", "indexed"},
	)

	m.DecisionCacheHits = factory.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "canonical",
			Name:      "cache_hits_total",
			Help:      "Total decision cache hits",
		},
	)

	m.DecisionCacheMiss = factory.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "canonical",
			Name:      "cache_misses_total",
			Help:      "Total decision cache misses",
		},
	)

	m.ValidationsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "facets",
			Name:      "validations_total",
			Help:      "Total filter segment validations, by outcome",
		},
		[]string{"outcome"}, // valid, invalid
	)

	m.ValidationConflict = factory.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "facets",
			Name:      "conflicts_total",
			Help:      "Total validations that contained category conflicts",
		},
	)
}

// initPlannerMetrics initializes generation planner metrics.
func (m *Metrics) initPlannerMetrics(factory promauto.Factory) {
	m.PlansTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "planner",
			Name:      "plans_total",
			Help:      "Total generation plans built, by completeness",
		},
		[]string{"status"}, // complete, partial, fallback
	)

	m.PlannedPages = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "planner",
			Name:      "planned_pages",
			Help:      "Pages in the most recent generation plan, by city tier",
		},
		[]string{"tier"},
	)

	m.PlanDurationSeconds = factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "planner",
			Name:      "plan_duration_seconds",
			Help:      "Wall-clock duration of plan construction",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12), // 50ms to ~100s
		},
	)
}

// initSitemapMetrics initializes sitemap emission metrics.
func (m *Metrics) initSitemapMetrics(factory promauto.Factory) {
	m.SitemapEntries = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "sitemap",
			Name:      "entries",
			Help:      "URL entries in the most recently emitted sitemaps, by category",
		},
		[]string{"category"},
	)
}

// RecordDecision records one canonical decision.
func (m *Metrics) RecordDecision(reason string, indexed bool) {
	m.DecisionsTotal.WithLabelValues(reason, boolLabel(indexed)).Inc()
}

// RecordCacheLookup records a decision cache hit or miss.
func (m *Metrics) RecordCacheLookup(hit bool) {
	if hit {
		m.DecisionCacheHits.Inc()
	} else {
		m.DecisionCacheMiss.Inc()
	}
}

// RecordValidation records one filter segment validation.
func (m *Metrics) RecordValidation(valid, conflicts bool) {
	outcome := "invalid"
	if valid {
		outcome = "valid"
	}

	m.ValidationsTotal.WithLabelValues(outcome).Inc()

	if conflicts {
		m.ValidationConflict.Inc()
	}
}

// RecordPlan records a completed planning run.
func (m *Metrics) RecordPlan(status string, perTierCounts map[int]int, duration time.Duration) {
	m.PlansTotal.WithLabelValues(status).Inc()
	m.PlanDurationSeconds.Observe(duration.Seconds())

	for tier, count := range perTierCounts {
		m.PlannedPages.WithLabelValues(tierLabel(tier)).Set(float64(count))
	}
}

// RecordSitemapEntries records the entry count of one emitted category sitemap.
func (m *Metrics) RecordSitemapEntries(category string, count int) {
	m.SitemapEntries.WithLabelValues(category).Set(float64(count))
}

// boolLabel renders a bool as a metric label value.
func boolLabel(b bool) string {
	if b {
		return "true"
	}

	return "false"
}

// tierLabel renders a city tier as a metric label value.
func tierLabel(tier int) string {
	switch tier {
	case 1:
		return "1"
	case 2:
		return "2"
	case 3:
		return "3"
	default:
		return "unknown"
	}
}
