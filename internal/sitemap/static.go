package sitemap

import "github.com/ezhulati/choose-my-power-sub003/internal/canonical"

// staticPage is a hand-maintained page outside the faceted catalog. These
// carry their own change frequency and priority since no canonical decision
// governs them.
type staticPage struct {
	path       string
	category   Category
	changeFreq canonical.ChangeFreq
	priority   float64
}

// staticPages is the compiled table of non-catalog pages. Paths here are
// site-relative and must stay in sync with the rendering layer's routes.
var staticPages = []staticPage{
	{path: "/", category: CategoryMain, changeFreq: canonical.ChangeFreqDaily, priority: 1.0},
	{path: "/texas/", category: CategoryMain, changeFreq: canonical.ChangeFreqDaily, priority: 0.9},
	{path: "/rates/", category: CategoryMain, changeFreq: canonical.ChangeFreqDaily, priority: 0.8},
	{path: "/compare/", category: CategoryMain, changeFreq: canonical.ChangeFreqWeekly, priority: 0.7},
	{path: "/about/", category: CategoryMain, changeFreq: canonical.ChangeFreqMonthly, priority: 0.3},

	{path: "/providers/", category: CategoryProviders, changeFreq: canonical.ChangeFreqWeekly, priority: 0.7},
	{path: "/providers/txu-energy/", category: CategoryProviders, changeFreq: canonical.ChangeFreqWeekly, priority: 0.6},
	{path: "/providers/reliant/", category: CategoryProviders, changeFreq: canonical.ChangeFreqWeekly, priority: 0.6},
	{path: "/providers/green-mountain/", category: CategoryProviders, changeFreq: canonical.ChangeFreqWeekly, priority: 0.6},
	{path: "/providers/direct-energy/", category: CategoryProviders, changeFreq: canonical.ChangeFreqWeekly, priority: 0.6},

	{path: "/guides/", category: CategoryGuides, changeFreq: canonical.ChangeFreqMonthly, priority: 0.6},
	{path: "/guides/how-to-switch/", category: CategoryGuides, changeFreq: canonical.ChangeFreqMonthly, priority: 0.5},
	{path: "/guides/understanding-your-bill/", category: CategoryGuides, changeFreq: canonical.ChangeFreqMonthly, priority: 0.5},
	{path: "/guides/fixed-vs-variable/", category: CategoryGuides, changeFreq: canonical.ChangeFreqMonthly, priority: 0.5},
	{path: "/guides/moving-to-texas/", category: CategoryGuides, changeFreq: canonical.ChangeFreqMonthly, priority: 0.5},
}
