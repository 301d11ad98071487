package canonical

import "math"

// Rule constants. These are pinned values: changing any of them changes which
// pages index, so they live here rather than in configuration.
const (
	// hubPriority is the sitemap priority of a city hub page.
	hubPriority = 1.0
	// reducedPriority is the priority of every non-indexed, reduced decision
	// (conflict, depth, small-city, low-volume).
	reducedPriority = 0.3
	// seasonalPriority is the priority of a seasonal override decision.
	seasonalPriority = 0.6

	// highValueVolumeFloor gates the high-value rule when market data is
	// supplied: combinations searched less often than this do not qualify.
	highValueVolumeFloor = 500
	// lowVolumeFloor marks a single-filter page as not worth indexing when
	// market data reports fewer monthly searches than this.
	lowVolumeFloor = 100
	// volumeBoostThreshold earns a +0.1 priority bump.
	volumeBoostThreshold = 2000
	// competitionPenaltyThreshold costs a -0.1 priority penalty.
	competitionPenaltyThreshold = 0.7
	// marketAdjustment is the bump/penalty applied for market signals.
	marketAdjustment = 0.1

	// smallCityPopulation is the rule-6 threshold: tier-3 cities below it do
	// not sustain two-filter pages.
	smallCityPopulation = 50000

	// maxIndexableDepth is the deepest filter combination the default rule
	// will index, and the boundary of the depth-reduction rule.
	maxIndexableDepth = 2

	// priorityPerExtraFilter reduces high-value priority for each filter
	// beyond the first.
	priorityPerExtraFilter = 0.1
	// minPriority and maxPriority clamp every computed priority.
	minPriority = 0.1
	maxPriority = 1.0

	// defaultBasePriority and defaultDepthPenalty drive the default rule's
	// max(0.3, 0.8 - 0.2*depth) priority curve.
	defaultBasePriority = 0.8
	defaultDepthPenalty = 0.2
	defaultMinPriority  = 0.3

	// priorityScale is the quantization grid for computed priorities: every
	// emitted priority is an exact tenth.
	priorityScale = 10
)

// tierBasePriority is the high-value rule's starting priority per city tier.
var tierBasePriority = map[int]float64{
	1: 0.9,
	2: 0.7,
	3: 0.5,
}

// highValuePairs lists the two-filter combinations worth an indexable page on
// a tier-1 city, keyed by their canonical segment.
var highValuePairs = map[string]bool{
	"12-month+fixed-rate":     true,
	"12-month+green-energy":   true,
	"fixed-rate+green-energy": true,
}

// quantizePriority rounds a priority onto the tenths grid. Priority
// arithmetic runs on floats, and sums like 0.8-0.2 land a few ulps off the
// intended tenth; rounding here keeps every decision and sitemap value exact.
func quantizePriority(p float64) float64 {
	return math.Round(p*priorityScale) / priorityScale
}

// clampPriority quantizes a priority and bounds it to
// [minPriority, maxPriority].
func clampPriority(p float64) float64 {
	p = quantizePriority(p)

	if p < minPriority {
		return minPriority
	}

	if p > maxPriority {
		return maxPriority
	}

	return p
}
