package canonical

import (
	"sort"

	"github.com/ezhulati/choose-my-power-sub003/internal/facets"
	"github.com/ezhulati/choose-my-power-sub003/internal/registry"
)

// rule is one predicate+action pair in the decision chain. apply returns the
// decision and true when the rule matches; the chain stops at the first match.
type rule struct {
	reason Reason
	apply  func(in Input) (Decision, bool)
}

// ruleChain is the fixed decision order. The final default rule always
// matches, so evaluation cannot fall off the end.
var ruleChain = []rule{
	{reason: ReasonCityHub, apply: applyCityHub},
	{reason: ReasonConflictResolved, apply: applyConflictResolved},
	{reason: ReasonHighValue, apply: applyHighValue},
	{reason: ReasonSeasonal, apply: applySeasonal},
	{reason: ReasonDepthReduced, apply: applyDepthReduced},
	{reason: ReasonSmallCityReduced, apply: applySmallCityReduced},
	{reason: ReasonLowSearchVolume, apply: applyLowSearchVolume},
	{reason: ReasonDefault, apply: applyDefault},
}

// evaluate runs the chain in order and returns the first matching decision.
func evaluate(in Input) Decision {
	for _, r := range ruleChain {
		if decision, ok := r.apply(in); ok {
			return decision
		}
	}

	// Unreachable: applyDefault always matches.
	decision, _ := applyDefault(in)

	return decision
}

// applyCityHub handles the empty filter set: the city hub page is always
// self-canonical and indexed at full priority.
func applyCityHub(in Input) (Decision, bool) {
	if in.depth() != 0 {
		return Decision{}, false
	}

	return Decision{
		CanonicalPath: in.City.HubPath(),
		Reason:        ReasonCityHub,
		Priority:      hubPriority,
		ShouldIndex:   true,
		ChangeFreq:    ChangeFreqDaily,
	}, true
}

// applyConflictResolved fires when a conflict-bearing category holds more
// than one filter. The canonical path keeps only the highest-ranked filter
// per conflicted category; the page itself never indexes.
func applyConflictResolved(in Input) (Decision, bool) {
	if !hasConflicts(in.Filters) {
		return Decision{}, false
	}

	reduced := resolveConflicts(in.Filters)

	return Decision{
		CanonicalPath: facets.PathFor(in.City, reduced),
		Reason:        ReasonConflictResolved,
		Priority:      reducedPriority,
		ShouldIndex:   false,
		ChangeFreq:    ChangeFreqMonthly,
	}, true
}

// applyHighValue fires for a single high-value filter on a tier-1/2 city, or
// a known high-value pair on a tier-1 city. When market data is supplied the
// combination must also clear the search-volume floor.
func applyHighValue(in Input) (Decision, bool) {
	if !isHighValueCombination(in) {
		return Decision{}, false
	}

	if in.Market != nil && in.Market.SearchVolume < highValueVolumeFloor {
		return Decision{}, false
	}

	priority := tierBasePriority[in.City.Tier]
	priority -= priorityPerExtraFilter * float64(in.depth()-1)

	if in.Market != nil {
		if in.Market.SearchVolume >= volumeBoostThreshold {
			priority += marketAdjustment
		}

		if in.Market.Competition > competitionPenaltyThreshold {
			priority -= marketAdjustment
		}
	}

	return Decision{
		CanonicalPath: facets.PathFor(in.City, in.Filters),
		Reason:        ReasonHighValue,
		Priority:      clampPriority(priority),
		ShouldIndex:   true,
		ChangeFreq:    ChangeFreqWeekly,
	}, true
}

// applySeasonal fires when the set contains a rate-type filter that is
// sub-optimal for the supplied season. The canonical target swaps the
// offending token for the seasonally-preferred one.
func applySeasonal(in Input) (Decision, bool) {
	preferredToken := in.Season.preferredRateType()
	if preferredToken == "" {
		return Decision{}, false
	}

	offending := -1

	for i, f := range in.Filters {
		if f.Category == registry.CategoryRateType && f.Token != preferredToken {
			offending = i

			break
		}
	}

	if offending == -1 {
		return Decision{}, false
	}

	preferred, ok := registry.FilterByToken(preferredToken)
	if !ok {
		return Decision{}, false
	}

	swapped := make([]registry.Filter, 0, len(in.Filters))
	swapped = append(swapped, in.Filters[:offending]...)
	swapped = append(swapped, preferred)
	swapped = append(swapped, in.Filters[offending+1:]...)
	facets.Sort(swapped)

	return Decision{
		CanonicalPath: facets.PathFor(in.City, swapped),
		Reason:        ReasonSeasonal,
		Priority:      seasonalPriority,
		ShouldIndex:   true,
		ChangeFreq:    ChangeFreqWeekly,
	}, true
}

// applyDepthReduced canonicalizes combinations deeper than two filters to an
// optimal parent: the top two filters by ranking for tier-1 cities, the
// single top filter elsewhere.
func applyDepthReduced(in Input) (Decision, bool) {
	if in.depth() <= maxIndexableDepth {
		return Decision{}, false
	}

	keep := 1
	if in.City.Tier == 1 {
		keep = 2
	}

	return Decision{
		CanonicalPath: facets.PathFor(in.City, topRanked(in.Filters, keep)),
		Reason:        ReasonDepthReduced,
		Priority:      reducedPriority,
		ShouldIndex:   false,
		ChangeFreq:    ChangeFreqMonthly,
	}, true
}

// applySmallCityReduced fires for exactly two filters on a tier-3 city whose
// population falls under the small-city threshold: the page canonicalizes to
// the single primary filter.
func applySmallCityReduced(in Input) (Decision, bool) {
	if in.depth() != 2 || in.City.Tier != 3 || in.City.Population >= smallCityPopulation {
		return Decision{}, false
	}

	return Decision{
		CanonicalPath: facets.PathFor(in.City, topRanked(in.Filters, 1)),
		Reason:        ReasonSmallCityReduced,
		Priority:      reducedPriority,
		ShouldIndex:   false,
		ChangeFreq:    ChangeFreqMonthly,
	}, true
}

// applyLowSearchVolume fires for a single filter on the low-volume deny-list,
// or with market data reporting search volume under the floor. Such pages
// canonicalize back to the city hub.
func applyLowSearchVolume(in Input) (Decision, bool) {
	if in.depth() != 1 {
		return Decision{}, false
	}

	lowVolume := in.Filters[0].LowVolume
	if in.Market != nil && in.Market.SearchVolume < lowVolumeFloor {
		lowVolume = true
	}

	if !lowVolume {
		return Decision{}, false
	}

	return Decision{
		CanonicalPath: in.City.HubPath(),
		Reason:        ReasonLowSearchVolume,
		Priority:      reducedPriority,
		ShouldIndex:   false,
		ChangeFreq:    ChangeFreqMonthly,
	}, true
}

// applyDefault always matches: self-canonical, indexed only for shallow
// combinations on larger cities, priority decaying with depth.
func applyDefault(in Input) (Decision, bool) {
	priority := quantizePriority(defaultBasePriority - defaultDepthPenalty*float64(in.depth()))
	if priority < defaultMinPriority {
		priority = defaultMinPriority
	}

	shouldIndex := in.depth() <= maxIndexableDepth && in.City.Tier <= 2

	return Decision{
		CanonicalPath: facets.PathFor(in.City, in.Filters),
		Reason:        ReasonDefault,
		Priority:      priority,
		ShouldIndex:   shouldIndex,
		ChangeFreq:    ChangeFreqMonthly,
	}, true
}

// isHighValueCombination reports whether the filter set is on the high-value
// allow-list for the city's tier: one allow-listed filter on tier 1/2, or one
// of the known two-filter pairs on tier 1.
func isHighValueCombination(in Input) bool {
	switch in.depth() {
	case 1:
		return in.Filters[0].HighValue && in.City.Tier <= 2
	case 2:
		return in.City.Tier == 1 && highValuePairs[facets.Segment(in.Filters)]
	default:
		return false
	}
}

// hasConflicts reports whether any conflict-bearing category holds more than
// one filter.
func hasConflicts(filters []registry.Filter) bool {
	counts := make(map[registry.FilterCategory]int)

	for _, f := range filters {
		if !f.Category.Conflicting() {
			continue
		}

		counts[f.Category]++
		if counts[f.Category] > 1 {
			return true
		}
	}

	return false
}

// resolveConflicts keeps the highest-ranked filter per conflicted category and
// every non-conflicting filter, in canonical order.
func resolveConflicts(filters []registry.Filter) []registry.Filter {
	winners := make(map[registry.FilterCategory]registry.Filter)
	reduced := make([]registry.Filter, 0, len(filters))

	for _, f := range filters {
		if !f.Category.Conflicting() {
			reduced = append(reduced, f)

			continue
		}

		current, seen := winners[f.Category]
		if !seen || f.Rank < current.Rank {
			winners[f.Category] = f
		}
	}

	for _, winner := range winners {
		reduced = append(reduced, winner)
	}

	facets.Sort(reduced)

	return reduced
}

// topRanked returns the n highest-priority filters: rank first, then category
// order, then token, re-sorted into canonical order for path building.
func topRanked(filters []registry.Filter, n int) []registry.Filter {
	ranked := make([]registry.Filter, len(filters))
	copy(ranked, filters)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Rank != b.Rank {
			return a.Rank < b.Rank
		}

		if a.Category != b.Category {
			return a.Category.Order() < b.Category.Order()
		}

		return a.Token < b.Token
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}

	facets.Sort(ranked)

	return ranked
}
