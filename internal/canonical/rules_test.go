package canonical_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezhulati/choose-my-power-sub003/internal/canonical"
	"github.com/ezhulati/choose-my-power-sub003/internal/facets"
	"github.com/ezhulati/choose-my-power-sub003/internal/logger"
	"github.com/ezhulati/choose-my-power-sub003/internal/market"
	"github.com/ezhulati/choose-my-power-sub003/internal/registry"
)

var (
	dallas = registry.City{
		Slug: "dallas", Name: "Dallas", Tier: 1,
		PriorityWeight: 1.0, Population: 1304379, TerritoryID: "oncor",
	}
	waco = registry.City{
		Slug: "waco", Name: "Waco", Tier: 2,
		PriorityWeight: 0.6, Population: 138486, TerritoryID: "oncor",
	}
	sweetwater = registry.City{
		Slug: "sweetwater", Name: "Sweetwater", Tier: 3,
		PriorityWeight: 0.25, Population: 10622, TerritoryID: "aep-north",
	}
	galveston = registry.City{
		Slug: "galveston", Name: "Galveston", Tier: 3,
		PriorityWeight: 0.4, Population: 53695, TerritoryID: "centerpoint",
	}
)

// newResolver builds an uncached resolver over the test cities.
func newResolver(t *testing.T) *canonical.Resolver {
	t.Helper()

	reg, err := registry.New([]registry.City{dallas, waco, sweetwater, galveston})
	require.NoError(t, err)

	return canonical.NewResolver(reg, nil, logger.NewNoOp())
}

// filtersOf converts tokens into a sorted filter list, failing on unknowns.
func filtersOf(t *testing.T, tokens ...string) []registry.Filter {
	t.Helper()

	filters := make([]registry.Filter, 0, len(tokens))

	for _, token := range tokens {
		f, ok := registry.FilterByToken(token)
		require.True(t, ok, "unknown token %s", token)
		filters = append(filters, f)
	}

	facets.Sort(filters)

	return filters
}

func resolve(
	t *testing.T,
	city registry.City,
	marketData *market.Data,
	season canonical.Season,
	tokens ...string,
) canonical.Decision {
	t.Helper()

	decision, err := newResolver(t).Resolve(
		context.Background(), city.Slug, filtersOf(t, tokens...), marketData, season)
	require.NoError(t, err)

	return decision
}

func TestRuleCityHub(t *testing.T) {
	t.Parallel()

	decision := resolve(t, dallas, nil, canonical.SeasonNone)
	assert.Equal(t, "/texas/dallas/", decision.CanonicalPath)
	assert.Equal(t, canonical.ReasonCityHub, decision.Reason)
	assert.True(t, decision.ShouldIndex)
	assert.InDelta(t, 1.0, decision.Priority, 0.001)
	assert.Equal(t, canonical.ChangeFreqDaily, decision.ChangeFreq)
}

func TestRuleConflictResolved(t *testing.T) {
	t.Parallel()

	// Scenario from the catalog: dallas with two term lengths resolves to
	// the higher-ranked 12-month and never indexes.
	decision := resolve(t, dallas, nil, canonical.SeasonNone, "12-month", "24-month")
	assert.Equal(t, "/texas/dallas/12-month/", decision.CanonicalPath)
	assert.Equal(t, canonical.ReasonConflictResolved, decision.Reason)
	assert.False(t, decision.ShouldIndex)
}

func TestRuleConflictKeepsNonConflictingFilters(t *testing.T) {
	t.Parallel()

	decision := resolve(t, dallas, nil, canonical.SeasonNone,
		"fixed-rate", "variable-rate", "prepaid")
	assert.Equal(t, "/texas/dallas/fixed-rate+prepaid/", decision.CanonicalPath)
	assert.False(t, decision.ShouldIndex)
}

func TestRuleConflictResolutionCorrectness(t *testing.T) {
	t.Parallel()

	// Every term-length pairing must resolve to exactly the highest-ranked
	// member of the pair.
	terms := []string{"6-month", "12-month", "24-month", "36-month", "month-to-month"}

	for i, a := range terms {
		for _, b := range terms[i+1:] {
			decision := resolve(t, dallas, nil, canonical.SeasonNone, a, b)

			fa, _ := registry.FilterByToken(a)
			fb, _ := registry.FilterByToken(b)

			winner := a
			if fb.Rank < fa.Rank {
				winner = b
			}

			assert.Equal(t, "/texas/dallas/"+winner+"/", decision.CanonicalPath,
				"pair %s+%s", a, b)
		}
	}
}

func TestRuleHighValueSingleFilter(t *testing.T) {
	t.Parallel()

	// Scenario: dallas + fixed-rate, no market data.
	decision := resolve(t, dallas, nil, canonical.SeasonNone, "fixed-rate")
	assert.Equal(t, "/texas/dallas/fixed-rate/", decision.CanonicalPath)
	assert.Equal(t, canonical.ReasonHighValue, decision.Reason)
	assert.True(t, decision.ShouldIndex)
	assert.InDelta(t, 0.9, decision.Priority, 0.001)
	assert.Equal(t, canonical.ChangeFreqWeekly, decision.ChangeFreq)
}

func TestRuleHighValueTier2(t *testing.T) {
	t.Parallel()

	decision := resolve(t, waco, nil, canonical.SeasonNone, "green-energy")
	assert.Equal(t, canonical.ReasonHighValue, decision.Reason)
	assert.True(t, decision.ShouldIndex)
	assert.InDelta(t, 0.7, decision.Priority, 0.001)
}

func TestRuleHighValueNotOnTier3(t *testing.T) {
	t.Parallel()

	decision := resolve(t, galveston, nil, canonical.SeasonNone, "fixed-rate")
	assert.NotEqual(t, canonical.ReasonHighValue, decision.Reason)
}

func TestRuleHighValuePairTier1Only(t *testing.T) {
	t.Parallel()

	tier1 := resolve(t, dallas, nil, canonical.SeasonNone, "12-month", "fixed-rate")
	assert.Equal(t, canonical.ReasonHighValue, tier1.Reason)
	assert.True(t, tier1.ShouldIndex)
	// One extra filter beyond the first costs 0.1.
	assert.InDelta(t, 0.8, tier1.Priority, 0.001)

	tier2 := resolve(t, waco, nil, canonical.SeasonNone, "12-month", "fixed-rate")
	assert.NotEqual(t, canonical.ReasonHighValue, tier2.Reason)
}

func TestRuleHighValueMarketFloor(t *testing.T) {
	t.Parallel()

	// Below the volume floor, the high-value rule is skipped and the single
	// low-volume check picks the combination up instead.
	starved := &market.Data{SearchVolume: 50, Competition: 0.3}
	decision := resolve(t, dallas, starved, canonical.SeasonNone, "fixed-rate")
	assert.Equal(t, canonical.ReasonLowSearchVolume, decision.Reason)
	assert.Equal(t, "/texas/dallas/", decision.CanonicalPath)
	assert.False(t, decision.ShouldIndex)
}

func TestRuleHighValueMarketAdjustments(t *testing.T) {
	t.Parallel()

	boosted := &market.Data{SearchVolume: 2400, Competition: 0.3}
	decision := resolve(t, dallas, boosted, canonical.SeasonNone, "fixed-rate")
	assert.InDelta(t, 1.0, decision.Priority, 0.001) // 0.9 + 0.1, clamped

	contested := &market.Data{SearchVolume: 800, Competition: 0.9}
	decision = resolve(t, dallas, contested, canonical.SeasonNone, "fixed-rate")
	assert.InDelta(t, 0.8, decision.Priority, 0.001) // 0.9 - 0.1
}

func TestRuleSeasonalSummer(t *testing.T) {
	t.Parallel()

	// Fixed-rate is sub-optimal in summer on a city where the high-value
	// rule does not fire first.
	decision := resolve(t, galveston, nil, canonical.SeasonSummer, "fixed-rate")
	assert.Equal(t, canonical.ReasonSeasonal, decision.Reason)
	assert.Equal(t, "/texas/galveston/variable-rate/", decision.CanonicalPath)
	assert.True(t, decision.ShouldIndex)
	assert.InDelta(t, 0.6, decision.Priority, 0.001)
}

func TestRuleSeasonalWinter(t *testing.T) {
	t.Parallel()

	decision := resolve(t, galveston, nil, canonical.SeasonWinter, "variable-rate")
	assert.Equal(t, canonical.ReasonSeasonal, decision.Reason)
	assert.Equal(t, "/texas/galveston/fixed-rate/", decision.CanonicalPath)
}

func TestRuleSeasonalPreferredTokenPasses(t *testing.T) {
	t.Parallel()

	// The seasonally-preferred token itself triggers no override.
	decision := resolve(t, galveston, nil, canonical.SeasonWinter, "fixed-rate")
	assert.NotEqual(t, canonical.ReasonSeasonal, decision.Reason)
}

func TestRuleSeasonalSwapsIndexedRate(t *testing.T) {
	t.Parallel()

	// Any non-preferred rate type swaps, not just the fixed/variable pair:
	// indexed-rate in winter steers to fixed-rate before the low-volume rule
	// can send it to the hub.
	winter := resolve(t, galveston, nil, canonical.SeasonWinter, "indexed-rate")
	assert.Equal(t, canonical.ReasonSeasonal, winter.Reason)
	assert.Equal(t, "/texas/galveston/fixed-rate/", winter.CanonicalPath)

	// Without a season the deny-listed filter falls through to low-volume.
	plain := resolve(t, galveston, nil, canonical.SeasonNone, "indexed-rate")
	assert.Equal(t, canonical.ReasonLowSearchVolume, plain.Reason)
	assert.Equal(t, "/texas/galveston/", plain.CanonicalPath)
}

func TestRuleHighValueOutranksSeasonal(t *testing.T) {
	t.Parallel()

	// Rule order is fixed: a tier-1 high-value filter stays self-canonical
	// even in its sub-optimal season.
	decision := resolve(t, dallas, nil, canonical.SeasonSummer, "fixed-rate")
	assert.Equal(t, canonical.ReasonHighValue, decision.Reason)
	assert.Equal(t, "/texas/dallas/fixed-rate/", decision.CanonicalPath)
}

func TestRuleDepthReducedTier1KeepsTwo(t *testing.T) {
	t.Parallel()

	decision := resolve(t, dallas, nil, canonical.SeasonNone,
		"12-month", "fixed-rate", "green-energy")
	assert.Equal(t, canonical.ReasonDepthReduced, decision.Reason)
	assert.Equal(t, "/texas/dallas/12-month+fixed-rate/", decision.CanonicalPath)
	assert.False(t, decision.ShouldIndex)
}

func TestRuleDepthReducedTier2KeepsOne(t *testing.T) {
	t.Parallel()

	decision := resolve(t, waco, nil, canonical.SeasonNone,
		"12-month", "fixed-rate", "green-energy")
	assert.Equal(t, canonical.ReasonDepthReduced, decision.Reason)
	assert.Equal(t, "/texas/waco/12-month/", decision.CanonicalPath)
}

func TestRuleSmallCityReduced(t *testing.T) {
	t.Parallel()

	// Scenario: tier-3 town under the population threshold with two filters
	// reduces to the primary filter; green-energy outranks prepaid.
	decision := resolve(t, sweetwater, nil, canonical.SeasonNone, "green-energy", "prepaid")
	assert.Equal(t, canonical.ReasonSmallCityReduced, decision.Reason)
	assert.Equal(t, "/texas/sweetwater/green-energy/", decision.CanonicalPath)
	assert.False(t, decision.ShouldIndex)
}

func TestRuleSmallCityNotAppliedAboveThreshold(t *testing.T) {
	t.Parallel()

	decision := resolve(t, galveston, nil, canonical.SeasonNone, "green-energy", "prepaid")
	assert.NotEqual(t, canonical.ReasonSmallCityReduced, decision.Reason)
}

func TestRuleLowSearchVolumeDenyList(t *testing.T) {
	t.Parallel()

	decision := resolve(t, dallas, nil, canonical.SeasonNone, "36-month")
	assert.Equal(t, canonical.ReasonLowSearchVolume, decision.Reason)
	assert.Equal(t, "/texas/dallas/", decision.CanonicalPath)
	assert.False(t, decision.ShouldIndex)
}

func TestRuleDefaultShallowTier2Indexes(t *testing.T) {
	t.Parallel()

	decision := resolve(t, waco, nil, canonical.SeasonNone, "free-nights")
	assert.Equal(t, canonical.ReasonDefault, decision.Reason)
	assert.Equal(t, "/texas/waco/free-nights/", decision.CanonicalPath)
	assert.True(t, decision.ShouldIndex)
	assert.InDelta(t, 0.6, decision.Priority, 0.001)
}

func TestRuleDefaultTier3NeverIndexes(t *testing.T) {
	t.Parallel()

	decision := resolve(t, galveston, nil, canonical.SeasonNone, "free-nights")
	assert.Equal(t, canonical.ReasonDefault, decision.Reason)
	assert.False(t, decision.ShouldIndex)
}

func TestRuleDefaultPriorityFloor(t *testing.T) {
	t.Parallel()

	// Two filters: 0.8 - 0.4 = 0.4, above the 0.3 floor.
	decision := resolve(t, waco, nil, canonical.SeasonNone, "free-nights", "bill-credit")
	assert.InDelta(t, 0.4, decision.Priority, 0.001)
}

func TestPriorityValuesAreExactTenths(t *testing.T) {
	t.Parallel()

	// Priorities feed sitemap XML and plan artifacts verbatim, so float
	// drift like 0.6000000000000001 must never escape the rules.
	tests := []struct {
		name       string
		city       registry.City
		marketData *market.Data
		tokens     []string
		want       string
	}{
		{name: "default depth one", city: galveston, tokens: []string{"fixed-rate"}, want: "0.6"},
		{name: "default depth two", city: waco, tokens: []string{"free-nights", "bill-credit"}, want: "0.4"},
		{
			name:       "high value with volume boost",
			city:       waco,
			marketData: &market.Data{SearchVolume: 2400, Competition: 0.3},
			tokens:     []string{"green-energy"},
			want:       "0.8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			decision := resolve(t, tt.city, tt.marketData, canonical.SeasonNone, tt.tokens...)
			assert.Equal(t, tt.want, strconv.FormatFloat(decision.Priority, 'f', -1, 64))
		})
	}
}

func TestDeterminism(t *testing.T) {
	t.Parallel()

	first := resolve(t, dallas, nil, canonical.SeasonSummer, "12-month", "green-energy")

	for i := 0; i < 10; i++ {
		again := resolve(t, dallas, nil, canonical.SeasonSummer, "12-month", "green-energy")
		assert.Equal(t, first, again)
	}
}

func TestIdempotence(t *testing.T) {
	t.Parallel()

	// Re-feeding a decision's own canonical filter set returns itself.
	decision := resolve(t, dallas, nil, canonical.SeasonNone, "12-month", "24-month")
	require.Equal(t, "/texas/dallas/12-month/", decision.CanonicalPath)

	again := resolve(t, dallas, nil, canonical.SeasonNone, "12-month")
	assert.Equal(t, decision.CanonicalPath, again.CanonicalPath)
	assert.True(t, again.SelfCanonical(decision.CanonicalPath))
}

func TestSeasonFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, canonical.SeasonSummer,
		canonical.SeasonFor(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, canonical.SeasonWinter,
		canonical.SeasonFor(time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, canonical.SeasonNone,
		canonical.SeasonFor(time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)))
}
