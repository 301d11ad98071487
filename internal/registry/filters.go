// Package registry provides the read-only city and filter catalog backing the
// faceted navigation engine. Cities are loaded once at process start from a
// YAML table; the filter catalog is fixed at compile time. Nothing in this
// package mutates after load, so lookups are safe for concurrent use.
package registry

// FilterCategory classifies a filter token. Conflict-bearing categories admit
// at most one filter per canonical combination.
type FilterCategory string

// Known filter categories.
const (
	CategoryContractTerm FilterCategory = "contract-term"
	CategoryRateType     FilterCategory = "rate-type"
	CategoryGreenEnergy  FilterCategory = "green-energy"
	CategoryBillingType  FilterCategory = "billing-type"
	CategoryPerks        FilterCategory = "perks"
)

// categoryOrder fixes each category's position in canonical filter ordering.
// Lower values sort first; the resulting order is what keeps canonical paths
// stable regardless of input order.
var categoryOrder = map[FilterCategory]int{
	CategoryContractTerm: 0,
	CategoryRateType:     1,
	CategoryGreenEnergy:  2,
	CategoryBillingType:  3,
	CategoryPerks:        4,
}

// Conflicting reports whether the category admits at most one filter per
// combination. Term length, rate type, and green-energy tier are mutually
// exclusive within themselves; billing and perk filters may stack.
func (c FilterCategory) Conflicting() bool {
	switch c {
	case CategoryContractTerm, CategoryRateType, CategoryGreenEnergy:
		return true
	default:
		return false
	}
}

// Order returns the category's position in canonical filter ordering.
// Unknown categories sort last.
func (c FilterCategory) Order() int {
	order, ok := categoryOrder[c]
	if !ok {
		return len(categoryOrder)
	}

	return order
}

// Filter describes a single plan facet token.
type Filter struct {
	// Token is the URL segment form, e.g. "12-month".
	Token string
	// Category is the facet group the token belongs to.
	Category FilterCategory
	// Label is the human-readable form used in titles and headings.
	Label string
	// Rank is the token's position in its category's fixed priority ranking;
	// 0 is highest. Conflict resolution keeps the lowest rank.
	Rank int
	// HighValue marks members of the high-value allow-list (§ high-value
	// combinations earn indexable self-canonical pages on larger cities).
	HighValue bool
	// LowVolume marks members of the low-search-volume deny-list; single-filter
	// pages for these canonicalize back to the city hub.
	LowVolume bool
}

// filterCatalog lists every known filter token. The order within a category
// is its priority ranking; tokens are grouped by category for readability.
var filterCatalog = []Filter{
	// Contract term
	{Token: "12-month", Category: CategoryContractTerm, Label: "12-Month", Rank: 0, HighValue: true},
	{Token: "24-month", Category: CategoryContractTerm, Label: "24-Month", Rank: 1},
	{Token: "6-month", Category: CategoryContractTerm, Label: "6-Month", Rank: 2},
	{Token: "36-month", Category: CategoryContractTerm, Label: "36-Month", Rank: 3, LowVolume: true},
	{Token: "month-to-month", Category: CategoryContractTerm, Label: "Month-to-Month", Rank: 4},

	// Rate type
	{Token: "fixed-rate", Category: CategoryRateType, Label: "Fixed Rate", Rank: 0, HighValue: true},
	{Token: "variable-rate", Category: CategoryRateType, Label: "Variable Rate", Rank: 1},
	{Token: "indexed-rate", Category: CategoryRateType, Label: "Indexed Rate", Rank: 2, LowVolume: true},

	// Green energy
	{Token: "green-energy", Category: CategoryGreenEnergy, Label: "100% Green Energy", Rank: 0, HighValue: true},
	{Token: "wind-energy", Category: CategoryGreenEnergy, Label: "Wind Energy", Rank: 1},
	{Token: "solar-energy", Category: CategoryGreenEnergy, Label: "Solar Energy", Rank: 2},

	// Billing
	{Token: "prepaid", Category: CategoryBillingType, Label: "Prepaid", Rank: 0, HighValue: true},
	{Token: "no-deposit", Category: CategoryBillingType, Label: "No Deposit", Rank: 1},
	{Token: "autopay-discount", Category: CategoryBillingType, Label: "Autopay Discount", Rank: 2},

	// Perks
	{Token: "free-nights", Category: CategoryPerks, Label: "Free Nights", Rank: 0},
	{Token: "free-weekends", Category: CategoryPerks, Label: "Free Weekends", Rank: 1},
	{Token: "bill-credit", Category: CategoryPerks, Label: "Bill Credit", Rank: 2},
	{Token: "time-of-use", Category: CategoryPerks, Label: "Time of Use", Rank: 3, LowVolume: true},
}

// filtersByToken indexes the catalog for O(1) token lookup.
var filtersByToken = func() map[string]Filter {
	m := make(map[string]Filter, len(filterCatalog))
	for _, f := range filterCatalog {
		m[f.Token] = f
	}

	return m
}()

// Filters returns a copy of the full filter catalog in canonical order.
func Filters() []Filter {
	out := make([]Filter, len(filterCatalog))
	copy(out, filterCatalog)

	return out
}

// FilterByToken looks up a filter by its URL token.
func FilterByToken(token string) (Filter, bool) {
	f, ok := filtersByToken[token]

	return f, ok
}

// FilterTokens returns every known token in canonical order.
func FilterTokens() []string {
	tokens := make([]string, 0, len(filterCatalog))
	for _, f := range filterCatalog {
		tokens = append(tokens, f.Token)
	}

	return tokens
}

// Less reports whether filter a sorts before filter b in canonical order:
// category order first, then rank within the category, then token as the
// final tiebreaker.
func Less(a, b Filter) bool {
	if a.Category != b.Category {
		return a.Category.Order() < b.Category.Order()
	}

	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}

	return a.Token < b.Token
}
