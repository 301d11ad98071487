// Package facets parses and validates faceted navigation URL segments. A raw
// segment like "12-month+green-energy" becomes a normalized, deduplicated
// filter set in fixed canonical order, with intra-category conflicts flagged
// for the canonical resolution layer and near-miss suggestions for unknown
// tokens. Everything here is a pure function over the compile-time filter
// catalog, safe for concurrent use.
package facets

import (
	"sort"
	"strings"

	"github.com/ezhulati/choose-my-power-sub003/internal/registry"
)

// Delimiter separates filter tokens inside a URL segment.
const Delimiter = "+"

// Conflict records a conflict-bearing category that received more than one
// token. Conflicts are resolved downstream, never rejected here.
type Conflict struct {
	Category registry.FilterCategory
	Tokens   []string
}

// Suggestion pairs a rejected token with its nearest known tokens, best first.
type Suggestion struct {
	Input      string
	Candidates []string
}

// Result is the outcome of validating one raw filter segment.
type Result struct {
	// IsValid is false when the segment contains unknown or malformed tokens.
	// Conflicts alone do not invalidate a segment.
	IsValid bool
	// Normalized holds the recognized filters in fixed canonical order,
	// deduplicated. Populated even for invalid input so callers can salvage
	// the recognizable part.
	Normalized []registry.Filter
	// Conflicts lists conflict-bearing categories with more than one token.
	Conflicts []Conflict
	// Suggestions holds nearest-match candidates for each rejected token.
	Suggestions []Suggestion
	// FallbackPath is the city-only path, for redirecting invalid requests.
	FallbackPath string
}

// Tokens returns the normalized filter tokens in canonical order.
func (r Result) Tokens() []string {
	tokens := make([]string, 0, len(r.Normalized))
	for _, f := range r.Normalized {
		tokens = append(tokens, f.Token)
	}

	return tokens
}

// HasConflicts reports whether any conflict-bearing category got multiple tokens.
func (r Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// Validate parses a raw filter segment for a city. An empty segment is valid
// and yields an empty filter set (the city hub page).
func Validate(city registry.City, rawSegment string) Result {
	result := Result{
		IsValid:      true,
		FallbackPath: city.HubPath(),
	}

	tokens := splitSegment(rawSegment)
	if len(tokens) == 0 {
		return result
	}

	seen := make(map[string]bool, len(tokens))

	for _, token := range tokens {
		if seen[token] {
			continue
		}
		seen[token] = true

		filter, ok := registry.FilterByToken(token)
		if !ok {
			result.IsValid = false
			result.Suggestions = append(result.Suggestions, Suggestion{
				Input:      token,
				Candidates: suggest(token),
			})

			continue
		}

		result.Normalized = append(result.Normalized, filter)
	}

	Sort(result.Normalized)
	result.Conflicts = findConflicts(result.Normalized)

	return result
}

// ValidateTokens validates an already-split token list, applying the same
// normalization as Validate. Used by callers that hold structured input
// rather than a raw URL segment.
func ValidateTokens(city registry.City, tokens []string) Result {
	return Validate(city, strings.Join(tokens, Delimiter))
}

// Sort orders filters in place into fixed canonical order: category order,
// then rank within category, then token. Identical input sets always produce
// an identical sequence regardless of input order.
func Sort(filters []registry.Filter) {
	sort.SliceStable(filters, func(i, j int) bool {
		return registry.Less(filters[i], filters[j])
	})
}

// Segment renders a normalized filter list as a URL segment.
func Segment(filters []registry.Filter) string {
	if len(filters) == 0 {
		return ""
	}

	tokens := make([]string, 0, len(filters))
	for _, f := range filters {
		tokens = append(tokens, f.Token)
	}

	return strings.Join(tokens, Delimiter)
}

// PathFor builds the page path for a city and a normalized filter list,
// e.g. "/texas/dallas/12-month+fixed-rate/". An empty list yields the hub path.
func PathFor(city registry.City, filters []registry.Filter) string {
	segment := Segment(filters)
	if segment == "" {
		return city.HubPath()
	}

	return city.HubPath() + segment + "/"
}

// splitSegment splits a raw segment on the delimiter, trims whitespace, and
// drops empty tokens.
func splitSegment(raw string) []string {
	parts := strings.Split(raw, Delimiter)
	tokens := make([]string, 0, len(parts))

	for _, part := range parts {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}

		tokens = append(tokens, strings.ToLower(token))
	}

	return tokens
}

// findConflicts groups filters by category and reports every conflict-bearing
// category holding more than one token.
func findConflicts(filters []registry.Filter) []Conflict {
	byCategory := make(map[registry.FilterCategory][]string)

	for _, f := range filters {
		if f.Category.Conflicting() {
			byCategory[f.Category] = append(byCategory[f.Category], f.Token)
		}
	}

	var conflicts []Conflict

	for category, tokens := range byCategory {
		if len(tokens) > 1 {
			conflicts = append(conflicts, Conflict{Category: category, Tokens: tokens})
		}
	}

	// Map iteration order is random; conflicts must be deterministic.
	sort.Slice(conflicts, func(i, j int) bool {
		return conflicts[i].Category.Order() < conflicts[j].Category.Order()
	})

	return conflicts
}
