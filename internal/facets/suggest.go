package facets

import (
	"sort"
	"strings"

	"github.com/ezhulati/choose-my-power-sub003/internal/registry"
)

const (
	// maxEditDistance bounds how far a typo may be from a known token and
	// still earn a suggestion.
	maxEditDistance = 2
	// maxSuggestions caps the candidate list per rejected token.
	maxSuggestions = 3
)

// suggest returns the nearest known tokens for an unrecognized input, best
// first. A token qualifies by edit distance or by substring containment in
// either direction.
func suggest(input string) []string {
	type scored struct {
		token    string
		distance int
	}

	var candidates []scored

	for _, token := range registry.FilterTokens() {
		distance := editDistance(input, token)

		contained := strings.Contains(token, input) || strings.Contains(input, token)
		if distance > maxEditDistance && !contained {
			continue
		}

		if contained && distance > maxEditDistance {
			// Containment matches rank below genuine near-misses.
			distance = maxEditDistance + 1
		}

		candidates = append(candidates, scored{token: token, distance: distance})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}

		return candidates[i].token < candidates[j].token
	})

	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}

	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.token)
	}

	return out
}

// editDistance computes the Levenshtein distance between two strings with a
// two-row table.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i

		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// minInt returns the smallest of its arguments.
func minInt(values ...int) int {
	out := values[0]
	for _, v := range values[1:] {
		if v < out {
			out = v
		}
	}

	return out
}
