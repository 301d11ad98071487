package registry

import (
	"fmt"
	"sort"
)

// Registry is the immutable city table. Construct it once at process start
// with New or Load; all lookups are read-only afterwards.
type Registry struct {
	cities  map[string]City
	ordered []City
}

// New builds a registry from a city list. Cities are validated, checked for
// duplicate slugs and unknown territories, and ordered deterministically
// (tier ascending, population descending, slug ascending).
func New(cities []City) (*Registry, error) {
	if len(cities) == 0 {
		return nil, ErrNoCities
	}

	bySlug := make(map[string]City, len(cities))

	for i := range cities {
		city := cities[i]

		if err := validateCity(city); err != nil {
			return nil, fmt.Errorf("city %q: %w", city.Slug, err)
		}

		if _, exists := bySlug[city.Slug]; exists {
			return nil, fmt.Errorf("city %q: %w", city.Slug, ErrDuplicateSlug)
		}

		bySlug[city.Slug] = city
	}

	ordered := make([]City, 0, len(bySlug))
	for _, city := range bySlug {
		ordered = append(ordered, city)
	}

	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Tier != b.Tier {
			return a.Tier < b.Tier
		}
		if a.Population != b.Population {
			return a.Population > b.Population
		}

		return a.Slug < b.Slug
	})

	return &Registry{cities: bySlug, ordered: ordered}, nil
}

// City looks up a city by slug.
func (r *Registry) City(slug string) (City, bool) {
	city, ok := r.cities[slug]

	return city, ok
}

// Cities returns all cities in deterministic order (tier, then population
// descending, then slug). The returned slice is a copy.
func (r *Registry) Cities() []City {
	out := make([]City, len(r.ordered))
	copy(out, r.ordered)

	return out
}

// CitiesByTier returns the cities in the given tier, preserving registry order.
func (r *Registry) CitiesByTier(tier int) []City {
	var out []City

	for _, city := range r.ordered {
		if city.Tier == tier {
			out = append(out, city)
		}
	}

	return out
}

// Len returns the number of cities in the registry.
func (r *Registry) Len() int {
	return len(r.cities)
}
