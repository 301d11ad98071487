package planner

import (
	"time"

	"github.com/google/uuid"

	"github.com/ezhulati/choose-my-power-sub003/internal/canonical"
	"github.com/ezhulati/choose-my-power-sub003/internal/facets"
	"github.com/ezhulati/choose-my-power-sub003/internal/registry"
)

// fallbackCities and fallbackFilters define the hand-picked minimum catalog
// emitted when full planning fails: the three largest markets crossed with
// the three strongest filters, plus each city's hub.
var (
	fallbackCities  = []string{"dallas", "houston", "fort-worth"}
	fallbackFilters = []string{"12-month", "fixed-rate", "green-energy"}
)

// fallbackPriority is the flat priority assigned to fallback filter pages.
const fallbackPriority = 0.8

// FallbackPlan returns the fixed fallback plan. Cities absent from the
// registry are skipped, so the fallback degrades gracefully even on a
// stripped-down city table.
func (p *Planner) FallbackPlan() (*Plan, []PlannedPage) {
	var pages []PlannedPage

	for _, slug := range fallbackCities {
		city, ok := p.registry.City(slug)
		if !ok {
			p.logger.Warn("Fallback city missing from registry", "city", slug)

			continue
		}

		pages = append(pages, PlannedPage{
			Path:     city.HubPath(),
			CitySlug: city.Slug,
			Tier:     city.Tier,
			Priority: 1.0,
			Reason:   canonical.ReasonCityHub,
			Rank:     RankHigh,
		})

		for _, token := range fallbackFilters {
			filter, known := registry.FilterByToken(token)
			if !known {
				continue
			}

			pages = append(pages, PlannedPage{
				Path:     facets.PathFor(city, []registry.Filter{filter}),
				CitySlug: city.Slug,
				Tier:     city.Tier,
				Priority: fallbackPriority,
				Reason:   canonical.ReasonHighValue,
				Rank:     RankHigh,
			})
		}
	}

	perTier := make(map[int]int)
	perCity := make(map[string]int)

	for _, page := range pages {
		perTier[page.Tier]++
		perCity[page.CitySlug]++
	}

	plan := &Plan{
		RunID:             uuid.NewString(),
		TotalPages:        len(pages),
		PerTierCounts:     perTier,
		PerCityCounts:     perCity,
		EstimatedDuration: time.Duration(len(pages)) * p.config.PageBuildCost,
		Fallback:          true,
	}

	return plan, pages
}
