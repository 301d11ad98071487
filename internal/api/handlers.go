package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ezhulati/choose-my-power-sub003/internal/canonical"
	"github.com/ezhulati/choose-my-power-sub003/internal/facets"
	"github.com/ezhulati/choose-my-power-sub003/internal/registry"
	"github.com/ezhulati/choose-my-power-sub003/internal/seometa"
	"github.com/ezhulati/choose-my-power-sub003/internal/sitemap"
)

// resolveResponse is the payload for /api/v1/resolve: everything the
// rendering layer needs to emit canonical link and robots meta tags.
type resolveResponse struct {
	Path       string             `json:"path"`
	Decision   canonical.Decision `json:"decision"`
	RobotsMeta string             `json:"robots_meta"`
}

// validateResponse is the payload for /api/v1/validate.
type validateResponse struct {
	IsValid      bool                `json:"is_valid"`
	Tokens       []string            `json:"tokens"`
	Conflicts    []conflictPayload   `json:"conflicts,omitempty"`
	Suggestions  []suggestionPayload `json:"suggestions,omitempty"`
	FallbackPath string              `json:"fallback_path"`
}

type conflictPayload struct {
	Category string   `json:"category"`
	Tokens   []string `json:"tokens"`
}

type suggestionPayload struct {
	Input      string   `json:"input"`
	Candidates []string `json:"candidates"`
}

// handleResolve resolves a full page path to its canonical decision.
func handleResolve(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Query("path")
		if path == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing path parameter"})

			return
		}

		slug, segment, ok := facets.ParsePath(path)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "path is not a faceted catalog path"})

			return
		}

		city, found := deps.Registry.City(slug)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown city"})

			return
		}

		result := facets.Validate(city, segment)
		recordValidation(deps, result)

		if !result.IsValid {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":      "invalid filter segment",
				"validation": toValidatePayload(result),
			})

			return
		}

		season, ok := seasonFromQuery(c)
		if !ok {
			return
		}

		decision, err := deps.Resolver.Resolve(
			c.Request.Context(), city.Slug, result.Normalized, nil, season)
		if err != nil {
			deps.Logger.Error("Resolution failed", "path", path, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "resolution failed"})

			return
		}

		recordDecision(deps, decision)

		c.JSON(http.StatusOK, resolveResponse{
			Path:       path,
			Decision:   decision,
			RobotsMeta: sitemap.RobotsMeta(decision),
		})
	}
}

// handleValidate validates a filter segment for a city without resolving it.
func handleValidate(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		city, ok := cityFromQuery(c, deps)
		if !ok {
			return
		}

		result := facets.Validate(city, c.Query("filters"))
		recordValidation(deps, result)

		c.JSON(http.StatusOK, toValidatePayload(result))
	}
}

// handleMeta renders the SEO metadata for a city and filter segment. Plan
// count and lowest rate are preview inputs supplied by the caller; the
// rendering layer passes live figures from the pricing service.
func handleMeta(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		city, ok := cityFromQuery(c, deps)
		if !ok {
			return
		}

		result := facets.Validate(city, c.Query("filters"))
		if !result.IsValid {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":      "invalid filter segment",
				"validation": toValidatePayload(result),
			})

			return
		}

		count, err := strconv.Atoi(c.DefaultQuery("count", "0"))
		if err != nil || count < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "count must be a non-negative integer"})

			return
		}

		meta := deps.Generator.Generate(city, result.Normalized, seometa.Params{
			PlanCount:     count,
			LowestRate:    c.DefaultQuery("rate", "0.0"),
			TerritoryName: city.TerritoryName(),
		})

		c.JSON(http.StatusOK, meta)
	}
}

// handlePlanSummary runs a full planning pass and returns the plan header
// without the page list.
func handlePlanSummary(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		plan, _, err := deps.Planner.Plan(c.Request.Context())
		if err != nil {
			deps.Logger.Error("Planning failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "planning failed"})

			return
		}

		c.JSON(http.StatusOK, plan)
	}
}

// seasonFromQuery parses the optional season parameter, writing the error
// response itself when the value is unknown. Resolution defaults to no
// season so request-time answers agree with build and sitemap artifacts;
// callers opt into the seasonal rule explicitly, "current" meaning the
// season of the server clock.
func seasonFromQuery(c *gin.Context) (canonical.Season, bool) {
	switch raw := c.Query("season"); raw {
	case "":
		return canonical.SeasonNone, true
	case "current":
		return canonical.SeasonFor(time.Now()), true
	case string(canonical.SeasonSummer):
		return canonical.SeasonSummer, true
	case string(canonical.SeasonWinter):
		return canonical.SeasonWinter, true
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown season " + strconv.Quote(raw)})

		return canonical.SeasonNone, false
	}
}

// cityFromQuery looks up the city named by the request, writing the error
// response itself when the lookup fails.
func cityFromQuery(c *gin.Context, deps Deps) (registry.City, bool) {
	slug := c.Query("city")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing city parameter"})

		return registry.City{}, false
	}

	city, found := deps.Registry.City(slug)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown city"})

		return registry.City{}, false
	}

	return city, true
}

// toValidatePayload converts a validation result into its response shape.
func toValidatePayload(result facets.Result) validateResponse {
	payload := validateResponse{
		IsValid:      result.IsValid,
		Tokens:       result.Tokens(),
		FallbackPath: result.FallbackPath,
	}

	for _, conflict := range result.Conflicts {
		payload.Conflicts = append(payload.Conflicts, conflictPayload{
			Category: string(conflict.Category),
			Tokens:   conflict.Tokens,
		})
	}

	for _, suggestion := range result.Suggestions {
		payload.Suggestions = append(payload.Suggestions, suggestionPayload{
			Input:      suggestion.Input,
			Candidates: suggestion.Candidates,
		})
	}

	return payload
}

// recordValidation updates validation metrics when metrics are wired.
func recordValidation(deps Deps, result facets.Result) {
	if deps.Metrics != nil {
		deps.Metrics.RecordValidation(result.IsValid, result.HasConflicts())
	}
}

// recordDecision updates decision metrics when metrics are wired.
func recordDecision(deps Deps, decision canonical.Decision) {
	if deps.Metrics != nil {
		deps.Metrics.RecordDecision(string(decision.Reason), decision.ShouldIndex)
	}
}
