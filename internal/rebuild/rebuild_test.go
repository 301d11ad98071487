package rebuild_test

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezhulati/choose-my-power-sub003/internal/canonical"
	"github.com/ezhulati/choose-my-power-sub003/internal/logger"
	"github.com/ezhulati/choose-my-power-sub003/internal/market"
	"github.com/ezhulati/choose-my-power-sub003/internal/planner"
	"github.com/ezhulati/choose-my-power-sub003/internal/rebuild"
	"github.com/ezhulati/choose-my-power-sub003/internal/registry"
	"github.com/ezhulati/choose-my-power-sub003/internal/sitemap"
)

const baseURL = "https://choosemypower.example"

func newPipeline(t *testing.T, outDir string, config planner.Config, provider market.Provider) *rebuild.Pipeline {
	t.Helper()

	reg, err := registry.New([]registry.City{
		{Slug: "dallas", Name: "Dallas", Tier: 1, PriorityWeight: 1.0, Population: 1304379, TerritoryID: "oncor"},
		{Slug: "waco", Name: "Waco", Tier: 2, PriorityWeight: 0.6, Population: 138486, TerritoryID: "oncor"},
	})
	require.NoError(t, err)

	log := logger.NewNoOp()
	resolver := canonical.NewResolver(reg, nil, log)

	return rebuild.NewPipeline(
		reg,
		resolver,
		planner.New(reg, resolver, provider, config, log),
		provider,
		sitemap.NewEmitter(baseURL, log, nil),
		rebuild.NewArtifacts(outDir),
		baseURL,
		log,
		nil,
	)
}

func TestPipelineWritesArtifacts(t *testing.T) {
	t.Parallel()

	outDir := t.TempDir()
	pipeline := newPipeline(t, outDir, planner.DefaultConfig(), nil)

	plan, err := pipeline.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, plan)
	assert.Positive(t, plan.TotalPages)

	// plan.json carries the header and the full path list.
	raw, err := os.ReadFile(filepath.Join(outDir, "plan.json"))
	require.NoError(t, err)

	var artifact struct {
		Plan struct {
			RunID      string `json:"run_id"`
			TotalPages int    `json:"total_pages"`
		} `json:"plan"`
		Paths []struct {
			Path     string  `json:"path"`
			Tier     int     `json:"tier"`
			Priority float64 `json:"priority"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &artifact))

	assert.Equal(t, plan.RunID, artifact.Plan.RunID)
	assert.Len(t, artifact.Paths, plan.TotalPages)

	// Sitemap index, category files, and robots.txt all land on disk.
	assert.FileExists(t, filepath.Join(outDir, "sitemap.xml"))
	for _, category := range sitemap.Categories() {
		assert.FileExists(t, filepath.Join(outDir, "sitemaps", "sitemap-"+string(category)+".xml"))
	}

	robots, err := os.ReadFile(filepath.Join(outDir, "robots.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(robots), "Sitemap: "+baseURL+"/sitemap.xml")
}

func TestPipelineSitemapMatchesPlan(t *testing.T) {
	t.Parallel()

	outDir := t.TempDir()
	pipeline := newPipeline(t, outDir, planner.DefaultConfig(), nil)

	plan, err := pipeline.Run(context.Background())
	require.NoError(t, err)

	// Every planned hub appears in the cities sitemap.
	cities, err := os.ReadFile(filepath.Join(outDir, "sitemaps", "sitemap-cities.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(cities), baseURL+"/texas/dallas/")
	assert.Contains(t, string(cities), baseURL+"/texas/waco/")

	assert.False(t, plan.Fallback)
}

func TestPipelineSitemapUsesPlannerMarketData(t *testing.T) {
	t.Parallel()

	// Volume under the high-value floor demotes dallas fixed-rate to the
	// default rule. The sitemap must describe the same demoted decision the
	// plan recorded, not an ungated re-resolution.
	provider := market.NewStatic(map[string]market.Data{
		"dallas|fixed-rate": {SearchVolume: 300, Competition: 0.4},
	})

	outDir := t.TempDir()
	pipeline := newPipeline(t, outDir, planner.DefaultConfig(), provider)

	plan, err := pipeline.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, plan)

	raw, err := os.ReadFile(filepath.Join(outDir, "plan.json"))
	require.NoError(t, err)

	var artifact struct {
		Paths []struct {
			Path     string  `json:"path"`
			Priority float64 `json:"priority"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &artifact))

	planned := 0.0
	for _, p := range artifact.Paths {
		if p.Path == "/texas/dallas/fixed-rate/" {
			planned = p.Priority
		}
	}
	require.InDelta(t, 0.6, planned, 0.0001)

	filtersXML, err := os.ReadFile(filepath.Join(outDir, "sitemaps", "sitemap-filters.xml"))
	require.NoError(t, err)

	var urlset struct {
		URLs []struct {
			Loc        string `xml:"loc"`
			ChangeFreq string `xml:"changefreq"`
			Priority   string `xml:"priority"`
		} `xml:"url"`
	}
	require.NoError(t, xml.Unmarshal(filtersXML, &urlset))

	found := false
	for _, u := range urlset.URLs {
		if u.Loc != baseURL+"/texas/dallas/fixed-rate/" {
			continue
		}

		found = true
		assert.Equal(t, "0.6", u.Priority)
		assert.Equal(t, "monthly", u.ChangeFreq)
	}
	assert.True(t, found, "demoted page missing from filters sitemap")
}

func TestSchedulerSkipsSmallPlans(t *testing.T) {
	t.Parallel()

	config := planner.DefaultConfig()
	// Threshold far above anything two cities can produce.
	config.ISRThreshold = 100000

	pipeline := newPipeline(t, t.TempDir(), config, nil)
	scheduler := rebuild.NewScheduler(pipeline, "*/30 * * * *", logger.NewNoOp())

	require.NoError(t, scheduler.Start(context.Background()))

	// Stop on a never-started schedule is a no-op, not a panic.
	scheduler.Stop()
}

func TestSchedulerStartsAndStops(t *testing.T) {
	t.Parallel()

	config := planner.DefaultConfig()
	// Threshold of 1 forces incremental regeneration.
	config.ISRThreshold = 1

	pipeline := newPipeline(t, t.TempDir(), config, nil)
	scheduler := rebuild.NewScheduler(pipeline, "*/30 * * * *", logger.NewNoOp())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, scheduler.Start(ctx))
	scheduler.Stop()

	// Stop is idempotent.
	scheduler.Stop()
}

func TestSchedulerRejectsBadSchedule(t *testing.T) {
	t.Parallel()

	pipeline := newPipeline(t, t.TempDir(), planner.DefaultConfig(), nil)
	scheduler := rebuild.NewScheduler(pipeline, "not-a-schedule", logger.NewNoOp())

	assert.Error(t, scheduler.Start(context.Background()))
}
