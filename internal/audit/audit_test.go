package audit_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezhulati/choose-my-power-sub003/internal/audit"
	"github.com/ezhulati/choose-my-power-sub003/internal/canonical"
	"github.com/ezhulati/choose-my-power-sub003/internal/logger"
	"github.com/ezhulati/choose-my-power-sub003/internal/market"
	"github.com/ezhulati/choose-my-power-sub003/internal/planner"
	"github.com/ezhulati/choose-my-power-sub003/internal/registry"
)

// pageHTML renders a minimal page head with the given canonical and robots
// values, mimicking what the rendering layer serves.
func pageHTML(canonicalURL, robots string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html><head>
<link rel="canonical" href="%s">
<meta name="robots" content="%s">
<title>test page</title>
</head><body><p>plans</p></body></html>`, canonicalURL, robots)
}

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	reg, err := registry.New([]registry.City{
		{Slug: "dallas", Name: "Dallas", Tier: 1, PriorityWeight: 1.0, Population: 1304379, TerritoryID: "oncor"},
	})
	require.NoError(t, err)

	return reg
}

// newSite serves the given path -> HTML map over httptest.
func newSite(t *testing.T, pages map[string]string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)

			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)

	return server
}

func TestAuditCleanDeployment(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	resolver := canonical.NewResolver(reg, nil, logger.NewNoOp())

	// The handler reads from the map on each request, so pages can be filled
	// in after the server URL is known.
	pages := make(map[string]string)
	server := newSite(t, pages)

	// Every page serves exactly what the engine would decide.
	pages["/texas/dallas/"] = pageHTML(server.URL+"/texas/dallas/", "index,follow")
	pages["/texas/dallas/12-month/"] = pageHTML(server.URL+"/texas/dallas/12-month/", "index,follow")
	pages["/texas/dallas/36-month/"] = pageHTML(server.URL+"/texas/dallas/", "noindex,follow")

	auditor := audit.New(server.URL, reg, resolver, nil, logger.NewNoOp())

	report, err := auditor.Audit(context.Background(),
		[]string{"/texas/dallas/", "/texas/dallas/12-month/", "/texas/dallas/36-month/"})
	require.NoError(t, err)

	assert.Equal(t, 3, report.Checked)
	assert.Empty(t, report.Drifts)
	assert.Empty(t, report.Failed)
	assert.True(t, report.Clean())
	assert.NotEmpty(t, report.RunID)
}

func TestAuditDetectsCanonicalDrift(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	resolver := canonical.NewResolver(reg, nil, logger.NewNoOp())

	pages := make(map[string]string)
	server := newSite(t, pages)

	// The deployed 36-month page self-references instead of pointing at the
	// hub, and indexes itself.
	pages["/texas/dallas/36-month/"] = pageHTML(server.URL+"/texas/dallas/36-month/", "index,follow")

	auditor := audit.New(server.URL, reg, resolver, nil, logger.NewNoOp())

	report, err := auditor.Audit(context.Background(), []string{"/texas/dallas/36-month/"})
	require.NoError(t, err)

	require.Len(t, report.Drifts, 2)
	assert.False(t, report.Clean())

	fields := map[string]audit.Drift{}
	for _, drift := range report.Drifts {
		fields[drift.Field] = drift
	}

	canonicalDrift := fields["canonical"]
	assert.Equal(t, server.URL+"/texas/dallas/", canonicalDrift.Want)
	assert.Equal(t, server.URL+"/texas/dallas/36-month/", canonicalDrift.Got)

	robotsDrift := fields["robots"]
	assert.Equal(t, "noindex,follow", robotsDrift.Want)
	assert.Equal(t, "index,follow", robotsDrift.Got)
}

func TestAuditExpectationsUseMarketData(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	resolver := canonical.NewResolver(reg, nil, logger.NewNoOp())

	// The build demoted dallas fixed-rate to the hub on starved search
	// volume; a page deployed that way must audit clean, not as drift
	// against an ungated resolution.
	provider := market.NewStatic(map[string]market.Data{
		"dallas|fixed-rate": {SearchVolume: 50, Competition: 0.3},
	})

	pages := make(map[string]string)
	server := newSite(t, pages)
	pages["/texas/dallas/fixed-rate/"] = pageHTML(server.URL+"/texas/dallas/", "noindex,follow")

	auditor := audit.New(server.URL, reg, resolver, provider, logger.NewNoOp())

	report, err := auditor.Audit(context.Background(), []string{"/texas/dallas/fixed-rate/"})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Checked)
	assert.Empty(t, report.Drifts)
	assert.True(t, report.Clean())
}

func TestAuditRecordsFetchFailures(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	resolver := canonical.NewResolver(reg, nil, logger.NewNoOp())

	server := newSite(t, map[string]string{})
	auditor := audit.New(server.URL, reg, resolver, nil, logger.NewNoOp())

	report, err := auditor.Audit(context.Background(), []string{"/texas/dallas/"})
	require.NoError(t, err)

	assert.Zero(t, report.Checked)
	assert.Contains(t, report.Failed, "/texas/dallas/")
	assert.False(t, report.Clean())
}

func TestSampleFromPlan(t *testing.T) {
	t.Parallel()

	pages := []planner.PlannedPage{
		{Path: "/texas/dallas/"},
		{Path: "/texas/dallas/12-month/"},
		{Path: "/texas/houston/"},
	}

	assert.Equal(t,
		[]string{"/texas/dallas/", "/texas/dallas/12-month/"},
		audit.SampleFromPlan(pages, 2))

	// Zero or oversized limits return everything.
	assert.Len(t, audit.SampleFromPlan(pages, 0), 3)
	assert.Len(t, audit.SampleFromPlan(pages, 10), 3)
}
