package sitemap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temoto/robotstxt"

	"github.com/ezhulati/choose-my-power-sub003/internal/canonical"
	"github.com/ezhulati/choose-my-power-sub003/internal/sitemap"
)

func TestRobotsMeta(t *testing.T) {
	t.Parallel()

	indexed := canonical.Decision{ShouldIndex: true}
	assert.Equal(t, "index,follow", sitemap.RobotsMeta(indexed))

	suppressed := canonical.Decision{ShouldIndex: false}
	assert.Equal(t, "noindex,follow", sitemap.RobotsMeta(suppressed))
}

func TestRobotsTxtParsesAndBlocks(t *testing.T) {
	t.Parallel()

	body := sitemap.RobotsTxt(baseURL)

	// Round-trip through a real robots.txt parser: the emitted file must be
	// valid and enforce the crawl exclusions as written.
	robots, err := robotstxt.FromString(body)
	require.NoError(t, err)

	group := robots.FindGroup("Googlebot")
	require.NotNil(t, group)

	assert.False(t, group.Test("/api/v1/resolve"))
	assert.False(t, group.Test("/admin/login"))
	assert.False(t, group.Test("/texas/dallas/?sort=price"))

	assert.True(t, group.Test("/texas/dallas/"))
	assert.True(t, group.Test("/texas/dallas/12-month/"))
	assert.True(t, group.Test("/guides/how-to-switch/"))

	assert.Contains(t, robots.Sitemaps, baseURL+"/sitemap.xml")
}

func TestRobotsTxtTrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	body := sitemap.RobotsTxt(baseURL + "/")
	assert.Contains(t, body, "Sitemap: "+baseURL+"/sitemap.xml")
}
