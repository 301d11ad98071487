package sitemap

import (
	"fmt"
	"strings"

	"github.com/ezhulati/choose-my-power-sub003/internal/canonical"
)

// Robots meta values. Follow is always granted; only indexing is governed,
// so link equity keeps flowing through noindexed pages.
const (
	robotsIndex   = "index,follow"
	robotsNoIndex = "noindex,follow"
)

// disallowedPatterns are the crawl exclusions emitted into robots.txt. The
// wildcard pattern blocks every query-string URL: faceted state lives in the
// path, so any querystring variant is a duplicate.
var disallowedPatterns = []string{
	"/api/",
	"/admin/",
	"/*?*",
}

// RobotsMeta returns the meta robots value for a page given its canonical
// decision.
func RobotsMeta(decision canonical.Decision) string {
	if decision.ShouldIndex {
		return robotsIndex
	}

	return robotsNoIndex
}

// RobotsTxt renders the robots.txt body for a site. baseURL is the origin
// without a trailing slash.
func RobotsTxt(baseURL string) string {
	var b strings.Builder

	b.WriteString("User-agent: *\n")
	for _, pattern := range disallowedPatterns {
		fmt.Fprintf(&b, "Disallow: %s\n", pattern)
	}

	fmt.Fprintf(&b, "\nSitemap: %s%s\n", strings.TrimSuffix(baseURL, "/"), IndexPath())

	return b.String()
}
