// Package sitemap emits the sitemap index, per-category sitemap files, and
// robots directives for the faceted catalog. It is a pure consumer of
// canonical decisions: change frequency and priority are copied from each
// decision verbatim, and a URL appears in a sitemap only when its decision
// points back at the URL itself. Non-canonical combinations are omitted
// entirely, never listed with noindex.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ezhulati/choose-my-power-sub003/internal/canonical"
	"github.com/ezhulati/choose-my-power-sub003/internal/facets"
	"github.com/ezhulati/choose-my-power-sub003/internal/logger"
	"github.com/ezhulati/choose-my-power-sub003/internal/metrics"
	"github.com/ezhulati/choose-my-power-sub003/internal/registry"
)

// dateOnlyFormat is the date-only layout for sitemap lastmod values.
const dateOnlyFormat = "2006-01-02"

// sitemapXMLNS is the sitemap protocol namespace.
const sitemapXMLNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Category names one child sitemap in the index.
type Category string

// Sitemap categories. Main, providers, and guides hold static pages; cities
// and filters hold catalog pages gated by canonical decisions.
const (
	CategoryMain      Category = "main"
	CategoryCities    Category = "cities"
	CategoryFilters   Category = "filters"
	CategoryProviders Category = "providers"
	CategoryGuides    Category = "guides"
)

// Categories returns every category in emission order.
func Categories() []Category {
	return []Category{CategoryMain, CategoryCities, CategoryFilters, CategoryProviders, CategoryGuides}
}

// Entry is a single sitemap URL before XML encoding.
type Entry struct {
	Loc        string
	LastMod    time.Time
	ChangeFreq canonical.ChangeFreq
	Priority   float64
}

// Output is the full sitemap emission: the index document plus one XML
// document per category.
type Output struct {
	Index      []byte
	Categories map[Category][]byte
}

// xmlURLSet is the root element of one sitemap file.
type xmlURLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []xmlURL `xml:"url"`
}

// xmlURL is a single <url> entry inside a <urlset>.
type xmlURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// xmlSitemapIndex is the root element of the sitemap index.
type xmlSitemapIndex struct {
	XMLName  xml.Name     `xml:"sitemapindex"`
	Xmlns    string       `xml:"xmlns,attr"`
	Sitemaps []xmlSitemap `xml:"sitemap"`
}

// xmlSitemap is a single <sitemap> entry inside a <sitemapindex>.
type xmlSitemap struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

// Emitter builds sitemap documents for one site.
type Emitter struct {
	baseURL string
	now     func() time.Time
	logger  logger.Interface
	metrics *metrics.Metrics
}

// NewEmitter creates an emitter. baseURL is the site origin without a trailing
// slash, e.g. "https://choosemypower.example". metrics may be nil.
func NewEmitter(baseURL string, log logger.Interface, m *metrics.Metrics) *Emitter {
	return &Emitter{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		now:     time.Now,
		logger:  log,
		metrics: m,
	}
}

// Emit builds the sitemap index and all category sitemaps from the full
// decision set. decisions is keyed by page path; only self-canonical entries
// are emitted, and each entry's change frequency and priority come straight
// from its decision.
func (e *Emitter) Emit(cities []registry.City, decisions map[string]canonical.Decision) (*Output, error) {
	entries := map[Category][]Entry{
		CategoryMain:      e.staticEntries(CategoryMain),
		CategoryProviders: e.staticEntries(CategoryProviders),
		CategoryGuides:    e.staticEntries(CategoryGuides),
	}

	hubs, filters := e.catalogEntries(decisions)
	entries[CategoryCities] = hubs
	entries[CategoryFilters] = filters

	e.checkHubCoverage(cities, decisions)

	output := &Output{Categories: make(map[Category][]byte, len(entries))}

	for _, category := range Categories() {
		doc, err := e.encodeURLSet(entries[category])
		if err != nil {
			return nil, fmt.Errorf("encode %s sitemap: %w", category, err)
		}

		output.Categories[category] = doc

		if e.metrics != nil {
			e.metrics.RecordSitemapEntries(string(category), len(entries[category]))
		}
	}

	index, err := e.encodeIndex()
	if err != nil {
		return nil, fmt.Errorf("encode sitemap index: %w", err)
	}

	output.Index = index
	e.logger.Info("Emitted sitemaps",
		"cities", len(entries[CategoryCities]),
		"filters", len(entries[CategoryFilters]),
		"static", len(entries[CategoryMain])+len(entries[CategoryProviders])+len(entries[CategoryGuides]))

	return output, nil
}

// IndexPath is the site-relative path of the sitemap index.
func IndexPath() string {
	return "/sitemap.xml"
}

// CategoryPath returns the site-relative path of one category sitemap.
func CategoryPath(category Category) string {
	return fmt.Sprintf("/sitemaps/sitemap-%s.xml", category)
}

// catalogEntries splits the self-canonical decisions into hub and filter
// entries, sorted by path for stable output.
func (e *Emitter) catalogEntries(decisions map[string]canonical.Decision) (hubs, filters []Entry) {
	paths := make([]string, 0, len(decisions))
	for path := range decisions {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	for _, path := range paths {
		decision := decisions[path]
		if !decision.SelfCanonical(path) {
			continue
		}

		entry := Entry{
			Loc:        e.baseURL + path,
			LastMod:    e.now(),
			ChangeFreq: decision.ChangeFreq,
			Priority:   decision.Priority,
		}

		_, segment, ok := facets.ParsePath(path)
		if !ok {
			e.logger.Warn("Skipping unparseable decision path", "path", path)

			continue
		}

		if segment == "" {
			hubs = append(hubs, entry)
		} else {
			filters = append(filters, entry)
		}
	}

	return hubs, filters
}

// checkHubCoverage warns when a registry city has no decision for its hub.
// Hubs are always self-canonical, so a gap here means the caller resolved an
// incomplete set.
func (e *Emitter) checkHubCoverage(cities []registry.City, decisions map[string]canonical.Decision) {
	for _, city := range cities {
		if _, ok := decisions[city.HubPath()]; !ok {
			e.logger.Warn("City hub missing from decision set", "city", city.Slug)
		}
	}
}

// staticEntries returns the compiled static pages for one category.
func (e *Emitter) staticEntries(category Category) []Entry {
	var entries []Entry

	for _, page := range staticPages {
		if page.category != category {
			continue
		}

		entries = append(entries, Entry{
			Loc:        e.baseURL + page.path,
			LastMod:    e.now(),
			ChangeFreq: page.changeFreq,
			Priority:   page.priority,
		})
	}

	return entries
}

// encodeURLSet renders one sitemap file.
func (e *Emitter) encodeURLSet(entries []Entry) ([]byte, error) {
	urlset := xmlURLSet{Xmlns: sitemapXMLNS, URLs: make([]xmlURL, 0, len(entries))}

	for _, entry := range entries {
		urlset.URLs = append(urlset.URLs, xmlURL{
			Loc:        entry.Loc,
			LastMod:    entry.LastMod.Format(dateOnlyFormat),
			ChangeFreq: string(entry.ChangeFreq),
			Priority:   formatPriority(entry.Priority),
		})
	}

	return marshalDocument(urlset)
}

// encodeIndex renders the sitemap index referencing every category file.
func (e *Emitter) encodeIndex() ([]byte, error) {
	today := e.now().Format(dateOnlyFormat)

	index := xmlSitemapIndex{Xmlns: sitemapXMLNS}
	for _, category := range Categories() {
		index.Sitemaps = append(index.Sitemaps, xmlSitemap{
			Loc:     e.baseURL + CategoryPath(category),
			LastMod: today,
		})
	}

	return marshalDocument(index)
}

// marshalDocument XML-encodes a root element with the standard header.
func marshalDocument(root any) ([]byte, error) {
	body, err := xml.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal xml: %w", err)
	}

	return append([]byte(xml.Header), body...), nil
}

// formatPriority renders a sitemap priority with the shortest decimal form,
// e.g. 0.8 not 0.80000.
func formatPriority(priority float64) string {
	return strconv.FormatFloat(priority, 'f', -1, 64)
}
