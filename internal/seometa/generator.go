// Package seometa renders the SEO text fields for faceted catalog pages.
// Each city is pinned to one of five template variations by a hash of its
// slug, so phrasing differs across the catalog (avoiding near-duplicate
// content) while any given city renders identically on every build. The
// package knows nothing about index directives; publishing decisions belong
// to the caller.
package seometa

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ezhulati/choose-my-power-sub003/internal/registry"
)

// VariantCount is the number of template variations per bank.
const VariantCount = 5

// Meta is the rendered SEO text for one page.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	H1          string `json:"h1"`
	BodyHTML    string `json:"body_html"`
	FooterHTML  string `json:"footer_html"`
	OGImageURL  string `json:"og_image_url"`
}

// Params carries the external figures interpolated into templates. LowestRate
// arrives pre-formatted from the pricing service and is inserted verbatim.
type Params struct {
	PlanCount     int
	LowestRate    string
	TerritoryName string
}

// Generator renders page metadata. The clock only feeds the copyright year in
// footers; everything else is a pure function of its inputs.
type Generator struct {
	ogImageBase string
	now         func() time.Time
}

// New creates a generator. ogImageBase is the CDN prefix for social preview
// images, e.g. "https://cdn.choosemypower.example/og".
func New(ogImageBase string) *Generator {
	return &Generator{
		ogImageBase: strings.TrimSuffix(ogImageBase, "/"),
		now:         time.Now,
	}
}

// VariationIndex returns the template variation pinned to a city slug: the
// first four bytes of SHA-256(slug), big-endian, modulo the variant count.
func VariationIndex(slug string) int {
	sum := sha256.Sum256([]byte(slug))

	return int(binary.BigEndian.Uint32(sum[:4]) % VariantCount)
}

// Generate renders the SEO fields for a city and normalized filter set.
func (g *Generator) Generate(city registry.City, filters []registry.Filter, params Params) Meta {
	variant := VariationIndex(city.Slug)
	bank := bankFor(filters)
	tmpl := bank[variant]

	replacer := g.replacerFor(city, filters, params)

	return Meta{
		Title:       replacer.Replace(tmpl.title),
		Description: replacer.Replace(tmpl.description),
		H1:          replacer.Replace(tmpl.h1),
		BodyHTML:    replacer.Replace(tmpl.body),
		FooterHTML:  replacer.Replace(tmpl.footer),
		OGImageURL:  g.ogImageURL(city, filters),
	}
}

// replacerFor builds the placeholder substitution set for one render.
func (g *Generator) replacerFor(
	city registry.City,
	filters []registry.Filter,
	params Params,
) *strings.Replacer {
	return strings.NewReplacer(
		"{city}", city.Name,
		"{count}", strconv.Itoa(params.PlanCount),
		"{rate}", params.LowestRate,
		"{territory}", params.TerritoryName,
		"{filter}", firstLabel(filters),
		"{filters}", joinLabels(filters),
		"{year}", strconv.Itoa(g.now().Year()),
	)
}

// ogImageURL builds the social preview image URL for a page.
func (g *Generator) ogImageURL(city registry.City, filters []registry.Filter) string {
	if len(filters) == 0 {
		return fmt.Sprintf("%s/%s.png", g.ogImageBase, city.Slug)
	}

	tokens := make([]string, 0, len(filters))
	for _, f := range filters {
		tokens = append(tokens, f.Token)
	}

	return fmt.Sprintf("%s/%s-%s.png", g.ogImageBase, city.Slug, strings.Join(tokens, "-"))
}

// bankFor picks the template bank matching the filter-set shape: hub, a
// filter-specific bank for known single filters, the generic single-filter
// bank, or the multi-filter bank.
func bankFor(filters []registry.Filter) templateBank {
	switch len(filters) {
	case 0:
		return hubBank
	case 1:
		if bank, ok := tokenBanks[filters[0].Token]; ok {
			return bank
		}

		return singleBank
	default:
		return multiBank
	}
}

// firstLabel returns the first filter's label, or "" for the hub.
func firstLabel(filters []registry.Filter) string {
	if len(filters) == 0 {
		return ""
	}

	return filters[0].Label
}

// joinLabels joins filter labels into human-readable copy: "A", "A and B",
// "A, B and C".
func joinLabels(filters []registry.Filter) string {
	labels := make([]string, 0, len(filters))
	for _, f := range filters {
		labels = append(labels, f.Label)
	}

	switch len(labels) {
	case 0:
		return ""
	case 1:
		return labels[0]
	case 2:
		return labels[0] + " and " + labels[1]
	default:
		return strings.Join(labels[:len(labels)-1], ", ") + " and " + labels[len(labels)-1]
	}
}
