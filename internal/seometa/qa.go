package seometa

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Length bounds for rendered text fields. Titles and descriptions outside
// these ranges get truncated or padded by search engines, which defeats the
// point of writing them.
const (
	minTitleLen       = 20
	maxTitleLen       = 70
	minDescriptionLen = 50
	maxDescriptionLen = 165
)

// Audit checks a rendered Meta for the problems that matter to search
// engines and returns one message per finding. An empty slice means the
// page passed.
func Audit(meta Meta) []string {
	var findings []string

	if n := len(meta.Title); n < minTitleLen || n > maxTitleLen {
		findings = append(findings, fmt.Sprintf("title length %d outside [%d, %d]", n, minTitleLen, maxTitleLen))
	}

	if n := len(meta.Description); n < minDescriptionLen || n > maxDescriptionLen {
		findings = append(findings,
			fmt.Sprintf("description length %d outside [%d, %d]", n, minDescriptionLen, maxDescriptionLen))
	}

	if strings.TrimSpace(meta.H1) == "" {
		findings = append(findings, "empty h1")
	}

	findings = append(findings, auditFragment("body", meta.BodyHTML)...)
	findings = append(findings, auditFragment("footer", meta.FooterHTML)...)

	if !strings.HasPrefix(meta.OGImageURL, "https://") {
		findings = append(findings, "og image url is not https")
	}

	if unresolved := unresolvedPlaceholders(meta); len(unresolved) > 0 {
		findings = append(findings, fmt.Sprintf("unresolved placeholders: %s", strings.Join(unresolved, ", ")))
	}

	return findings
}

// auditFragment parses an HTML fragment and checks it carries visible text.
func auditFragment(name, fragment string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return []string{fmt.Sprintf("%s html unparseable: %v", name, err)}
	}

	if strings.TrimSpace(doc.Text()) == "" {
		return []string{fmt.Sprintf("%s has no visible text", name)}
	}

	if name == "body" && doc.Find("p").Length() == 0 {
		return []string{"body has no paragraph content"}
	}

	return nil
}

// unresolvedPlaceholders reports any {token} left behind after substitution.
func unresolvedPlaceholders(meta Meta) []string {
	var found []string

	for _, field := range []string{meta.Title, meta.Description, meta.H1, meta.BodyHTML, meta.FooterHTML} {
		start := strings.IndexByte(field, '{')
		if start < 0 {
			continue
		}

		end := strings.IndexByte(field[start:], '}')
		if end < 0 {
			continue
		}

		found = append(found, field[start:start+end+1])
	}

	return found
}
