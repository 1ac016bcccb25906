// Package goquery extracts criteria content from upstream HTML pages
// using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/accessibleweb/a11y"
)

// sectionHeadings maps normalized h2 heading text to section names.
var sectionHeadings = map[string]string{
	"gherkin":                 a11y.SectionGherkin,
	"condensed":               a11y.SectionCondensed,
	"general notes":           a11y.SectionGeneralNotes,
	"developer notes":         a11y.SectionDeveloperNotes,
	"android developer notes": a11y.SectionAndroidDeveloperNotes,
	"ios developer notes":     a11y.SectionIOSDeveloperNotes,
}

// Extractor pulls criteria content out of upstream pages. It recognizes
// the page structure by its h1 title, breadcrumb navigation, and h2
// section headings.
type Extractor struct{}

var _ a11y.PageExtractor = (*Extractor)(nil)

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses a criteria page and returns its content.
func (e *Extractor) Extract(html string) (*a11y.PageContent, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, a11y.Errorf(a11y.EINVALID, "failed to parse HTML: %v", err)
	}

	label := strings.TrimSpace(doc.Find("main h1").First().Text())
	if label == "" {
		label = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if label == "" {
		return nil, a11y.Errorf(a11y.EINVALID, "page has no title heading")
	}

	content := &a11y.PageContent{
		Label:         label,
		CategoryLabel: extractCategory(doc),
		Sections:      make(map[string]string),
	}

	doc.Find("main h2, article h2, body h2").Each(func(_ int, heading *goquery.Selection) {
		name, ok := sectionHeadings[normalizeHeading(heading.Text())]
		if !ok {
			return
		}
		if _, exists := content.Sections[name]; exists {
			return
		}
		fragment := sectionFragment(heading)
		if fragment != "" {
			content.Sections[name] = fragment
		}
	})

	if videos := extractVideos(doc); videos != nil {
		content.Videos = videos
	}

	if len(content.Sections) == 0 && content.Videos == nil {
		return nil, a11y.Errorf(a11y.EINVALID, "page has no criteria sections")
	}

	return content, nil
}

// extractCategory reads the category label from the breadcrumb trail.
// The last crumb is the page itself, so the category is the one before it.
func extractCategory(doc *goquery.Document) string {
	crumbs := doc.Find("nav[aria-label='Breadcrumb'] li, nav.breadcrumb li")
	if crumbs.Length() < 2 {
		return ""
	}
	return strings.TrimSpace(crumbs.Eq(crumbs.Length() - 2).Text())
}

// sectionFragment collects the HTML of all siblings between a heading and
// the next h2.
func sectionFragment(heading *goquery.Selection) string {
	var parts []string
	for sel := heading.Next(); sel.Length() > 0; sel = sel.Next() {
		if goquery.NodeName(sel) == "h2" {
			break
		}
		fragment, err := goquery.OuterHtml(sel)
		if err != nil {
			continue
		}
		parts = append(parts, fragment)
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// extractVideos reads embedded video metadata from the page's JSON data
// island, passing the raw JSON through untouched.
func extractVideos(doc *goquery.Document) []byte {
	data := strings.TrimSpace(doc.Find("script[data-videos]").First().Text())
	if data == "" || data == "null" {
		return nil
	}
	return []byte(data)
}

func normalizeHeading(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
