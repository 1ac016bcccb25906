// Package htmltomarkdown converts upstream HTML fragments into the
// markdown stored in the criteria catalog.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/accessibleweb/a11y"
)

var _ a11y.Converter = (*Converter)(nil)

var excessBlankLines = regexp.MustCompile(`\n{3,}`)

// Converter wraps html-to-markdown to convert section fragments to
// Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms an HTML fragment into Markdown. Section fragments
// are assembled from multiple sibling elements, so runs of blank lines
// are collapsed and the result is trimmed.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", a11y.Errorf(a11y.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	result = excessBlankLines.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result), nil
}
