package a11y

import (
	"fmt"
	"regexp"
	"strings"
)

// FormatComponent renders a resolved component as markdown. When
// includeExamples is false, fenced code blocks inside developer-notes
// sections are stripped so the result stays readable in plain contexts.
func FormatComponent(c *ResolvedComponent, includeExamples bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.Label)
	fmt.Fprintf(&b, "Platform: %s | Category: %s\n", c.Platform, c.Category)

	sections := []struct {
		title string
		body  string
	}{
		{"General Notes", c.GeneralNotes},
		{"Acceptance Criteria (Gherkin)", c.Gherkin},
		{"Condensed Criteria", c.Condensed},
		{"Developer Notes", notesBody(c.DeveloperNotes, includeExamples)},
		{"Android Developer Notes", notesBody(c.AndroidDeveloperNotes, includeExamples)},
		{"iOS Developer Notes", notesBody(c.IOSDeveloperNotes, includeExamples)},
	}
	for _, s := range sections {
		if s.body == "" {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n\n%s\n", s.title, s.body)
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func notesBody(body string, includeExamples bool) string {
	if includeExamples {
		return body
	}
	return removeCodeBlocks(body)
}

// removeCodeBlocks strips fenced code blocks from markdown.
func removeCodeBlocks(s string) string {
	codeBlockRe := regexp.MustCompile("(?s)```.*?```")
	return strings.TrimSpace(codeBlockRe.ReplaceAllString(s, ""))
}

// FormatCategories renders a category listing as a markdown table.
func FormatCategories(platform Platform, categories []CategorySummary) string {
	if len(categories) == 0 {
		return fmt.Sprintf("No categories found for platform %q.", platform)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Categories (%s)\n\n", platform)
	b.WriteString("| Name | Label | Components |\n|---|---|---|\n")
	for _, c := range categories {
		fmt.Fprintf(&b, "| %s | %s | %d |\n", c.Name, c.Label, c.ComponentCount)
	}
	return b.String()
}

// FormatComponentList renders a component listing grouped by category.
func FormatComponentList(platform Platform, components []*ResolvedComponent) string {
	if len(components) == 0 {
		return fmt.Sprintf("No components found for platform %q.", platform)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Components (%s)\n", platform)

	var current string
	for _, c := range components {
		if c.CategoryName != current {
			current = c.CategoryName
			fmt.Fprintf(&b, "\n## %s\n\n", c.Category)
		}
		fmt.Fprintf(&b, "- %s (%s)\n", c.Label, c.Name)
	}
	return b.String()
}

// FormatMatches renders ranked search results as markdown.
func FormatMatches(query string, matches []Match) string {
	if len(matches) == 0 {
		return fmt.Sprintf("No components matched %q.", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Search results for %q\n\n", query)
	for i, m := range matches {
		fmt.Fprintf(&b, "%d. **%s** (%s) — category %s, score %d, matched %s\n",
			i+1, m.Label, m.Name, m.Category, m.Score, strings.Join(m.MatchedFields, ", "))
	}
	return b.String()
}

// FormatReportMarkdown renders a format report as a checklist.
func FormatReportMarkdown(report *FormatReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Available formats for %s\n\n", report.Name)

	entries := []struct {
		name    string
		present bool
	}{
		{SectionGherkin, report.Gherkin},
		{SectionCondensed, report.Condensed},
		{SectionDeveloperNotes, report.DeveloperNotes},
		{SectionAndroidDeveloperNotes, report.AndroidDeveloperNotes},
		{SectionIOSDeveloperNotes, report.IOSDeveloperNotes},
		{SectionVideos, report.Videos},
		{SectionGeneralNotes, report.GeneralNotes},
	}
	for _, e := range entries {
		mark := " "
		if e.present {
			mark = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s\n", mark, e.name)
	}
	return b.String()
}

// FormatSuggestions renders a not-found explanation with up to five
// fuzzy-matched alternatives.
func FormatSuggestions(platform Platform, rawName string, suggestions []*ResolvedComponent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Component %q not found in platform %q.", rawName, platform)
	if len(suggestions) == 0 {
		return b.String()
	}

	b.WriteString(" Did you mean:\n")
	for _, s := range suggestions {
		fmt.Fprintf(&b, "- %s (%s, category %s)\n", s.Label, s.Name, s.Category)
	}
	return strings.TrimRight(b.String(), "\n")
}
