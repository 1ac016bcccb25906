package a11y

import (
	"sort"
	"strings"
)

// DefaultMaxResults caps search results when the caller does not supply a cap.
const DefaultMaxResults = 10

// searchField pairs a content field with its score weight. The slice order is
// fixed: matched field names are recorded in this order.
var searchFields = []struct {
	name   string
	weight int
	value  func(*Component) string
}{
	{"label", 10, func(c *Component) string { return c.Label }},
	{"name", 10, func(c *Component) string { return c.Name }},
	{"generalNotes", 5, func(c *Component) string { return c.GeneralNotes }},
	{"gherkin", 3, func(c *Component) string { return c.Gherkin }},
	{"condensed", 3, func(c *Component) string { return c.Condensed }},
	{"developerNotes", 2, func(c *Component) string { return c.DeveloperNotes }},
	{"androidDeveloperNotes", 2, func(c *Component) string { return c.AndroidDeveloperNotes }},
	{"iosDeveloperNotes", 2, func(c *Component) string { return c.IOSDeveloperNotes }},
}

// Search ranks components of a platform against a free-text query.
//
// Each field containing the query (case-insensitive substring) contributes
// its weight plus one point per repeated non-overlapping occurrence beyond
// the first. Components scoring zero are excluded. Results are ordered by
// score descending with name ascending as the tie-break, then truncated to
// maxResults (DefaultMaxResults when non-positive). An empty query or
// unknown platform yields an empty slice.
func (c *Catalog) Search(platform Platform, query string, maxResults int) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []Match{}
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	matches := []Match{}
	for _, category := range c.collection[platform] {
		for _, component := range category.Components {
			match := scoreComponent(component, q)
			if match.Score == 0 {
				continue
			}
			match.Category = category.Label
			match.CategoryName = category.Name
			matches = append(matches, match)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Name < matches[j].Name
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

// scoreComponent scores a single component against the lowercased query.
func scoreComponent(component *Component, lowerQuery string) Match {
	match := Match{
		Name:         component.Name,
		Label:        component.Label,
		GeneralNotes: component.GeneralNotes,
	}
	for _, field := range searchFields {
		value := strings.ToLower(field.value(component))
		occurrences := strings.Count(value, lowerQuery)
		if occurrences == 0 {
			continue
		}
		match.Score += field.weight + (occurrences - 1)
		match.MatchedFields = append(match.MatchedFields, field.name)
	}
	return match
}
