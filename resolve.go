package a11y

import "strings"

// Find resolves a component by name within a platform.
//
// Two passes over the stored category-then-child order, both case-insensitive
// against the trimmed query: an exact pass on component name, then a fuzzy
// pass that accepts a substring match on name or label. First match in scan
// order wins; the dataset guarantees name uniqueness so the exact pass is
// deterministic in practice, but scan order remains the contractual tie-break.
func (c *Catalog) Find(platform Platform, rawName string) (*ResolvedComponent, error) {
	query := strings.ToLower(strings.TrimSpace(rawName))
	if query == "" {
		return nil, Errorf(ENOTFOUND, "component %q not found in platform %q", rawName, platform)
	}

	for _, category := range c.collection[platform] {
		for _, component := range category.Components {
			if strings.ToLower(component.Name) == query {
				return resolve(platform, category, component), nil
			}
		}
	}

	for _, category := range c.collection[platform] {
		for _, component := range category.Components {
			if containsFold(component.Name, query) || containsFold(component.Label, query) {
				return resolve(platform, category, component), nil
			}
		}
	}

	return nil, Errorf(ENOTFOUND, "component %q not found in platform %q", rawName, platform)
}

// Suggest returns up to max components whose name or label contains the
// trimmed, lowercased query, in scan order. An empty query or non-positive
// max yields no suggestions.
func (c *Catalog) Suggest(platform Platform, rawName string, max int) []*ResolvedComponent {
	query := strings.ToLower(strings.TrimSpace(rawName))
	if query == "" || max <= 0 {
		return nil
	}

	var suggestions []*ResolvedComponent
	for _, category := range c.collection[platform] {
		for _, component := range category.Components {
			if containsFold(component.Name, query) || containsFold(component.Label, query) {
				suggestions = append(suggestions, resolve(platform, category, component))
				if len(suggestions) == max {
					return suggestions
				}
			}
		}
	}
	return suggestions
}

// Components flattens all components of a platform in category-then-child
// order, each annotated with its parent category. A non-empty category
// filters to the single category matching by case-insensitive name.
// Unknown platforms and unknown categories yield an empty slice.
func (c *Catalog) Components(platform Platform, category string) []*ResolvedComponent {
	filter := strings.ToLower(strings.TrimSpace(category))

	components := []*ResolvedComponent{}
	for _, cat := range c.collection[platform] {
		if filter != "" && strings.ToLower(cat.Name) != filter {
			continue
		}
		for _, component := range cat.Components {
			components = append(components, resolve(platform, cat, component))
		}
	}
	return components
}

// containsFold reports whether s contains the already-lowercased query.
func containsFold(s, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(s), lowerQuery)
}
