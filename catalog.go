package a11y

import "strings"

// Ensure Catalog implements QueryService at compile time.
var _ QueryService = (*Catalog)(nil)

// Catalog is the immutable query core over a loaded Collection. All methods
// are pure reads; a Catalog is safe for concurrent use without locking.
type Catalog struct {
	collection Collection
}

// NewCatalog validates a collection and wraps it in a Catalog.
// Component names must be unique (case-insensitive) within a platform.
func NewCatalog(collection Collection) (*Catalog, error) {
	for platform, categories := range collection {
		seen := make(map[string]bool)
		for _, category := range categories {
			if err := category.Validate(); err != nil {
				return nil, err
			}
			for _, component := range category.Components {
				key := strings.ToLower(component.Name)
				if seen[key] {
					return nil, Errorf(EINVALID, "duplicate component %q in platform %q", component.Name, platform)
				}
				seen[key] = true
			}
		}
	}
	return &Catalog{collection: collection}, nil
}

// Categories lists the categories of a platform in stored order.
func (c *Catalog) Categories(platform Platform) []CategorySummary {
	categories := c.collection[platform]
	summaries := make([]CategorySummary, 0, len(categories))
	for _, category := range categories {
		summaries = append(summaries, CategorySummary{
			Name:           category.Name,
			Label:          category.Label,
			ComponentCount: len(category.Components),
		})
	}
	return summaries
}

// resolve attaches parent category info to a component at lookup time.
func resolve(platform Platform, category *Category, component *Component) *ResolvedComponent {
	return &ResolvedComponent{
		Component:    *component,
		Platform:     platform,
		Category:     category.Label,
		CategoryName: category.Name,
	}
}
