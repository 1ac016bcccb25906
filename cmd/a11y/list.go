package main

import (
	"fmt"

	"github.com/accessibleweb/a11y"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	platform := a11y.ParsePlatform(c.Platform)

	if c.Categories {
		categories := deps.Queries.Categories(platform)
		if len(categories) == 0 {
			fmt.Fprintf(deps.Stdout, "No categories found for platform %q.\n", platform)
			return nil
		}
		for _, cat := range categories {
			fmt.Fprintf(deps.Stdout, "%s  %s  (%d components)\n", cat.Name, cat.Label, cat.ComponentCount)
		}
		return nil
	}

	components := deps.Queries.Components(platform, c.Category)
	if len(components) == 0 {
		fmt.Fprintf(deps.Stdout, "No components found for platform %q.\n", platform)
		return nil
	}
	for _, component := range components {
		fmt.Fprintf(deps.Stdout, "%s  %s  [%s]\n", component.Name, component.Label, component.CategoryName)
	}
	return nil
}
