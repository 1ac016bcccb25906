package main

import (
	"fmt"
	"strings"

	"github.com/accessibleweb/a11y"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	platform := a11y.ParsePlatform(c.Platform)

	matches := deps.Queries.Search(platform, c.Query, c.Max)
	if len(matches) == 0 {
		fmt.Fprintf(deps.Stdout, "No components matched %q.\n", c.Query)
		return nil
	}

	for _, m := range matches {
		fmt.Fprintf(deps.Stdout, "%3d  %s  %s  [%s]  matched: %s\n",
			m.Score, m.Name, m.Label, m.CategoryName, strings.Join(m.MatchedFields, ","))
	}
	return nil
}
