package main

import (
	"fmt"

	"github.com/accessibleweb/a11y"
)

// Run executes the formats command.
func (c *FormatsCmd) Run(deps *Dependencies) error {
	platform := a11y.ParsePlatform(c.Platform)

	report, err := deps.Queries.Formats(platform, c.Name)
	if err != nil {
		if a11y.ErrorCode(err) == a11y.ENOTFOUND {
			suggestions := deps.Queries.Suggest(platform, c.Name, 5)
			fmt.Fprintln(deps.Stdout, a11y.FormatSuggestions(platform, c.Name, suggestions))
			return nil
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", a11y.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, a11y.FormatReportMarkdown(report))
	return nil
}
