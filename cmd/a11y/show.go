package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/accessibleweb/a11y"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	platform := a11y.ParsePlatform(c.Platform)

	component, err := deps.Queries.Find(platform, c.Name)
	if err != nil {
		if a11y.ErrorCode(err) == a11y.ENOTFOUND {
			suggestions := deps.Queries.Suggest(platform, c.Name, 5)
			fmt.Fprintln(deps.Stdout, a11y.FormatSuggestions(platform, c.Name, suggestions))
			return nil
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", a11y.ErrorMessage(err))
		return err
	}

	markdown := a11y.FormatComponent(component, c.Examples)

	if c.Plain {
		fmt.Fprintln(deps.Stdout, markdown)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	fmt.Fprint(deps.Stdout, rendered)
	return nil
}
