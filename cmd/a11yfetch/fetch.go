package main

import (
	"fmt"

	"github.com/accessibleweb/a11y"
)

// Run executes the refresh against the upstream site.
func (c *CLI) Run(deps *Dependencies) error {
	if c.Preview {
		return c.runPreview(deps)
	}
	return c.runRefresh(deps)
}

// runPreview lists the URLs a refresh would fetch without fetching them.
func (c *CLI) runPreview(deps *Dependencies) error {
	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", a11y.ErrorMessage(err))
		return err
	}

	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}
	fmt.Fprintf(deps.Stdout, "Found %d URLs\n", len(urls))

	return nil
}

func (c *CLI) runRefresh(deps *Dependencies) error {
	collection, stats, err := deps.Refresher.Refresh(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", a11y.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Fetched %d pages (%d skipped, %d failed)\n",
		stats.Fetched, stats.Skipped, stats.Failed)

	if stats.Fetched == 0 {
		fmt.Fprintln(deps.Stdout, "No criteria pages found; artifact not written")
		return nil
	}

	// Validate before writing so a broken upstream never clobbers a
	// good artifact.
	if _, err := a11y.NewCatalog(collection); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", a11y.ErrorMessage(err))
		return err
	}

	changed, err := deps.Writer.Write(collection)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error writing artifact: %v\n", err)
		return err
	}

	if changed {
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", c.Output)
	} else {
		fmt.Fprintf(deps.Stdout, "%s unchanged\n", c.Output)
	}

	return nil
}
