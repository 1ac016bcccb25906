package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/accessibleweb/a11y"
	"github.com/accessibleweb/a11y/crawl"
)

// refreshRunner rebuilds a collection from an upstream site.
type refreshRunner interface {
	Refresh(ctx context.Context, baseURL string) (a11y.Collection, *crawl.Stats, error)
}

// Dependencies holds the collaborators for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Sitemaps  a11y.SitemapService
	Refresher refreshRunner
	Writer    a11y.ArtifactWriter
}

// CLI defines the command-line interface.
type CLI struct {
	URL         string        `arg:"" help:"Base URL of the criteria site."`
	Output      string        `short:"o" default:"content/criteria.json" help:"Artifact path to write."`
	Preview     bool          `help:"List discovered page URLs without fetching."`
	Concurrency int           `default:"5" help:"Maximum concurrent page fetches."`
	Timeout     time.Duration `default:"10s" help:"Per-request fetch timeout."`
	RPS         float64       `name:"rps" default:"2" help:"Requests per second per domain."`
	Verbose     bool          `short:"v" help:"Enable debug logging."`
}
