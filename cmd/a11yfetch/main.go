package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/accessibleweb/a11y"
	"github.com/accessibleweb/a11y/bloom"
	"github.com/accessibleweb/a11y/crawl"
	"github.com/accessibleweb/a11y/fs"
	"github.com/accessibleweb/a11y/goquery"
	"github.com/accessibleweb/a11y/htmltomarkdown"
	a11yhttp "github.com/accessibleweb/a11y/http"
	"github.com/alecthomas/kong"
)

// expectedPages sizes the visited filter; generous for a criteria site.
const expectedPages = 10000

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program. Collaborators left nil are wired to
// their production implementations in Run; tests inject fakes.
type Main struct {
	Sitemaps  a11y.SitemapService
	Refresher refreshRunner
	Writer    a11y.ArtifactWriter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("a11yfetch"),
		kong.Description("Refresh the accessibility criteria catalog from its upstream site"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}
	m.wire(cli, deps, logger)

	return cli.Run(deps)
}

// wire fills in production collaborators for anything not injected.
func (m *Main) wire(cli *CLI, deps *Dependencies, logger *slog.Logger) {
	deps.Sitemaps = m.Sitemaps
	if deps.Sitemaps == nil {
		deps.Sitemaps = a11yhttp.NewSitemapService(nil)
	}

	deps.Refresher = m.Refresher
	if deps.Refresher == nil {
		deps.Refresher = &crawl.Refresher{
			Sitemaps:    deps.Sitemaps,
			Fetcher:     a11yhttp.NewFetcher(a11yhttp.WithTimeout(cli.Timeout)),
			Extractor:   goquery.NewExtractor(),
			Converter:   htmltomarkdown.NewConverter(),
			Limiter:     crawl.NewDomainLimiter(cli.RPS),
			Visited:     bloom.NewFilter(expectedPages, 0.01),
			Logger:      logger,
			Concurrency: cli.Concurrency,
		}
	}

	deps.Writer = m.Writer
	if deps.Writer == nil {
		deps.Writer = fs.NewWriter(cli.Output)
	}
}
