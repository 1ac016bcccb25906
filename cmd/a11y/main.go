package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/accessibleweb/a11y"
	"github.com/accessibleweb/a11y/content"
	a11yslog "github.com/accessibleweb/a11y/slog"
)

// Version is stamped at build time.
var Version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Query service for end-to-end testing. When nil, Run wires the
	// embedded catalog.
	Queries a11y.QueryService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:     ctx,
		Stdin:   stdin,
		Stdout:  stdout,
		Stderr:  stderr,
		Version: Version,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("a11y"),
		kong.Description("Query and serve accessibility acceptance criteria"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'a11y --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The stdio transport owns stdout, so logs always go to stderr.
	deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))

	if m.Queries == nil {
		catalog, err := loadCatalog(cli.Content)
		if err != nil {
			return fmt.Errorf("failed to load criteria content: %w", err)
		}
		m.Queries = a11yslog.NewLoggingQueryService(catalog, deps.Logger)
	}
	deps.Queries = m.Queries

	return kongCtx.Run(deps)
}

func loadCatalog(path string) (*a11y.Catalog, error) {
	if path != "" {
		return content.LoadFile(path)
	}
	return content.Load()
}
