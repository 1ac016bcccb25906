package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/accessibleweb/a11y"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Queries a11y.QueryService
	Version string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Content string `help:"Path to a criteria artifact (defaults to the embedded catalog)" env:"A11Y_CONTENT"`

	Serve   ServeCmd   `cmd:"" help:"Serve the criteria catalog over MCP (stdio by default)"`
	List    ListCmd    `cmd:"" help:"List categories or components of a platform"`
	Show    ShowCmd    `cmd:"" help:"Show the accessibility criteria of one component"`
	Search  SearchCmd  `cmd:"" help:"Search criteria by keyword"`
	Formats FormatsCmd `cmd:"" help:"Report which content sections a component carries"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	HTTP string `help:"Serve stateless HTTP JSON-RPC on this address instead of stdio" env:"A11Y_HTTP_ADDR"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Platform   string `arg:"" help:"Platform: web or native"`
	Category   string `arg:"" optional:"" help:"Category name to filter by"`
	Categories bool   `short:"c" help:"List categories instead of components"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Platform string `arg:"" help:"Platform: web or native"`
	Name     string `arg:"" help:"Component name"`
	Examples bool   `short:"e" help:"Include code examples in developer notes"`
	Plain    bool   `help:"Print raw markdown without terminal styling"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Platform string `arg:"" help:"Platform: web or native"`
	Query    string `arg:"" help:"Keyword query"`
	Max      int    `short:"m" default:"10" help:"Maximum number of results"`
}

// FormatsCmd is the "formats" subcommand.
type FormatsCmd struct {
	Platform string `arg:"" help:"Platform: web or native"`
	Name     string `arg:"" help:"Component name"`
}
