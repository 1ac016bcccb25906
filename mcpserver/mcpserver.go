// Package mcpserver exposes the catalog query operations over the Model
// Context Protocol using mark3labs/mcp-go. The same tool set is served over
// two transports: a stdio line protocol and a stateless HTTP JSON-RPC
// endpoint. Tool failures are rendered as textual results so a bad request
// never aborts the process or affects other requests in a batch.
package mcpserver

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/accessibleweb/a11y"
)

// ServerName identifies the server to MCP clients.
const ServerName = "a11y-criteria"

// suggestionLimit caps the "did you mean" list on failed resolutions.
const suggestionLimit = 5

// toolHandler is the dispatch signature shared by every tool.
type toolHandler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

// Server dispatches MCP tool calls to the catalog query service.
type Server struct {
	queries  a11y.QueryService
	logger   *slog.Logger
	mcp      *server.MCPServer
	handlers map[string]toolHandler
}

// New creates a Server with all query tools registered.
func New(queries a11y.QueryService, version string, logger *slog.Logger) *Server {
	s := &Server{
		queries:  queries,
		logger:   logger,
		handlers: make(map[string]toolHandler),
		mcp: server.NewMCPServer(ServerName, version,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
	}
	s.registerTools()
	return s
}

// CallTool invokes a tool by name with the given arguments. Dispatch is
// transport-agnostic: both transports route through the same handlers.
func (s *Server) CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	handler, ok := s.handlers[name]
	if !ok {
		return nil, a11y.Errorf(a11y.ENOTFOUND, "unknown tool %q", name)
	}
	request := mcp.CallToolRequest{}
	request.Params.Name = name
	request.Params.Arguments = args
	return handler(ctx, request)
}

// addTool registers a tool with the protocol server and the dispatch table.
func (s *Server) addTool(tool mcp.Tool, handler toolHandler) {
	s.handlers[tool.Name] = handler
	s.mcp.AddTool(tool, server.ToolHandlerFunc(handler))
}

// ServeStdio serves the line-protocol transport over stdin/stdout until the
// context is canceled or stdin reaches EOF. Logging must go to stderr;
// stdout carries the protocol.
func (s *Server) ServeStdio(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	s.logger.Info("serving MCP over stdio", "server", ServerName)
	return server.NewStdioServer(s.mcp).Listen(ctx, stdin, stdout)
}

func (s *Server) registerTools() {
	platformArg := []mcp.PropertyOption{
		mcp.Required(),
		mcp.Description("Content platform, \"web\" or \"native\"."),
		mcp.Enum(string(a11y.PlatformWeb), string(a11y.PlatformNative)),
	}

	s.addTool(mcp.NewTool("list_categories",
		mcp.WithDescription("List the accessibility-criteria categories of a platform with their component counts."),
		mcp.WithString("platform", platformArg...),
	), s.handleListCategories)

	s.addTool(mcp.NewTool("list_components",
		mcp.WithDescription("List every component of a platform in category order, optionally filtered to one category."),
		mcp.WithString("platform", platformArg...),
		mcp.WithString("category", mcp.Description("Category name to filter by (case-insensitive).")),
	), s.handleListComponents)

	s.addTool(mcp.NewTool("get_component",
		mcp.WithDescription("Fetch the full accessibility criteria for one component, resolved by exact name or closest substring match."),
		mcp.WithString("platform", platformArg...),
		mcp.WithString("name", mcp.Required(), mcp.Description("Component name, e.g. \"button\".")),
		mcp.WithBoolean("include_examples", mcp.Description("Keep code examples inside developer notes."), mcp.DefaultBool(false)),
	), s.handleGetComponent)

	s.addTool(mcp.NewTool("search_criteria",
		mcp.WithDescription("Search accessibility criteria by keyword and return ranked matches with per-field provenance."),
		mcp.WithString("platform", platformArg...),
		mcp.WithString("query", mcp.Required(), mcp.Description("Free-text keyword query.")),
		mcp.WithNumber("max_results", mcp.Description("Result cap; defaults to 10."), mcp.DefaultNumber(a11y.DefaultMaxResults)),
	), s.handleSearchCriteria)

	s.addTool(mcp.NewTool("list_formats",
		mcp.WithDescription("Report which optional content sections a component carries."),
		mcp.WithString("platform", platformArg...),
		mcp.WithString("name", mcp.Required(), mcp.Description("Component name.")),
	), s.handleListFormats)

	s.addTool(mcp.NewTool("get_section",
		mcp.WithDescription("Fetch a single named content section of a component."),
		mcp.WithString("platform", platformArg...),
		mcp.WithString("name", mcp.Required(), mcp.Description("Component name.")),
		mcp.WithString("section", mcp.Required(), mcp.Description("Section name."), mcp.Enum(a11y.SectionNames...)),
	), s.handleGetSection)

	s.addTool(mcp.NewTool("get_gherkin",
		mcp.WithDescription("Fetch the Given/When/Then acceptance criteria of a component."),
		mcp.WithString("platform", platformArg...),
		mcp.WithString("name", mcp.Required(), mcp.Description("Component name.")),
	), s.sectionHandler(a11y.SectionGherkin))

	s.addTool(mcp.NewTool("get_condensed",
		mcp.WithDescription("Fetch the condensed acceptance criteria of a component."),
		mcp.WithString("platform", platformArg...),
		mcp.WithString("name", mcp.Required(), mcp.Description("Component name.")),
	), s.sectionHandler(a11y.SectionCondensed))

	s.addTool(mcp.NewTool("get_general_notes",
		mcp.WithDescription("Fetch the general usage notes of a component."),
		mcp.WithString("platform", platformArg...),
		mcp.WithString("name", mcp.Required(), mcp.Description("Component name.")),
	), s.sectionHandler(a11y.SectionGeneralNotes))

	s.addTool(mcp.NewTool("get_developer_notes",
		mcp.WithDescription("Fetch the native developer notes of a component for one operating system."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Native component name.")),
		mcp.WithString("os", mcp.Required(), mcp.Description("Native operating system."), mcp.Enum("ios", "android")),
	), s.handleGetDeveloperNotes)

	s.addTool(mcp.NewTool("get_videos",
		mcp.WithDescription("Fetch the demo video references of a component."),
		mcp.WithString("platform", platformArg...),
		mcp.WithString("name", mcp.Required(), mcp.Description("Component name.")),
	), s.sectionHandler(a11y.SectionVideos))
}

// requireString validates that a required string parameter is present and
// non-empty after trimming.
func requireString(request mcp.CallToolRequest, param string) (string, error) {
	value, err := request.RequireString(param)
	if err != nil {
		return "", a11y.Errorf(a11y.EINVALID, "%s is required", param)
	}
	if strings.TrimSpace(value) == "" {
		return "", a11y.Errorf(a11y.EINVALID, "%s must not be empty", param)
	}
	return value, nil
}
