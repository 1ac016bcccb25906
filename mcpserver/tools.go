package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/accessibleweb/a11y"
)

func (s *Server) handleListCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	platform, err := s.platformParam(request)
	if err != nil {
		return mcp.NewToolResultError(a11y.ErrorMessage(err)), nil
	}

	return mcp.NewToolResultText(a11y.FormatCategories(platform, s.queries.Categories(platform))), nil
}

func (s *Server) handleListComponents(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	platform, err := s.platformParam(request)
	if err != nil {
		return mcp.NewToolResultError(a11y.ErrorMessage(err)), nil
	}
	category := request.GetString("category", "")

	return mcp.NewToolResultText(a11y.FormatComponentList(platform, s.queries.Components(platform, category))), nil
}

func (s *Server) handleGetComponent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	platform, err := s.platformParam(request)
	if err != nil {
		return mcp.NewToolResultError(a11y.ErrorMessage(err)), nil
	}
	name, err := requireString(request, "name")
	if err != nil {
		return mcp.NewToolResultError(a11y.ErrorMessage(err)), nil
	}
	includeExamples := request.GetBool("include_examples", false)

	component, err := s.queries.Find(platform, name)
	if err != nil {
		return s.notFound(platform, name, err), nil
	}
	return mcp.NewToolResultText(a11y.FormatComponent(component, includeExamples)), nil
}

func (s *Server) handleSearchCriteria(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	platform, err := s.platformParam(request)
	if err != nil {
		return mcp.NewToolResultError(a11y.ErrorMessage(err)), nil
	}
	query, err := requireString(request, "query")
	if err != nil {
		return mcp.NewToolResultError(a11y.ErrorMessage(err)), nil
	}
	maxResults := request.GetInt("max_results", a11y.DefaultMaxResults)

	matches := s.queries.Search(platform, query, maxResults)
	return mcp.NewToolResultText(a11y.FormatMatches(query, matches)), nil
}

func (s *Server) handleListFormats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	platform, err := s.platformParam(request)
	if err != nil {
		return mcp.NewToolResultError(a11y.ErrorMessage(err)), nil
	}
	name, err := requireString(request, "name")
	if err != nil {
		return mcp.NewToolResultError(a11y.ErrorMessage(err)), nil
	}

	report, err := s.queries.Formats(platform, name)
	if err != nil {
		return s.notFound(platform, name, err), nil
	}
	return mcp.NewToolResultText(a11y.FormatReportMarkdown(report)), nil
}

func (s *Server) handleGetSection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	section, err := requireString(request, "section")
	if err != nil {
		return mcp.NewToolResultError(a11y.ErrorMessage(err)), nil
	}
	return s.sectionHandler(section)(ctx, request)
}

// sectionHandler builds a handler that resolves a component and returns one
// named content section.
func (s *Server) sectionHandler(section string) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		platform, err := s.platformParam(request)
		if err != nil {
			return mcp.NewToolResultError(a11y.ErrorMessage(err)), nil
		}
		name, err := requireString(request, "name")
		if err != nil {
			return mcp.NewToolResultError(a11y.ErrorMessage(err)), nil
		}

		component, err := s.queries.Find(platform, name)
		if err != nil {
			return s.notFound(platform, name, err), nil
		}

		body, ok := component.Section(section)
		if !ok {
			return mcp.NewToolResultError("unknown section " + section), nil
		}
		if body == "" {
			return mcp.NewToolResultText("Component " + component.Name + " has no " + section + " content."), nil
		}
		return mcp.NewToolResultText(body), nil
	}
}

func (s *Server) handleGetDeveloperNotes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := requireString(request, "name")
	if err != nil {
		return mcp.NewToolResultError(a11y.ErrorMessage(err)), nil
	}
	osName, err := requireString(request, "os")
	if err != nil {
		return mcp.NewToolResultError(a11y.ErrorMessage(err)), nil
	}

	var section string
	switch osName {
	case "ios":
		section = a11y.SectionIOSDeveloperNotes
	case "android":
		section = a11y.SectionAndroidDeveloperNotes
	default:
		return mcp.NewToolResultError("os must be \"ios\" or \"android\""), nil
	}

	component, err := s.queries.Find(a11y.PlatformNative, name)
	if err != nil {
		return s.notFound(a11y.PlatformNative, name, err), nil
	}

	body, _ := component.Section(section)
	if body == "" {
		return mcp.NewToolResultText("Component " + component.Name + " has no " + osName + " developer notes."), nil
	}
	return mcp.NewToolResultText(body), nil
}

// platformParam extracts and normalizes the required platform parameter.
func (s *Server) platformParam(request mcp.CallToolRequest) (a11y.Platform, error) {
	raw, err := requireString(request, "platform")
	if err != nil {
		return "", err
	}
	return a11y.ParsePlatform(raw), nil
}

// notFound renders a resolution failure with up to five fuzzy suggestions.
// Internal errors surface as tool errors; absence is an ordinary answer.
func (s *Server) notFound(platform a11y.Platform, name string, err error) *mcp.CallToolResult {
	if a11y.ErrorCode(err) != a11y.ENOTFOUND {
		return mcp.NewToolResultError(a11y.ErrorMessage(err))
	}
	suggestions := s.queries.Suggest(platform, name, suggestionLimit)
	return mcp.NewToolResultText(a11y.FormatSuggestions(platform, name, suggestions))
}
