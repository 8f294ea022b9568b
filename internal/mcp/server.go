package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/k-f-/agentic-dev-standards/internal/logging"
	"github.com/k-f-/agentic-dev-standards/internal/registry"
	"github.com/k-f-/agentic-dev-standards/internal/search"
)

const serverName = "agentic-dev-standards"

// Server wraps the mcp-go server with the document registry and search
// engine.
type Server struct {
	registry  *registry.Registry
	engine    *search.Engine
	logger    *logging.AppLogger
	mcpServer *server.MCPServer
}

// NewServer creates the MCP server and registers all five tools.
func NewServer(reg *registry.Registry, logger *logging.AppLogger, version string) *Server {
	s := &Server{
		registry: reg,
		engine:   search.NewEngine(reg, logger),
		logger:   logger,
	}

	s.mcpServer = server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()
	return s
}

// Serve starts the server on the stdio transport and blocks until the
// client disconnects.
func (s *Server) Serve() error {
	s.logger.Info("Starting MCP server on stdio", "docs_root", s.registry.Root())
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}

// registerTools declares the tool surface with the MCP server.
func (s *Server) registerTools() {
	getCoreTool := mcp.NewTool("get_core_standard",
		mcp.WithDescription("Fetch the full text of one core development standard. Core standards are the always-applicable rules: "+keySummary(registry.NamespaceCore)),
		mcp.WithString("standard",
			mcp.Required(),
			mcp.Description("Key of the core standard to fetch, e.g. 'terminal-standards'"),
		),
	)
	s.mcpServer.AddTool(getCoreTool, s.fetchHandler(registry.NamespaceCore, "standard"))

	getWorkflowTool := mcp.NewTool("get_workflow_pattern",
		mcp.WithDescription("Fetch the full text of one workflow pattern document. Available patterns: "+keySummary(registry.NamespaceWorkflow)),
		mcp.WithString("pattern",
			mcp.Required(),
			mcp.Description("Key of the workflow pattern to fetch, e.g. 'session-management'"),
		),
	)
	s.mcpServer.AddTool(getWorkflowTool, s.fetchHandler(registry.NamespaceWorkflow, "pattern"))

	getIntegrationTool := mcp.NewTool("get_integration_guide",
		mcp.WithDescription("Fetch the setup guide for integrating a specific AI tool with these standards. Available guides: "+keySummary(registry.NamespaceIntegration)),
		mcp.WithString("tool",
			mcp.Required(),
			mcp.Description("Key of the integration guide to fetch, e.g. 'claude-code'"),
		),
	)
	s.mcpServer.AddTool(getIntegrationTool, s.fetchHandler(registry.NamespaceIntegration, "tool"))

	searchTool := mcp.NewTool("search_standards",
		mcp.WithDescription("Keyword search across all standards documents. Returns matching lines with surrounding context, in document order. Use this to locate guidance without loading whole documents."),
		mcp.WithString("keyword",
			mcp.Required(),
			mcp.Description("Case-insensitive substring to search for"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description(fmt.Sprintf("Maximum number of matches to return across all documents (default: %d)", search.DefaultMaxResults)),
		),
		mcp.WithNumber("contextLines",
			mcp.Description(fmt.Sprintf("Lines of context before and after each match (default: %d)", search.DefaultContextLines)),
		),
	)
	s.mcpServer.AddTool(searchTool, s.handleSearch)

	listTool := mcp.NewTool("list_available_standards",
		mcp.WithDescription("List every available document key across core standards, workflow patterns, and integration guides, each with a one-line description."),
	)
	s.mcpServer.AddTool(listTool, s.handleListAvailable)
}

// fetchHandler builds the handler for the three single-document fetch
// tools; they differ only in namespace and argument name.
func (s *Server) fetchHandler(ns registry.Namespace, argName string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		key, err := request.RequireString(argName)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s parameter is required", argName)), nil
		}

		content, err := s.registry.Resolve(ns, key)
		if err != nil {
			s.logger.Debug("Document fetch failed", "namespace", ns, "key", key, "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(content), nil
	}
}

// handleSearch handles the search_standards tool call.
func (s *Server) handleSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keyword, err := request.RequireString("keyword")
	if err != nil {
		return mcp.NewToolResultError("keyword parameter is required"), nil
	}

	maxResults := request.GetInt("maxResults", search.DefaultMaxResults)
	contextLines := request.GetInt("contextLines", search.DefaultContextLines)

	matches, err := s.engine.Search(keyword, maxResults, contextLines)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(FormatSearchReport(keyword, matches)), nil
}

// handleListAvailable handles the list_available_standards tool call. It
// never fails: the listing comes from the fixed registration tables, not
// from disk.
func (s *Server) handleListAvailable(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(FormatListing()), nil
}

// FormatSearchReport renders matches as a human-readable markdown report:
// one "## path:line" header per match followed by a fenced block with the
// context lines. Zero matches produce an explicit no-results payload so the
// caller can tell an empty result from a failed call.
func FormatSearchReport(keyword string, matches []search.Match) string {
	if len(matches) == 0 {
		return fmt.Sprintf("No results found for %q", keyword)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d result(s) for %q:\n\n", len(matches), keyword)
	for _, m := range matches {
		fmt.Fprintf(&b, "## %s:%d\n", m.Path, m.Line)
		fmt.Fprintf(&b, "```\n%s\n```\n\n", m.Context)
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatListing renders the full key catalogue grouped by namespace.
func FormatListing() string {
	var b strings.Builder
	b.WriteString("# Available standards\n")
	for _, ns := range registry.Namespaces() {
		fmt.Fprintf(&b, "\n## %s\n", namespaceHeading(ns))
		for _, e := range registry.Entries(ns) {
			fmt.Fprintf(&b, "- %s — %s\n", e.Key, e.Description)
		}
	}
	return b.String()
}

func namespaceHeading(ns registry.Namespace) string {
	switch ns {
	case registry.NamespaceCore:
		return "Core standards"
	case registry.NamespaceWorkflow:
		return "Workflow patterns"
	case registry.NamespaceIntegration:
		return "Integration guides"
	default:
		return "Documents"
	}
}

// keySummary joins a namespace's keys for tool descriptions.
func keySummary(ns registry.Namespace) string {
	return strings.Join(registry.Keys(ns), ", ")
}
