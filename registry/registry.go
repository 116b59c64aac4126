package registry

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/paperarchive/engine"
)

// Config configures a Registry.
type Config struct {
	// ServerInfo identifies this server in the initialize response.
	ServerInfo ServerInfo

	// DefaultLimit caps search_papers results when the caller passes no
	// limit. Zero means unlimited.
	DefaultLimit int
}

// ServerInfo describes this MCP server for the initialize response.
type ServerInfo struct {
	Name    string
	Version string
}

// Registry serves one archive engine over MCP. The built-in tools are
// registered at construction; Register adds more.
type Registry struct {
	eng    *engine.Engine
	config Config

	mu       sync.RWMutex
	tools    []mcp.Tool
	handlers map[string]ToolHandler
}

// New creates a Registry over the engine and registers the built-in tools.
func New(eng *engine.Engine, cfg Config) *Registry {
	r := &Registry{
		eng:      eng,
		config:   cfg,
		handlers: make(map[string]ToolHandler),
	}
	r.registerBuiltins()
	return r
}

// Engine returns the registry's underlying engine.
func (r *Registry) Engine() *engine.Engine { return r.eng }

// Register adds a tool with its execution handler. The name must be
// non-empty and unused.
func (r *Registry) Register(tool mcp.Tool, handler ToolHandler) error {
	if strings.TrimSpace(tool.Name) == "" {
		return fmt.Errorf("%w: tool name is required", ErrInvalidRequest)
	}
	if handler == nil {
		return fmt.Errorf("%w: tool handler is required", ErrInvalidRequest)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.handlers[tool.Name]; exists {
		return fmt.Errorf("%w: tool %s already registered", ErrInvalidRequest, tool.Name)
	}
	r.tools = append(r.tools, tool)
	r.handlers[tool.Name] = handler
	return nil
}

// Tools returns all registered tool definitions in registration order.
func (r *Registry) Tools() []mcp.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]mcp.Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Execute runs a tool by name with the given arguments.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (any, error) {
	r.mu.RLock()
	handler, ok := r.handlers[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	return handler(ctx, args)
}

func (r *Registry) registerBuiltins() {
	stringProp := func(desc string) map[string]any {
		return map[string]any{"type": "string", "description": desc}
	}

	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}

	must(r.Register(mcp.Tool{
		Name:        "search_papers",
		Description: "Search the paper archive with text, date, and author filters; results are ranked and grouped by date, newest first.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query":  stringProp("Free-text query over titles, authors, abstracts, and summaries."),
				"date":   stringProp("Restrict to one archive day (YYYY-MM-DD)."),
				"author": stringProp("Case-insensitive author substring."),
				"lang":   stringProp("Summary language, \"en\" or \"zh\"."),
				"limit": map[string]any{
					"type":        "integer",
					"description": "Maximum papers to return across all groups.",
				},
			},
		},
	}, r.handleSearchPapers))

	must(r.Register(mcp.Tool{
		Name:        "list_dates",
		Description: "List the archive's dates, newest first, with previous/next navigation for an optional selected date.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"date": stringProp("Selected date (YYYY-MM-DD); omit for the newest."),
			},
		},
	}, r.handleListDates))

	must(r.Register(mcp.Tool{
		Name:        "get_paper",
		Description: "Fetch one paper's full record by paper id.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": stringProp("The paper id, e.g. an arXiv identifier."),
			},
			"required": []string{"id"},
		},
	}, r.handleGetPaper))

	must(r.Register(mcp.Tool{
		Name:        "daily_overview",
		Description: "Return the parsed daily overview for a date, or for the newest date when omitted.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"date": stringProp("Archive day (YYYY-MM-DD); omit for the default."),
			},
		},
	}, r.handleDailyOverview))
}
