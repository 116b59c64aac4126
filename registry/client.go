package registry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ClientConfig describes a connection to a remote archive MCP server.
type ClientConfig struct {
	// URL is the server URL (http(s)://, sse://, stdio://).
	URL string
	// Headers are optional HTTP headers for authenticated servers.
	Headers map[string]string
	// MaxRetries controls reconnect attempts for streamable HTTP transport.
	MaxRetries int
	// RetryInterval is reserved for future use.
	RetryInterval time.Duration
	// Transport overrides URL handling when provided (useful for tests).
	Transport mcp.Transport
}

// Client talks to a remote paper archive over MCP. It exposes the server's
// built-in tools as typed calls; CallTool covers anything else.
type Client struct {
	config    ClientConfig
	client    *mcp.Client
	session   *mcp.ClientSession
	mu        sync.RWMutex
	connected bool
}

// NewClient creates an unconnected Client.
func NewClient(cfg ClientConfig) *Client {
	return &Client{config: cfg}
}

// Connect establishes the MCP session. Idempotent.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.connected {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	transport, err := c.transport()
	if err != nil {
		return err
	}

	client := mcp.NewClient(&mcp.Implementation{Name: "paperarchive-client"}, nil)
	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.client = client
	c.session = session
	c.connected = true
	c.mu.Unlock()
	return nil
}

// Close shuts down the MCP session. Safe on an unconnected client.
func (c *Client) Close() error {
	c.mu.Lock()
	if !c.connected {
		c.mu.Unlock()
		return nil
	}
	session := c.session
	c.client = nil
	c.session = nil
	c.connected = false
	c.mu.Unlock()

	if session != nil {
		return session.Close()
	}
	return nil
}

// ListTools returns the server's tool definitions.
func (c *Client) ListTools(ctx context.Context) ([]mcp.Tool, error) {
	c.mu.RLock()
	session := c.session
	connected := c.connected
	c.mu.RUnlock()
	if !connected || session == nil {
		return nil, ErrNotConnected
	}

	res, err := session.ListTools(ctx, nil)
	if err != nil {
		return nil, err
	}

	tools := make([]mcp.Tool, 0, len(res.Tools))
	for _, tool := range res.Tools {
		if tool == nil {
			continue
		}
		tools = append(tools, *tool)
	}
	return tools, nil
}

// CallTool invokes a named tool on the server.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]any) (any, error) {
	c.mu.RLock()
	session := c.session
	connected := c.connected
	c.mu.RUnlock()
	if !connected || session == nil {
		return nil, ErrNotConnected
	}

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutionFailed, err)
	}
	if result == nil {
		return nil, nil
	}
	if result.IsError {
		return nil, fmt.Errorf("%w: %s", ErrExecutionFailed, toolResultError(result))
	}
	return toolResultValue(result), nil
}

// SearchPapers runs the server's search_papers tool.
func (c *Client) SearchPapers(ctx context.Context, query, date, author string, limit int) (any, error) {
	args := map[string]any{}
	if query != "" {
		args["query"] = query
	}
	if date != "" {
		args["date"] = date
	}
	if author != "" {
		args["author"] = author
	}
	if limit > 0 {
		args["limit"] = limit
	}
	return c.CallTool(ctx, "search_papers", args)
}

// ListDates runs the server's list_dates tool.
func (c *Client) ListDates(ctx context.Context, selected string) (any, error) {
	args := map[string]any{}
	if selected != "" {
		args["date"] = selected
	}
	return c.CallTool(ctx, "list_dates", args)
}

// GetPaper runs the server's get_paper tool.
func (c *Client) GetPaper(ctx context.Context, id string) (any, error) {
	return c.CallTool(ctx, "get_paper", map[string]any{"id": id})
}

// DailyOverview runs the server's daily_overview tool.
func (c *Client) DailyOverview(ctx context.Context, date string) (any, error) {
	args := map[string]any{}
	if date != "" {
		args["date"] = date
	}
	return c.CallTool(ctx, "daily_overview", args)
}

func (c *Client) transport() (mcp.Transport, error) {
	if c.config.Transport != nil {
		return c.config.Transport, nil
	}
	if strings.TrimSpace(c.config.URL) == "" {
		return nil, errors.New("server URL is required")
	}

	parsed, err := url.Parse(c.config.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	httpClient := httpClientWithHeaders(c.config.Headers)

	switch parsed.Scheme {
	case "http", "https":
		return &mcp.StreamableClientTransport{
			Endpoint:   c.config.URL,
			HTTPClient: httpClient,
			MaxRetries: c.config.MaxRetries,
		}, nil
	case "sse":
		parsed.Scheme = "http"
		return &mcp.SSEClientTransport{
			Endpoint:   parsed.String(),
			HTTPClient: httpClient,
		}, nil
	case "stdio":
		return &mcp.StdioTransport{}, nil
	default:
		return nil, fmt.Errorf("unsupported server URL scheme %q", parsed.Scheme)
	}
}

func httpClientWithHeaders(headers map[string]string) *http.Client {
	if len(headers) == 0 {
		return nil
	}
	clone := make(map[string]string, len(headers))
	for k, v := range headers {
		if strings.TrimSpace(k) == "" {
			continue
		}
		clone[k] = v
	}
	if len(clone) == 0 {
		return nil
	}
	return &http.Client{
		Transport: &headerRoundTripper{
			base:    http.DefaultTransport,
			headers: clone,
		},
	}
}

type headerRoundTripper struct {
	base    http.RoundTripper
	headers map[string]string
}

func (h *headerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	base := h.base
	if base == nil {
		base = http.DefaultTransport
	}
	for key, value := range h.headers {
		if req.Header.Get(key) == "" {
			req.Header.Set(key, value)
		}
	}
	return base.RoundTrip(req)
}

func toolResultValue(result *mcp.CallToolResult) any {
	if result == nil {
		return nil
	}
	if result.StructuredContent != nil {
		return result.StructuredContent
	}
	if len(result.Content) == 1 {
		if text, ok := result.Content[0].(*mcp.TextContent); ok {
			return text.Text
		}
	}
	return result.Content
}

func toolResultError(result *mcp.CallToolResult) string {
	if result == nil {
		return "tool execution failed"
	}
	for _, content := range result.Content {
		if text, ok := content.(*mcp.TextContent); ok && text.Text != "" {
			return text.Text
		}
	}
	if result.StructuredContent != nil {
		return fmt.Sprintf("%v", result.StructuredContent)
	}
	return "tool execution failed"
}
