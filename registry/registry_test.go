package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/paperarchive/corpus"
	"github.com/jonwraymond/paperarchive/engine"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()

	snap := &corpus.Snapshot{
		GeneratedAt: "2026-02-19T08:00:00+00:00",
		Count:       3,
		Dates:       []string{"2026-02-19", "2026-02-18"},
		Papers: []corpus.Paper{
			{
				Date: "2026-02-19", PaperID: "2501.00001",
				Title:     "Efficient Transformer Training",
				Authors:   []string{"Alice Chen"},
				Abstract:  "We train transformer models efficiently.",
				SummaryEN: "Faster training.",
				SummaryZH: "更快的训练。",
				Upvotes:   50,
			},
			{
				Date: "2026-02-19", PaperID: "2501.00002",
				Title:    "Transformer Compression",
				Authors:  []string{"Bob Diaz"},
				Abstract: "Compressing transformer weights.",
				Upvotes:  10,
			},
			{
				Date: "2026-02-18", PaperID: "2501.00003",
				Title:    "Diffusion Models for Video",
				Authors:  []string{"Carol Evans"},
				Abstract: "Latent diffusion for video.",
				Upvotes:  30,
			},
		},
		DailySummaries: map[string]corpus.DailySummary{
			"2026-02-19": {
				Date:    "2026-02-19",
				Content: "Key Findings\n- A\n- B",
				Source:  "pipeline",
			},
		},
	}

	eng, err := engine.New(snap, engine.Options{})
	if err != nil {
		t.Fatalf("engine.New failed: %v", err)
	}

	return New(eng, Config{
		ServerInfo: ServerInfo{Name: "test-archive", Version: "1.0.0"},
	})
}

// ============================================================
// Tests for construction and registration
// ============================================================

func TestNew_RegistersBuiltins(t *testing.T) {
	reg := testRegistry(t)

	tools := reg.Tools()
	want := []string{"search_papers", "list_dates", "get_paper", "daily_overview"}
	if len(tools) != len(want) {
		t.Fatalf("expected %d tools, got %d", len(want), len(tools))
	}
	for i, name := range want {
		if tools[i].Name != name {
			t.Errorf("tool %d: expected %s, got %s", i, name, tools[i].Name)
		}
	}
}

func TestRegister(t *testing.T) {
	reg := testRegistry(t)

	err := reg.Register(mcp.Tool{
		Name:        "ping",
		Description: "Responds with pong",
		InputSchema: map[string]any{"type": "object"},
	}, func(ctx context.Context, args map[string]any) (any, error) {
		return "pong", nil
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	result, err := reg.Execute(context.Background(), "ping", nil)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result != "pong" {
		t.Errorf("expected pong, got %v", result)
	}
}

func TestRegister_Duplicate(t *testing.T) {
	reg := testRegistry(t)

	err := reg.Register(mcp.Tool{Name: "search_papers"}, func(ctx context.Context, args map[string]any) (any, error) {
		return nil, nil
	})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest for duplicate name, got %v", err)
	}
}

func TestExecute_UnknownTool(t *testing.T) {
	reg := testRegistry(t)

	_, err := reg.Execute(context.Background(), "nope", nil)
	if !errors.Is(err, ErrToolNotFound) {
		t.Errorf("expected ErrToolNotFound, got %v", err)
	}
}

// ============================================================
// Tests for built-in tool handlers
// ============================================================

func TestSearchPapers(t *testing.T) {
	reg := testRegistry(t)

	result, err := reg.Execute(context.Background(), "search_papers", map[string]any{
		"query": "transformer",
	})
	if err != nil {
		t.Fatalf("search_papers failed: %v", err)
	}

	payload := result.(map[string]any)
	if payload["count"] != 2 {
		t.Errorf("expected count 2, got %v", payload["count"])
	}
	groups := payload["groups"].([]groupPayload)
	if len(groups) != 1 || groups[0].Date != "2026-02-19" {
		t.Fatalf("expected one 2026-02-19 group, got %+v", groups)
	}
	if groups[0].Papers[0].PaperID != "2501.00001" {
		t.Errorf("expected upvote-50 paper first, got %s", groups[0].Papers[0].PaperID)
	}
}

func TestSearchPapers_Limit(t *testing.T) {
	reg := testRegistry(t)

	result, err := reg.Execute(context.Background(), "search_papers", map[string]any{
		"limit": float64(2), // JSON numbers decode as float64
	})
	if err != nil {
		t.Fatalf("search_papers failed: %v", err)
	}

	payload := result.(map[string]any)
	if payload["count"] != 3 {
		t.Errorf("expected total count 3, got %v", payload["count"])
	}
	total := 0
	for _, g := range payload["groups"].([]groupPayload) {
		total += len(g.Papers)
	}
	if total != 2 {
		t.Errorf("expected 2 returned papers, got %d", total)
	}
}

func TestSearchPapers_Language(t *testing.T) {
	reg := testRegistry(t)

	result, err := reg.Execute(context.Background(), "search_papers", map[string]any{
		"query": "efficient",
		"lang":  "zh",
	})
	if err != nil {
		t.Fatalf("search_papers failed: %v", err)
	}

	groups := result.(map[string]any)["groups"].([]groupPayload)
	if len(groups) != 1 || len(groups[0].Papers) != 1 {
		t.Fatalf("expected one paper, got %+v", groups)
	}
	if got := groups[0].Papers[0].Summary; got != "更快的训练。" {
		t.Errorf("expected zh summary, got %q", got)
	}
}

func TestListDates(t *testing.T) {
	reg := testRegistry(t)

	result, err := reg.Execute(context.Background(), "list_dates", map[string]any{
		"date": "2026-02-18",
	})
	if err != nil {
		t.Fatalf("list_dates failed: %v", err)
	}

	payload := result.(map[string]any)
	dates := payload["dates"].([]string)
	if len(dates) != 2 || dates[0] != "2026-02-19" {
		t.Errorf("unexpected dates: %v", dates)
	}
	counts := payload["counts"].(map[string]int)
	if counts["2026-02-19"] != 2 || counts["2026-02-18"] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
	nav := payload["nav"].(navPayload)
	if nav.PrevEnabled || !nav.NextEnabled || nav.NextDate != "2026-02-19" {
		t.Errorf("unexpected nav: %+v", nav)
	}
}

func TestListDates_OmitsEmptyDates(t *testing.T) {
	snap := &corpus.Snapshot{
		Dates: []string{"2026-02-19", "2026-02-18", "2026-02-17"},
		Papers: []corpus.Paper{
			{Date: "2026-02-19", PaperID: "2501.00001", Title: "Only Paper", Upvotes: 1},
		},
	}
	eng, err := engine.New(snap, engine.Options{})
	if err != nil {
		t.Fatalf("engine.New failed: %v", err)
	}
	reg := New(eng, Config{})

	result, err := reg.Execute(context.Background(), "list_dates", nil)
	if err != nil {
		t.Fatalf("list_dates failed: %v", err)
	}

	payload := result.(map[string]any)
	dates := payload["dates"].([]string)
	if len(dates) != 1 || dates[0] != "2026-02-19" {
		t.Errorf("expected only populated dates, got %v", dates)
	}
	counts := payload["counts"].(map[string]int)
	if len(counts) != 1 || counts["2026-02-19"] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

func TestGetPaper(t *testing.T) {
	reg := testRegistry(t)

	result, err := reg.Execute(context.Background(), "get_paper", map[string]any{
		"id": "2501.00001",
	})
	if err != nil {
		t.Fatalf("get_paper failed: %v", err)
	}

	payload := result.(map[string]any)
	paper := payload["paper"].(paperPayload)
	if paper.Title != "Efficient Transformer Training" {
		t.Errorf("unexpected paper: %+v", paper)
	}
	if payload["summary_en"] != "Faster training." || payload["summary_zh"] != "更快的训练。" {
		t.Errorf("expected both summaries, got %v / %v", payload["summary_en"], payload["summary_zh"])
	}
}

func TestGetPaper_NotFound(t *testing.T) {
	reg := testRegistry(t)

	_, err := reg.Execute(context.Background(), "get_paper", map[string]any{"id": "0000.00000"})
	if !errors.Is(err, ErrPaperNotFound) {
		t.Errorf("expected ErrPaperNotFound, got %v", err)
	}

	_, err = reg.Execute(context.Background(), "get_paper", map[string]any{})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest for missing id, got %v", err)
	}
}

func TestDailyOverview(t *testing.T) {
	reg := testRegistry(t)

	result, err := reg.Execute(context.Background(), "daily_overview", map[string]any{
		"date": "2026-02-19",
	})
	if err != nil {
		t.Fatalf("daily_overview failed: %v", err)
	}

	overview := result.(map[string]any)["overview"].(map[string]any)
	blocks := overview["blocks"].([]map[string]any)
	if len(blocks) != 1 || blocks[0]["heading"] != "Key Findings" {
		t.Errorf("unexpected blocks: %+v", blocks)
	}

	// A date without a summary yields a nil overview, not an error.
	result, err = reg.Execute(context.Background(), "daily_overview", map[string]any{
		"date": "2026-02-18",
	})
	if err != nil {
		t.Fatalf("daily_overview failed: %v", err)
	}
	if result.(map[string]any)["overview"] != nil {
		t.Errorf("expected nil overview, got %v", result)
	}
}

// ============================================================
// Tests for the MCP protocol surface
// ============================================================

func TestHandleRequest_Initialize(t *testing.T) {
	reg := testRegistry(t)

	resp := reg.HandleRequest(context.Background(), MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "initialize",
	})

	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	result := resp.Result.(map[string]any)
	info := result["serverInfo"].(map[string]any)
	if info["name"] != "test-archive" {
		t.Errorf("unexpected server info: %v", info)
	}
}

func TestHandleRequest_ToolsList(t *testing.T) {
	reg := testRegistry(t)

	resp := reg.HandleRequest(context.Background(), MCPRequest{
		JSONRPC: "2.0",
		ID:      2,
		Method:  "tools/list",
	})

	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	tools := resp.Result.(map[string]any)["tools"].([]map[string]any)
	if len(tools) != 4 {
		t.Errorf("expected 4 tools, got %d", len(tools))
	}
}

func TestHandleRequest_ToolsCall(t *testing.T) {
	reg := testRegistry(t)

	params, _ := json.Marshal(map[string]any{
		"name":      "search_papers",
		"arguments": map[string]any{"query": "diffusion"},
	})
	resp := reg.HandleRequest(context.Background(), MCPRequest{
		JSONRPC: "2.0",
		ID:      3,
		Method:  "tools/call",
		Params:  params,
	})

	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	if resp.Result.(map[string]any)["count"] != 1 {
		t.Errorf("expected 1 result, got %v", resp.Result)
	}
}

func TestHandleRequest_ErrorCodes(t *testing.T) {
	reg := testRegistry(t)
	ctx := context.Background()

	resp := reg.HandleRequest(ctx, MCPRequest{JSONRPC: "2.0", ID: 4, Method: "bogus/method"})
	if resp.Error == nil || resp.Error.Code != ErrCodeMethodNotFound {
		t.Errorf("expected method-not-found, got %+v", resp.Error)
	}

	params, _ := json.Marshal(map[string]any{"name": "nope"})
	resp = reg.HandleRequest(ctx, MCPRequest{JSONRPC: "2.0", ID: 5, Method: "tools/call", Params: params})
	if resp.Error == nil || resp.Error.Code != ErrCodeToolNotFound {
		t.Errorf("expected tool-not-found, got %+v", resp.Error)
	}

	params, _ = json.Marshal(map[string]any{
		"name":      "get_paper",
		"arguments": map[string]any{"id": "0000.00000"},
	})
	resp = reg.HandleRequest(ctx, MCPRequest{JSONRPC: "2.0", ID: 6, Method: "tools/call", Params: params})
	if resp.Error == nil || resp.Error.Code != ErrCodePaperNotFound {
		t.Errorf("expected paper-not-found, got %+v", resp.Error)
	}
}

// ============================================================
// Tests for transports
// ============================================================

func TestServeStream(t *testing.T) {
	reg := testRegistry(t)

	var in bytes.Buffer
	in.WriteString(`{"jsonrpc":"2.0","id":1,"method":"initialize"}` + "\n")
	in.WriteString(`not json` + "\n")
	in.WriteString(`{"jsonrpc":"2.0","id":2,"method":"tools/list"}` + "\n")

	var out bytes.Buffer
	if err := serveStream(context.Background(), reg, &in, &out); err != nil {
		t.Fatalf("serveStream failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 responses, got %d", len(lines))
	}

	var second MCPResponse
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if second.Error == nil || second.Error.Code != ErrCodeParseError {
		t.Errorf("expected parse error for bad input, got %+v", second.Error)
	}

	var third MCPResponse
	if err := json.Unmarshal([]byte(lines[2]), &third); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if third.Error != nil {
		t.Errorf("unexpected error: %+v", third.Error)
	}
}

func TestServeHTTP(t *testing.T) {
	reg := testRegistry(t)
	srv := httptest.NewServer(ServeHTTP(reg))
	defer srv.Close()

	body := `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`
	resp, err := http.Post(srv.URL, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()

	var mcpResp MCPResponse
	if err := json.NewDecoder(resp.Body).Decode(&mcpResp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if mcpResp.Error != nil {
		t.Errorf("unexpected error: %+v", mcpResp.Error)
	}

	// Non-POST is rejected.
	getResp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	getResp.Body.Close()
	if getResp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", getResp.StatusCode)
	}
}

func TestServeSSE(t *testing.T) {
	reg := testRegistry(t)
	srv := httptest.NewServer(ServeSSE(reg))
	defer srv.Close()

	body := `{"jsonrpc":"2.0","id":1,"method":"initialize"}`
	resp, err := http.Post(srv.URL, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("expected SSE content type, got %q", ct)
	}

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "event: message\n") {
		t.Errorf("expected message event, got %q", buf.String())
	}
}
