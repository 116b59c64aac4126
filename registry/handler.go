package registry

import (
	"context"
	"fmt"

	"github.com/jonwraymond/paperarchive/corpus"
	"github.com/jonwraymond/paperarchive/engine"
)

// ToolHandler executes a tool with arguments parsed from the MCP request.
// It returns the result as any (typically a map or struct) and an error if
// execution fails.
type ToolHandler func(ctx context.Context, args map[string]any) (any, error)

func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

// intArg tolerates JSON numbers arriving as float64.
func intArg(args map[string]any, key string) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func languageArg(args map[string]any, key string) corpus.Language {
	if stringArg(args, key) == string(corpus.LangZH) {
		return corpus.LangZH
	}
	return corpus.LangEN
}

type paperPayload struct {
	Date        string   `json:"date"`
	PaperID     string   `json:"paper_id"`
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	Abstract    string   `json:"abstract,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	HFURL       string   `json:"hf_url,omitempty"`
	ArxivURL    string   `json:"arxiv_url,omitempty"`
	ArxivPDFURL string   `json:"arxiv_pdf_url,omitempty"`
	GithubURL   string   `json:"github_url,omitempty"`
	Upvotes     int      `json:"upvotes"`
}

func toPaperPayload(p *corpus.Paper, lang corpus.Language) paperPayload {
	return paperPayload{
		Date:        p.Date,
		PaperID:     p.PaperID,
		Title:       p.Title,
		Authors:     p.Authors,
		Abstract:    p.Abstract,
		Summary:     p.Summary(lang),
		HFURL:       p.HFURL,
		ArxivURL:    p.ArxivURL,
		ArxivPDFURL: p.PDFURL(),
		GithubURL:   p.GitHubURL,
		Upvotes:     p.Upvotes,
	}
}

type groupPayload struct {
	Date   string         `json:"date"`
	Papers []paperPayload `json:"papers"`
}

type navPayload struct {
	Selected    string `json:"selected,omitempty"`
	PrevEnabled bool   `json:"prev_enabled"`
	PrevDate    string `json:"prev_date,omitempty"`
	NextEnabled bool   `json:"next_enabled"`
	NextDate    string `json:"next_date,omitempty"`
}

func toNavPayload(nav engine.Navigation) navPayload {
	return navPayload{
		Selected:    nav.SelectedDate,
		PrevEnabled: nav.PrevEnabled,
		PrevDate:    nav.PrevDate,
		NextEnabled: nav.NextEnabled,
		NextDate:    nav.NextDate,
	}
}

func (r *Registry) handleSearchPapers(ctx context.Context, args map[string]any) (any, error) {
	state := engine.FilterState{
		Query:  stringArg(args, "query"),
		Date:   stringArg(args, "date"),
		Author: stringArg(args, "author"),
		Lang:   languageArg(args, "lang"),
	}
	limit := intArg(args, "limit")
	if limit <= 0 {
		limit = r.config.DefaultLimit
	}

	view := r.eng.Recompute(state)

	remaining := view.ResultCount
	if limit > 0 && limit < remaining {
		remaining = limit
	}

	groups := make([]groupPayload, 0, len(view.Groups))
	for _, g := range view.Groups {
		if remaining == 0 {
			break
		}
		papers := g.Papers
		if len(papers) > remaining {
			papers = papers[:remaining]
		}
		gp := groupPayload{Date: g.Date, Papers: make([]paperPayload, 0, len(papers))}
		for _, p := range papers {
			gp.Papers = append(gp.Papers, toPaperPayload(p, state.Lang))
		}
		groups = append(groups, gp)
		remaining -= len(papers)
	}

	return map[string]any{
		"count":        view.ResultCount,
		"dates":        view.VisibleDates,
		"groups":       groups,
		"nav":          toNavPayload(view.Nav),
		"generated_at": view.GeneratedAt,
	}, nil
}

func (r *Registry) handleListDates(ctx context.Context, args map[string]any) (any, error) {
	// Visible dates and counts come from the unfiltered view: the date
	// index restricted to days that actually hold papers.
	all := r.eng.Recompute(engine.FilterState{})

	counts := make(map[string]int, len(all.Groups))
	for _, g := range all.Groups {
		counts[g.Date] = len(g.Papers)
	}

	nav := r.eng.Recompute(engine.FilterState{Date: stringArg(args, "date")}).Nav
	return map[string]any{
		"dates":  all.VisibleDates,
		"counts": counts,
		"nav":    toNavPayload(nav),
	}, nil
}

func (r *Registry) handleGetPaper(ctx context.Context, args map[string]any) (any, error) {
	id := stringArg(args, "id")
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidRequest)
	}

	p := r.eng.Snapshot().PaperByID(id)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrPaperNotFound, id)
	}

	payload := toPaperPayload(p, languageArg(args, "lang"))
	payload.Summary = "" // full record carries both summaries explicitly
	return map[string]any{
		"paper":      payload,
		"summary_en": p.SummaryEN,
		"summary_zh": p.SummaryZH,
	}, nil
}

func (r *Registry) handleDailyOverview(ctx context.Context, args map[string]any) (any, error) {
	view := r.eng.Recompute(engine.FilterState{Date: stringArg(args, "date")})
	if view.Overview == nil {
		return map[string]any{"overview": nil}, nil
	}

	ov := view.Overview
	blocks := make([]map[string]any, 0, len(ov.Blocks))
	for _, b := range ov.Blocks {
		blocks = append(blocks, map[string]any{
			"heading": b.Heading,
			"kind":    string(b.Kind),
			"items":   b.Items,
		})
	}

	return map[string]any{
		"overview": map[string]any{
			"date":         ov.Date,
			"source":       ov.Source,
			"model":        ov.Model,
			"generated_at": ov.GeneratedAt,
			"blocks":       blocks,
		},
	}, nil
}
