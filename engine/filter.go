package engine

import (
	"strings"

	"github.com/jonwraymond/paperarchive/corpus"
	"github.com/jonwraymond/paperarchive/search"
)

// filter applies the three predicates in order (date, author, text) with
// short-circuit AND semantics, returning survivors in corpus order.
func (e *Engine) filter(state FilterState) []*corpus.Paper {
	author := strings.ToLower(strings.TrimSpace(state.Author))
	match := search.PlanText(e.idx, state.Query)

	var out []*corpus.Paper
	for i := range e.snap.Papers {
		p := &e.snap.Papers[i]

		if state.Date != "" && p.Date != state.Date {
			continue
		}
		if author != "" && !strings.Contains(strings.ToLower(p.AuthorsJoined()), author) {
			continue
		}
		switch match.Mode {
		case search.MatchAll:
		case search.MatchCandidates:
			if !match.Contains(p.PaperID) {
				continue
			}
		default:
			if !strings.Contains(p.SearchText(), match.Needle) {
				continue
			}
		}

		out = append(out, p)
	}
	return out
}
