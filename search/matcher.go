package search

import "strings"

// Mode indicates which stage of the text-match plan applies.
type Mode int

const (
	// MatchAll passes every paper; the query was empty.
	MatchAll Mode = iota

	// MatchCandidates restricts papers to the index's candidate set.
	MatchCandidates

	// MatchSubstring is the degraded path: substring test against the
	// paper's concatenated lowercased text.
	MatchSubstring
)

// Index is the query surface the planner needs from the full-text index.
type Index interface {
	Query(q string) ([]string, error)
	DocCount() int
}

// TextMatch is the outcome of planning one query against one index. The
// candidate set, when present, is authoritative: only candidate ids pass.
type TextMatch struct {
	Mode       Mode
	candidates map[string]struct{}

	// Needle is the original normalized query, used verbatim by the
	// substring stage (not the term-split form).
	Needle string
}

// Contains reports candidate-set membership. Only meaningful in
// MatchCandidates mode.
func (m TextMatch) Contains(id string) bool {
	_, ok := m.candidates[id]
	return ok
}

// Allows reports whether a paper passes the text predicate. searchText must
// be the paper's lowercased concatenated text.
func (m TextMatch) Allows(id, searchText string) bool {
	switch m.Mode {
	case MatchAll:
		return true
	case MatchCandidates:
		return m.Contains(id)
	default:
		return strings.Contains(searchText, m.Needle)
	}
}

// PlanText builds the text-match plan for a raw query. Index failures of
// any kind (empty index, query parse error, execution error, zero hits)
// degrade to the substring stage and are never surfaced.
func PlanText(idx Index, raw string) TextMatch {
	normalized := Normalize(raw)
	if normalized == "" {
		return TextMatch{Mode: MatchAll}
	}
	terms := Terms(normalized)
	if len(terms) == 0 {
		return TextMatch{Mode: MatchAll}
	}

	fallback := TextMatch{Mode: MatchSubstring, Needle: normalized}
	if idx == nil || idx.DocCount() == 0 {
		return fallback
	}

	ids, err := idx.Query(PrefixQuery(terms))
	if err != nil || len(ids) == 0 {
		return fallback
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return TextMatch{Mode: MatchCandidates, candidates: set, Needle: normalized}
}
