package engine

import (
	"sort"

	"github.com/jonwraymond/paperarchive/corpus"
)

// Compare totally orders two papers: upvotes descending, date descending
// (valid lexicographically for ISO dates), then paper id ascending as the
// deterministic tie-break. Returns a negative value when a ranks before b.
func Compare(a, b *corpus.Paper) int {
	if a.Upvotes != b.Upvotes {
		if a.Upvotes > b.Upvotes {
			return -1
		}
		return 1
	}
	if a.Date != b.Date {
		if a.Date > b.Date {
			return -1
		}
		return 1
	}
	switch {
	case a.PaperID < b.PaperID:
		return -1
	case a.PaperID > b.PaperID:
		return 1
	}
	return 0
}

func rankPapers(papers []*corpus.Paper) {
	sort.SliceStable(papers, func(i, j int) bool {
		return Compare(papers[i], papers[j]) < 0
	})
}
