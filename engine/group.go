package engine

import "github.com/jonwraymond/paperarchive/corpus"

// groupByDate partitions ranked papers by date. Group order follows the
// snapshot's date index (newest first), never the ranked list's insertion
// order, so dates with zero matches drop out without perturbing neighbors.
// The date index is authoritative: it is supplied by the pipeline and
// covers every paper date in a well-formed snapshot.
func groupByDate(ranked []*corpus.Paper, dates []string) ([]DateGroup, []string) {
	byDate := make(map[string][]*corpus.Paper, len(dates))
	for _, p := range ranked {
		byDate[p.Date] = append(byDate[p.Date], p)
	}

	groups := make([]DateGroup, 0, len(byDate))
	visible := make([]string, 0, len(byDate))
	for _, date := range dates {
		papers, ok := byDate[date]
		if !ok {
			continue
		}
		groups = append(groups, DateGroup{Date: date, Papers: papers})
		visible = append(visible, date)
	}

	return groups, visible
}

func indexOfDate(dates []string, date string) int {
	for i, d := range dates {
		if d == date {
			return i
		}
	}
	return -1
}
