package engine

import "github.com/jonwraymond/paperarchive/corpus"

// View is the derived visible state for one (snapshot, FilterState) pair.
// Papers are referenced in place from the snapshot, never copied.
type View struct {
	// Groups partitions the ranked results by date, newest first.
	Groups []DateGroup

	// VisibleDates is the snapshot's date index filtered to dates with at
	// least one surviving paper, order preserved.
	VisibleDates []string

	// ResultCount is the total number of papers across all groups.
	ResultCount int

	// Nav is the day-navigation state for the current selection.
	Nav Navigation

	// Overview is the resolved daily overview, or nil when none applies.
	Overview *Overview

	// Lang is the summary language the caller selected.
	Lang corpus.Language

	// GeneratedAt is the snapshot's generation timestamp, display-only.
	GeneratedAt string
}

// DateGroup holds one archive day's ranked papers.
type DateGroup struct {
	Date   string
	Papers []*corpus.Paper
}

// Navigation describes the previous/next day affordances relative to the
// selected date. "Previous" is chronologically earlier.
type Navigation struct {
	SelectedDate string

	PrevEnabled bool
	PrevDate    string

	NextEnabled bool
	NextDate    string
}

// Group returns the group for a date, or nil when the date has no visible
// papers.
func (v View) Group(date string) *DateGroup {
	for i := range v.Groups {
		if v.Groups[i].Date == date {
			return &v.Groups[i]
		}
	}
	return nil
}

// Papers flattens all groups into one ranked-within-date slice, preserving
// group order.
func (v View) Papers() []*corpus.Paper {
	out := make([]*corpus.Paper, 0, v.ResultCount)
	for _, g := range v.Groups {
		out = append(out, g.Papers...)
	}
	return out
}
