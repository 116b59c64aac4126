package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"sync"

	"github.com/jonwraymond/paperarchive/corpus"
	"github.com/jonwraymond/paperarchive/index"
	"github.com/jonwraymond/paperarchive/search"
)

// Error values for engine construction.
var (
	ErrNilSnapshot = errors.New("nil corpus snapshot")
)

// FilterState is the caller-owned selection driving recomputation. The
// zero value means: no text query, all dates, no author filter, English
// summaries.
type FilterState struct {
	// Query is free text, matched per the search package's plan.
	Query string

	// Date restricts results to one archive day (exact match). Empty
	// means all dates.
	Date string

	// Author is a substring filter over the space-joined author list,
	// case-insensitive.
	Author string

	// Lang selects which summary text entries display.
	Lang corpus.Language
}

// Options configures an Engine.
type Options struct {
	// Index is a prebuilt full-text index. If nil, New builds one from
	// the snapshot's search documents.
	Index *index.PaperIndex
}

// Engine derives views over one immutable snapshot. Safe for concurrent
// Recompute calls.
type Engine struct {
	snap        *corpus.Snapshot
	idx         *index.PaperIndex
	fingerprint string

	mu        sync.Mutex
	memoValid bool
	memoKey   memoKey
	memoView  View
}

type memoKey struct {
	fingerprint string
	state       FilterState
}

// New creates an Engine over the snapshot, building the full-text index
// once. An index construction failure is not fatal: the engine runs with
// no index and every text query takes the substring fallback path.
func New(snap *corpus.Snapshot, opts Options) (*Engine, error) {
	if snap == nil {
		return nil, ErrNilSnapshot
	}

	idx := opts.Index
	if idx == nil {
		built, err := index.Build(snap.SearchDocs)
		if err == nil {
			idx = built
		}
	}

	return &Engine{
		snap:        snap,
		idx:         idx,
		fingerprint: snapshotFingerprint(snap),
	}, nil
}

// snapshotFingerprint extends the search-document fingerprint with the
// snapshot fields Recompute reads, so two snapshots sharing search docs but
// differing in papers, dates, or summaries never collide.
func snapshotFingerprint(s *corpus.Snapshot) string {
	h := sha256.New()
	h.Write([]byte(search.Fingerprint(s.SearchDocs)))
	h.Write([]byte(s.GeneratedAt))
	h.Write([]byte{0})
	for _, d := range s.Dates {
		h.Write([]byte(d))
		h.Write([]byte{0})
	}
	for i := range s.Papers {
		p := &s.Papers[i]
		h.Write([]byte(p.PaperID))
		h.Write([]byte{0})
		h.Write([]byte(p.Date))
		h.Write([]byte{0})
		h.Write([]byte(strconv.Itoa(p.Upvotes)))
		h.Write([]byte{0})
	}
	for _, date := range s.Dates {
		if ds, ok := s.DailySummaries[date]; ok {
			h.Write([]byte(ds.Date))
			h.Write([]byte{0})
			h.Write([]byte(ds.Content))
			h.Write([]byte{0})
		}
	}
	if s.DailySummary != nil {
		h.Write([]byte(s.DailySummary.Date))
		h.Write([]byte{0})
		h.Write([]byte(s.DailySummary.Content))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Snapshot returns the engine's corpus snapshot.
func (e *Engine) Snapshot() *corpus.Snapshot { return e.snap }

// Fingerprint returns the snapshot identity used for memoization. It covers
// the search documents plus the papers, dates, and summaries the views are
// derived from.
func (e *Engine) Fingerprint() string { return e.fingerprint }

// Recompute derives the full view for the given filter state. Pure with
// respect to its inputs; the last result is cached per (snapshot
// fingerprint, FilterState) and returned on identical re-invocation.
func (e *Engine) Recompute(state FilterState) View {
	key := memoKey{fingerprint: e.fingerprint, state: state}

	e.mu.Lock()
	if e.memoValid && e.memoKey == key {
		view := e.memoView
		e.mu.Unlock()
		return view
	}
	e.mu.Unlock()

	view := e.recompute(state)

	e.mu.Lock()
	e.memoKey = key
	e.memoView = view
	e.memoValid = true
	e.mu.Unlock()

	return view
}

func (e *Engine) recompute(state FilterState) View {
	matched := e.filter(state)
	rankPapers(matched)

	groups, visibleDates := groupByDate(matched, e.snap.Dates)

	return View{
		Groups:       groups,
		VisibleDates: visibleDates,
		ResultCount:  len(matched),
		Nav:          navigationFor(e.snap.Dates, state.Date),
		Overview:     e.overviewFor(state.Date),
		Lang:         state.Lang,
		GeneratedAt:  e.snap.GeneratedAt,
	}
}
