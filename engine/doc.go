// Package engine is the retrieval and presentation core of the paper
// archive.
//
// An Engine wraps one immutable corpus snapshot plus its full-text index
// and derives the complete visible state for a caller-owned FilterState:
//
//	eng, err := engine.New(snap, engine.Options{})
//	view := eng.Recompute(engine.FilterState{Query: "transformer"})
//
// Recompute is a pure function of (snapshot, FilterState). It composes
// three short-circuiting predicates (date equality, author substring, text
// match), ranks survivors by upvotes desc / date desc / paper id asc,
// groups them by date in the snapshot's newest-first date order, derives
// previous/next day navigation state, and resolves the active daily
// overview. Identical inputs always yield identical output; the engine
// memoizes the most recent (snapshot fingerprint, FilterState) pair, but
// correctness never depends on the cache.
//
// Nothing in the recompute path returns an error: index failures degrade to
// substring scans, unknown dates behave as "no selection", and missing
// summaries simply yield no overview.
package engine
