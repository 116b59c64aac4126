// Package search turns raw user query text into a structured text-match
// plan against the full-text index.
//
// The planner normalizes the input (trim + lowercase), splits it into
// whitespace-delimited terms, and builds a query string where every term is
// a required prefix match ("+term*"). The outcome is an explicit two-stage
// TextMatch value rather than an error path:
//
//   - MatchAll: the query was empty, every paper passes.
//   - MatchCandidates: the index returned a non-empty candidate set, which
//     is authoritative.
//   - MatchSubstring: the index was empty, the query failed to parse, or it
//     returned zero hits; papers are tested by substring against their
//     concatenated text using the original normalized query.
//
// No minimum term length is enforced: single-character and purely numeric
// terms are prefix-expanded like any other.
//
// The package also fingerprints search documents so callers can detect
// snapshot identity for memoization.
package search
