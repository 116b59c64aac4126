// Package corpus defines the immutable data model for a paper-archive
// snapshot and loads the static artifacts produced by the archive pipeline.
//
// A snapshot bundles everything the retrieval engine needs: the ordered
// paper records, the authoritative newest-first date index, the flat search
// documents, and the daily overview summaries. The pipeline delivers these
// as two JSON files per corpus directory:
//
//   - index.json: generated_at, count, dates, daily_summary,
//     daily_summaries, papers
//   - search_index.json: flat list of search documents
//
// Load a corpus directory:
//
//	snap, err := corpus.LoadSnapshot("data")
//	if err != nil {
//	    // index.json missing or malformed
//	}
//
// Snapshots are read-only after loading. The engine references papers in
// place and never copies or mutates them.
package corpus
