// Package index builds the in-memory full-text index over a snapshot's
// search documents.
//
// The index is backed by bleve and is constructed exactly once per corpus
// snapshot; queries never rebuild it. It is opaque to callers: the only
// query surface is a bleve query string that returns matching document ids.
//
// Build and query:
//
//	idx, err := index.Build(snap.SearchDocs)
//	if err != nil {
//	    // construction failure, engine falls back to substring scans
//	}
//	ids, err := idx.Query("+transformer* +scaling*")
//
// An index built from an empty document list matches nothing; Query on it
// returns ErrEmptyIndex so the query planner can select its fallback path.
// Construction never mutates the input documents.
package index
