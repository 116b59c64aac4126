package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Artifact filenames written by the archive pipeline.
const (
	IndexFile       = "index.json"
	SearchIndexFile = "search_index.json"
)

// Sentinel errors for snapshot loading.
var (
	ErrNoIndex  = errors.New("corpus index not found")
	ErrBadIndex = errors.New("corpus index malformed")
)

// LoadSnapshot reads a corpus directory produced by the pipeline.
// index.json is required; a missing or unreadable search_index.json yields
// a snapshot with no search documents, which forces the engine onto its
// substring fallback path rather than failing.
func LoadSnapshot(dir string) (*Snapshot, error) {
	indexData, err := os.ReadFile(filepath.Join(dir, IndexFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoIndex, dir)
		}
		return nil, fmt.Errorf("read %s: %w", IndexFile, err)
	}

	searchData, err := os.ReadFile(filepath.Join(dir, SearchIndexFile))
	if err != nil {
		searchData = nil
	}

	return ParseSnapshot(indexData, searchData)
}

// ParseSnapshot decodes the two pipeline artifacts. searchData may be nil
// or empty; malformed search documents are dropped, not fatal, since the
// engine treats "no index" and "empty index" identically.
func ParseSnapshot(indexData, searchData []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(indexData, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadIndex, err)
	}

	if len(searchData) > 0 {
		var docs []SearchDocument
		if err := json.Unmarshal(searchData, &docs); err == nil {
			snap.SearchDocs = docs
		}
	}

	return &snap, nil
}
