package index

import (
	"errors"
	"fmt"

	"github.com/blevesearch/bleve/v2"

	"github.com/jonwraymond/paperarchive/corpus"
)

// Sentinel errors for index operations.
var (
	// ErrEmptyIndex is returned by Query when the index holds no documents.
	ErrEmptyIndex = errors.New("search index is empty")
)

// PaperIndex is an immutable in-memory full-text index over search
// documents, keyed by document id. Safe for concurrent queries.
type PaperIndex struct {
	idx  bleve.Index
	docs int
}

// Build constructs the index from the snapshot's search documents. The
// searchable fields are title, authors, abstract, summary_en and
// summary_zh. Documents with an empty id are skipped. An empty input list
// is valid and yields an index that matches nothing.
func Build(docs []corpus.SearchDocument) (*PaperIndex, error) {
	mapping := bleve.NewIndexMapping()
	idx, err := bleve.NewMemOnly(mapping)
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	batch := idx.NewBatch()
	indexed := 0
	for _, doc := range docs {
		if doc.ID == "" {
			continue
		}
		fields := map[string]any{
			"title":      doc.Title,
			"authors":    doc.Authors,
			"abstract":   doc.Abstract,
			"summary_en": doc.SummaryEN,
			"summary_zh": doc.SummaryZH,
		}
		if err := batch.Index(doc.ID, fields); err != nil {
			return nil, fmt.Errorf("index document %s: %w", doc.ID, err)
		}
		indexed++
	}
	if indexed > 0 {
		if err := idx.Batch(batch); err != nil {
			return nil, fmt.Errorf("apply batch: %w", err)
		}
	}

	return &PaperIndex{idx: idx, docs: indexed}, nil
}

// Query executes a bleve query string and returns all matching document
// ids. Parse and execution failures are returned to the caller; the query
// planner absorbs them into its fallback path. Querying an empty or nil
// index returns ErrEmptyIndex.
func (p *PaperIndex) Query(q string) ([]string, error) {
	if p == nil || p.docs == 0 {
		return nil, ErrEmptyIndex
	}

	query := bleve.NewQueryStringQuery(q)
	req := bleve.NewSearchRequestOptions(query, p.docs, 0, false)
	res, err := p.idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", q, err)
	}

	ids := make([]string, 0, len(res.Hits))
	for _, hit := range res.Hits {
		ids = append(ids, hit.ID)
	}
	return ids, nil
}

// DocCount returns the number of indexed documents.
func (p *PaperIndex) DocCount() int {
	if p == nil {
		return 0
	}
	return p.docs
}

// Close releases the underlying index resources.
func (p *PaperIndex) Close() error {
	if p == nil || p.idx == nil {
		return nil
	}
	return p.idx.Close()
}
