package corpus

import "strings"

// Language selects which summary text a paper displays.
type Language string

const (
	// LangEN selects the English summary.
	LangEN Language = "en"

	// LangZH selects the Chinese summary.
	LangZH Language = "zh"
)

// Paper is one archived research-paper record. Field names mirror the
// pipeline's JSON artifacts. PaperID is unique within a snapshot; Date is
// not (many papers share a day).
type Paper struct {
	Date        string   `json:"date"`
	PaperID     string   `json:"paper_id"`
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	Abstract    string   `json:"abstract"`
	SummaryEN   string   `json:"summary_en"`
	SummaryZH   string   `json:"summary_zh"`
	HFURL       string   `json:"hf_url"`
	ArxivURL    string   `json:"arxiv_url"`
	ArxivPDFURL string   `json:"arxiv_pdf_url"`
	GitHubURL   string   `json:"github_url"`
	Upvotes     int      `json:"upvotes"`
	FetchedAt   string   `json:"fetched_at"`
}

// AuthorsJoined returns the authors as a single space-joined string,
// matching the shape the pipeline writes into search documents.
func (p *Paper) AuthorsJoined() string {
	return strings.Join(p.Authors, " ")
}

// Summary returns the display summary for the given language, falling back
// to the other language and finally the abstract when a translation is
// missing.
func (p *Paper) Summary(lang Language) string {
	if lang == LangZH {
		if p.SummaryZH != "" {
			return p.SummaryZH
		}
		if p.SummaryEN != "" {
			return p.SummaryEN
		}
		return p.Abstract
	}
	if p.SummaryEN != "" {
		return p.SummaryEN
	}
	if p.SummaryZH != "" {
		return p.SummaryZH
	}
	return p.Abstract
}

// SearchText returns the lowercased concatenation of all text-searchable
// fields. The substring fallback matcher tests against this.
func (p *Paper) SearchText() string {
	return strings.ToLower(strings.Join([]string{
		p.Title,
		p.AuthorsJoined(),
		p.Abstract,
		p.SummaryEN,
		p.SummaryZH,
	}, " "))
}

// PDFURL returns the paper's PDF link, deriving one from the arXiv URL when
// the pipeline did not supply it.
func (p *Paper) PDFURL() string {
	if p.ArxivPDFURL != "" {
		return p.ArxivPDFURL
	}
	return ArxivPDFURL(p.ArxivURL)
}

// SearchDocument is the denormalized, text-only projection of a paper used
// to build the full-text index. Authors is a single joined string. A
// document's ID mirrors the paper's PaperID, best effort: the engine
// tolerates papers missing from the document list and vice versa.
type SearchDocument struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Title     string `json:"title"`
	Authors   string `json:"authors"`
	Abstract  string `json:"abstract"`
	SummaryEN string `json:"summary_en"`
	SummaryZH string `json:"summary_zh"`
	Upvotes   int    `json:"upvotes"`
}

// DailySummary is a synthesized overview for one archive day.
type DailySummary struct {
	Date        string `json:"date"`
	Content     string `json:"content"`
	Source      string `json:"source"`
	Model       string `json:"model"`
	GeneratedAt string `json:"generated_at"`
}

// Snapshot is one immutable corpus generation. Dates is the authoritative
// newest-first ordering for grouping and navigation; it is supplied by the
// pipeline, not derived from the paper list.
type Snapshot struct {
	GeneratedAt    string                  `json:"generated_at"`
	Count          int                     `json:"count"`
	Dates          []string                `json:"dates"`
	DailySummary   *DailySummary           `json:"daily_summary,omitempty"`
	DailySummaries map[string]DailySummary `json:"daily_summaries,omitempty"`
	Papers         []Paper                 `json:"papers"`

	// SearchDocs comes from search_index.json, not index.json.
	SearchDocs []SearchDocument `json:"-"`
}

// PaperByID returns the paper with the given PaperID, or nil if the
// snapshot has no such paper.
func (s *Snapshot) PaperByID(id string) *Paper {
	if id == "" {
		return nil
	}
	for i := range s.Papers {
		if s.Papers[i].PaperID == id {
			return &s.Papers[i]
		}
	}
	return nil
}
