package engine

import (
	"regexp"
	"strings"

	"github.com/jonwraymond/paperarchive/corpus"
)

// BlockKind classifies one parsed overview block.
type BlockKind string

const (
	// BlockParagraphs is free-form body text, one paragraph per line.
	BlockParagraphs BlockKind = "paragraphs"

	// BlockUnordered is a bulleted list ("- " markers, stripped).
	BlockUnordered BlockKind = "unordered"

	// BlockOrdered is a numbered list ("<digits>. " markers, stripped).
	BlockOrdered BlockKind = "ordered"

	// BlockHeading is a heading with no body lines.
	BlockHeading BlockKind = "heading"
)

// Block is one displayable section of a daily overview.
type Block struct {
	Heading string
	Kind    BlockKind
	Items   []string
}

// Overview is the resolved, parsed daily summary for the current
// selection.
type Overview struct {
	Date        string
	Source      string
	Model       string
	GeneratedAt string
	Blocks      []Block
}

// overviewFor resolves the active daily summary for the selected date.
// Resolution order: with no selection, the snapshot's default summary;
// otherwise the per-date map, then a single summary whose own date matches.
// Empty content suppresses the overview entirely.
func (e *Engine) overviewFor(selected string) *Overview {
	var ds *corpus.DailySummary
	if selected == "" {
		ds = e.snap.DailySummary
	} else if s, ok := e.snap.DailySummaries[selected]; ok {
		ds = &s
	} else if e.snap.DailySummary != nil && e.snap.DailySummary.Date == selected {
		ds = e.snap.DailySummary
	}
	if ds == nil {
		return nil
	}

	content := strings.TrimSpace(ds.Content)
	if content == "" {
		return nil
	}

	return &Overview{
		Date:        ds.Date,
		Source:      ds.Source,
		Model:       ds.Model,
		GeneratedAt: ds.GeneratedAt,
		Blocks:      ParseBlocks(content),
	}
}

var orderedItemRE = regexp.MustCompile(`^\d+\.\s+`)

// ParseBlocks splits overview content on blank lines into display blocks.
// Within each chunk the first non-blank line is the heading; the body is
// classified as an unordered list when every line carries a "- " marker,
// an ordered list when every line carries a "<digits>. " marker, and plain
// paragraphs otherwise.
func ParseBlocks(content string) []Block {
	var blocks []Block
	for _, chunk := range splitChunks(content) {
		heading := chunk[0]
		body := chunk[1:]
		if len(body) == 0 {
			blocks = append(blocks, Block{Heading: heading, Kind: BlockHeading})
			continue
		}
		blocks = append(blocks, Block{
			Heading: heading,
			Kind:    classifyBody(body),
			Items:   stripMarkers(body),
		})
	}
	return blocks
}

// splitChunks groups trimmed lines into runs separated by blank lines.
func splitChunks(content string) [][]string {
	var chunks [][]string
	var current []string
	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			if len(current) > 0 {
				chunks = append(chunks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	return chunks
}

func classifyBody(body []string) BlockKind {
	unordered, ordered := true, true
	for _, line := range body {
		if !strings.HasPrefix(line, "- ") {
			unordered = false
		}
		if !orderedItemRE.MatchString(line) {
			ordered = false
		}
	}
	switch {
	case unordered:
		return BlockUnordered
	case ordered:
		return BlockOrdered
	default:
		return BlockParagraphs
	}
}

func stripMarkers(body []string) []string {
	kind := classifyBody(body)
	items := make([]string, len(body))
	for i, line := range body {
		switch kind {
		case BlockUnordered:
			items[i] = strings.TrimPrefix(line, "- ")
		case BlockOrdered:
			items[i] = orderedItemRE.ReplaceAllString(line, "")
		default:
			items[i] = line
		}
	}
	return items
}
