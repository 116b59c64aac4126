package corpus

import "regexp"

var arxivIDRE = regexp.MustCompile(`(\d{4}\.\d{4,5}(?:v\d+)?)`)

// ArxivPDFURL derives the canonical PDF link from an arXiv URL. Returns ""
// when no arXiv identifier can be found, meaning "not available".
func ArxivPDFURL(arxivURL string) string {
	m := arxivIDRE.FindStringSubmatch(arxivURL)
	if m == nil {
		return ""
	}
	return "https://arxiv.org/pdf/" + m[1]
}
