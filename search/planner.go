package search

import "strings"

// Normalize trims surrounding whitespace and lowercases a raw query.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Terms splits a normalized query on runs of whitespace, dropping empties.
func Terms(normalized string) []string {
	return strings.Fields(normalized)
}

// PrefixQuery renders terms as a query string where every term is a
// required prefix match: "+term*". All terms are ANDed by the index's
// default combinator.
func PrefixQuery(terms []string) string {
	parts := make([]string, len(terms))
	for i, term := range terms {
		parts[i] = "+" + term + "*"
	}
	return strings.Join(parts, " ")
}
