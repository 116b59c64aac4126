package search

import (
	"reflect"
	"testing"
)

// ============================================================
// Tests for query normalization
// ============================================================

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"Transformer", "transformer"},
		{"  Mixed CASE query \t", "mixed case query"},
	}

	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTerms(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"one", []string{"one"}},
		{"two  terms", []string{"two", "terms"}},
		{"a 1 42", []string{"a", "1", "42"}},
	}

	for _, tc := range cases {
		got := Terms(tc.in)
		if len(got) == 0 && len(tc.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Terms(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPrefixQuery(t *testing.T) {
	got := PrefixQuery([]string{"transformer", "scaling"})
	if got != "+transformer* +scaling*" {
		t.Errorf("unexpected prefix query: %q", got)
	}

	// Single-character and purely numeric terms are expanded like any other.
	got = PrefixQuery([]string{"a", "2501"})
	if got != "+a* +2501*" {
		t.Errorf("unexpected prefix query: %q", got)
	}
}
