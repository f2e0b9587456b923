package radiogaga

import (
	"iter"
	"slices"
	"unicode"
	"unicode/utf8"
)

// FuzzyFilter yields the candidates that contain every character of query,
// in order but not necessarily adjacent, ignoring case. Matches keep their
// relative order from candidates. An empty query matches everything.
//
// The returned sequence is lazy and can be ranged over more than once.
func FuzzyFilter(query string, candidates []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, c := range candidates {
			if !fuzzyContains(c, query) {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// FuzzyMatch is FuzzyFilter collected into a slice.
func FuzzyMatch(query string, candidates []string) []string {
	return slices.Collect(FuzzyFilter(query, candidates))
}

// fuzzyContains reports whether query is a case-insensitive subsequence of s.
func fuzzyContains(s, query string) bool {
	for _, q := range query {
		found := false
		for len(s) > 0 {
			r, size := utf8.DecodeRuneInString(s)
			s = s[size:]
			if foldEqual(r, q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func foldEqual(a, b rune) bool {
	if a == b {
		return true
	}
	return unicode.ToLower(a) == unicode.ToLower(b) || unicode.ToUpper(a) == unicode.ToUpper(b)
}
