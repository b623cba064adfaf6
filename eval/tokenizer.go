package eval

import "strings"

// punctCutset is trimmed from token edges when punctuation stripping is on.
const punctCutset = ".,;:!?\"'()[]"

// tokenSet is a normalized bag-of-words view of an evidence span.
type tokenSet map[string]struct{}

// tokenize lowercases s, splits it on whitespace, and collapses duplicates.
// With stripPunct set, leading and trailing punctuation is trimmed from each
// token; interior punctuation (hyphens, apostrophes) is left alone. The same
// rule is applied to predicted and gold spans. Empty input yields an empty
// set.
func tokenize(s string, stripPunct bool) tokenSet {
	set := make(tokenSet)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		if stripPunct {
			w = strings.Trim(w, punctCutset)
		}
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

// jaccard computes |A ∩ B| / |A ∪ B| over two token sets. Two empty sets
// score 0.0 so blank spans can never form a match.
func jaccard(a, b tokenSet) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0.0
	}
	intersection := 0
	for t := range a {
		if _, ok := b[t]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}
