package eval

import "strings"

// validEvidence reports whether span occurs verbatim (exact substring,
// case-sensitive) in the journal text. It feeds the evidence coverage
// metric only: an invalid span is still eligible for matching, so
// hallucinated evidence is measured rather than filtered.
func validEvidence(span, journalText string) bool {
	return strings.Contains(journalText, span)
}
