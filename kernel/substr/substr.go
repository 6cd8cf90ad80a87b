// Package substr counts substring occurrences, including overlapping
// ones, via the dispatched search kernel.
//
// Overlap semantics differ from bytes.Count: every starting position is
// considered, so Count("aaaa", "aa") is 3, not 2.
package substr

import "github.com/cwbudde/algo-bench/internal/kernels"

// Count returns the number of positions in text where pattern occurs,
// counting overlapping occurrences. An empty pattern or a pattern longer
// than text yields 0.
func Count(text, pattern []byte) int {
	return kernels.CountSubstr(text, pattern)
}

// CountString is Count for strings.
func CountString(text, pattern string) int {
	return kernels.CountSubstr([]byte(text), []byte(pattern))
}
