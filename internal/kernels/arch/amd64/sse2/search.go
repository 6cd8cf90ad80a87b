//go:build amd64 && !purego

package sse2

import (
	"bytes"
	"math/bits"
)

// CountSubstr returns the number of occurrences of pattern in text, counting
// overlapping matches. An empty pattern or a pattern longer than the text
// yields 0.
//
// Candidate positions are screened 16 at a time by comparing the pattern's
// first byte across the block and walking the resulting bit mask; each
// candidate is confirmed with a full comparison, so the pre-filter can never
// change the count. Positions past the last whole block are handled by the
// scalar tail up to limit = len(text)-len(pattern)+1.
func CountSubstr(text, pattern []byte) int {
	n, m := len(text), len(pattern)
	if m == 0 || m > n {
		return 0
	}

	limit := n - m + 1
	first := pattern[0]
	count := 0

	i := 0
	for ; i+16 <= limit; i += 16 {
		var mask uint16
		for lane := 0; lane < 16; lane++ {
			if text[i+lane] == first {
				mask |= 1 << lane
			}
		}
		for mask != 0 {
			lane := bits.TrailingZeros16(mask)
			if bytes.Equal(text[i+lane:i+lane+m], pattern) {
				count++
			}
			mask &= mask - 1
		}
	}
	for ; i < limit; i++ {
		if bytes.Equal(text[i:i+m], pattern) {
			count++
		}
	}
	return count
}
