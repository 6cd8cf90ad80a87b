//go:build arm64 && !purego

package neon

import "bytes"

// CountSubstr returns the number of occurrences of pattern in text, counting
// overlapping matches. An empty pattern or a pattern longer than the text
// yields 0.
//
// Blocks of 16 candidate positions are screened with a single any-hit test
// on the pattern's first byte (the vmaxvq shape: NEON has no movemask);
// blocks with at least one hit are verified position by position. Positions
// past the last whole block are handled by the scalar tail up to
// limit = len(text)-len(pattern)+1.
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
		anyHit := false
		for lane := 0; lane < 16; lane++ {
			if text[i+lane] == first {
				anyHit = true
				break
			}
		}
		if !anyHit {
			continue
		}
		for lane := 0; lane < 16; lane++ {
			pos := i + lane
			if text[pos] == first && bytes.Equal(text[pos:pos+m], pattern) {
				count++
			}
		}
	}
	for ; i < limit; i++ {
		if bytes.Equal(text[i:i+m], pattern) {
			count++
		}
	}
	return count
}
