package generic

import "bytes"

// CountSubstr returns the number of occurrences of pattern in text, counting
// overlapping matches. An empty pattern or a pattern longer than the text
// yields 0.
func CountSubstr(text, pattern []byte) int {
	n, m := len(text), len(pattern)
	if m == 0 || m > n {
		return 0
	}

	count := 0
	for i := 0; i+m <= n; i++ {
		if bytes.Equal(text[i:i+m], pattern) {
			count++
		}
	}
	return count
}
