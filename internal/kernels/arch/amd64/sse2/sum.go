//go:build amd64 && !purego

package sse2

// Sum returns the sum of all elements in data.
// Two-lane accumulation with a horizontal add, scalar tail for an odd
// element. Returns 0 for an empty slice.
func Sum(data []float64) float64 {
	var s0, s1 float64
	i := 0
	for ; i+1 < len(data); i += 2 {
		s0 += data[i]
		s1 += data[i+1]
	}
	sum := s0 + s1
	if i < len(data) {
		sum += data[i]
	}
	return sum
}
