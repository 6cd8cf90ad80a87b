//go:build amd64 && !purego

package sse2

// MatMul computes dst = a × b for row-major matrices, where a is m×k, b is
// k×n and dst is m×n.
//
// The inner loop accumulates two adjacent k-terms per step in separate lanes
// (multiply then add, no fusing), reduces the lanes horizontally at the end
// of the row, and adds the odd leftover term last. This is the accumulation
// order of a 2-lane SSE2 dot kernel and fixes the rounding behavior.
func MatMul(dst, a, b []float64, m, k, n int) {
	for i := 0; i < m; i++ {
		row := a[i*k : i*k+k]
		for j := 0; j < n; j++ {
			var s0, s1 float64
			p := 0
			for ; p+1 < k; p += 2 {
				s0 += row[p] * b[p*n+j]
				s1 += row[p+1] * b[(p+1)*n+j]
			}
			sum := s0 + s1
			if p < k {
				sum += row[p] * b[p*n+j]
			}
			dst[i*n+j] = sum
		}
	}
}
