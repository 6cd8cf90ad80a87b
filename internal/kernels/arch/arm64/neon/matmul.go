//go:build arm64 && !purego

package neon

import "math"

// MatMul computes dst = a × b for row-major matrices, where a is m×k, b is
// k×n and dst is m×n.
//
// The inner loop accumulates two adjacent k-terms per step in separate
// lanes using fused multiply-add (the vfmaq contract: one rounding per
// term), reduces the lanes horizontally at the end of the row, and adds the
// odd leftover term last. The fusing makes this variant round differently
// from both the scalar and the SSE2-shaped one.
func MatMul(dst, a, b []float64, m, k, n int) {
	for i := 0; i < m; i++ {
		row := a[i*k : i*k+k]
		for j := 0; j < n; j++ {
			var s0, s1 float64
			p := 0
			for ; p+1 < k; p += 2 {
				s0 = math.FMA(row[p], b[p*n+j], s0)
				s1 = math.FMA(row[p+1], b[(p+1)*n+j], s1)
			}
			sum := s0 + s1
			if p < k {
				sum += row[p] * b[p*n+j]
			}
			dst[i*n+j] = sum
		}
	}
}
