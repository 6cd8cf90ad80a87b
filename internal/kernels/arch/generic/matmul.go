package generic

// MatMul computes dst = a × b for row-major matrices, where a is m×k, b is
// k×n and dst is m×n. Plain triple loop, one k-term per step; this is the
// reference implementation all other variants are tested against.
func MatMul(dst, a, b []float64, m, k, n int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for p := 0; p < k; p++ {
				sum += a[i*k+p] * b[p*n+j]
			}
			dst[i*n+j] = sum
		}
	}
}
