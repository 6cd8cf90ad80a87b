package kernels

// MatMul computes dst = a × b for row-major matrices, where a is m×k, b is
// k×n and dst is m×n. dst must have length m*n and must not alias a or b.
func MatMul(dst, a, b []float64, m, k, n int) {
	active().MatMul(dst, a, b, m, k, n)
}

// Sum returns the sum of all elements in data.
func Sum(data []float64) float64 {
	return active().Sum(data)
}

// HashUpdate folds data into the DJB2 state h and returns the new state.
func HashUpdate(h uint64, data []byte) uint64 {
	return active().HashUpdate(h, data)
}

// CountSubstr returns the number of (possibly overlapping) occurrences of
// pattern in text.
func CountSubstr(text, pattern []byte) int {
	return active().CountSubstr(text, pattern)
}

// CopyBytes copies src into dst. Both slices must have equal length and must
// not overlap.
func CopyBytes(dst, src []byte) {
	active().CopyBytes(dst, src)
}

// PolyEval evaluates the polynomial with the given coefficients (coeffs[i]
// is the coefficient of x^i) at x.
func PolyEval(x float64, coeffs []float64) float64 {
	return active().PolyEval(x, coeffs)
}
