//go:build arm64 && !purego

package neon

// PolyEval evaluates the polynomial with the given coefficients at x, where
// coeffs[i] is the coefficient of x^i.
//
// Accumulates two terms per step against paired powers (p0 = x^i, p1 =
// x^(i+1)), advancing both by x² each step, then reduces the lanes
// horizontally. Separate multiply and add per term: the original NEON
// kernel does not fuse here, unlike its matmul.
func PolyEval(x float64, coeffs []float64) float64 {
	n := len(coeffs)

	var s0, s1 float64
	p0, p1 := 1.0, x
	xx := x * x

	i := 0
	for ; i+1 < n; i += 2 {
		s0 += coeffs[i] * p0
		s1 += coeffs[i+1] * p1
		p0 *= xx
		p1 *= xx
	}
	sum := s0 + s1
	if i < n {
		sum += coeffs[i] * p0
	}
	return sum
}
