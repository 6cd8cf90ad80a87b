// Package polyeval evaluates polynomials given as ascending-power
// coefficient slices.
//
// Evaluation keeps an explicit running power of x instead of Horner's
// rule. That shape vectorizes as independent per-term products, which is
// what the SIMD shaped kernel variants exercise; Horner's serial
// dependency chain would not.
package polyeval

import "github.com/cwbudde/algo-bench/internal/kernels"

// Eval returns coeffs[0] + coeffs[1]*x + coeffs[2]*x^2 + ...
// An empty or nil coeffs yields 0.
func Eval(x float64, coeffs []float64) float64 {
	return kernels.PolyEval(x, coeffs)
}
