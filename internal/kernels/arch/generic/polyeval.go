package generic

// PolyEval evaluates the polynomial with the given coefficients at x, where
// coeffs[i] is the coefficient of x^i. Running-power accumulation, not
// Horner's rule: the vector variants pair the same power sequence, and the
// two forms round differently.
func PolyEval(x float64, coeffs []float64) float64 {
	result := 0.0
	power := 1.0
	for _, c := range coeffs {
		result += c * power
		power *= x
	}
	return result
}
