package generic

// Sum returns the sum of all elements in data.
// Returns 0 for an empty slice.
func Sum(data []float64) float64 {
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum
}
