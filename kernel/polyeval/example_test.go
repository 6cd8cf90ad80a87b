package polyeval_test

import (
	"fmt"

	"github.com/cwbudde/algo-bench/kernel/polyeval"
)

func ExampleEval() {
	// 2 + 3x + x^3 at x = 2
	coeffs := []float64{2, 3, 0, 1}
	fmt.Printf("%.0f\n", polyeval.Eval(2, coeffs))

	// Output:
	// 16
}
