package polyeval

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-bench/internal/testutil"
)

func TestEvalExact(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		coeffs []float64
		want   float64
	}{
		{"nil coeffs", 3, nil, 0},
		{"empty coeffs", 3, []float64{}, 0},
		{"constant", 7, []float64{5}, 5},
		{"linear", 3, []float64{1, 2}, 7},
		{"at zero", 0, []float64{4, 9, 16}, 4},
		{"quadratic odd length", 3, []float64{1, 0, 2}, 19},
		{"cubic", 2, []float64{2, 3, 0, 1}, 16},
		{"alternating at minus one", -1, []float64{1, 2, 3, 4}, -2},
		{"degree five", 2, []float64{1, 1, 1, 1, 1, 1}, 63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Eval(tt.x, tt.coeffs); got != tt.want {
				t.Errorf("Eval(%v, %v) = %v, want %v", tt.x, tt.coeffs, got, tt.want)
			}
		})
	}
}

func TestEvalFractional(t *testing.T) {
	coeffs := []float64{1.0, 2.5, -3.2, 4.8, -1.5, 2.0, -0.5}

	// Reference with an explicit running power.
	ref := func(x float64) float64 {
		sum, power := 0.0, 1.0
		for _, c := range coeffs {
			sum += c * power
			power *= x
		}
		return sum
	}

	for _, x := range []float64{0, 0.5, 1, 1.5, -2.25, 3.75} {
		testutil.RequireNearlyEqual(t, Eval(x, coeffs), ref(x), 1e-12)
	}
}

func TestEvalRandomAgainstPow(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 100; trial++ {
		coeffs := make([]float64, 1+rng.Intn(12))
		for i := range coeffs {
			coeffs[i] = rng.Float64()*4 - 2
		}
		x := rng.Float64()*3 - 1.5

		var want float64
		for i, c := range coeffs {
			want += c * math.Pow(x, float64(i))
		}

		got := Eval(x, coeffs)
		testutil.RequireNearlyEqual(t, got, want, 1e-9)
	}
}
