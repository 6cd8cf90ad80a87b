package testutil

import (
	"fmt"
	"math"
	"testing"
)

// NearlyEqual reports whether got and want agree within relative tolerance
// rel. Values within rel of zero are compared absolutely, since relative
// error is meaningless there.
func NearlyEqual(got, want, rel float64) bool {
	if got == want {
		return true
	}
	diff := math.Abs(got - want)
	if got == 0 || want == 0 {
		return diff < rel
	}
	return diff/math.Max(math.Abs(got), math.Abs(want)) < rel
}

// RequireNearlyEqual fails t unless got and want agree within relative
// tolerance rel.
func RequireNearlyEqual(t *testing.T, got, want, rel float64) {
	t.Helper()
	if !NearlyEqual(got, want, rel) {
		t.Fatalf("got %v, want %v (relative tolerance %v)", got, want, rel)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds the relative tolerance rel.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, rel float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !NearlyEqual(got[i], want[i], rel) {
			t.Fatalf("index %d: got %v, want %v (relative tolerance %v)", i, got[i], want[i], rel)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
