package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RelErr returns |got - want| / |want|, or the absolute difference when
// want is zero.
func RelErr(got, want float64) float64 {
	diff := math.Abs(got - want)
	if want == 0 {
		return diff
	}

	return diff / math.Abs(want)
}

// RequireRelClose fails t if got differs from want by more than rel
// relative to |want|.
func RequireRelClose(t *testing.T, got, want, rel float64) {
	t.Helper()

	if err := RelErr(got, want); !(err <= rel) {
		t.Fatalf("got %.17g, want %.17g (rel err %.3g > %.3g)", got, want, err, rel)
	}
}

// RequireAbsClose fails t if |got - want| exceeds eps.
func RequireAbsClose(t *testing.T, got, want, eps float64) {
	t.Helper()

	if diff := math.Abs(got - want); !(diff <= eps) {
		t.Fatalf("got %.17g, want %.17g (diff %.3g > eps %.3g)", got, want, diff, eps)
	}
}

// RequireStrictlyIncreasing fails t if data is not strictly increasing.
func RequireStrictlyIncreasing(t *testing.T, data []float64) {
	t.Helper()

	for i := 1; i < len(data); i++ {
		if !(data[i] > data[i-1]) {
			t.Fatalf("index %d: %v does not exceed %v", i, data[i], data[i-1])
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
