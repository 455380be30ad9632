package reference

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-hankel/internal/testutil"
)

func TestPanelsGaussianPairs(t *testing.T) {
	for _, p := range testutil.Pairs() {
		for _, q := range []float64{0.5, 1, 2} {
			got, err := Panels(p.G, p.Order, q, 60, 32)
			if err != nil {
				t.Fatalf("%s q=%v: %v", p.Name, q, err)
			}

			testutil.RequireAbsClose(t, got, p.Exact(q), 1e-10)
		}
	}
}

func TestPanelsExponential(t *testing.T) {
	p := testutil.ExponentialPair()

	// exp(-x) is below 1e-15 after about 35, well within 40 panels at q = 1.
	got, err := Panels(p.G, 0, 1, 40, 32)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireAbsClose(t, got, p.Exact(1), 1e-10)
}

func TestPanelsInvalid(t *testing.T) {
	g := func(x float64) float64 { return x }

	for _, q := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := Panels(g, 0, q, 10, 8); err == nil {
			t.Fatalf("q=%v: expected error", q)
		}
	}

	if _, err := Panels(g, 0, 1, 0, 8); err == nil {
		t.Fatal("expected error for zero panels")
	}

	if _, err := Panels(g, -1, 1, 10, 8); err == nil {
		t.Fatal("expected error for negative order")
	}
}

func TestFourierOrderZero(t *testing.T) {
	pairs := []testutil.Pair{testutil.GaussianPair(0), testutil.NarrowGaussianPair()}

	for _, p := range pairs {
		sp, err := FourierOrderZero(p.G, 10, 128, 64)
		if err != nil {
			t.Fatal(err)
		}

		if len(sp.Q) != 65 || len(sp.T) != 65 {
			t.Fatalf("%s: grid length %d/%d, want 65", p.Name, len(sp.Q), len(sp.T))
		}

		for m, q := range sp.Q {
			if q > 5 {
				break
			}

			if d := math.Abs(sp.T[m] - p.Exact(q)); d > 1e-12 {
				t.Fatalf("%s: T(%v) = %v, want %v", p.Name, q, sp.T[m], p.Exact(q))
			}
		}
	}
}

func TestFourierOrderZeroInvalid(t *testing.T) {
	g := func(x float64) float64 { return x }

	tests := []struct {
		extent       float64
		size, points int
	}{
		{extent: 0, size: 64, points: 8},
		{extent: 10, size: 63, points: 8},
		{extent: 10, size: 0, points: 8},
		{extent: 10, size: 64, points: 0},
		{extent: math.NaN(), size: 64, points: 8},
	}

	for _, tt := range tests {
		if _, err := FourierOrderZero(g, tt.extent, tt.size, tt.points); err == nil {
			t.Fatalf("extent=%v size=%d points=%d: expected error", tt.extent, tt.size, tt.points)
		}
	}
}

func TestHermite4ReproducesQuadratics(t *testing.T) {
	// Catmull-Rom is exact for quadratics sampled at -1, 0, 1, 2.
	f := func(x float64) float64 { return 2*x*x - x + 3 }

	for _, x := range []float64{0, 0.25, 0.5, 0.9, 1} {
		got := hermite4(x, f(-1), f(0), f(1), f(2))
		if math.Abs(got-f(x)) > 1e-12 {
			t.Fatalf("hermite4(%v) = %v, want %v", x, got, f(x))
		}
	}
}

func TestSpectrumAt(t *testing.T) {
	p := testutil.GaussianPair(0)

	sp, err := FourierOrderZero(p.G, 10, 128, 64)
	if err != nil {
		t.Fatal(err)
	}

	for _, q := range []float64{0, 0.05, 0.3, 0.77, 1.234, 2.5, 3.3} {
		got, err := sp.At(q)
		if err != nil {
			t.Fatalf("At(%v): %v", q, err)
		}

		testutil.RequireAbsClose(t, got, p.Exact(q), 5e-4)
	}

	// Grid points are reproduced.
	if got, _ := sp.At(sp.Q[7]); math.Abs(got-sp.T[7]) > 1e-14 {
		t.Fatalf("At(Q[7]) = %v, want %v", got, sp.T[7])
	}

	for _, q := range []float64{-0.1, math.NaN(), sp.Q[len(sp.Q)-1]} {
		if _, err := sp.At(q); err == nil {
			t.Fatalf("At(%v): expected error", q)
		}
	}
}
