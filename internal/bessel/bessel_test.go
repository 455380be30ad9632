package bessel

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	if a == b {
		return true
	}

	diff := math.Abs(a - b)

	mag := math.Max(math.Abs(a), math.Abs(b))
	if mag > 1 {
		return diff/mag < tol
	}

	return diff < tol
}

// Half-integer orders have elementary closed forms.
func halfOrder(nu, x float64) (float64, float64) {
	amp := math.Sqrt(2 / (math.Pi * x))
	s, c := math.Sincos(x)

	switch nu {
	case 0.5:
		return amp * s, -amp * c
	case 1.5:
		return amp * (s/x - c), -amp * (c/x + s)
	case 2.5:
		return amp * ((3/(x*x)-1)*s - 3*c/x), -amp * ((3/(x*x)-1)*c + 3*s/x)
	}

	panic("unsupported order")
}

func TestJYHalfIntegerOrders(t *testing.T) {
	orders := []float64{0.5, 1.5, 2.5}
	args := []float64{0.3, 1.7, 2.5, 10, 24.9, 25, 100, 1000.3}

	for _, nu := range orders {
		for _, x := range args {
			wantJ, wantY := halfOrder(nu, x)

			j, y, err := JY(nu, x)
			if err != nil {
				t.Fatalf("JY(%v, %v): %v", nu, x, err)
			}

			if !almostEqual(j, wantJ, 1e-13) {
				t.Errorf("J(%v, %v) = %.17g, want %.17g", nu, x, j, wantJ)
			}

			if !almostEqual(y, wantY, 1e-13) {
				t.Errorf("Y(%v, %v) = %.17g, want %.17g", nu, x, y, wantY)
			}
		}
	}
}

func TestJYIntegerOrders(t *testing.T) {
	tests := []struct {
		nu, x, j, y float64
	}{
		{nu: 0, x: 1, j: 0.7651976865579666, y: 0.08825696421567697},
		{nu: 1, x: 1, j: 0.44005058574493355, y: -0.7812128213002887},
		{nu: 0, x: 10, j: -0.2459357644513483, y: 0.05567116728359939},
		{nu: 2, x: 5, j: 0.04656511627775222, y: 0.3676628826055245},
		{nu: 0, x: 0.1, j: 0.99750156206604, y: -1.5342386513503667},
	}

	for _, tt := range tests {
		j, y, err := JY(tt.nu, tt.x)
		if err != nil {
			t.Fatal(err)
		}

		if !almostEqual(j, tt.j, 1e-14) || !almostEqual(y, tt.y, 1e-14) {
			t.Errorf("JY(%v, %v) = (%v, %v), want (%v, %v)", tt.nu, tt.x, j, y, tt.j, tt.y)
		}
	}
}

// The general-order path must agree with math.Jn/math.Yn just off an
// integer order.
func TestJYNearIntegerContinuity(t *testing.T) {
	for _, x := range []float64{0.7, 3.2, 18, 40} {
		j0, y0, _ := JY(1, x)

		j, y, err := JY(1+1e-9, x)
		if err != nil {
			t.Fatal(err)
		}

		if math.Abs(j-j0) > 1e-8 || math.Abs(y-y0) > 1e-8 {
			t.Errorf("x=%v: near-integer JY = (%v, %v), integer = (%v, %v)", x, j, y, j0, y0)
		}
	}
}

func TestJSmallArgument(t *testing.T) {
	// Leading term (x/2)^nu / Gamma(nu+1) dominates for tiny x.
	for _, nu := range []float64{0.5, 2.5, 7.3} {
		x := 1e-6

		got, err := J(nu, x)
		if err != nil {
			t.Fatal(err)
		}

		want := math.Pow(x/2, nu) / math.Gamma(nu+1)
		if math.Abs(got-want)/want > 1e-10 {
			t.Errorf("J(%v, %v) = %v, want %v", nu, x, got, want)
		}
	}

	// Deep underflow is a clean zero, not NaN.
	got, err := J(50.5, 1e-12)
	if err != nil {
		t.Fatal(err)
	}

	if got != 0 {
		t.Fatalf("J(50.5, 1e-12) = %v, want 0", got)
	}
}

func TestJAtOrigin(t *testing.T) {
	if v, _ := J(0, 0); v != 1 {
		t.Fatalf("J(0, 0) = %v, want 1", v)
	}

	if v, _ := J(1.5, 0); v != 0 {
		t.Fatalf("J(1.5, 0) = %v, want 0", v)
	}
}

func TestDomainErrors(t *testing.T) {
	tests := []struct {
		name string
		call func() error
		want error
	}{
		{name: "negative order", call: func() error { _, err := J(-1, 1); return err }, want: ErrDomain},
		{name: "nan order", call: func() error { _, err := J(math.NaN(), 1); return err }, want: ErrDomain},
		{name: "huge order", call: func() error { _, err := J(MaxOrder+1, 1); return err }, want: ErrUnsupportedOrder},
		{name: "inf order", call: func() error { _, err := Y(math.Inf(1), 1); return err }, want: ErrUnsupportedOrder},
		{name: "negative x", call: func() error { _, err := J(0, -1); return err }, want: ErrDomain},
		{name: "y at zero", call: func() error { _, err := Y(0.5, 0); return err }, want: ErrDomain},
		{name: "nan x", call: func() error { _, _, err := JY(0.5, math.NaN()); return err }, want: ErrDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAsymptoticMatchesSteedAtCrossover(t *testing.T) {
	tests := []struct{ nu, x float64 }{
		{nu: 4.5, x: 25},
		{nu: 8.3, x: 70},
		{nu: 30.5, x: 1000},
	}

	for _, tt := range tests {
		ja, ya := hankelAsymptotic(tt.nu, tt.x)

		js, ys, err := steed(tt.nu, tt.x)
		if err != nil {
			t.Fatal(err)
		}

		if math.Abs(ja-js) > 1e-12 || math.Abs(ya-ys) > 1e-12 {
			t.Errorf("nu=%v x=%v: asymptotic (%v, %v), steed (%v, %v)", tt.nu, tt.x, ja, ya, js, ys)
		}
	}
}

func BenchmarkJY(b *testing.B) {
	cases := []struct {
		name  string
		nu, x float64
	}{
		{name: "integer", nu: 0, x: 12.3},
		{name: "steed", nu: 0.3, x: 12.3},
		{name: "asymptotic", nu: 0.3, x: 1234.5},
	}

	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _, _ = JY(c.nu, c.x)
			}
		})
	}
}

func TestZeros(t *testing.T) {
	z, err := Zeros(0, 200)
	if err != nil {
		t.Fatal(err)
	}

	if len(z) != 200 {
		t.Fatalf("len = %d, want 200", len(z))
	}

	if math.Abs(z[0]-2.404825557695773) > 1e-14 {
		t.Fatalf("first zero of J_0 = %.17g", z[0])
	}

	for i, x := range z {
		if i > 0 && !(x > z[i-1]) {
			t.Fatalf("zeros not increasing at %d: %v <= %v", i, x, z[i-1])
		}

		// McMahon: j_{0,k} ~ (k - 1/4) pi.
		if math.Abs(x-(float64(i)+0.75)*math.Pi) > 0.1 {
			t.Fatalf("zero %d = %v, far from (k-1/4) pi", i, x)
		}
	}
}

func TestZerosAreRoots(t *testing.T) {
	for _, nu := range []float64{0.5, 1, 2.5, 7.3} {
		z, err := Zeros(nu, 50)
		if err != nil {
			t.Fatalf("nu=%v: %v", nu, err)
		}

		if !(z[0] > nu) {
			t.Fatalf("nu=%v: first zero %v must exceed the order", nu, z[0])
		}

		for i, x := range z {
			v, err := J(nu, x)
			if err != nil {
				t.Fatal(err)
			}

			if math.Abs(v) > 1e-13 {
				t.Fatalf("nu=%v: |J(zero %d = %v)| = %v", nu, i, x, math.Abs(v))
			}
		}
	}

	// J_{1/2}(x) = sqrt(2/(pi x)) sin x vanishes at k pi.
	z, err := Zeros(0.5, 10)
	if err != nil {
		t.Fatal(err)
	}

	for i, x := range z {
		if want := float64(i+1) * math.Pi; math.Abs(x-want) > 1e-13*want {
			t.Fatalf("zero %d of J_1/2 = %.17g, want %.17g", i, x, want)
		}
	}
}

func TestZerosEdgeCases(t *testing.T) {
	z, err := Zeros(1, 0)
	if err != nil || len(z) != 0 {
		t.Fatalf("Zeros(1, 0) = %v, %v", z, err)
	}

	if _, err := Zeros(1, -1); !errors.Is(err, ErrDomain) {
		t.Fatalf("err = %v, want ErrDomain", err)
	}

	if _, err := Zeros(math.Inf(1), 3); !errors.Is(err, ErrUnsupportedOrder) {
		t.Fatalf("err = %v, want ErrUnsupportedOrder", err)
	}
}
