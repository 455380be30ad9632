package reference

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
	"gonum.org/v1/gonum/integrate/quad"
)

// Spectrum holds transform values T[m] at momenta Q[m] = m pi / extent.
type Spectrum struct {
	Q []float64
	T []float64
}

// FourierOrderZero evaluates the order-zero transform of g on the grid
// Q[m] = m pi / extent, m = 0..size/2, through the projection-slice theorem.
//
// With g(x) = x f(x), T is the 2-D Fourier transform of the radial function
// f divided by 2 pi, and equals the 1-D Fourier transform of the Abel
// projection
//
//	P(y) = 2 integral_0^extent f(sqrt(y^2 + z^2)) dz
//
// divided by 2 pi. P is sampled on the half-shifted grid
// y_j = (j - size/2 + 1/2) dy over [-extent, extent], which avoids the
// origin, and transformed with one FFT. points is the Gauss-Legendre order
// of each projection integral. size must be even, and f must be negligible
// beyond extent.
func FourierOrderZero(g func(float64) float64, extent float64, size, points int) (Spectrum, error) {
	if !(extent > 0) || math.IsInf(extent, 1) || size < 2 || size%2 != 0 || points < 1 {
		return Spectrum{}, fmt.Errorf("%w: extent=%v size=%d points=%d", errInvalidArgs, extent, size, points)
	}

	dy := 2 * extent / float64(size)
	in := make([]complex128, size)

	for j := range in {
		y := (float64(j) - float64(size)/2 + 0.5) * dy
		radial := func(z float64) float64 {
			r := math.Hypot(y, z)
			return g(r) / r
		}

		in[j] = complex(2*quad.Fixed(radial, 0, extent, points, nil, 0), 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return Spectrum{}, fmt.Errorf("reference: fft plan: %w", err)
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return Spectrum{}, fmt.Errorf("reference: fft: %w", err)
	}

	half := size/2 + 1
	sp := Spectrum{
		Q: make([]float64, half),
		T: make([]float64, half),
	}

	for m := range half {
		// Undo the grid offset: y_j = j dy - (size/2 - 1/2) dy.
		phase := cmplx.Exp(complex(0, math.Pi*float64(m)*(1-1/float64(size))))
		ft := complex(dy, 0) * phase * out[m]

		sp.Q[m] = math.Pi * float64(m) / extent
		sp.T[m] = real(ft) / (2 * math.Pi)
	}

	return sp, nil
}
