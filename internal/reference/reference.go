// Package reference provides slow, independent evaluations of
// integral_0^inf g(x) J_nu(q x) dx used to cross-check the Ogata engine.
package reference

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/cwbudde/algo-hankel/internal/bessel"
)

var errInvalidArgs = errors.New("reference: invalid arguments")

// Panels integrates g(x) J_nu(q x) with fixed Gauss-Legendre rules of the
// given number of points on each interval between consecutive zeros of the
// kernel, over the first panels intervals. The tail beyond the last zero is
// dropped, so g must be negligible there.
func Panels(g func(float64) float64, nu, q float64, panels, points int) (float64, error) {
	if !(q > 0) || math.IsInf(q, 1) || panels < 1 || points < 1 {
		return 0, fmt.Errorf("%w: q=%v panels=%d points=%d", errInvalidArgs, q, panels, points)
	}

	zeros, err := bessel.Zeros(nu, panels)
	if err != nil {
		return 0, fmt.Errorf("reference: kernel zeros: %w", err)
	}

	var evalErr error

	f := func(x float64) float64 {
		j, err := bessel.J(nu, q*x)
		if err != nil {
			evalErr = err
			return math.NaN()
		}

		return g(x) * j
	}

	parts := make([]float64, panels)
	lo := 0.0

	for i, z := range zeros {
		hi := z / q
		parts[i] = quad.Fixed(f, lo, hi, points, nil, 0)
		lo = hi
	}

	if evalErr != nil {
		return 0, fmt.Errorf("reference: kernel: %w", evalErr)
	}

	sum := floats.Sum(parts)
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return 0, fmt.Errorf("reference: panel sum is %v", sum)
	}

	return sum, nil
}
