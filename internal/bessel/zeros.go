package bessel

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-hankel/internal/brent"
)

// scanStep is shorter than the smallest gap between consecutive zeros of
// J_nu for any nu >= 0 (j_{0,2} - j_{0,1} ~ 3.1), so every scan interval
// holds at most one zero.
const scanStep = 1.0

// Zeros returns the first k positive zeros of J_nu in increasing order.
//
// Zeros are bracketed by scanning for sign changes in unit steps, starting
// at nu + 1/2 (below the first zero, where J_nu is positive), and polished
// with Brent's method.
func Zeros(nu float64, k int) ([]float64, error) {
	if err := checkOrder(nu); err != nil {
		return nil, err
	}

	if k < 0 {
		return nil, fmt.Errorf("%w: zero count %d", ErrDomain, k)
	}

	var evalErr error

	f := func(x float64) float64 {
		v, err := J(nu, x)
		if err != nil {
			evalErr = err
			return math.NaN()
		}

		return v
	}

	out := make([]float64, 0, k)

	a := nu + 0.5
	fa := f(a)

	// A zero is found roughly every three steps; the budget only guards
	// against a broken evaluator.
	budget := 4*k + int(nu) + 64

	for steps := 0; len(out) < k; steps++ {
		if steps > budget {
			return nil, fmt.Errorf("%w: zero %d of J_%v not found", ErrNoConvergence, len(out)+1, nu)
		}

		b := a + scanStep
		fb := f(b)

		if math.IsNaN(fa) || math.IsNaN(fb) {
			if evalErr != nil {
				return nil, evalErr
			}

			return nil, fmt.Errorf("%w: J_%v is NaN near %v", ErrNoConvergence, nu, b)
		}

		if fa == 0 {
			out = append(out, a)
			a += scanStep
			fa = f(a)

			continue
		}

		if fb != 0 && (fa > 0) == (fb > 0) {
			a, fa = b, fb
			continue
		}

		z := b

		if fb != 0 {
			var err error

			z, err = brent.Root(f, a, b)
			if err != nil {
				return nil, fmt.Errorf("%w: zero %d of J_%v: %w", ErrNoConvergence, len(out)+1, nu, err)
			}
		}

		out = append(out, z)

		a = z + scanStep
		fa = f(a)
	}

	return out, nil
}
