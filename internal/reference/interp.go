package reference

import (
	"fmt"
	"math"
)

// At interpolates the spectrum at q with the four-point cubic Hermite rule.
// The transform is even in q, which supplies the left neighbour of the first
// grid interval. q must leave two grid points to its right.
func (s Spectrum) At(q float64) (float64, error) {
	n := len(s.T)
	if n < 3 || len(s.Q) != n {
		return 0, fmt.Errorf("%w: spectrum of %d points", errInvalidArgs, n)
	}

	dq := s.Q[1] - s.Q[0]

	pos := q / dq
	i := int(math.Floor(pos))

	if !(q >= 0) || i+2 >= n {
		return 0, fmt.Errorf("%w: q=%v outside [0, %v)", errInvalidArgs, q, s.Q[n-2])
	}

	prev := s.T[1]
	if i > 0 {
		prev = s.T[i-1]
	}

	return hermite4(pos-float64(i), prev, s.T[i], s.T[i+1], s.T[i+2]), nil
}

// hermite4 interpolates from x0 (t = 0) to x1 (t = 1) using the neighbours
// xm1 and x2.
func hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)

	return ((c3*t+c2)*t+c1)*t + c0
}
