// Package brent provides Brent's bracketed one-dimensional minimizer and
// root finder. Both methods combine a safe fallback step (golden section or
// bisection) with inverse parabolic interpolation and never leave the
// caller's bracket.
package brent

import (
	"errors"
	"math"
)

var (
	// ErrInvalidBracket is returned when lo/hi are not finite or lo >= hi.
	ErrInvalidBracket = errors.New("brent: invalid bracket")

	// ErrNotBracketed is returned by Root when f(a) and f(b) have the same sign.
	ErrNotBracketed = errors.New("brent: root not bracketed")

	// ErrNoConvergence is returned when the iteration budget is exhausted or
	// the objective produced NaN.
	ErrNoConvergence = errors.New("brent: no convergence")
)

const (
	// goldenSection is (3 - sqrt(5)) / 2.
	goldenSection = 0.3819660112501051

	maxIter = 500

	// mantissaBits is the precision of float64.
	mantissaBits = 53
)

// Result is the outcome of a minimization.
type Result struct {
	X          float64 // abscissa of the minimum
	F          float64 // objective value at X
	Iterations int
}

// Minimize finds a local minimum of f inside [lo, hi].
//
// bits requests the relative precision of X as a number of binary digits.
// Values above half the float64 mantissa are capped there: the minimum of a
// smooth function can only be located to about sqrt(eps), so asking for
// more only burns evaluations.
//
// The search starts from hi, which matters for objectives that are
// monotonic over the bracket: the result then converges onto the better
// endpoint.
//
//nolint:cyclop,funlen
func Minimize(f func(float64) float64, lo, hi float64, bits int) (Result, error) {
	if !isFinite(lo) || !isFinite(hi) || lo >= hi {
		return Result{}, ErrInvalidBracket
	}

	if bits <= 0 || bits > mantissaBits/2 {
		bits = mantissaBits / 2
	}

	tolerance := math.Ldexp(1, 1-bits)

	x, w, v := hi, hi, hi
	fx := f(x)
	fw, fv := fx, fx

	var delta, delta2 float64

	for iter := 1; iter <= maxIter; iter++ {
		if math.IsNaN(fx) {
			return Result{}, ErrNoConvergence
		}

		mid := (lo + hi) / 2
		fract1 := tolerance*math.Abs(x) + tolerance/4
		fract2 := 2 * fract1

		if math.Abs(x-mid) <= fract2-(hi-lo)/2 {
			return Result{X: x, F: fx, Iterations: iter - 1}, nil
		}

		if math.Abs(delta2) > fract1 {
			// Parabola through x, w and v.
			r := (x - w) * (fx - fv)
			q := (x - v) * (fx - fw)
			p := (x-v)*q - (x-w)*r

			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}

			q = math.Abs(q)
			td := delta2
			delta2 = delta

			if math.Abs(p) >= math.Abs(q*td/2) || p <= q*(lo-x) || p >= q*(hi-x) {
				delta2 = goldenStep(x, mid, lo, hi)
				delta = goldenSection * delta2
			} else {
				delta = p / q

				u := x + delta
				if u-lo < fract2 || hi-u < fract2 {
					delta = math.Copysign(fract1, mid-x)
				}
			}
		} else {
			delta2 = goldenStep(x, mid, lo, hi)
			delta = goldenSection * delta2
		}

		u := x + delta

		switch {
		case math.Abs(delta) >= fract1:
		case delta > 0:
			u = x + fract1
		default:
			u = x - fract1
		}

		fu := f(u)

		if fu <= fx {
			if u >= x {
				lo = x
			} else {
				hi = x
			}

			v, w, x = w, x, u
			fv, fw, fx = fw, fx, fu

			continue
		}

		if u < x {
			lo = u
		} else {
			hi = u
		}

		switch {
		case fu <= fw || w == x:
			v, w = w, u
			fv, fw = fw, fu
		case fu <= fv || v == x || v == w:
			v = u
			fv = fu
		}
	}

	return Result{}, ErrNoConvergence
}

func goldenStep(x, mid, lo, hi float64) float64 {
	if x >= mid {
		return lo - x
	}

	return hi - x
}

// Root finds a zero of f inside [a, b] using the Brent-Dekker method.
// f(a) and f(b) must have opposite signs (or one of them must be zero).
// The result is accurate to a few ulps of the root.
//
//nolint:cyclop,funlen
func Root(f func(float64) float64, a, b float64) (float64, error) {
	if !isFinite(a) || !isFinite(b) || a == b {
		return 0, ErrInvalidBracket
	}

	fa := f(a)
	fb := f(b)

	switch {
	case math.IsNaN(fa) || math.IsNaN(fb):
		return 0, ErrNoConvergence
	case fa == 0:
		return a, nil
	case fb == 0:
		return b, nil
	case (fa > 0) == (fb > 0):
		return 0, ErrNotBracketed
	}

	c, fc := a, fa
	d := b - a
	e := d

	for range maxIter {
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}

		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol := 2 * epsilon * math.Abs(b)
		xm := (c - b) / 2

		if math.Abs(xm) <= tol || fb == 0 {
			return b, nil
		}

		if math.Abs(e) >= tol && math.Abs(fa) > math.Abs(fb) {
			var p, q float64

			s := fb / fa
			if a == c {
				// Secant.
				p = 2 * xm * s
				q = 1 - s
			} else {
				// Inverse quadratic interpolation.
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}

			if p > 0 {
				q = -q
			}

			p = math.Abs(p)

			if 2*p < math.Min(3*xm*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = b, fb

		if math.Abs(d) > tol {
			b += d
		} else {
			b += math.Copysign(tol, xm)
		}

		fb = f(b)
		if math.IsNaN(fb) {
			return 0, ErrNoConvergence
		}
	}

	return 0, ErrNoConvergence
}

const epsilon = 0x1p-52

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
