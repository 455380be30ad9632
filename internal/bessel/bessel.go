// Package bessel evaluates Bessel functions of the first kind J_nu and
// second kind Y_nu for real, non-negative orders and locates the positive
// zeros of J_nu.
//
// Integer orders are delegated to math.Jn and math.Yn. Other orders use
// the ascending series for J at small arguments, Temme's series and Steed's
// continued fractions in the oscillatory transition region, and Hankel's
// asymptotic expansion once x >= max(25, nu^2).
package bessel

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDomain is returned for a negative/NaN order or an argument outside
	// the function's domain.
	ErrDomain = errors.New("bessel: argument out of domain")

	// ErrUnsupportedOrder is returned for orders above MaxOrder.
	ErrUnsupportedOrder = errors.New("bessel: unsupported order")

	// ErrNoConvergence is returned when an iterative evaluation fails.
	ErrNoConvergence = errors.New("bessel: no convergence")
)

// MaxOrder is the largest supported order. Above it Steed's continued
// fraction becomes too slow across the range covered by the zero table.
const MaxOrder = 100

const (
	eps      = 0x1p-52
	maxIter  = 100000
	seriesLo = 2.0 // Temme series below, Steed's CF2 above

	asymptoticMin = 25.0
)

// J returns J_nu(x) for x >= 0.
func J(nu, x float64) (float64, error) {
	if err := checkOrder(nu); err != nil {
		return 0, err
	}

	if math.IsNaN(x) || x < 0 || math.IsInf(x, 1) {
		return 0, fmt.Errorf("%w: J(%v, %v)", ErrDomain, nu, x)
	}

	if x == 0 {
		if nu == 0 {
			return 1, nil
		}

		return 0, nil
	}

	if n, ok := integerOrder(nu); ok {
		return math.Jn(n, x), nil
	}

	if x < seriesLo {
		return ascendingJ(nu, x), nil
	}

	j, _, err := JY(nu, x)

	return j, err
}

// Y returns Y_nu(x) for x > 0.
func Y(nu, x float64) (float64, error) {
	_, y, err := JY(nu, x)
	return y, err
}

// JY returns J_nu(x) and Y_nu(x) for x > 0.
func JY(nu, x float64) (float64, float64, error) {
	if err := checkOrder(nu); err != nil {
		return 0, 0, err
	}

	if math.IsNaN(x) || x <= 0 || math.IsInf(x, 1) {
		return 0, 0, fmt.Errorf("%w: JY(%v, %v)", ErrDomain, nu, x)
	}

	if n, ok := integerOrder(nu); ok {
		return math.Jn(n, x), math.Yn(n, x), nil
	}

	if x >= math.Max(asymptoticMin, nu*nu) {
		j, y := hankelAsymptotic(nu, x)
		return j, y, nil
	}

	j, y, err := steed(nu, x)
	if err != nil {
		return 0, 0, err
	}

	if x < seriesLo {
		j = ascendingJ(nu, x)
	}

	if math.IsNaN(j) || math.IsNaN(y) {
		return 0, 0, fmt.Errorf("%w: JY(%v, %v) is NaN", ErrNoConvergence, nu, x)
	}

	return j, y, nil
}

func checkOrder(nu float64) error {
	if !(nu >= 0) {
		return fmt.Errorf("%w: order %v", ErrDomain, nu)
	}

	if nu > MaxOrder {
		return fmt.Errorf("%w: order %v exceeds %d", ErrUnsupportedOrder, nu, MaxOrder)
	}

	return nil
}

func integerOrder(nu float64) (int, bool) {
	if nu != math.Trunc(nu) {
		return 0, false
	}

	return int(nu), true
}

// ascendingJ sums J_nu(x) = (x/2)^nu sum_k (-x^2/4)^k / (k! Gamma(nu+k+1)).
// The prefactor is formed in log space so it underflows to zero instead of
// producing Inf/Inf for large orders.
func ascendingJ(nu, x float64) float64 {
	lg, _ := math.Lgamma(nu + 1)

	lead := math.Exp(nu*math.Log(x/2) - lg)
	if lead == 0 {
		return 0
	}

	z := -x * x / 4
	term, sum := 1.0, 1.0

	for k := 1; k < 100; k++ {
		fk := float64(k)
		term *= z / (fk * (nu + fk))
		sum += term

		if math.Abs(term) < eps*math.Abs(sum) {
			break
		}
	}

	return lead * sum
}

// hankelAsymptotic evaluates
//
//	J = sqrt(2/(pi x)) (P cos chi - Q sin chi)
//	Y = sqrt(2/(pi x)) (P sin chi + Q cos chi)
//
// with chi = x - (nu/2 + 1/4) pi. The series are asymptotic, so summation
// stops at the smallest term.
func hankelAsymptotic(nu, x float64) (float64, float64) {
	const maxTerms = 200

	mu := 4 * nu * nu
	z := 8 * x

	p, q := 1.0, 0.0
	term := 1.0
	prev := math.Inf(1)

	for k := 1; k <= maxTerms; k++ {
		odd := float64(2*k - 1)

		t := term * (mu - odd*odd) / (float64(k) * z)
		if math.Abs(t) >= math.Abs(prev) {
			break
		}

		sign := 1.0
		if (k/2)%2 == 1 {
			sign = -1
		}

		if k%2 == 1 {
			q += sign * t
		} else {
			p += sign * t
		}

		prev, term = t, t

		if math.Abs(t) < 1e-2*eps {
			break
		}
	}

	chi := x - (nu/2+0.25)*math.Pi
	s, c := math.Sincos(chi)
	amp := math.Sqrt(2 / (math.Pi * x))

	return amp * (p*c - q*s), amp * (p*s + q*c)
}
