package testutil

import (
	"fmt"
	"math"
)

// Pair is an integrand g with the closed form of
// integral_0^inf g(x) J_nu(q x) dx.
type Pair struct {
	Name  string
	Order float64
	G     func(x float64) float64
	Exact func(q float64) float64
}

// GaussianPair returns g(x) = x^(nu+1) exp(-x^2/2), whose transform is
// q^nu exp(-q^2/2).
func GaussianPair(nu float64) Pair {
	return Pair{
		Name:  fmt.Sprintf("gaussian/nu=%g", nu),
		Order: nu,
		G: func(x float64) float64 {
			return math.Pow(x, nu+1) * math.Exp(-x*x/2)
		},
		Exact: func(q float64) float64 {
			return math.Pow(q, nu) * math.Exp(-q*q/2)
		},
	}
}

// NarrowGaussianPair returns g(x) = x exp(-x^2) for nu = 0, whose transform
// is exp(-q^2/4) / 2.
func NarrowGaussianPair() Pair {
	return Pair{
		Name:  "narrow-gaussian",
		Order: 0,
		G: func(x float64) float64 {
			return x * math.Exp(-x*x)
		},
		Exact: func(q float64) float64 {
			return math.Exp(-q*q/4) / 2
		},
	}
}

// ExponentialPair returns g(x) = exp(-x) for nu = 0, whose transform is
// 1/sqrt(1+q^2). g does not vanish at the origin, so the untransformed
// rule converges poorly for it.
func ExponentialPair() Pair {
	return Pair{
		Name:  "exponential",
		Order: 0,
		G: func(x float64) float64 {
			return math.Exp(-x)
		},
		Exact: func(q float64) float64 {
			return 1 / math.Sqrt(1+q*q)
		},
	}
}

// Pairs returns the Gaussian pairs used across the tests.
func Pairs() []Pair {
	return []Pair{
		GaussianPair(0),
		GaussianPair(0.5),
		GaussianPair(1),
		GaussianPair(2.5),
		NarrowGaussianPair(),
	}
}
