package cli

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cwbudde/algo-hankel/hankel"
)

type integrandEntry struct {
	name      string
	expr      string
	transform string
	g         func(nu float64) hankel.Func
	exact     func(nu, q float64) float64
}

// gaussianExact is integral x^(nu+1) exp(-a x^2) J_nu(q x) dx.
func gaussianExact(a float64) func(nu, q float64) float64 {
	return func(nu, q float64) float64 {
		return math.Pow(q, nu) / math.Pow(2*a, nu+1) * math.Exp(-q*q/(4*a))
	}
}

var registry = []integrandEntry{
	{
		name:      "gaussian",
		expr:      "x^(nu+1) exp(-x^2/2)",
		transform: "q^nu exp(-q^2/2)",
		g: func(nu float64) hankel.Func {
			return func(x float64) float64 { return math.Pow(x, nu+1) * math.Exp(-x*x/2) }
		},
		exact: gaussianExact(0.5),
	},
	{
		name:      "narrow-gaussian",
		expr:      "x^(nu+1) exp(-x^2)",
		transform: "q^nu exp(-q^2/4) / 2^(nu+1)",
		g: func(nu float64) hankel.Func {
			return func(x float64) float64 { return math.Pow(x, nu+1) * math.Exp(-x*x) }
		},
		exact: gaussianExact(1),
	},
	{
		name:      "exponential",
		expr:      "exp(-x)",
		transform: "(r-1)^nu / (q^nu r), r = sqrt(1+q^2)",
		g: func(float64) hankel.Func {
			return func(x float64) float64 { return math.Exp(-x) }
		},
		exact: func(nu, q float64) float64 {
			r := math.Hypot(1, q)
			return math.Pow((r-1)/q, nu) / r
		},
	},
	{
		name:      "exp-measure",
		expr:      "x exp(-x)",
		transform: "(1 + nu r) (r-1)^nu / (q^nu r^3), r = sqrt(1+q^2)",
		g: func(float64) hankel.Func {
			return func(x float64) float64 { return x * math.Exp(-x) }
		},
		exact: func(nu, q float64) float64 {
			r := math.Hypot(1, q)
			return (1 + nu*r) * math.Pow((r-1)/q, nu) / (r * r * r)
		},
	},
}

func lookupIntegrand(name string) (integrandEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	for _, e := range registry {
		if e.name == name {
			return e, nil
		}
	}

	return integrandEntry{}, fmt.Errorf("unknown integrand %q (use 'fbt list' to see available)", name)
}

func sortedRegistry() []integrandEntry {
	out := make([]integrandEntry, len(registry))
	copy(out, registry)

	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })

	return out
}
