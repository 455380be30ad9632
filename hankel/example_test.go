package hankel

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

func ExampleEngine_TransformDE() {
	e, err := New(0, 50, 1, WithBannerWriter(nil), WithLogger(zerolog.Nop()))
	if err != nil {
		panic(err)
	}

	// integral x exp(-x^2/2) J_0(q x) dx = exp(-q^2/2)
	g := func(x float64) float64 { return x * math.Exp(-x*x/2) }

	v, _ := e.TransformDE(g, 1)
	fmt.Printf("%.10f %.10f\n", v, math.Exp(-0.5))
	// Output:
	// 0.6065306597 0.6065306597
}

func ExampleEngine_Steps() {
	e, err := New(0, 50, 1, WithBannerWriter(nil), WithLogger(zerolog.Nop()))
	if err != nil {
		panic(err)
	}

	s, _ := e.Steps(func(x float64) float64 { return math.Exp(-x) }, 1)
	fmt.Printf("hu=%.4f clamped=%v\n", s.Plain, s.Clamped)
	// Output:
	// hu=0.4158 clamped=false
}

func ExampleNew_fallback() {
	e, err := New(-1, 0, 1, WithBannerWriter(nil), WithLogger(zerolog.Nop()))
	if err != nil {
		panic(err)
	}

	fmt.Printf("%+v\n", e.Config())
	// Output:
	// {Order:0 Nodes:10 Scale:1}
}
