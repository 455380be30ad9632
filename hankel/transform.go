package hankel

// TransformPlain approximates the integral of g(x) J_nu(q x) over x > 0
// with the untransformed Ogata rule at the tuned step.
func (e *Engine) TransformPlain(g Func, q float64) (float64, error) {
	hu, err := e.TuneStepPlain(g, q)
	if err != nil {
		return 0, err
	}

	return e.QuadratureSumPlain(g, q, hu)
}

// TransformDE approximates the integral of g(x) J_nu(q x) over x > 0 with
// the double-exponential Ogata rule at the tuned step.
func (e *Engine) TransformDE(g Func, q float64) (float64, error) {
	hu, err := e.TuneStepPlain(g, q)
	if err != nil {
		return 0, err
	}

	ht, err := e.TuneStepDE(hu)
	if err != nil {
		return 0, err
	}

	return e.QuadratureSumDE(g, q, ht)
}
