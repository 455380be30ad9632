package hankel

import (
	"errors"
	"math"
)

var errNotFinite = errors.New("sum is not finite")

// psi is the double-exponential map t tanh(pi/2 sinh t).
func psi(t float64) float64 {
	return t * math.Tanh(math.Pi/2*math.Sinh(t))
}

// psiPrime is the derivative of psi. For large t it evaluates to 0*Inf.
func psiPrime(t float64) float64 {
	th := math.Tanh(math.Pi / 2 * math.Sinh(t))
	return math.Pi*t*(1-th*th)*math.Cosh(t)/2 + th
}

// QuadratureSumPlain evaluates the untransformed Ogata sum
//
//	h sum_i w_i g(xi_i h / q) / q J_nu(xi_i h)
//
// over the first N zeros for an explicit step h.
func (e *Engine) QuadratureSumPlain(g Func, q, h float64) (float64, error) {
	if err := e.ready(); err != nil {
		return 0, err
	}

	if err := validateMomentum(q); err != nil {
		return 0, err
	}

	if err := validateStep(h); err != nil {
		return 0, err
	}

	nd, err := e.newNodes()
	if err != nil {
		return 0, e.fail("plain sum", q, err)
	}

	for i, xi := range nd.xi {
		nd.knot[i] = xi * h
	}

	if err := nd.sampleAt(e.cfg.Order, g, q); err != nil {
		return 0, e.fail("plain sum", q, err)
	}

	val := h * nd.contributions(false)
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, e.fail("plain sum", q, errNotFinite)
	}

	return val, nil
}

// QuadratureSumDE evaluates the double-exponential Ogata sum
//
//	pi sum_i w_i g(k_i / q) / q J_nu(k_i) psi'(h xi_i),  k_i = pi/h psi(h xi_i)
//
// over the first N zeros for an explicit step h. Where psi' is NaN, which
// happens once cosh overflows, 1 is used instead.
func (e *Engine) QuadratureSumDE(g Func, q, h float64) (float64, error) {
	if err := e.ready(); err != nil {
		return 0, err
	}

	if err := validateMomentum(q); err != nil {
		return 0, err
	}

	if err := validateStep(h); err != nil {
		return 0, err
	}

	nd, err := e.newNodes()
	if err != nil {
		return 0, e.fail("de sum", q, err)
	}

	for i, xi := range nd.xi {
		t := h * xi
		nd.knot[i] = math.Pi / h * psi(t)

		d := psiPrime(t)
		if math.IsNaN(d) {
			e.log.Debug().Int("index", i).Float64("step", h).Msg("psi' is NaN, using 1")

			d = 1
		}

		nd.jacobian[i] = d
	}

	if err := nd.sampleAt(e.cfg.Order, g, q); err != nil {
		return 0, e.fail("de sum", q, err)
	}

	val := math.Pi * nd.contributions(true)
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, e.fail("de sum", q, errNotFinite)
	}

	return val, nil
}
