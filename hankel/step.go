package hankel

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-hankel/internal/brent"
)

// Steps reports the tuned step sizes for one integrand and momentum.
type Steps struct {
	// Plain is the untransformed step hu.
	Plain float64
	// DE is the double-exponential step ht derived from Plain.
	DE float64
	// Clamped is set when Plain was capped at MaxPlainStep.
	Clamped bool
}

// TuneStepPlain returns the untransformed step hu = x*/zero_1, where x*
// maximizes |x g(x/q)| on [Scale/10, 10 Scale]. Steps of MaxPlainStep and
// above are clamped to it with a warning.
func (e *Engine) TuneStepPlain(g Func, q float64) (float64, error) {
	h, _, err := e.tunePlain(g, q)
	return h, err
}

func (e *Engine) tunePlain(g Func, q float64) (float64, bool, error) {
	if err := e.ready(); err != nil {
		return 0, false, err
	}

	if err := validateMomentum(q); err != nil {
		return 0, false, err
	}

	scale := e.cfg.Scale
	objective := func(x float64) float64 {
		return -math.Abs(x * g(x/q))
	}

	res, err := brent.Minimize(objective, scale/10, 10*scale, 53)
	if err != nil {
		return 0, false, e.fail("plain step", q, err)
	}

	h := res.X / e.zeros[0]
	if h >= MaxPlainStep {
		e.log.Warn().
			Float64("step", h).
			Int("nodes", e.cfg.Nodes).
			Float64("q", q).
			Msg("number of nodes may be too small, clamping step")

		return MaxPlainStep, true, nil
	}

	return h, false, nil
}

// TuneStepDE maps an untransformed step hu in (0, pi) to the
// double-exponential step ht solving
//
//	hu = pi tanh(pi/2 sinh(ht zero_N / pi))
//
// in closed form.
func (e *Engine) TuneStepDE(hu float64) (float64, error) {
	if err := e.ready(); err != nil {
		return 0, err
	}

	if !(hu > 0 && hu < math.Pi) {
		return 0, fmt.Errorf("%w: untransformed step %v outside (0, pi)", ErrInvalidStep, hu)
	}

	zeroN := e.zeros[e.cfg.Nodes-1]

	return math.Pi / zeroN * math.Asinh(2/math.Pi*math.Atanh(hu/math.Pi)), nil
}

// Steps returns both tuned steps for g and q.
func (e *Engine) Steps(g Func, q float64) (Steps, error) {
	hu, clamped, err := e.tunePlain(g, q)
	if err != nil {
		return Steps{}, err
	}

	ht, err := e.TuneStepDE(hu)
	if err != nil {
		return Steps{}, err
	}

	return Steps{Plain: hu, DE: ht, Clamped: clamped}, nil
}
