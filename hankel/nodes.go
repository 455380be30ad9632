package hankel

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-hankel/internal/bessel"
)

// nodes holds the per-call quadrature vectors. Index i refers to the i-th
// zero of J_nu in every slice.
type nodes struct {
	xi       []float64 // reduced zero zero_i / pi
	weight   []float64 // Y_nu(pi xi) / J_{nu+1}(pi xi)
	knot     []float64
	kernel   []float64 // J_nu(knot)
	jacobian []float64 // psi'(h xi); unused by the plain rule
	sample   []float64 // g(knot/q) / q
	term     []float64
}

// newNodes evaluates the reduced zeros and Ogata weights for the first N
// zeros. They depend only on the order and the table.
func (e *Engine) newNodes() (*nodes, error) {
	n := e.cfg.Nodes
	nu := e.cfg.Order

	nd := &nodes{
		xi:       make([]float64, n),
		weight:   make([]float64, n),
		knot:     make([]float64, n),
		kernel:   make([]float64, n),
		jacobian: make([]float64, n),
		sample:   make([]float64, n),
		term:     make([]float64, n),
	}

	for i, z := range e.zeros[:n] {
		nd.xi[i] = z / math.Pi

		next, err := bessel.J(nu+1, z)
		if err != nil {
			return nil, fmt.Errorf("J_%v at node %d: %w", nu+1, i, err)
		}

		y, err := bessel.Y(nu, z)
		if err != nil {
			return nil, fmt.Errorf("Y_%v at node %d: %w", nu, i, err)
		}

		nd.weight[i] = y / next
	}

	return nd, nil
}

// sampleAt fills kernel and sample from the current knots.
func (nd *nodes) sampleAt(nu float64, g Func, q float64) error {
	for i, k := range nd.knot {
		j, err := bessel.J(nu, k)
		if err != nil {
			return fmt.Errorf("J_%v at knot %d (%v): %w", nu, i, k, err)
		}

		nd.kernel[i] = j
		nd.sample[i] = g(k/q) / q
	}

	return nil
}

// contributions returns the sum over weight*sample*kernel and, if withJacobian
// is set, times the Jacobian.
func (nd *nodes) contributions(withJacobian bool) float64 {
	vecmath.MulBlock(nd.term, nd.weight, nd.sample)
	vecmath.MulBlockInPlace(nd.term, nd.kernel)

	if withJacobian {
		vecmath.MulBlockInPlace(nd.term, nd.jacobian)
	}

	return floats.Sum(nd.term)
}
