package hankel

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrZeroTable is returned by New when the zeros of J_nu cannot be
	// tabulated.
	ErrZeroTable = errors.New("hankel: cannot tabulate bessel zeros")

	// ErrNoZeroTable is returned by every operation on an Engine that was
	// not built with New.
	ErrNoZeroTable = errors.New("hankel: engine has no zero table")

	// ErrEvaluation is returned when a Bessel evaluation or the step
	// minimization fails, or when a quadrature sum is not finite.
	ErrEvaluation = errors.New("hankel: evaluation failed")

	// ErrInvalidMomentum is returned for q that is not finite and positive.
	ErrInvalidMomentum = errors.New("hankel: momentum must be finite and > 0")

	// ErrInvalidStep is returned for a step size outside its domain.
	ErrInvalidStep = errors.New("hankel: invalid step size")
)

func validateMomentum(q float64) error {
	if !(q > 0) || math.IsInf(q, 1) {
		return fmt.Errorf("%w: %v", ErrInvalidMomentum, q)
	}

	return nil
}

func validateStep(h float64) error {
	if !(h > 0) || math.IsInf(h, 1) {
		return fmt.Errorf("%w: %v", ErrInvalidStep, h)
	}

	return nil
}
