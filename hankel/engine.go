package hankel

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-hankel/internal/bessel"
)

// Func is an integrand. It must be a pure function of x.
type Func func(x float64) float64

// Engine evaluates Hankel transforms for a fixed order, node count and
// scale. The zero value is not usable; build engines with New.
type Engine struct {
	cfg   Config
	zeros []float64
	log   zerolog.Logger
}

// New builds an engine for Bessel order nu, n quadrature nodes and step
// tuning scale Q. Unsupported parameters are replaced by their defaults with
// a warning. The zeros of J_nu are tabulated once; New fails only if that is
// impossible, which happens for infinite orders or orders above MaxOrder.
func New(order float64, nodes int, scale float64, opts ...Option) (*Engine, error) {
	return NewFromConfig(Config{Order: order, Nodes: nodes, Scale: scale}, opts...)
}

// NewFromConfig is New with the parameters taken from cfg.
func NewFromConfig(cfg Config, opts ...Option) (*Engine, error) {
	o := applyOptions(opts...)
	cfg = cfg.sanitize(o.logger)

	if cfg.Order > MaxOrder {
		err := fmt.Errorf("%w: order %v: %w", ErrZeroTable, cfg.Order, bessel.ErrUnsupportedOrder)
		o.logger.Error().Err(err).Float64("order", cfg.Order).Msg("zero table")

		return nil, err
	}

	zeros, err := bessel.Zeros(cfg.Order, MaxNodes)
	if err != nil {
		err = fmt.Errorf("%w: order %v: %w", ErrZeroTable, cfg.Order, err)
		o.logger.Error().Err(err).Float64("order", cfg.Order).Msg("zero table")

		return nil, err
	}

	if err := writeBanner(o.banner); err != nil {
		o.logger.Debug().Err(err).Msg("banner")
	}

	return &Engine{
		cfg:   cfg,
		zeros: zeros,
		log:   o.logger,
	}, nil
}

// Config returns the effective parameters after fallback substitution.
func (e *Engine) Config() Config {
	return e.cfg
}

// Zero returns the i-th positive zero of J_nu, counting from 0. It panics
// if i is outside [0, MaxNodes) or the engine has no table.
func (e *Engine) Zero(i int) float64 {
	return e.zeros[i]
}

// Zeros returns a copy of the zero table.
func (e *Engine) Zeros() []float64 {
	out := make([]float64, len(e.zeros))
	copy(out, e.zeros)

	return out
}

func (e *Engine) ready() error {
	if e == nil || len(e.zeros) < MaxNodes {
		return ErrNoZeroTable
	}

	return nil
}

// fail logs err at error level and returns it wrapped in ErrEvaluation.
func (e *Engine) fail(op string, q float64, err error) error {
	err = fmt.Errorf("%w: %s: %w", ErrEvaluation, op, err)
	e.log.Error().Err(err).Float64("q", q).Float64("order", e.cfg.Order).Int("nodes", e.cfg.Nodes).Msg(op)

	return err
}
