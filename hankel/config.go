package hankel

import (
	"io"
	"math"
	"os"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-hankel/internal/bessel"
	"github.com/cwbudde/algo-hankel/internal/logging"
)

const (
	// DefaultOrder replaces an order that is negative or NaN.
	DefaultOrder = 0.0
	// DefaultNodes replaces a node count below 1.
	DefaultNodes = 10
	// DefaultScale replaces a scale that is not positive.
	DefaultScale = 1.0

	// MaxNodes is the size of the zero table, about 2^15.
	MaxNodes = 32769

	// MaxOrder is the largest order for which the zero table and the
	// weights, which need J_{nu+1}, can be evaluated.
	MaxOrder = bessel.MaxOrder - 1

	// MaxPlainStep caps the tuned untransformed step size.
	MaxPlainStep = 3.0
)

// Config holds the engine parameters.
type Config struct {
	// Order is the Bessel order nu >= 0.
	Order float64
	// Nodes is the number of quadrature nodes N, 1 <= N <= MaxNodes.
	Nodes int
	// Scale is the expected location Q of the peak of |x g(x/q)|, Q > 0.
	Scale float64
}

// DefaultConfig returns the configuration used for out-of-range fields.
func DefaultConfig() Config {
	return Config{
		Order: DefaultOrder,
		Nodes: DefaultNodes,
		Scale: DefaultScale,
	}
}

// sanitize replaces unsupported fields by their defaults and logs every
// substitution.
func (c Config) sanitize(log zerolog.Logger) Config {
	if !(c.Order >= 0) {
		logFallback(log, "nu", c.Order, DefaultOrder)
		c.Order = DefaultOrder
	}

	switch {
	case c.Nodes < 1:
		logFallback(log, "N", float64(c.Nodes), DefaultNodes)
		c.Nodes = DefaultNodes
	case c.Nodes > MaxNodes:
		logFallback(log, "N", float64(c.Nodes), MaxNodes)
		c.Nodes = MaxNodes
	}

	if !(c.Scale > 0) || math.IsInf(c.Scale, 1) {
		logFallback(log, "Q", c.Scale, DefaultScale)
		c.Scale = DefaultScale
	}

	return c
}

func logFallback(log zerolog.Logger, field string, given, def float64) {
	log.Warn().
		Str("field", field).
		Float64("given", given).
		Float64("default", def).
		Msgf("value of %s = %v is not supported, falling back to %s = %v", field, given, field, def)
}

type options struct {
	logger zerolog.Logger
	banner io.Writer
}

// Option configures an Engine.
type Option func(*options)

// WithLogger sets the logger for diagnostics. The default writes warnings
// to stderr.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.logger = log
	}
}

// WithBannerWriter sets where the banner is written during construction.
// A nil writer suppresses it. The default is os.Stdout.
func WithBannerWriter(w io.Writer) Option {
	return func(o *options) {
		o.banner = w
	}
}

func applyOptions(opts ...Option) options {
	o := options{
		logger: logging.Default(),
		banner: os.Stdout,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
