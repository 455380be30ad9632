// Package cli implements the fbt command tree.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-hankel/hankel"
	"github.com/cwbudde/algo-hankel/internal/config"
	"github.com/cwbudde/algo-hankel/internal/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Quiet      bool

	Order float64
	Nodes int
	Scale float64
}

// NewRootCommand creates the root command for the fbt CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "fbt",
		Short: "Fast Bessel Transform",
		Long: `Evaluate Hankel transforms integral_0^inf g(x) J_nu(q x) dx of built-in
integrands with Ogata's quadrature, untransformed or double-exponential.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := logging.ParseLevel(opts.LogLevel); err != nil {
				return err
			}

			return nil
		},
	}

	def := hankel.DefaultConfig()

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "diagnostic level (debug|info|warn|error|disabled)")
	cmd.PersistentFlags().BoolVar(&opts.Quiet, "quiet", false, "suppress the banner")
	cmd.PersistentFlags().Float64Var(&opts.Order, "order", def.Order, "Bessel order nu")
	cmd.PersistentFlags().IntVarP(&opts.Nodes, "nodes", "N", def.Nodes, "number of quadrature nodes")
	cmd.PersistentFlags().Float64Var(&opts.Scale, "scale", def.Scale, "step tuning scale Q")

	cmd.AddCommand(NewTransformCommand(opts))
	cmd.AddCommand(NewStepCommand(opts))
	cmd.AddCommand(NewZerosCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewListCommand())

	return cmd
}

// newEngine layers defaults, the configuration file and explicitly set
// flags, in that order, and builds an engine. Diagnostics go to the
// command's stderr and the banner to its stdout.
func (o *RootOptions) newEngine(cmd *cobra.Command) (*hankel.Engine, error) {
	cfg := hankel.DefaultConfig()
	levelName := o.LogLevel

	if o.ConfigPath != "" {
		f, err := config.Load(o.ConfigPath)
		if err != nil {
			return nil, err
		}

		cfg = f.Apply(cfg)

		if f.Level() != "" && !cmd.Flags().Changed("log-level") {
			levelName = f.Level()
		}
	}

	flags := cmd.Flags()
	if flags.Changed("order") {
		cfg.Order = o.Order
	}

	if flags.Changed("nodes") {
		cfg.Nodes = o.Nodes
	}

	if flags.Changed("scale") {
		cfg.Scale = o.Scale
	}

	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	opts := []hankel.Option{
		hankel.WithLogger(logging.New(cmd.ErrOrStderr(), level)),
		hankel.WithBannerWriter(cmd.OutOrStdout()),
	}

	if o.Quiet {
		opts = append(opts, hankel.WithBannerWriter(nil))
	}

	e, err := hankel.NewFromConfig(cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}

	return e, nil
}

// logger returns a logger for command-level diagnostics.
func (o *RootOptions) logger(cmd *cobra.Command) zerolog.Logger {
	level, err := logging.ParseLevel(o.LogLevel)
	if err != nil {
		level = logging.DefaultLevel
	}

	return logging.New(cmd.ErrOrStderr(), level)
}
