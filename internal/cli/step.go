package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type stepOptions struct {
	funcName string
	q        float64
}

// NewStepCommand creates the step command.
func NewStepCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &stepOptions{}

	cmd := &cobra.Command{
		Use:   "step",
		Short: "Print the tuned step sizes for an integrand",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStep(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.funcName, "func", "gaussian", "integrand name")
	cmd.Flags().Float64Var(&opts.q, "q", 1, "momentum")

	return cmd
}

func runStep(rootOpts *RootOptions, opts *stepOptions, cmd *cobra.Command) error {
	entry, err := lookupIntegrand(opts.funcName)
	if err != nil {
		return err
	}

	e, err := rootOpts.newEngine(cmd)
	if err != nil {
		return err
	}

	s, err := e.Steps(entry.g(e.Config().Order), opts.q)
	if err != nil {
		return fmt.Errorf("steps at q=%v: %w", opts.q, err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "hu\t%.15g\n", s.Plain)
	fmt.Fprintf(w, "ht\t%.15g\n", s.DE)
	fmt.Fprintf(w, "clamped\t%v\n", s.Clamped)

	return w.Flush()
}
