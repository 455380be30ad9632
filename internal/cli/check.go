package cli

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-hankel/internal/reference"
)

type checkOptions struct {
	funcName string
	q        float64
	panels   int
	points   int
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare both quadratures with a panel-integration reference",
		Long: `Compare the untransformed and double-exponential transforms with an
independent Gauss-Legendre integration over the intervals between the zeros
of J_nu(q x). The reference drops the tail beyond the last panel.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.funcName, "func", "gaussian", "integrand name")
	cmd.Flags().Float64Var(&opts.q, "q", 1, "momentum")
	cmd.Flags().IntVar(&opts.panels, "panels", 200, "reference panels")
	cmd.Flags().IntVar(&opts.points, "points", 32, "Gauss-Legendre points per panel")

	return cmd
}

func runCheck(rootOpts *RootOptions, opts *checkOptions, cmd *cobra.Command) error {
	entry, err := lookupIntegrand(opts.funcName)
	if err != nil {
		return err
	}

	e, err := rootOpts.newEngine(cmd)
	if err != nil {
		return err
	}

	nu := e.Config().Order
	g := entry.g(nu)

	ref, err := reference.Panels(g, nu, opts.q, opts.panels, opts.points)
	if err != nil {
		return fmt.Errorf("reference at q=%v: %w", opts.q, err)
	}

	rootOpts.logger(cmd).Debug().
		Float64("q", opts.q).
		Int("panels", opts.panels).
		Int("points", opts.points).
		Float64("value", ref).
		Msg("panel reference")

	plain, err := e.TransformPlain(g, opts.q)
	if err != nil {
		return fmt.Errorf("transform plain at q=%v: %w", opts.q, err)
	}

	de, err := e.TransformDE(g, opts.q)
	if err != nil {
		return fmt.Errorf("transform de at q=%v: %w", opts.q, err)
	}

	exact := entry.exact(nu, opts.q)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "method\tvalue\t|diff| to reference\t|diff| to exact")

	rows := []struct {
		name  string
		value float64
	}{
		{name: "plain", value: plain},
		{name: "de", value: de},
		{name: "reference", value: ref},
		{name: "exact", value: exact},
	}

	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%.15g\t%.2e\t%.2e\n", r.name, r.value, math.Abs(r.value-ref), math.Abs(r.value-exact))
	}

	return w.Flush()
}
