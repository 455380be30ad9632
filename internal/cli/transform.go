package cli

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-hankel/hankel"
)

// ValidMethods lists the accepted --method values.
var ValidMethods = []string{"de", "plain", "both"}

type transformOptions struct {
	funcName string
	qs       []float64
	method   string
}

// NewTransformCommand creates the transform command.
func NewTransformCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &transformOptions{}

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Transform a built-in integrand at one or more momenta",
		Long: `Transform a built-in integrand at one or more momenta q.

Every q is an independent engine call with its own tuned step. When the
integrand has a closed form, the exact value and the relative error are
printed as well.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.funcName, "func", "gaussian", "integrand name")
	cmd.Flags().Float64SliceVar(&opts.qs, "q", []float64{1}, "momenta, comma separated")
	cmd.Flags().StringVar(&opts.method, "method", "de", "quadrature (de|plain|both)")

	return cmd
}

func methodsFor(name string) ([]string, error) {
	switch name {
	case "de":
		return []string{"de"}, nil
	case "plain":
		return []string{"plain"}, nil
	case "both":
		return []string{"plain", "de"}, nil
	}

	return nil, fmt.Errorf("invalid method %q: must be one of %v", name, ValidMethods)
}

func runTransform(rootOpts *RootOptions, opts *transformOptions, cmd *cobra.Command) error {
	methods, err := methodsFor(opts.method)
	if err != nil {
		return err
	}

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

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	fmt.Fprint(w, "q")

	for _, m := range methods {
		fmt.Fprintf(w, "\t%s", m)
	}

	fmt.Fprint(w, "\texact")

	for _, m := range methods {
		fmt.Fprintf(w, "\terr(%s)", m)
	}

	fmt.Fprintln(w)

	for _, q := range opts.qs {
		values := make([]float64, len(methods))

		for i, m := range methods {
			values[i], err = transformWith(e, m, g, q)
			if err != nil {
				return fmt.Errorf("transform %s at q=%v: %w", m, q, err)
			}
		}

		exact := entry.exact(nu, q)

		fmt.Fprintf(w, "%g", q)

		for _, v := range values {
			fmt.Fprintf(w, "\t%.15g", v)
		}

		fmt.Fprintf(w, "\t%.15g", exact)

		for _, v := range values {
			fmt.Fprintf(w, "\t%.2e", relErr(v, exact))
		}

		fmt.Fprintln(w)
	}

	return w.Flush()
}

func transformWith(e *hankel.Engine, method string, g hankel.Func, q float64) (float64, error) {
	if method == "plain" {
		return e.TransformPlain(g, q)
	}

	return e.TransformDE(g, q)
}

func relErr(got, want float64) float64 {
	d := math.Abs(got - want)
	if want == 0 {
		return d
	}

	return d / math.Abs(want)
}
