package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-hankel/hankel"
)

// NewZerosCommand creates the zeros command.
func NewZerosCommand(rootOpts *RootOptions) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "zeros",
		Short: "Print the tabulated zeros of J_nu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 || count > hankel.MaxNodes {
				return fmt.Errorf("count must be in [1, %d]: %d", hankel.MaxNodes, count)
			}

			e, err := rootOpts.newEngine(cmd)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "k\tj(%g,k)\n", e.Config().Order)

			for i := range count {
				fmt.Fprintf(w, "%d\t%.12f\n", i+1, e.Zero(i))
			}

			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&count, "count", 10, "number of zeros")

	return cmd
}
