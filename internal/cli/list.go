package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in integrands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tg(x)\tTRANSFORM")

			for _, e := range sortedRegistry() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.name, e.expr, e.transform)
			}

			return w.Flush()
		},
	}
}
