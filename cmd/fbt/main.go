// Command fbt evaluates Hankel transforms with Ogata's quadrature.
//
// Usage:
//
//	fbt [global flags] <command> [flags]
//
// Examples:
//
//	fbt list
//	fbt transform --func gaussian --q 0.5,1,2 --nodes 50
//	fbt transform --func exponential --method both --order 1
//	fbt step --func exp-measure --q 10
//	fbt zeros --order 2.5 --count 5
//	fbt check --func gaussian --q 1 --config fbt.yaml
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-hankel/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
