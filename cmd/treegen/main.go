// treegen builds binary trees from a root value and a branch rule, and
// benchmarks the recursive and iterative builders against each other.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "treegen [command] (flags)",
		Short:         "binary tree generation and benchmarking tool",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.AddCommand(
		newTreeCmd(),
		newBenchCmd(),
		newRulesCmd(),
	)

	return rootCmd
}

func main() {
	log.SetFlags(0)
	cobra.EnableCommandSorting = false

	if err := newRootCmd().Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
