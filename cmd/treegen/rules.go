package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bintree/builder"
	"github.com/katalvlaran/bintree/rule"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "list the named branch rules and build strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, name := range rule.Names() {
				r, err := rule.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "rule      %-10s %s\n", name, describe(r))
			}
			fmt.Fprintf(w, "rule      %-10s %s\n", "lin:...", "left = lm·v + la, right = rm·v + ra")
			for _, s := range builder.Strategies() {
				fmt.Fprintf(w, "strategy  %s\n", s)
			}
			return nil
		},
	}
}

// describe shows the children a rule derives from 1.
func describe(r rule.BranchRule) string {
	l, rt := r.Apply(1)

	return fmt.Sprintf("1 -> (%d, %d)", l, rt)
}
