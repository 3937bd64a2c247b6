package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dhamidi/comb/grammars"
	"github.com/spf13/cobra"
)

func newGrammarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grammars",
		Short: "List the builtin grammars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, g := range grammars.All() {
				fmt.Fprintf(w, "%s\t%s\n", g.Name, g.Description)
			}
			return w.Flush()
		},
	}
}
