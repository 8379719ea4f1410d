package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ava12/pslex/grammar"
)

func newGrammarCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "grammar",
		Short: "Print token terms in the order they are tried",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return out.Grammar(grammar.Default())
		},
	}
}
