package cmd

import (
	"github.com/spf13/cobra"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file...]",
		Short: "Print tokens of each file (stdin if none)",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(cmd, args)
			if err != nil {
				return err
			}
			out, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			errOut, err := a.renderer(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			failed := false
			for _, in := range inputs {
				prog, err := a.parse(in.name, in.content)
				if err != nil {
					failed = true
					if werr := errOut.Error(err); werr != nil {
						return werr
					}
					continue
				}
				if err := out.Program(prog); err != nil {
					return err
				}
			}

			if failed {
				return errReported
			}
			return nil
		},
	}
}
