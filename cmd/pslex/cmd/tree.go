package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ava12/pslex/tree"
)

func newTreeCmd(a *app) *cobra.Command {
	var nest bool
	cmd := &cobra.Command{
		Use:   "tree [file...]",
		Short: "Print program tree of each file (stdin if none)",
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
				var root *tree.Node
				if err == nil {
					if nest {
						root, err = tree.Nest(prog)
					} else {
						root = tree.Flat(prog)
					}
				}
				if err != nil {
					failed = true
					if werr := errOut.Error(err); werr != nil {
						return werr
					}
					continue
				}
				if err := out.Tree(root); err != nil {
					return err
				}
			}

			if failed {
				return errReported
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&nest, "nest", "n", false, "group [ ] into arrays and { } into procedures")
	return cmd
}
