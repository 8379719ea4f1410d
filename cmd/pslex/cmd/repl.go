package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ava12/pslex"
	"github.com/ava12/pslex/internal/render"
	"github.com/ava12/pslex/parser"
	"github.com/ava12/pslex/tree"
)

const (
	prompt         = "PS> "
	continuePrompt = "... "
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Tokenize lines typed at a prompt",
		Long: `Reads lines from stdin and prints their tokens.
A line leaving [ or { open is continued on the next line.
Empty lines are skipped, end of input exits.
A group still open at end of input is reported as an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return a.repl(bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout(), out)
		},
	}
}

// unclosedError returns the nesting error if prog leaves a group open, nil otherwise.
func unclosedError(prog *parser.Program) error {
	_, err := tree.Nest(prog)
	se, ok := pslex.AsSyntaxError(err)
	if ok && se.Found == pslex.EndOfInput {
		return se
	}
	return nil
}

// repl reads lines until end of input. Input leaving a group open is
// accumulated and parsed again with the next line.
func (a *app) repl(reader *bufio.Reader, w io.Writer, out *render.Renderer) error {
	prevInput := ""
	inputNo := 0
	for {
		if prevInput == "" {
			fmt.Fprint(w, prompt)
		} else {
			fmt.Fprint(w, continuePrompt)
		}

		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		eof := (err == io.EOF)

		line = strings.TrimRight(line, "\r\n")
		if line == "" && prevInput == "" {
			if eof {
				fmt.Fprintln(w)
				return nil
			}
			continue
		}

		input := line
		if prevInput != "" {
			input = prevInput + "\n" + line
		} else {
			inputNo++
		}
		prevInput = ""

		prog, perr := a.parse("input "+strconv.Itoa(inputNo), []byte(input))
		if perr == nil {
			if uerr := unclosedError(prog); uerr != nil {
				if !eof {
					prevInput = input
					continue
				}
				perr = uerr
			}
		}

		if perr != nil {
			if werr := out.Error(perr); werr != nil {
				return werr
			}
		} else if werr := out.Program(prog); werr != nil {
			return werr
		}

		if eof {
			fmt.Fprintln(w)
			return nil
		}
	}
}
