// Package cmd implements pslex subcommands.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava12/pslex/internal/config"
	"github.com/ava12/pslex/internal/render"
	"github.com/ava12/pslex/lexer"
	"github.com/ava12/pslex/parser"
	"github.com/ava12/pslex/source"
)

// errReported is returned by commands that have already written their errors.
var errReported = errors.New("errors reported")

const stdinName = "<stdin>"

type app struct {
	cfgFile string
	verbose bool
	format  string
	color   bool

	cfg    *config.Config
	logger *slog.Logger
	lexer  *lexer.Lexer
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "pslex",
		Short: "Tokenizer for a PostScript-like stack language",
		Long: `pslex splits stack language source into tokens:

  identifiers   add dup foo-bar.baz
  keys          /name
  radix numbers 16#FF 2#101
  numbers       3.5 -12 +7
  ops           [ ] { }

Tokens are separated by spaces and newlines. No code is executed.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./pslex.toml or $"+config.EnvVar+")")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")
	flags.StringVarP(&a.format, "format", "f", "", "output format: text, json, yaml")
	flags.BoolVar(&a.color, "color", false, "colorize text output")

	root.AddCommand(
		newTokensCmd(a),
		newTreeCmd(a),
		newReplCmd(a),
		newGrammarCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command line and returns the process exit status.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "pslex: %v\n", err)
		}
		return 1
	}
	return 0
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Find(a.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if flags.Changed("color") {
		cfg.Output.Color = a.color
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := cfg.Log.SlogLevel()
	if a.verbose {
		level = slog.LevelDebug
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.lexer = lexer.Default(lexer.WithLogger(a.logger))
	a.logger.Debug("configuration loaded",
		slog.String("format", cfg.Output.Format),
		slog.Bool("color", cfg.Output.Color))
	return nil
}

func (a *app) renderer(w io.Writer) (*render.Renderer, error) {
	return render.New(w, a.cfg.Output)
}

func (a *app) parse(name string, content []byte) (*parser.Program, error) {
	return parser.ParseSource(a.lexer, source.New(name, content))
}

type input struct {
	name    string
	content []byte
}

// readInputs reads named files, or stdin if there are none or a name is "-".
func readInputs(cmd *cobra.Command, args []string) ([]input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}

	res := make([]input, 0, len(args))
	for _, name := range args {
		var content []byte
		var err error
		if name == "-" {
			name = stdinName
			content, err = io.ReadAll(cmd.InOrStdin())
		} else {
			content, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		res = append(res, input{name, content})
	}
	return res, nil
}
