// Package render writes programs, trees, grammars and errors in text, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/ava12/pslex"
	"github.com/ava12/pslex/grammar"
	"github.com/ava12/pslex/internal/config"
	"github.com/ava12/pslex/lexer"
	"github.com/ava12/pslex/parser"
	"github.com/ava12/pslex/tree"
)

var styleKeys = map[lexer.Kind]string{
	lexer.Identifier:  "identifier",
	lexer.Key:         "key",
	lexer.RadixNumber: "radix",
	lexer.Float:       "float",
	lexer.Integer:     "integer",
	lexer.Op:          "op",
}

// Renderer writes values to one output stream.
type Renderer struct {
	w      io.Writer
	format string
	color  bool
	kinds  map[lexer.Kind]lipgloss.Style
	errSt  lipgloss.Style
}

// New creates a renderer writing to w.
func New(w io.Writer, cfg config.OutputConfig) (*Renderer, error) {
	switch cfg.Format {
	case config.FormatText, config.FormatJSON, config.FormatYAML:
	default:
		return nil, fmt.Errorf("unknown output format %q", cfg.Format)
	}

	lr := lipgloss.NewRenderer(w)
	if cfg.Color {
		// color is requested explicitly, w is usually not a terminal
		lr.SetColorProfile(termenv.ANSI256)
	}
	r := &Renderer{
		w:      w,
		format: cfg.Format,
		color:  cfg.Color,
		kinds:  make(map[lexer.Kind]lipgloss.Style, len(styleKeys)),
		errSt:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color(cfg.Styles["error"])),
	}
	for kind, key := range styleKeys {
		r.kinds[kind] = lr.NewStyle().Foreground(lipgloss.Color(cfg.Styles[key]))
	}
	return r, nil
}

// TokenRecord is the structured form of a token.
type TokenRecord struct {
	Kind   string `json:"kind" yaml:"kind"`
	Text   string `json:"text" yaml:"text"`
	Line   int    `json:"line" yaml:"line"`
	Col    int    `json:"col" yaml:"col"`
	Offset int    `json:"offset" yaml:"offset"`
	Value  any    `json:"value,omitempty" yaml:"value,omitempty"`
}

// ProgramRecord is the structured form of a program.
type ProgramRecord struct {
	Source string        `json:"source" yaml:"source"`
	Tokens []TokenRecord `json:"tokens" yaml:"tokens"`
}

// NodeRecord is the structured form of a tree node.
type NodeRecord struct {
	Type     string       `json:"type" yaml:"type"`
	Token    *TokenRecord `json:"token,omitempty" yaml:"token,omitempty"`
	Children []NodeRecord `json:"children,omitempty" yaml:"children,omitempty"`
}

// NewTokenRecord converts t; Value holds the number value if it can be computed
// or the key name.
func NewTokenRecord(t *lexer.Token) TokenRecord {
	rec := TokenRecord{
		Kind:   t.Kind().String(),
		Text:   t.Text(),
		Line:   t.Line(),
		Col:    t.Col(),
		Offset: t.Offset(),
	}

	switch t.Kind() {
	case lexer.Integer:
		if v, e := t.Int(); e == nil {
			rec.Value = v
		}
	case lexer.Float:
		if v, e := t.Float(); e == nil {
			rec.Value = v
		}
	case lexer.RadixNumber:
		if _, v, e := t.Radix(); e == nil {
			rec.Value = v
		}
	case lexer.Key:
		rec.Value = t.Name()
	}
	return rec
}

// NewProgramRecord converts p.
func NewProgramRecord(p *parser.Program) ProgramRecord {
	rec := ProgramRecord{Source: p.Name, Tokens: make([]TokenRecord, len(p.Items))}
	for i, t := range p.Items {
		rec.Tokens[i] = NewTokenRecord(t)
	}
	return rec
}

// NewNodeRecord converts n and its descendants.
func NewNodeRecord(n *tree.Node) NodeRecord {
	rec := NodeRecord{Type: n.Type}
	if n.IsItem() {
		tr := NewTokenRecord(n.Token)
		rec.Token = &tr
	}
	for _, c := range n.Children {
		rec.Children = append(rec.Children, NewNodeRecord(c))
	}
	return rec
}

func (r *Renderer) encode(v any) error {
	switch r.format {
	case config.FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)

	case config.FormatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if e := enc.Encode(v); e != nil {
			return e
		}
		return enc.Close()
	}
	return fmt.Errorf("cannot encode %T as %s", v, r.format)
}

func (r *Renderer) styled(kind lexer.Kind, s string) string {
	if !r.color {
		return s
	}
	return r.kinds[kind].Render(s)
}

// Program writes p, one token per line in text format: "line:col kind text".
func (r *Renderer) Program(p *parser.Program) error {
	if r.format != config.FormatText {
		return r.encode(NewProgramRecord(p))
	}

	var sb strings.Builder
	for _, t := range p.Items {
		pos := strconv.Itoa(t.Line()) + ":" + strconv.Itoa(t.Col())
		fmt.Fprintf(&sb, "%-8s %-12s %s\n", pos, t.Kind(), r.styled(t.Kind(), t.Text()))
	}
	_, e := io.WriteString(r.w, sb.String())
	return e
}

// Tree writes n; text format is indented like tree.Format.
func (r *Renderer) Tree(n *tree.Node) error {
	if r.format != config.FormatText {
		return r.encode(NewNodeRecord(n))
	}

	var sb strings.Builder
	tree.Walk(n, func(stat tree.WalkStat) bool {
		sb.WriteString(strings.Repeat("  ", stat.Level))
		node := stat.Node
		if node.IsItem() {
			t := node.Token
			sb.WriteString(t.Kind().String() + " " + r.styled(t.Kind(), strconv.Quote(t.Text())))
		} else {
			sb.WriteString(node.Type + ":")
		}
		sb.WriteByte('\n')
		return true
	})
	_, e := io.WriteString(r.w, sb.String())
	return e
}

// Grammar writes the term table of g.
func (r *Renderer) Grammar(g *grammar.Grammar) error {
	if r.format != config.FormatText {
		return r.encode(g)
	}

	var sb strings.Builder
	for _, t := range g.Terms {
		fmt.Fprintf(&sb, "%-12s %-14s %s\n", t.Name, t.Expect, t.Re)
	}
	fmt.Fprintf(&sb, "%-12s %-14s %s\n", "(spaces)", "", g.Spaces)
	_, e := io.WriteString(r.w, sb.String())
	return e
}

// ErrorRecord is the structured form of a syntax error.
type ErrorRecord struct {
	Error    string   `json:"error" yaml:"error"`
	Source   string   `json:"source,omitempty" yaml:"source,omitempty"`
	Offset   int      `json:"offset" yaml:"offset"`
	Line     int      `json:"line" yaml:"line"`
	Col      int      `json:"col" yaml:"col"`
	Found    string   `json:"found,omitempty" yaml:"found,omitempty"`
	Expected []string `json:"expected,omitempty" yaml:"expected,omitempty"`
}

// Error writes e verbatim; syntax errors keep position and expected set in
// structured formats.
func (r *Renderer) Error(e error) error {
	if r.format == config.FormatText {
		msg := "error: " + e.Error()
		if r.color {
			msg = r.errSt.Render(msg)
		}
		_, we := fmt.Fprintln(r.w, msg)
		return we
	}

	rec := ErrorRecord{Error: e.Error()}
	if se, ok := pslex.AsSyntaxError(e); ok {
		rec.Source = se.SourceName
		rec.Offset = se.Offset
		rec.Line = se.Line
		rec.Col = se.Col
		rec.Found = se.Found
		rec.Expected = se.Expected
	}
	return r.encode(rec)
}
