// Package parser builds programs (ordered token sequences) from source text.
package parser

import (
	"strings"

	"github.com/ava12/pslex/lexer"
	"github.com/ava12/pslex/source"
)

// Program is the token stream of one source in source order.
// Program is owned by the caller, parser keeps no references to it.
type Program struct {
	Name  string
	Items []*lexer.Token
}

// Len returns the number of items.
func (p *Program) Len() int {
	return len(p.Items)
}

// String returns item texts joined by single spaces.
// The result parses to the same sequence of kinds and texts.
func (p *Program) String() string {
	var sb strings.Builder
	for i, t := range p.Items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.Text())
	}
	return sb.String()
}

// Same reports whether both programs consist of the same kinds and texts.
// Positions and names are ignored.
func (p *Program) Same(other *Program) bool {
	if len(p.Items) != len(other.Items) {
		return false
	}
	for i, t := range p.Items {
		if !t.Same(other.Items[i]) {
			return false
		}
	}
	return true
}

var defaultLexer = lexer.Default()

// Parse tokenizes text using the default grammar.
// Returns nil and *pslex.SyntaxError on the first position that matches no item.
//
// Without opts a shared lexer is used. Any opts make Parse compile a new
// lexer on every call; callers parsing many texts with options should
// build one lexer.Lexer and call ParseSource with it.
func Parse(name string, text []byte, opts ...lexer.Option) (*Program, error) {
	l := defaultLexer
	if len(opts) > 0 {
		l = lexer.Default(opts...)
	}
	return ParseSource(l, source.New(name, text))
}

// ParseString is Parse for string input.
func ParseString(name, text string, opts ...lexer.Option) (*Program, error) {
	return Parse(name, []byte(text), opts...)
}

// ParseSource tokenizes src with l.
func ParseSource(l *lexer.Lexer, src *source.Source) (*Program, error) {
	items, e := l.Tokenize(src)
	if e != nil {
		return nil, e
	}
	return &Program{Name: src.Name(), Items: items}, nil
}
