// Package lexer defines lexical analyzer for the stack language.
package lexer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/ava12/pslex"
	"github.com/ava12/pslex/grammar"
	"github.com/ava12/pslex/source"
)

// Lexer splits source text into tokens using regexp.Regexp compiled from a grammar.
// Lexer itself is immutable, stateless, and safe for concurrent use;
// all per-source state is kept in Scanner.
// Each term of the grammar maps to its own regexp capturing group.
// A match containing no captured groups is insignificant whitespace.
// Every byte of source text must belong to some lexeme.
type Lexer struct {
	re       *regexp.Regexp
	kinds    []Kind
	expected []string
	logger   *slog.Logger
}

// Option configures Lexer.
type Option func(*Lexer)

// WithLogger sets the logger for debug messages; nil disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Lexer) {
		if logger != nil {
			logger = logger.With(slog.String("component", "lexer"))
		}
		l.logger = logger
	}
}

// New creates a Lexer for grammar g.
// Returns an error if some term pattern is invalid or contains capturing groups.
func New(g *grammar.Grammar, opts ...Option) (*Lexer, error) {
	re, e := g.Compile()
	if e != nil {
		return nil, fmt.Errorf("compiling grammar: %w", e)
	}
	if re.NumSubexp() != len(g.Terms) {
		return nil, fmt.Errorf("compiling grammar: %d capturing groups for %d terms", re.NumSubexp(), len(g.Terms))
	}

	kinds := make([]Kind, len(g.Terms))
	for i, t := range g.Terms {
		kinds[i] = Kind(t.Kind)
	}
	l := &Lexer{re: re, kinds: kinds, expected: g.Expected()}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

var defaultGrammar = grammar.Default()

// Default creates a Lexer for grammar.Default().
func Default(opts ...Option) *Lexer {
	l, e := New(defaultGrammar, opts...)
	if e != nil {
		panic(e)
	}
	return l
}

// Expected returns the names of constructs accepted at the start of a token.
func (l *Lexer) Expected() []string {
	res := make([]string, len(l.expected))
	copy(res, l.expected)
	return res
}

func (l *Lexer) log(level slog.Level, msg string, args ...any) {
	if l.logger != nil {
		l.logger.Log(context.Background(), level, msg, args...)
	}
}

// Scanner fetches tokens of one source one by one.
// Scanner is not safe for concurrent use.
type Scanner struct {
	lexer     *Lexer
	src       *source.Source
	pos       int
	line, col int
	err       error
}

// Scan creates a scanner positioned at the start of src.
func (l *Lexer) Scan(src *source.Source) *Scanner {
	return &Scanner{lexer: l, src: src, line: 1, col: 1}
}

// advance moves current position past text, keeping line and col in step.
func (s *Scanner) advance(text []byte) {
	s.pos += len(text)
	if nl := bytes.LastIndexByte(text, '\n'); nl >= 0 {
		s.line += bytes.Count(text, []byte{'\n'})
		s.col = utf8.RuneCount(text[nl+1:]) + 1
	} else {
		s.col += utf8.RuneCount(text)
	}
}

func (s *Scanner) sourcePos() source.Pos {
	return source.NewPos(s.src, s.pos, s.line, s.col)
}

// Pos returns current byte offset.
func (s *Scanner) Pos() int {
	return s.pos
}

func describeChar(content []byte) string {
	r, size := utf8.DecodeRune(content)
	if r == utf8.RuneError && size <= 1 {
		return fmt.Sprintf("byte 0x%02x", content[0])
	}
	return "char " + strconv.QuoteRune(r)
}

func (s *Scanner) wrongCharError() *pslex.SyntaxError {
	content := s.src.Content()[s.pos:]
	return pslex.NewSyntaxError(s.sourcePos(), describeChar(content), s.lexer.expected)
}

// Next fetches token starting at current position and advances current position.
// Returns nil and io.EOF if only whitespace remains.
// Returns nil and *pslex.SyntaxError if no term matches at current position;
// the scanner stays at that position and keeps returning the same error.
func (s *Scanner) Next() (*Token, error) {
	if s.err != nil {
		return nil, s.err
	}

	content := s.src.Content()
	for s.pos < len(content) {
		match := s.lexer.re.FindSubmatchIndex(content[s.pos:])
		if len(match) == 0 || match[1] <= match[0] {
			e := s.wrongCharError()
			s.lexer.log(slog.LevelDebug, "no token matched",
				slog.String("source", s.src.Name()),
				slog.Int("offset", s.pos),
				slog.String("found", e.Found))
			s.err = e
			return nil, e
		}

		for i := 2; i < len(match); i += 2 {
			if match[i] < 0 {
				continue
			}

			base := s.pos
			s.advance(content[base : base+match[i]])
			tok := NewToken(s.lexer.kinds[i/2-1], string(content[base+match[i]:base+match[i+1]]), s.sourcePos())
			s.advance(content[s.pos : base+match[1]])
			return tok, nil
		}

		s.advance(content[s.pos : s.pos+match[1]])
	}

	return nil, io.EOF
}

// Tokenize fetches all tokens of src.
// Returns nil and the first *pslex.SyntaxError if src does not match the grammar.
func (l *Lexer) Tokenize(src *source.Source) ([]*Token, error) {
	s := l.Scan(src)
	var res []*Token
	for {
		tok, e := s.Next()
		if e == io.EOF {
			break
		}
		if e != nil {
			return nil, e
		}
		res = append(res, tok)
	}

	l.log(slog.LevelDebug, "source tokenized",
		slog.String("source", src.Name()),
		slog.Int("bytes", src.Len()),
		slog.Int("tokens", len(res)))
	return res, nil
}
