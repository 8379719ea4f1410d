/*
Package pslex is a tokenizer for a small PostScript-like stack language.

Consists of subpackages:
  - grammar: ordered list of token terms that make up the language;
  - source: source text with line/column lookup;
  - lexer: lexical analyzer turning a source into typed tokens;
  - parser: builds a Program (ordered token sequence) from source text;
  - tree: program trees, flat or with arrays and procedures nested;
  - cmd/pslex: console utility printing tokens and trees.

The language has no semantic layer here: tokens are classified, never evaluated.
The only error produced while parsing is *SyntaxError.
*/
package pslex

import (
	"errors"
	"fmt"
	"strings"
)

// SyntaxError is returned when the input at some position matches none of the
// alternatives allowed there.
type SyntaxError struct {
	// Message contains the complete error message including position information.
	Message string

	// SourceName contains source name or empty string.
	SourceName string

	// Offset contains byte offset of the offending character.
	Offset int

	// Line and Col contain 1-based position of the offending character.
	Line, Col int

	// Found contains quoted offending character or "end of input".
	Found string

	// Expected lists the constructs that would have been accepted.
	Expected []string
}

// SourcePos is used to retrieve position information when constructing an error;
// source.Pos and lexer.Token implement this interface.
type SourcePos interface {
	SourceName() string
	Offset() int
	Line() int
	Col() int
}

// EndOfInput is the Found value for errors at the end of source text.
const EndOfInput = "end of input"

// NewSyntaxError creates new SyntaxError at pos.
// Source name, line, and col are added to the message if provided.
func NewSyntaxError(pos SourcePos, found string, expected []string) *SyntaxError {
	msg := "unexpected " + found
	if len(expected) > 0 {
		msg += ", expecting " + JoinExpected(expected)
	}
	name := pos.SourceName()
	line, col := pos.Line(), pos.Col()
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	} else if line != 0 && col != 0 {
		msg += fmt.Sprintf(" at line %d col %d", line, col)
	}

	exp := make([]string, len(expected))
	copy(exp, expected)
	return &SyntaxError{msg, name, pos.Offset(), line, col, found, exp}
}

// Error simply returns SyntaxError.Message.
func (e *SyntaxError) Error() string {
	return e.Message
}

// AsSyntaxError finds the first SyntaxError in err's chain.
func AsSyntaxError(err error) (*SyntaxError, bool) {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// JoinExpected renders a list of alternatives as "a, b or c".
func JoinExpected(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}
