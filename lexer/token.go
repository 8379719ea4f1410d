package lexer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ava12/pslex/grammar"
	"github.com/ava12/pslex/source"
)

// Kind is the token class.
type Kind int

const (
	Identifier  = Kind(grammar.IdentifierTerm)
	Key         = Kind(grammar.KeyTerm)
	RadixNumber = Kind(grammar.RadixNumberTerm)
	Float       = Kind(grammar.FloatTerm)
	Integer     = Kind(grammar.IntegerTerm)
	Op          = Kind(grammar.OpTerm)
)

var kindNames = [...]string{
	Identifier:  "identifier",
	Key:         "key",
	RadixNumber: "radix number",
	Float:       "float",
	Integer:     "integer",
	Op:          "op",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// IsNumber reports whether k is one of numeric kinds.
func (k Kind) IsNumber() bool {
	return k == Float || k == Integer || k == RadixNumber
}

// ErrWrongKind is wrapped by value accessors called on a token of unsuitable kind.
var ErrWrongKind = errors.New("wrong token kind")

type Token struct {
	kind      Kind
	text      string
	source    *source.Source
	offset    int
	line, col int
}

// SourcePos is implemented by source.Pos.
type SourcePos interface {
	Source() *source.Source
	Offset() int
	Line() int
	Col() int
}

// NewToken creates a token. sp may be nil.
func NewToken(kind Kind, text string, sp SourcePos) *Token {
	if sp == nil {
		return &Token{kind: kind, text: text}
	}
	return &Token{kind, text, sp.Source(), sp.Offset(), sp.Line(), sp.Col()}
}

func (t *Token) Kind() Kind {
	return t.kind
}

func (t *Token) Text() string {
	return t.text
}

func (t *Token) Source() *source.Source {
	return t.source
}

func (t *Token) SourceName() string {
	if t.source == nil {
		return ""
	}
	return t.source.Name()
}

func (t *Token) Offset() int {
	return t.offset
}

func (t *Token) Line() int {
	return t.line
}

func (t *Token) Col() int {
	return t.col
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %q", t.kind, t.text)
}

// Same reports whether both tokens have the same kind and text.
func (t *Token) Same(other *Token) bool {
	return t.kind == other.kind && t.text == other.text
}

// Name returns key name without leading slash, or token text for other kinds.
func (t *Token) Name() string {
	if t.kind == Key {
		return t.text[1:]
	}
	return t.text
}

func (t *Token) wrongKind(want string) error {
	return fmt.Errorf("%w: %s %q is not %s", ErrWrongKind, t.kind, t.text, want)
}

// Int returns the value of integer token.
func (t *Token) Int() (int64, error) {
	if t.kind != Integer {
		return 0, t.wrongKind("an integer")
	}
	return strconv.ParseInt(t.text, 10, 64)
}

// Float returns the value of float or integer token.
func (t *Token) Float() (float64, error) {
	if t.kind != Float && t.kind != Integer {
		return 0, t.wrongKind("a decimal number")
	}
	return strconv.ParseFloat(t.text, 64)
}

// Radix returns the base and the value of radix number token.
// The base must be in 2..36 range and every digit must be valid for the base.
func (t *Token) Radix() (base int, value int64, e error) {
	if t.kind != RadixNumber {
		return 0, 0, t.wrongKind("a radix number")
	}

	b, digits, _ := strings.Cut(t.text, "#")
	base, _ = strconv.Atoi(b)
	if base < 2 || base > 36 {
		return base, 0, fmt.Errorf("radix number %q: base %d is out of 2..36 range", t.text, base)
	}

	value, e = strconv.ParseInt(digits, base, 64)
	if e != nil {
		return base, 0, fmt.Errorf("radix number %q: %w", t.text, e)
	}
	return base, value, nil
}
