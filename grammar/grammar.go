// Package grammar describes the token language as an ordered list of terms.
package grammar

import (
	"regexp"
	"strings"
)

// TermKind is an index into the list of token kinds recognized by the lexer.
type TermKind int

const (
	IdentifierTerm TermKind = iota
	KeyTerm
	RadixNumberTerm
	FloatTerm
	IntegerTerm
	OpTerm
)

// Term describes one alternative of the item rule.
// Re must match an atomic lexeme and must not contain capturing groups.
type Term struct {
	// Name is the rule name, e.g. "radixnumber".
	Name string `json:"name" yaml:"name"`

	// Expect is the human-readable name used in error messages.
	// Terms sharing the same Expect value are reported once.
	Expect string `json:"expect" yaml:"expect"`

	Re   string   `json:"re" yaml:"re"`
	Kind TermKind `json:"kind" yaml:"kind"`
}

// Grammar is an ordered choice of terms separated by optional whitespace.
// The first term that matches at a position wins.
type Grammar struct {
	Terms  []Term `json:"terms" yaml:"terms"`
	Spaces string `json:"spaces" yaml:"spaces"`
}

const (
	identifierRe = `[A-Za-z][A-Za-z._-]*`
	digitsRe     = `[0-9]+`
	integerRe    = `[+-]?` + digitsRe
)

// Default returns the grammar of the stack language:
//
//	item        := identifier | key | radixnumber | number | op
//	identifier  := ASCII_ALPHA (ASCII_ALPHA | '.' | '_' | '-')*
//	key         := '/' identifier
//	radixnumber := ASCII_DIGIT ASCII_DIGIT? '#' ASCII_ALPHANUMERIC+
//	number      := float | integer
//	float       := integer '.' ASCII_DIGIT+
//	integer     := ('+' | '-')? ASCII_DIGIT+
//	op          := '[' | ']' | '{' | '}'
func Default() *Grammar {
	return &Grammar{
		Terms: []Term{
			{"identifier", "identifier", identifierRe, IdentifierTerm},
			{"key", "key", `/` + identifierRe, KeyTerm},
			{"radixnumber", "radix number", `[0-9][0-9]?#[A-Za-z0-9]+`, RadixNumberTerm},
			{"float", "number", integerRe + `\.` + digitsRe, FloatTerm},
			{"integer", "number", integerRe, IntegerTerm},
			{"op", "op", `[\[\]{}]`, OpTerm},
		},
		Spaces: `[ \n]+`,
	}
}

// Expected returns distinct Expect names of all terms in grammar order.
func (g *Grammar) Expected() []string {
	res := make([]string, 0, len(g.Terms))
	seen := make(map[string]bool, len(g.Terms))
	for _, t := range g.Terms {
		name := t.Expect
		if name == "" {
			name = t.Name
		}
		if !seen[name] {
			seen[name] = true
			res = append(res, name)
		}
	}
	return res
}

// Pattern returns the regular expression matching one lexeme at the start of input.
// n-th term is captured by (n+1)-th group, whitespace is matched by no group.
// Go regexp alternation is leftmost-first, so terms are tried in order.
func (g *Grammar) Pattern() string {
	alts := make([]string, 0, len(g.Terms)+1)
	if g.Spaces != "" {
		alts = append(alts, "(?:"+g.Spaces+")")
	}
	for _, t := range g.Terms {
		alts = append(alts, "("+t.Re+")")
	}
	return `\A(?:` + strings.Join(alts, "|") + ")"
}

// Compile compiles Pattern.
func (g *Grammar) Compile() (*regexp.Regexp, error) {
	return regexp.Compile(g.Pattern())
}
