// Package tree builds program trees: a program root with item children,
// optionally with arrays and procedures nested.
package tree

import (
	"strconv"
	"strings"

	"github.com/ava12/pslex"
	"github.com/ava12/pslex/lexer"
	"github.com/ava12/pslex/parser"
	"github.com/ava12/pslex/source"
)

// Node types.
const (
	ProgramNode = "program"
	ItemNode    = "item"
	ArrayNode   = "array"
	ProcNode    = "proc"
)

// ItemExpected is the name of any item in syntax errors.
const ItemExpected = "item"

// Node is a program tree node.
// Item nodes hold a token, array and procedure nodes hold opening and closing ops.
type Node struct {
	Type     string
	Token    *lexer.Token
	End      *lexer.Token
	Children []*Node
	parent   *Node
}

func (n *Node) Parent() *Node {
	return n.parent
}

// IsItem reports whether n is a leaf holding single token.
func (n *Node) IsItem() bool {
	return n.Type == ItemNode
}

// AppendChild appends c to n children and sets c parent.
func (n *Node) AppendChild(c *Node) {
	c.parent = n
	n.Children = append(n.Children, c)
}

// Flat returns a program node with one item child per token.
func Flat(p *parser.Program) *Node {
	root := &Node{Type: ProgramNode, Children: make([]*Node, 0, len(p.Items))}
	for _, t := range p.Items {
		root.AppendChild(&Node{Type: ItemNode, Token: t})
	}
	return root
}

var groups = map[string]struct {
	nodeType, closer string
}{
	"[": {ArrayNode, "]"},
	"{": {ProcNode, "}"},
}

func quote(s string) string {
	return strconv.Quote(s)
}

func expectedIn(n *Node) []string {
	if n.Type == ProgramNode {
		return []string{ItemExpected}
	}
	return []string{ItemExpected, quote(groups[n.Token.Text()].closer)}
}

// Nest returns a program node with "[ ... ]" grouped into array nodes and
// "{ ... }" grouped into procedure nodes, delimiters must be balanced.
// Returns *pslex.SyntaxError for an unmatched closing op or an unclosed group.
func Nest(p *parser.Program) (*Node, error) {
	root := &Node{Type: ProgramNode}
	current := root
	for _, t := range p.Items {
		if t.Kind() != lexer.Op {
			current.AppendChild(&Node{Type: ItemNode, Token: t})
			continue
		}

		if g, isOpener := groups[t.Text()]; isOpener {
			n := &Node{Type: g.nodeType, Token: t}
			current.AppendChild(n)
			current = n
			continue
		}

		if current == root || groups[current.Token.Text()].closer != t.Text() {
			return nil, pslex.NewSyntaxError(t, t.Kind().String()+" "+quote(t.Text()), expectedIn(current))
		}

		current.End = t
		current = current.parent
	}

	if current != root {
		return nil, pslex.NewSyntaxError(endPos(p), pslex.EndOfInput, expectedIn(current))
	}
	return root, nil
}

func endPos(p *parser.Program) source.Pos {
	last := p.Items[len(p.Items)-1]
	if src := last.Source(); src != nil {
		return src.Pos(src.Len())
	}
	return source.Pos{}
}

// Level returns the number of ancestors of n.
func Level(n *Node) (l int) {
	if n == nil {
		return
	}

	for p := n.parent; p != nil; p = p.parent {
		l++
	}
	return
}

// NthChild returns i-th child of n, negative i counts from the end (-1 is the last child).
// Returns nil if there is no such child.
func NthChild(n *Node, i int) *Node {
	if n == nil {
		return nil
	}
	if i < 0 {
		i += len(n.Children)
	}
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

const AllLevels = -1

// NumOfChildren counts descendants of parent down to levels below the children,
// AllLevels counts all descendants.
func NumOfChildren(parent *Node, levels int) int {
	if parent == nil {
		return 0
	}

	i := 0
	for _, c := range parent.Children {
		i++
		if levels != 0 {
			i += NumOfChildren(c, levels-1)
		}
	}
	return i
}

// WalkStat is passed to Visitor.
type WalkStat struct {
	Node  *Node
	Level int
}

// Visitor is called for each visited node; returning false skips node children.
type Visitor func(stat WalkStat) (walkChildren bool)

// Walk visits n and its descendants depth-first in source order.
func Walk(n *Node, visitor Visitor) {
	if n != nil {
		walk(n, 0, visitor)
	}
}

func walk(n *Node, level int, visitor Visitor) {
	if !visitor(WalkStat{n, level}) {
		return
	}
	for _, c := range n.Children {
		walk(c, level+1, visitor)
	}
}

// Format returns indented text representation of n, one node per line.
func Format(n *Node) string {
	var sb strings.Builder
	Walk(n, func(stat WalkStat) bool {
		sb.WriteString(strings.Repeat("  ", stat.Level))
		node := stat.Node
		if node.IsItem() {
			sb.WriteString(node.Token.Kind().String())
			sb.WriteByte(' ')
			sb.WriteString(quote(node.Token.Text()))
		} else {
			sb.WriteString(node.Type)
			sb.WriteByte(':')
		}
		sb.WriteByte('\n')
		return true
	})
	return sb.String()
}
