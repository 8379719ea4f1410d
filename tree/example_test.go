package tree_test

import (
	"fmt"

	"github.com/ava12/pslex/parser"
	"github.com/ava12/pslex/tree"
)

func ExampleWalk() {
	prog, e := parser.ParseString("input", "/sq { dup mul } def")
	if e != nil {
		fmt.Println(e)
		return
	}

	root, e := tree.Nest(prog)
	if e != nil {
		fmt.Println(e)
		return
	}

	indent := "----------"
	tree.Walk(root, func(stat tree.WalkStat) bool {
		n := stat.Node
		if n.IsItem() {
			fmt.Printf("%s%s %q\n", indent[:stat.Level*2], n.Token.Kind(), n.Token.Text())
		} else {
			fmt.Printf("%s%s:\n", indent[:stat.Level*2], n.Type)
		}
		return true
	})
	// Output:
	// program:
	// --key "/sq"
	// --proc:
	// ----identifier "dup"
	// ----identifier "mul"
	// --identifier "def"
}

func ExampleNest_error() {
	prog, _ := parser.ParseString("input", "[ 1 2 }")
	_, e := tree.Nest(prog)
	fmt.Println(e)
	// Output:
	// unexpected op "}", expecting item or "]" in input at line 1 col 7
}
