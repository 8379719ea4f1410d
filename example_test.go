package pslex_test

import (
	"fmt"

	"github.com/ava12/pslex"
	"github.com/ava12/pslex/parser"
)

func Example() {
	prog, e := parser.ParseString("example", "/sq { dup mul } def\n16#FF sq")
	if e != nil {
		fmt.Println(e)
		return
	}

	for _, t := range prog.Items {
		fmt.Printf("%d:%d %s %q\n", t.Line(), t.Col(), t.Kind(), t.Text())
	}
	// Output:
	// 1:1 key "/sq"
	// 1:5 op "{"
	// 1:7 identifier "dup"
	// 1:11 identifier "mul"
	// 1:15 op "}"
	// 1:17 identifier "def"
	// 2:1 radix number "16#FF"
	// 2:7 identifier "sq"
}

func ExampleSyntaxError() {
	_, e := parser.ParseString("example", "/ foo")
	se, _ := pslex.AsSyntaxError(e)
	fmt.Println(se.Offset, se.Found)
	fmt.Println(se.Expected)
	fmt.Println(se)
	// Output:
	// 0 char '/'
	// [identifier key radix number number op]
	// unexpected char '/', expecting identifier, key, radix number, number or op in example at line 1 col 1
}
