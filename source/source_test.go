package source

import (
	"testing"
)

type result struct {
	offset, line, col int
}

func TestSourceLineCol(t *testing.T) {
	samples := map[string][]result{
		"": {
			{0, 1, 1},
			{100, 1, 1},
			{-5, 1, 1},
		},
		"\n": {
			{0, 1, 1},
			{1, 2, 1},
			{100, 2, 1},
		},
		"0\n2\n4\n6789abcde\ng\ni\n": {
			{4, 3, 1},
			{5, 3, 2},
			{6, 4, 1},
			{7, 4, 2},
			{14, 4, 9},
			{19, 6, 2},
			{20, 7, 1},
			{9, 4, 4},
			{5, 3, 2},
		},
		"été\nx": {
			{0, 1, 1},
			{2, 1, 2},
			{3, 1, 3},
			{5, 1, 4},
			{6, 2, 1},
		},
	}

	for text, results := range samples {
		src := NewString("", text)
		for _, res := range results {
			l, c := src.LineCol(res.offset)
			if l != res.line || c != res.col {
				t.Errorf("sample %q: expected %v, got line: %d, col: %d", text, res, l, c)
			}
		}
	}
}

func TestSourceOffset(t *testing.T) {
	samples := map[string][]result{
		"": {
			{0, 0, 1},
			{0, 1, 0},
			{0, 1, 1},
			{0, 1, 2},
			{0, 2, 1},
		},
		" ": {
			{0, 1, 1},
			{1, 1, 2},
			{1, 2, 1},
		},
		"ab\ncd\n": {
			{0, 1, 1},
			{2, 1, 3},
			{3, 2, 1},
			{4, 2, 2},
			{6, 3, 1},
			{6, 4, 1},
		},
	}

	for text, results := range samples {
		src := NewString("", text)
		for _, res := range results {
			offset := src.Offset(res.line, res.col)
			if offset != res.offset {
				t.Errorf("sample %q: expected offset %d for line %d col %d, got %d", text, res.offset, res.line, res.col, offset)
			}
		}
	}
}

func TestPos(t *testing.T) {
	src := NewString("prog", "1 2\n  add")
	p := src.Pos(6)
	if p.Source() != src || p.SourceName() != "prog" {
		t.Fatalf("wrong source: %v", p.Source())
	}
	if p.Offset() != 6 || p.Line() != 2 || p.Col() != 3 {
		t.Fatalf("expecting offset 6 at 2:3, got %d at %d:%d", p.Offset(), p.Line(), p.Col())
	}

	p = src.Pos(1000)
	if p.Offset() != src.Len() || p.Line() != 2 || p.Col() != 6 {
		t.Fatalf("expecting clamped position, got %d at %d:%d", p.Offset(), p.Line(), p.Col())
	}

	var zero Pos
	if zero.SourceName() != "" {
		t.Fatalf("expecting empty name for zero Pos, got %q", zero.SourceName())
	}
}

func TestNewPos(t *testing.T) {
	src := NewString("prog", "1 2\n  add")
	p := NewPos(src, 6, 2, 3)
	if p != src.Pos(6) {
		t.Fatalf("expecting %v, got %v", src.Pos(6), p)
	}
}
