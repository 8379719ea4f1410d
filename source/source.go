// Package source defines named source text with line and column lookup.
package source

import (
	"bytes"
	"sort"
	"unicode/utf8"
)

// Source is an immutable named chunk of source text.
type Source struct {
	name       string
	content    []byte
	lineStarts []int
}

// New creates a source. content must not be modified afterwards.
func New(name string, content []byte) *Source {
	lineCnt := bytes.Count(content, []byte("\n")) + 1
	lineStarts := make([]int, 1, lineCnt)
	for i, b := range content {
		if b == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	return &Source{name: name, content: content, lineStarts: lineStarts}
}

// NewString creates a source from a string.
func NewString(name, content string) *Source {
	return New(name, []byte(content))
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Content() []byte {
	return s.content
}

func (s *Source) Len() int {
	return len(s.content)
}

// LineCol converts byte offset to 1-based line and column.
// Columns are counted in runes. Offsets out of range are clamped.
func (s *Source) LineCol(offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	} else if offset > len(s.content) {
		offset = len(s.content)
	}

	lineIndex := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > offset
	}) - 1
	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCount(s.content[lineStart:offset]) + 1
}

// Offset converts 1-based line and column (counted in bytes) to byte offset.
// Returns 0 for non-positive arguments, clamps the result to source length.
func (s *Source) Offset(line, col int) int {
	if line <= 0 || col <= 0 {
		return 0
	}

	l := len(s.content)
	if line > len(s.lineStarts) {
		return l
	}

	res := s.lineStarts[line-1] + col - 1
	if res > l {
		return l
	}
	return res
}

// Pos returns position information for byte offset.
func (s *Source) Pos(offset int) Pos {
	line, col := s.LineCol(offset)
	if offset < 0 {
		offset = 0
	} else if offset > len(s.content) {
		offset = len(s.content)
	}
	return Pos{s, offset, line, col}
}

// NewPos creates a position from already known offset, line and col.
func NewPos(src *Source, offset, line, col int) Pos {
	return Pos{src, offset, line, col}
}

// Pos is a position inside a source.
type Pos struct {
	src       *Source
	offset    int
	line, col int
}

func (p Pos) Source() *Source {
	return p.src
}

func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.name
}

func (p Pos) Offset() int {
	return p.offset
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}
