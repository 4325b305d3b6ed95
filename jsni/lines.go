// Package jsni extracts JavaScript implementations embedded in Java
// native method bodies, wraps each one so a JavaScript parser accepts
// it as a standalone function, and maps parser positions back into the
// coordinates of the original Java file.
package jsni

import (
	"fmt"
	"sort"
)

// LineTable holds the byte offsets of the line terminators of one
// source text, in increasing order.
type LineTable []int

// ComputeLineTable records the offset of every newline in src.
func ComputeLineTable(src string) LineTable {
	var table LineTable
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			table = append(table, i)
		}
	}
	return table
}

// LineOf returns the index of the last terminator at or before offset,
// or 0 when offset precedes every terminator. Offsets on the first two
// lines both map to index 0; only differences between results are
// meaningful, see LineDelta.
func (t LineTable) LineOf(offset int) int {
	i := sort.SearchInts(t, offset+1)
	if i == 0 {
		return 0
	}
	return i - 1
}

// LineDelta returns the number of lines between two offsets of the
// same text. Panics when the offsets are not ordered.
func (t LineTable) LineDelta(a, b int) int {
	if a < 0 || b < 0 || a > b {
		panic(fmt.Sprintf("jsni: line delta over unordered offsets %d, %d", a, b))
	}
	return t.LineOf(b) - t.LineOf(a)
}

// Line returns the 1-based line number holding offset. A terminator
// belongs to the line it ends.
func (t LineTable) Line(offset int) int {
	return sort.SearchInts(t, offset) + 1
}

// OffsetOf converts a line and column back to an absolute offset.
// Line counts from zero for the first line of the text, column from
// one. Panics when the result spills past the end of the given line,
// which means the pair did not come from this table's text.
func (t LineTable) OffsetOf(line, column int) int {
	if line == 0 {
		return column - 1
	}
	result := t[line-1] + column
	if line < len(t) && result >= t[line] {
		panic(fmt.Sprintf("jsni: offset %d computed for line %d overruns the line end %d", result, line, t[line]))
	}
	return result
}
