package jsni

import (
	"strings"

	"github.com/dhamidi/jex/diag"
	"github.com/dhamidi/jex/java"
	"github.com/dhamidi/jex/js"
)

// Synthesize wraps a bare fragment in an anonymous function so the
// JavaScript parser accepts it. It returns the wrapped text and the
// number of characters preceding the fragment, which the remapping
// needs to undo the wrapper on the first line.
func Synthesize(fragment string, paramNames []string) (string, int) {
	var sb strings.Builder
	sb.WriteString("function (")
	sb.WriteString(strings.Join(paramNames, ","))
	sb.WriteString(") {")
	headerLen := sb.Len()
	sb.WriteString(fragment)
	sb.WriteByte('}')
	return sb.String(), headerLen
}

// SynthesizeBlock wraps a fragment that still carries its enclosing
// braces, the form used when extraction runs against live method
// declarations and the block is sliced brace to brace.
func SynthesizeBlock(block string, paramNames []string) (string, int) {
	var sb strings.Builder
	sb.WriteString("function (")
	sb.WriteString(strings.Join(paramNames, ","))
	sb.WriteString(") ")
	headerLen := sb.Len()
	sb.WriteString(block)
	return sb.String(), headerLen
}

// remapFailure converts a parse error position inside synthesized text
// into a diagnostic pointing at the original file. The synthetic
// header shares the fragment's first line, so columns reported there
// carry the header's length; later lines match the file exactly.
// startLine is the 1-based file line the fragment begins on.
func remapFailure(perr *js.ParseError, headerLen int, file string, table LineTable, startLine int) diag.Diagnostic {
	column := perr.Column
	if perr.Line == 1 {
		column -= headerLen
	}
	line := startLine + perr.Line - 1
	offset := table.OffsetOf(line-1, column)
	return diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.CodeParse,
		Message:  perr.Message,
		Pos: java.Position{
			File:   file,
			Offset: offset,
			Line:   line,
			Column: column,
		},
	}
}
