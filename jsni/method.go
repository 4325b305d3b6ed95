package jsni

import (
	"context"
	"fmt"
	"strings"

	"github.com/dhamidi/jex/diag"
	"github.com/dhamidi/jex/js"
)

// Method describes one native method whose JavaScript block was
// located. The block itself is parsed on first access of Function and
// the raw text is dropped afterwards.
type Method struct {
	// Signature identifies the method within its enclosing type,
	// including parameter descriptors, so overloads stay distinct
	// while an override in a subtype reuses its parent's string.
	Signature    string
	ParamNames   []string
	DeclaredLine int
	Location     string

	prog      *js.Program
	file      string
	table     LineTable
	startLine int
	raw       string
	block     bool

	parsed bool
	fn     *js.Function
	fail   *diag.Diagnostic
}

// Function parses the JavaScript block on first call and returns the
// memoized result afterwards, whether it parsed or not. A non-nil
// error means the parser itself failed, not the user's JavaScript;
// such errors are not cached and the caller should treat them as
// fatal.
func (m *Method) Function(ctx context.Context) (*js.Function, *diag.Diagnostic, error) {
	if m.parsed {
		return m.fn, m.fail, nil
	}
	var wrapped string
	var headerLen int
	if m.block {
		wrapped, headerLen = SynthesizeBlock(m.raw, m.ParamNames)
	} else {
		wrapped, headerLen = Synthesize(m.raw, m.ParamNames)
	}
	fn, perr, err := js.ParseFunction(ctx, m.prog, wrapped, m.Location, m.startLine)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing block of %s: %w", m.Signature, err)
	}
	if perr != nil {
		d := remapFailure(perr, headerLen, m.file, m.table, m.startLine)
		m.fail = &d
	} else {
		m.fn = fn
	}
	m.parsed = true
	m.raw = ""
	return m.fn, m.fail, nil
}

func (m *Method) String() string {
	return "function " + m.Signature + "(" + strings.Join(m.ParamNames, ", ") + ")"
}
