package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter writes diagnostics as one line each:
//
//	path:line:col: SEVERITY: message
type Reporter struct {
	out      io.Writer
	info     *color.Color
	warning  *color.Color
	errColor *color.Color
}

// NewReporter creates a reporter for w. With colored false all output
// is plain text.
func NewReporter(w io.Writer, colored bool) *Reporter {
	r := &Reporter{
		out:      w,
		info:     color.New(color.FgHiBlue),
		warning:  color.New(color.FgYellow),
		errColor: color.New(color.Bold, color.FgRed),
	}
	if !colored {
		r.info.DisableColor()
		r.warning.DisableColor()
		r.errColor.DisableColor()
	}
	return r
}

func (r *Reporter) style(s Severity) *color.Color {
	switch s {
	case SevWarning:
		return r.warning
	case SevError:
		return r.errColor
	}
	return r.info
}

func (r *Reporter) Print(d Diagnostic) {
	fmt.Fprintf(r.out, "%s: %s: %s\n", d.Pos, r.style(d.Severity).Sprint(d.Severity), d.Message)
}

// PrintBag sorts the bag and prints every diagnostic in order.
func (r *Reporter) PrintBag(b *Bag) {
	b.Sort()
	for _, d := range b.Items() {
		r.Print(d)
	}
}
