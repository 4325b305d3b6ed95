package jsni

import (
	"context"
	"sync"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/jex/diag"
	"github.com/dhamidi/jex/java"
	"github.com/dhamidi/jex/js"
)

var log = commonlog.GetLogger("jex.jsni")

// Messages reported when the block markers are malformed. The wording
// tells the author which marker to add.
const (
	msgNoBlock      = "Native methods require a JavaScript implementation enclosed with /*-{ and }-*/"
	msgMissingStart = "Unable to find start of native block; begin your JavaScript block with: /*-{"
	msgMissingEnd   = "Unable to find end of native block; terminate your JavaScript block with: }-*/"
)

// Collect locates the JavaScript block of every native method in every
// compiled unit and fills each unit's descriptor slot, leaving the
// blocks unparsed. A method without any block is logged and skipped; a
// method with a malformed block is reported to sink and skipped. A
// unit whose source cannot be read is skipped whole. Parsing is
// deferred, so the shared program scope is not touched here.
func Collect(ctx context.Context, prog *js.Program, units []*Unit, sink diag.Sink) error {
	for _, unit := range units {
		if err := ctx.Err(); err != nil {
			return err
		}
		if unit.Status != StatusCompiled {
			continue
		}
		if err := collectUnit(ctx, prog, unit, sink, false); err != nil {
			return err
		}
	}
	return nil
}

// CollectEager behaves like Collect but parses every block as soon as
// it is located, routing parse failures into sink. The block is sliced
// brace to brace and wrapped without synthetic braces, so reported
// positions line up with the source the author wrote. Eager mode
// mutates the shared program scope and must not run concurrently.
func CollectEager(ctx context.Context, prog *js.Program, units []*Unit, sink diag.Sink) error {
	for _, unit := range units {
		if err := ctx.Err(); err != nil {
			return err
		}
		if unit.Status != StatusCompiled {
			continue
		}
		if err := collectUnit(ctx, prog, unit, sink, true); err != nil {
			return err
		}
	}
	return nil
}

// CollectAll runs Collect over units with up to jobs workers. Units
// are independent and parsing is deferred, so workers never share
// state beyond the sink, which is serialized here.
func CollectAll(ctx context.Context, prog *js.Program, units []*Unit, sink diag.Sink, jobs int) error {
	if jobs < 1 {
		jobs = 1
	}
	guarded := &lockedSink{sink: sink}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, unit := range units {
		unit := unit
		g.Go(func() error {
			return Collect(ctx, prog, []*Unit{unit}, guarded)
		})
	}
	return g.Wait()
}

type lockedSink struct {
	mu   sync.Mutex
	sink diag.Sink
}

func (s *lockedSink) Report(d diag.Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sink.Report(d)
}

func collectUnit(ctx context.Context, prog *js.Program, unit *Unit, sink diag.Sink, eager bool) error {
	methods := make([]*Method, 0)
	resolver := java.NewResolver(unit.File)
	var (
		src   string
		table LineTable
		have  bool
	)
	for _, class := range unit.File.AllClasses() {
		for _, m := range class.NativeMethods() {
			if !have {
				text, err := unit.Source()
				if err != nil {
					log.Errorf("%s", err.Error())
					unit.Status = StatusError
					return nil
				}
				src = text
				table = ComputeLineTable(src)
				have = true
			}
			method, err := collectMethod(prog, unit, class, m, resolver, src, table, sink, eager)
			if err != nil {
				return err
			}
			if method == nil {
				continue
			}
			if eager {
				_, fail, err := method.Function(ctx)
				if err != nil {
					return err
				}
				if fail != nil {
					sink.Report(*fail)
				}
			}
			methods = append(methods, method)
		}
	}
	unit.SetMethods(methods)
	unit.discardSource()
	return nil
}

func collectMethod(prog *js.Program, unit *Unit, class *java.Class, m *java.Method, resolver *java.Resolver, src string, table LineTable, sink diag.Sink, eager bool) (*Method, error) {
	base := m.Body.Start.Offset
	body := src[base:m.Body.End.Offset]
	interval, err := FindBlock(body)
	if err != nil {
		reportBlockError(unit, class, m, err, sink, eager)
		return nil, nil
	}

	fragStart := base + interval.Start
	fragEnd := base + interval.End
	method := &Method{
		Signature:    Signature(class.Binary, m, resolver),
		ParamNames:   m.ParameterNames(),
		DeclaredLine: m.Line(),
		Location:     unit.Path,
		prog:         prog,
		file:         unit.Path,
		table:        table,
	}
	if eager {
		// Keep the braces: the opening one ends the start marker,
		// the closing one begins the end marker.
		method.raw = src[fragStart-1 : fragEnd+1]
		method.block = true
		method.startLine = m.Line() + table.LineDelta(m.Span.Start.Offset, fragStart-1)
	} else {
		method.raw = src[fragStart:fragEnd]
		method.startLine = table.Line(fragStart)
	}
	return method, nil
}

func reportBlockError(unit *Unit, class *java.Class, m *java.Method, err error, sink diag.Sink, eager bool) {
	pos := m.Span.Start
	switch err {
	case ErrNoBlock:
		if eager {
			sink.Report(diag.Diagnostic{Severity: diag.SevError, Code: diag.CodeMissingBlock, Message: msgNoBlock, Pos: pos})
			return
		}
		log.Errorf("no JavaScript body found for native method '%s' in type '%s'", m.Name, class.Binary)
	case ErrMissingStart:
		sink.Report(diag.Diagnostic{Severity: diag.SevError, Code: diag.CodeMissingStart, Message: msgMissingStart, Pos: pos})
	case ErrMissingEnd:
		sink.Report(diag.Diagnostic{Severity: diag.SevError, Code: diag.CodeMissingEnd, Message: msgMissingEnd, Pos: pos})
	}
}

// Signature builds the string identifying a method for override
// comparisons: '@' + binary type name + "::" + method name + the JVM
// descriptors of its parameters.
func Signature(binary string, m *java.Method, r *java.Resolver) string {
	return "@" + binary + "::" + m.Name + m.Descriptor(r)
}
