// Package format renders extraction results for machine consumption.
package format

import (
	"context"
	"encoding/json"
	"io"
	"sort"

	"github.com/dhamidi/jex/diag"
	"github.com/dhamidi/jex/jsni"
)

type JSONEncoder struct {
	w io.Writer

	// Params includes each method's parameter names in the output.
	Params bool
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

// EncodeUnits writes one JSON document describing every unit and its
// extracted methods. With parse set, each method's body is parsed and
// the outcome included.
func (e *JSONEncoder) EncodeUnits(ctx context.Context, units []*jsni.Unit, parse bool) error {
	data := jsonResult{Units: make([]jsonUnit, 0, len(units))}
	for _, u := range units {
		ju, err := buildUnit(ctx, u, parse, e.Params)
		if err != nil {
			return err
		}
		data.Units = append(data.Units, ju)
	}
	return e.write(data)
}

// EncodeDiagnostics writes the bag as a JSON document.
func (e *JSONEncoder) EncodeDiagnostics(b *diag.Bag) error {
	b.Sort()
	items := b.Items()
	data := jsonDiagnostics{Diagnostics: make([]jsonDiagnostic, 0, len(items))}
	for _, d := range items {
		data.Diagnostics = append(data.Diagnostics, buildDiagnostic(d))
	}
	return e.write(data)
}

func (e *JSONEncoder) write(data any) error {
	text, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

type jsonResult struct {
	Units []jsonUnit `json:"units"`
}

type jsonUnit struct {
	Path    string       `json:"path"`
	Status  string       `json:"status"`
	Methods []jsonMethod `json:"methods"`
}

type jsonMethod struct {
	Signature  string    `json:"signature"`
	Parameters []string  `json:"parameters,omitempty"`
	Line       int       `json:"line"`
	Location   string    `json:"location"`
	Body       *jsonBody `json:"body,omitempty"`
}

type jsonBody struct {
	Parsed    bool            `json:"parsed"`
	FreeNames []string        `json:"freeNames,omitempty"`
	Error     *jsonDiagnostic `json:"error,omitempty"`
}

type jsonDiagnostics struct {
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
}

type jsonDiagnostic struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Offset   int    `json:"offset"`
}

func buildUnit(ctx context.Context, u *jsni.Unit, parse, params bool) (jsonUnit, error) {
	ju := jsonUnit{
		Path:    u.Path,
		Status:  string(u.Status),
		Methods: make([]jsonMethod, 0, len(u.Methods())),
	}
	for _, m := range u.Methods() {
		jm := jsonMethod{
			Signature: m.Signature,
			Line:      m.DeclaredLine,
			Location:  m.Location,
		}
		if params {
			jm.Parameters = m.ParamNames
		}
		if parse {
			body, err := buildBody(ctx, m)
			if err != nil {
				return jsonUnit{}, err
			}
			jm.Body = body
		}
		ju.Methods = append(ju.Methods, jm)
	}
	return ju, nil
}

func buildBody(ctx context.Context, m *jsni.Method) (*jsonBody, error) {
	fn, fail, err := m.Function(ctx)
	if err != nil {
		return nil, err
	}
	if fail != nil {
		d := buildDiagnostic(*fail)
		return &jsonBody{Error: &d}, nil
	}
	var names []string
	for _, n := range fn.FreeNames() {
		names = append(names, n.Ident())
	}
	sort.Strings(names)
	return &jsonBody{Parsed: true, FreeNames: names}, nil
}

func buildDiagnostic(d diag.Diagnostic) jsonDiagnostic {
	return jsonDiagnostic{
		Severity: d.Severity.String(),
		Code:     string(d.Code),
		Message:  d.Message,
		File:     d.Pos.File,
		Line:     d.Pos.Line,
		Column:   d.Pos.Column,
		Offset:   d.Pos.Offset,
	}
}
