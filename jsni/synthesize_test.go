package jsni

import (
	"testing"

	"github.com/dhamidi/jex/js"
)

func TestSynthesize(t *testing.T) {
	tests := []struct {
		fragment string
		params   []string
		want     string
		header   int
	}{
		{" return 1; ", nil, "function () { return 1; }", 13},
		{"return a+b;", []string{"a", "b"}, "function (a,b) {return a+b;}", 16},
		{"", []string{"x"}, "function (x) {}", 14},
	}
	for _, tt := range tests {
		got, header := Synthesize(tt.fragment, tt.params)
		if got != tt.want {
			t.Errorf("Synthesize(%q, %v) = %q, want %q", tt.fragment, tt.params, got, tt.want)
		}
		if header != tt.header {
			t.Errorf("header = %d, want %d", header, tt.header)
		}
		if got[header:len(got)-1] != tt.fragment {
			t.Errorf("wrapped[header:] = %q, fragment not at header offset", got[header:])
		}
	}
}

func TestSynthesizeBlock(t *testing.T) {
	got, header := SynthesizeBlock("{ return this.x; }", []string{"a", "b"})
	want := "function (a,b) { return this.x; }"
	if got != want {
		t.Errorf("SynthesizeBlock() = %q, want %q", got, want)
	}
	if header != 15 {
		t.Errorf("header = %d, want 15", header)
	}
	if got[header] != '{' {
		t.Errorf("wrapped[header] = %q, want '{'", got[header])
	}
}

func TestRemapFailureFirstLine(t *testing.T) {
	// file:  class W {\n  native int f() /*-{ return 1 +; }-*/;\n}\n
	src := "class W {\n  native int f() /*-{ return 1 +; }-*/;\n}\n"
	table := ComputeLineTable(src)

	// wrapper "function () { return 1 +; }", error at the stray ';'
	perr := &js.ParseError{Line: 1, Column: 25, Message: "unexpected token"}
	d := remapFailure(perr, 13, "W.java", table, 2)

	if d.Pos.Line != 2 {
		t.Errorf("Line = %d, want 2", d.Pos.Line)
	}
	if d.Pos.Column != 12 {
		t.Errorf("Column = %d, want 12", d.Pos.Column)
	}
	if want := table[0] + 12; d.Pos.Offset != want {
		t.Errorf("Offset = %d, want %d", d.Pos.Offset, want)
	}
	if d.Message != "unexpected token" {
		t.Errorf("Message = %q", d.Message)
	}
	if d.Pos.File != "W.java" {
		t.Errorf("File = %q", d.Pos.File)
	}
}

func TestRemapFailureLaterLine(t *testing.T) {
	src := "class W {\n  native int f() /*-{\n    var x = ;\n  }-*/;\n}\n"
	table := ComputeLineTable(src)

	// error on the wrapper's second line keeps its column untouched
	perr := &js.ParseError{Line: 2, Column: 13, Message: "missing expression"}
	d := remapFailure(perr, 13, "W.java", table, 2)

	if d.Pos.Line != 3 {
		t.Errorf("Line = %d, want 3", d.Pos.Line)
	}
	if d.Pos.Column != 13 {
		t.Errorf("Column = %d, want 13", d.Pos.Column)
	}
	if want := table[1] + 13; d.Pos.Offset != want {
		t.Errorf("Offset = %d, want %d", d.Pos.Offset, want)
	}
}

func TestRemapFailureFileFirstLine(t *testing.T) {
	src := "class W { native int f() /*-{ bad( }-*/; }\n"
	table := ComputeLineTable(src)

	perr := &js.ParseError{Line: 1, Column: 18, Message: "unclosed call"}
	d := remapFailure(perr, 13, "W.java", table, 1)

	if d.Pos.Line != 1 {
		t.Errorf("Line = %d, want 1", d.Pos.Line)
	}
	if d.Pos.Column != 5 {
		t.Errorf("Column = %d, want 5", d.Pos.Column)
	}
	if d.Pos.Offset != 4 {
		t.Errorf("Offset = %d, want 4", d.Pos.Offset)
	}
}
