package jsni

import "testing"

func TestComputeLineTable(t *testing.T) {
	tests := []struct {
		src  string
		want []int
	}{
		{"", nil},
		{"one line", nil},
		{"a\nb\nc", []int{1, 3}},
		{"a\r\nb", []int{2}},
		{"\n\n", []int{0, 1}},
	}
	for _, tt := range tests {
		got := ComputeLineTable(tt.src)
		if len(got) != len(tt.want) {
			t.Errorf("ComputeLineTable(%q) = %v, want %v", tt.src, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ComputeLineTable(%q)[%d] = %d, want %d", tt.src, i, got[i], tt.want[i])
			}
		}
	}
}

func TestLineTableLineOf(t *testing.T) {
	table := LineTable{3, 10, 20}
	tests := []struct {
		offset int
		want   int
	}{
		{0, 0},
		{2, 0},
		{3, 0},
		{4, 0},
		{9, 0},
		{10, 1},
		{11, 1},
		{20, 2},
		{25, 2},
	}
	for _, tt := range tests {
		if got := table.LineOf(tt.offset); got != tt.want {
			t.Errorf("LineOf(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}

func TestLineOfMonotonic(t *testing.T) {
	table := LineTable{3, 10, 20, 21, 30}
	prev := 0
	for offset := 0; offset <= 35; offset++ {
		got := table.LineOf(offset)
		if got < prev {
			t.Fatalf("LineOf(%d) = %d, decreased from %d", offset, got, prev)
		}
		prev = got
	}
	for i, sep := range table {
		if got := table.LineOf(sep); got != i {
			t.Errorf("LineOf(table[%d]) = %d, want %d", i, got, i)
		}
	}
}

func TestLineTableLineDelta(t *testing.T) {
	table := LineTable{3, 10, 20}
	tests := []struct {
		a, b int
		want int
	}{
		{4, 4, 0},
		{4, 9, 0},
		{4, 11, 1},
		{4, 21, 2},
		{11, 21, 1},
	}
	for _, tt := range tests {
		if got := table.LineDelta(tt.a, tt.b); got != tt.want {
			t.Errorf("LineDelta(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLineTableLineDeltaUnordered(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("LineDelta(5, 1) did not panic")
		}
	}()
	LineTable{3}.LineDelta(5, 1)
}

func TestLineTableLine(t *testing.T) {
	src := "package t;\n\nclass W {\n}\n"
	table := ComputeLineTable(src)
	tests := []struct {
		offset int
		want   int
	}{
		{0, 1},
		{9, 1},
		{10, 1},
		{11, 2},
		{12, 3},
		{21, 3},
		{22, 4},
	}
	for _, tt := range tests {
		if got := table.Line(tt.offset); got != tt.want {
			t.Errorf("Line(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}

func TestLineTableOffsetOf(t *testing.T) {
	table := LineTable{10, 25, 40}
	tests := []struct {
		line, column int
		want         int
	}{
		{0, 1, 0},
		{0, 5, 4},
		{1, 1, 11},
		{1, 14, 24},
		{2, 3, 28},
		{3, 7, 47},
	}
	for _, tt := range tests {
		if got := table.OffsetOf(tt.line, tt.column); got != tt.want {
			t.Errorf("OffsetOf(%d, %d) = %d, want %d", tt.line, tt.column, got, tt.want)
		}
	}
}

func TestLineTableOffsetOfOverrun(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("OffsetOf past the line end did not panic")
		}
	}()
	LineTable{10, 25}.OffsetOf(1, 20)
}
