package grid

import (
	"errors"
	"testing"
)

func TestDimensions_RecordKeepsMaximumPerIndex(t *testing.T) {
	d := NewDimensions(testOptions())
	for _, w := range []int{30, 80, 50} {
		d.RecordDimensions(0, 2, w, 10)
	}
	d.RecordDimensions(1, 0, 20, 5)

	cols := d.Columns()
	if got, want := len(cols), 3; got != want {
		t.Fatalf("len(columns)=%d, want %d", got, want)
	}
	if got, want := cols[2], 80; got != want {
		t.Fatalf("columns[2]=%d, want %d", got, want)
	}
	if got, want := cols[1], 0; got != want {
		t.Fatalf("columns[1]=%d, want %d (never recorded)", got, want)
	}
	if got, want := d.Rows(), []int{10, 5}; got[0] != want[0] || got[1] != want[1] || len(got) != len(want) {
		t.Fatalf("rows=%v, want %v", got, want)
	}
}

func TestDimensions_CacheHitReturnsSameSlice(t *testing.T) {
	d := NewDimensions(testOptions())
	d.RecordDimensions(0, 0, 40, 10)

	a, b := d.Columns(), d.Columns()
	if &a[0] != &b[0] {
		t.Fatalf("expected cached columns to be reused")
	}
	r1, r2 := d.Rows(), d.Rows()
	if &r1[0] != &r2[0] {
		t.Fatalf("expected cached rows to be reused")
	}

	d.RecordDimensions(0, 0, 60, 10)
	c := d.Columns()
	if &c[0] == &a[0] {
		t.Fatalf("expected record to invalidate the columns cache")
	}
	if got, want := a[0], 40; got != want {
		t.Fatalf("old cache mutated: got %d, want %d", got, want)
	}
	if got, want := c[0], 60; got != want {
		t.Fatalf("columns[0]=%d, want %d", got, want)
	}
}

func TestDimensions_FlushEmptiesSequences(t *testing.T) {
	d := NewDimensions(testOptions())
	d.Calculate(column("eighty", "fifty"), nil)
	_ = d.Rows()

	d.Flush()
	if got := len(d.Rows()); got != 0 {
		t.Fatalf("len(rows) after flush=%d, want 0", got)
	}
	if got := len(d.Columns()); got != 0 {
		t.Fatalf("len(columns) after flush=%d, want 0", got)
	}
	if got := d.TotalWidth(); got != 0 {
		t.Fatalf("total width after flush=%d, want 0", got)
	}
}

func TestDimensions_CellSizeFormulas(t *testing.T) {
	d := NewDimensions(testOptions())
	cases := []struct {
		name   string
		cell   Cell
		width  int
		height int
	}{
		{name: "empty uses minimum", cell: Cell{}, width: 30, height: 23},
		{name: "measured", cell: Cell{Value: "eighty"}, width: 80, height: 23},
		{name: "bold border", cell: Cell{Value: "fifty", Config: CellConfig{BorderStyle: BorderBold}}, width: 51, height: 24},
		{name: "font size", cell: Cell{Config: CellConfig{FontSize: 7.2}}, width: 30, height: 16},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.CellWidth(tc.cell); got != tc.width {
				t.Fatalf("width=%d, want %d", got, tc.width)
			}
			if got := d.CellHeight(tc.cell); got != tc.height {
				t.Fatalf("height=%d, want %d", got, tc.height)
			}
		})
	}
}

func TestDimensions_DefaultOptionsApplyMinimumAndPadding(t *testing.T) {
	d := NewDimensions(Options{Measure: func(string, float64) float64 { return 3 }})
	if got, want := d.CellWidth(Cell{Value: "abc"}), DefaultMinColumnWidth+DefaultCellPadding; got != want {
		t.Fatalf("width=%d, want %d", got, want)
	}
}

func TestDimensions_CalculateTotals(t *testing.T) {
	d := NewDimensions(testOptions())
	s := Snapshot{
		{{Value: "eighty"}, {Value: ""}},
		{{Value: "fifty"}, {Value: "forty"}},
	}

	h, w := d.Calculate(s, nil)
	if got, want := w, 80+40; got != want {
		t.Fatalf("total width=%d, want %d", got, want)
	}
	if got, want := h, 23*2; got != want {
		t.Fatalf("total height=%d, want %d", got, want)
	}
}

func TestDimensions_CalculateRespectsBoundaries(t *testing.T) {
	d := NewDimensions(testOptions())
	s := Snapshot{
		{{Value: "eighty"}, {Value: ""}},
		{{Value: "fifty"}, {Value: "forty"}},
	}

	_, w := d.Calculate(s, &Rect{Top: 0, Bottom: 0, Left: 1, Right: 1})
	if got, want := w, 30; got != want {
		t.Fatalf("total width=%d, want %d", got, want)
	}
	if got, want := len(d.Rows()), 1; got != want {
		t.Fatalf("len(rows)=%d, want %d", got, want)
	}
	if got := d.Columns()[0]; got != 0 {
		t.Fatalf("column 0 outside boundaries recorded width %d", got)
	}
}

func TestDimensions_IsWithinBoundaries(t *testing.T) {
	d := NewDimensions(testOptions())
	if !d.IsWithinBoundaries(nil, 99, 99) {
		t.Fatalf("nil boundaries should cover every cell")
	}
	b := &Rect{Top: 1, Bottom: 2, Left: 0, Right: 0}
	if !d.IsWithinBoundaries(b, 2, 0) {
		t.Fatalf("expected (2,0) inside")
	}
	if d.IsWithinBoundaries(b, 2, 1) {
		t.Fatalf("expected (2,1) outside")
	}
}

func TestDimensions_CellBoundsAndCellAt(t *testing.T) {
	d := NewDimensions(testOptions())
	d.Calculate(Snapshot{
		{{Value: "eighty"}, {Value: ""}},
		{{Value: "fifty"}, {Value: "forty"}},
	}, nil)

	b, err := d.CellBounds(1, 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if want := (Bounds{Top: 23, Left: 80, Height: 23, Width: 40}); b != want {
		t.Fatalf("bounds=%#v, want %#v", b, want)
	}
	if _, err := d.CellBounds(2, 0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}

	points := []struct {
		x, y int
		want Pos
	}{
		{x: 0, y: 0, want: Pos{Row: 0, Col: 0}},
		{x: 79, y: 22, want: Pos{Row: 0, Col: 0}},
		{x: 80, y: 23, want: Pos{Row: 1, Col: 1}},
		{x: 119, y: 45, want: Pos{Row: 1, Col: 1}},
	}
	for _, p := range points {
		got, err := d.CellAt(p.x, p.y)
		if err != nil {
			t.Fatalf("CellAt(%d,%d): unexpected err %v", p.x, p.y, err)
		}
		if got != p.want {
			t.Fatalf("CellAt(%d,%d)=%v, want %v", p.x, p.y, got, p.want)
		}
	}

	for _, p := range [][2]int{{120, 0}, {0, 46}, {-1, 0}, {0, -1}} {
		if _, err := d.CellAt(p[0], p[1]); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("CellAt(%d,%d) err=%v, want ErrOutOfRange", p[0], p[1], err)
		}
	}
}

func TestDimensions_WillRequireResize(t *testing.T) {
	cases := []struct {
		name  string
		col   Snapshot
		row   int
		value string
		want  bool
	}{
		{name: "grows past column", col: column("eighty", "fifty"), row: 1, value: "ninety", want: true},
		{name: "driver shrinks to 40", col: column("eighty", "fifty"), row: 0, value: "forty", want: true},
		{name: "driver shrinks to 60", col: column("eighty", "fifty"), row: 0, value: "sixty", want: true},
		{name: "non-driver changes", col: column("eighty", "fifty"), row: 1, value: "forty", want: false},
		{name: "co-driver keeps width", col: column("eighty", "eighty"), row: 0, value: "forty", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDimensions(testOptions())
			d.Calculate(tc.col, nil)
			if got := d.WillRequireResize(tc.row, 0, tc.value, tc.col); got != tc.want {
				t.Fatalf("WillRequireResize=%v, want %v", got, tc.want)
			}
		})
	}
}

func TestDimensions_WillRequireResize_UnmeasuredColumn(t *testing.T) {
	d := NewDimensions(testOptions())
	if !d.WillRequireResize(0, 0, "forty", column("fifty")) {
		t.Fatalf("expected resize for a column that was never measured")
	}
}
