package grid

import "fmt"

// Snapshot is a rectangular matrix of cells, rows first.
//
// Snapshots are treated as immutable once committed to a History.
// WithValue and WithConfig share every row except the edited one.
type Snapshot [][]Cell

// NewSnapshot returns a rows x cols snapshot with every cell set to fill.
func NewSnapshot(rows, cols int, fill Cell) Snapshot {
	rows, cols = max(rows, 0), max(cols, 0)
	s := make(Snapshot, rows)
	for i := range s {
		row := make([]Cell, cols)
		for j := range row {
			row[j] = fill
		}
		s[i] = row
	}
	return s
}

func (s Snapshot) Rows() int { return len(s) }

func (s Snapshot) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

func (s Snapshot) InBounds(row, col int) bool {
	return row >= 0 && row < len(s) && col >= 0 && col < len(s[row])
}

func (s Snapshot) At(row, col int) (Cell, bool) {
	if !s.InBounds(row, col) {
		return Cell{}, false
	}
	return s[row][col], true
}

// Validate reports ErrNotRectangular when rows differ in length.
func (s Snapshot) Validate() error {
	cols := s.Cols()
	for i, row := range s {
		if len(row) != cols {
			return fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), cols, ErrNotRectangular)
		}
	}
	return nil
}

// Clone returns a deep copy that shares no row slices with s.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return nil
	}
	out := make(Snapshot, len(s))
	for i, row := range s {
		out[i] = append([]Cell(nil), row...)
	}
	return out
}

// WithValue returns a snapshot with the value at (row, col) replaced.
func (s Snapshot) WithValue(row, col int, value string) Snapshot {
	return s.withCell(row, col, func(c Cell) Cell {
		c.Value = value
		return c
	})
}

// WithConfig returns a snapshot with the config at (row, col) replaced.
func (s Snapshot) WithConfig(row, col int, cfg CellConfig) Snapshot {
	return s.withCell(row, col, func(c Cell) Cell {
		c.Config = cfg
		return c
	})
}

func (s Snapshot) withCell(row, col int, fn func(Cell) Cell) Snapshot {
	next := make(Snapshot, len(s))
	copy(next, s)
	if !s.InBounds(row, col) {
		return next
	}
	edited := make([]Cell, len(s[row]))
	copy(edited, s[row])
	edited[col] = fn(edited[col])
	next[row] = edited
	return next
}

// ClearValues returns a copy of s with every value inside r emptied, and the
// cells that changed. Rows without a non-empty value in r stay shared; each
// edited row is copied once. r must lie inside s.
func (s Snapshot) ClearValues(r Rect) (Snapshot, []Pos) {
	next := make(Snapshot, len(s))
	copy(next, s)

	var cleared []Pos
	for row := r.Top; row <= r.Bottom; row++ {
		var edited []Cell
		for col := r.Left; col <= r.Right; col++ {
			if s[row][col].Value == "" {
				continue
			}
			if edited == nil {
				edited = make([]Cell, len(s[row]))
				copy(edited, s[row])
				next[row] = edited
			}
			edited[col].Value = ""
			cleared = append(cleared, Pos{Row: row, Col: col})
		}
	}
	return next, cleared
}
