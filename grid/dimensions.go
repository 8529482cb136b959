package grid

import (
	"fmt"
	"math"
	"slices"
)

// Dimensions computes and caches per-row heights and per-column widths.
//
// Within one resize epoch (between two Flush calls) recorded sizes only grow:
// the size stored for an index is the maximum ever recorded for it.
// Dimensions never holds grid data, only sizes derived from it.
type Dimensions struct {
	measure         MeasureFunc
	minColumnWidth  int
	cellPadding     int
	defaultFontSize float64

	// Dense by index; 0 marks an index that was never recorded.
	rowHeights []int
	colWidths  []int

	rowsCache []int
	colsCache []int
	rowsValid bool
	colsValid bool
}

func NewDimensions(opt Options) *Dimensions {
	opt = opt.withDefaults()
	return &Dimensions{
		measure:         opt.Measure,
		minColumnWidth:  opt.MinColumnWidth,
		cellPadding:     opt.CellPadding,
		defaultFontSize: opt.DefaultFontSize,
	}
}

// Rows returns row heights indexed by row.
//
// The slice is rebuilt at most once per invalidation and must not be modified.
func (d *Dimensions) Rows() []int {
	if !d.rowsValid {
		d.rowsCache = slices.Clone(d.rowHeights)
		d.rowsValid = true
	}
	return d.rowsCache
}

// Columns returns column widths indexed by column.
//
// The slice is rebuilt at most once per invalidation and must not be modified.
func (d *Dimensions) Columns() []int {
	if !d.colsValid {
		d.colsCache = slices.Clone(d.colWidths)
		d.colsValid = true
	}
	return d.colsCache
}

// RecordDimensions raises the height of row and the width of col to at least
// the given values. Negative indices are ignored.
func (d *Dimensions) RecordDimensions(row, col, width, height int) {
	if row >= 0 {
		d.rowHeights = growTo(d.rowHeights, row)
		if height > d.rowHeights[row] {
			d.rowHeights[row] = height
		}
	}
	if col >= 0 {
		d.colWidths = growTo(d.colWidths, col)
		if width > d.colWidths[col] {
			d.colWidths[col] = width
		}
	}
	d.rowsValid = false
	d.colsValid = false
}

// Flush clears all recorded sizes and both caches, starting a new epoch.
func (d *Dimensions) Flush() {
	d.rowHeights = nil
	d.colWidths = nil
	d.rowsCache = nil
	d.colsCache = nil
	d.rowsValid = false
	d.colsValid = false
}

// Calculate records the size of every cell inside boundaries (every cell when
// boundaries is nil) and returns the totals over all recorded rows and columns.
func (d *Dimensions) Calculate(s Snapshot, boundaries *Rect) (totalHeight, totalWidth int) {
	for row, cells := range s {
		for col, cell := range cells {
			if !d.IsWithinBoundaries(boundaries, row, col) {
				continue
			}
			d.RecordDimensions(row, col, d.CellWidth(cell), d.CellHeight(cell))
		}
	}
	return d.TotalHeight(), d.TotalWidth()
}

// CellWidth is the width cell needs: its measured text plus border space,
// raised to the minimum column width, plus padding.
func (d *Dimensions) CellWidth(cell Cell) int {
	w := int(math.Ceil(d.measure(cell.Value, d.fontSize(cell.Config)))) + borderSpace(cell.Config)
	return max(w, d.minColumnWidth) + d.cellPadding
}

// CellHeight is twice the font size plus border space.
func (d *Dimensions) CellHeight(cell Cell) int {
	return int(math.Ceil(d.fontSize(cell.Config)*2)) + borderSpace(cell.Config)
}

func (d *Dimensions) fontSize(cfg CellConfig) float64 {
	if cfg.FontSize > 0 {
		return cfg.FontSize
	}
	return d.defaultFontSize
}

func (d *Dimensions) TotalHeight() int { return sum(d.rowHeights) }

func (d *Dimensions) TotalWidth() int { return sum(d.colWidths) }

// ColumnWidth returns the cached width of col.
func (d *Dimensions) ColumnWidth(col int) (int, bool) {
	if col < 0 || col >= len(d.colWidths) {
		return 0, false
	}
	return d.colWidths[col], true
}

// RowHeight returns the cached height of row.
func (d *Dimensions) RowHeight(row int) (int, bool) {
	if row < 0 || row >= len(d.rowHeights) {
		return 0, false
	}
	return d.rowHeights[row], true
}

// CellBounds returns the pixel box of (row, col).
//
// ErrNotFound means the index lies past the recorded extents, which for a
// laid-out grid is a caller bug.
func (d *Dimensions) CellBounds(row, col int) (Bounds, error) {
	rows, cols := d.Rows(), d.Columns()
	if row < 0 || row >= len(rows) || col < 0 || col >= len(cols) {
		return Bounds{}, fmt.Errorf("cell (%d,%d): %w", row, col, ErrNotFound)
	}
	return Bounds{
		Top:    sum(rows[:row]),
		Left:   sum(cols[:col]),
		Height: rows[row],
		Width:  cols[col],
	}, nil
}

// CellAt maps a pixel position to the cell containing it.
func (d *Dimensions) CellAt(x, y int) (Pos, error) {
	row := indexAt(d.Rows(), y)
	col := indexAt(d.Columns(), x)
	if row < 0 || col < 0 {
		return Pos{}, fmt.Errorf("point (%d,%d): %w", x, y, ErrOutOfRange)
	}
	return Pos{Row: row, Col: col}, nil
}

// IsWithinBoundaries reports whether (row, col) lies in boundaries.
// A nil boundaries covers every cell.
func (d *Dimensions) IsWithinBoundaries(boundaries *Rect, row, col int) bool {
	if boundaries == nil {
		return true
	}
	return boundaries.Contains(row, col)
}

// WillRequireResize reports whether writing value at (row, col) changes the
// width of its column. current is the snapshot before the edit.
//
// The column must grow when the new width exceeds it. When the edited cell
// was not the widest in its column nothing changes. Otherwise the column
// keeps its width only if another cell still measures exactly that width.
func (d *Dimensions) WillRequireResize(row, col int, value string, current Snapshot) bool {
	prev, ok := current.At(row, col)
	if !ok {
		return false
	}
	colWidth, ok := d.ColumnWidth(col)
	if !ok || colWidth == 0 {
		return true
	}

	next := prev
	next.Value = value
	if d.CellWidth(next) > colWidth {
		return true
	}
	if d.CellWidth(prev) < colWidth {
		return false
	}
	for i := range current {
		if i == row {
			continue
		}
		if other, ok := current.At(i, col); ok && d.CellWidth(other) == colWidth {
			return false
		}
	}
	return true
}

func indexAt(sizes []int, offset int) int {
	if offset < 0 {
		return -1
	}
	total := 0
	for i, size := range sizes {
		if total+size > offset {
			return i
		}
		total += size
	}
	return -1
}

func growTo(s []int, idx int) []int {
	if idx < len(s) {
		return s
	}
	return append(s, make([]int, idx+1-len(s))...)
}

func sum(s []int) int {
	total := 0
	for _, v := range s {
		total += v
	}
	return total
}
