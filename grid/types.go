package grid

import "fmt"

// Pos points at a cell by 0-based (row, col) index.
type Pos struct {
	Row int
	Col int
}

// Rect is a closed inclusive cell range: rows [Top, Bottom], cols [Left, Right].
type Rect struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Bounds is the pixel box of one cell.
type Bounds struct {
	Top    int
	Left   int
	Height int
	Width  int
}

// Repaint tells the renderer what changed.
//
// Full means the layout was recomputed and everything must be redrawn.
// Otherwise only cells inside Region need redrawing.
type Repaint struct {
	Full   bool
	Region Rect
}

// NormalizeRect builds the canonical rectangle spanned by two corners.
func NormalizeRect(a, b Pos) Rect {
	return Rect{
		Top:    min(a.Row, b.Row),
		Bottom: max(a.Row, b.Row),
		Left:   min(a.Col, b.Col),
		Right:  max(a.Col, b.Col),
	}
}

// CellRect returns the single-cell rectangle at (row, col).
func CellRect(row, col int) Rect {
	return Rect{Top: row, Bottom: row, Left: col, Right: col}
}

func (r Rect) Valid() bool {
	return r.Top <= r.Bottom && r.Left <= r.Right
}

func (r Rect) Contains(row, col int) bool {
	return row >= r.Top && row <= r.Bottom && col >= r.Left && col <= r.Right
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Top:    min(r.Top, o.Top),
		Bottom: max(r.Bottom, o.Bottom),
		Left:   min(r.Left, o.Left),
		Right:  max(r.Right, o.Right),
	}
}

// CheckRect returns ErrInvalidRange when r has min > max on either axis.
func CheckRect(r Rect) error {
	if !r.Valid() {
		return fmt.Errorf("rect rows [%d,%d] cols [%d,%d]: %w", r.Top, r.Bottom, r.Left, r.Right, ErrInvalidRange)
	}
	return nil
}
