package view

import "github.com/iw2rmb/gridcanvas/grid"

type hitZone int

const (
	hitNone hitZone = iota
	hitCell
	hitRowHeader
	hitColHeader
	hitCorner
)

// hitTest classifies model-local coordinates.
//
// (0,0) is the top-left of View(): with headers enabled that is the corner
// above the row numbers. For header zones only the matching index of pos is
// meaningful.
func (m *Model) hitTest(x, y int) (hitZone, grid.Pos) {
	if x < 0 || y < 0 {
		return hitNone, grid.Pos{}
	}
	if m.viewport.Width > 0 && x >= m.viewport.Width {
		return hitNone, grid.Pos{}
	}
	if m.viewport.Height > 0 && y >= m.headerHeight()+m.viewport.Height {
		return hitNone, grid.Pos{}
	}

	gutter := m.gutterWidth()
	inHeader := y < m.headerHeight()
	inGutter := x < gutter
	docX := x - gutter + m.xOffset
	docY := y - m.headerHeight() + m.viewport.YOffset

	switch {
	case inHeader && inGutter:
		return hitCorner, grid.Pos{}
	case inHeader:
		p, err := m.grid.CellAt(docX, 0)
		if err != nil {
			return hitNone, grid.Pos{}
		}
		return hitColHeader, grid.Pos{Col: p.Col}
	case inGutter:
		p, err := m.grid.CellAt(0, docY)
		if err != nil {
			return hitNone, grid.Pos{}
		}
		return hitRowHeader, grid.Pos{Row: p.Row}
	}

	p, err := m.grid.CellAt(docX, docY)
	if err != nil {
		return hitNone, grid.Pos{}
	}
	return hitCell, p
}

// ScreenToCell maps model-local coordinates to the cell drawn there.
func (m Model) ScreenToCell(x, y int) (grid.Pos, bool) {
	zone, p := m.hitTest(x, y)
	return p, zone == hitCell
}

// CellToScreen maps a cell to the model-local coordinates of its top-left
// corner. ok is false when that corner is scrolled out of view.
func (m Model) CellToScreen(p grid.Pos) (x, y int, ok bool) {
	b, err := m.grid.BoundsOf(p.Row, p.Col)
	if err != nil {
		return 0, 0, false
	}
	x = b.Left - m.xOffset + m.gutterWidth()
	y = b.Top - m.viewport.YOffset + m.headerHeight()
	if b.Left < m.xOffset || b.Top < m.viewport.YOffset {
		return 0, 0, false
	}
	if m.viewport.Width > 0 && x >= m.viewport.Width {
		return 0, 0, false
	}
	if m.viewport.Height > 0 && y >= m.headerHeight()+m.viewport.Height {
		return 0, 0, false
	}
	return x, y, true
}
