package view

import "github.com/iw2rmb/gridcanvas/grid"

// paintState caches rendered grid rows between frames. It is shared by every
// copy of a Model and fed by the grid's repaint notifications: a full repaint
// drops the whole cache, a region repaint drops only the rows it spans.
type paintState struct {
	rows    [][]string
	full    bool
	renders int
}

func newPaintState() *paintState {
	return &paintState{full: true}
}

func (p *paintState) handle(r grid.Repaint) {
	if r.Full {
		p.full = true
		return
	}
	for row := max(r.Region.Top, 0); row <= r.Region.Bottom && row < len(p.rows); row++ {
		p.rows[row] = nil
	}
}

func (p *paintState) invalidateRow(row int) {
	if row >= 0 && row < len(p.rows) {
		p.rows[row] = nil
	}
}

func (p *paintState) invalidateAll() { p.full = true }

// reset prepares the cache for rowCount rows, dropping it when a full repaint
// is pending or the row count changed.
func (p *paintState) reset(rowCount int) {
	if p.full || len(p.rows) != rowCount {
		p.rows = make([][]string, rowCount)
		p.full = false
	}
}
