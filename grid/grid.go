package grid

import "fmt"

// Grid owns the current snapshot and coordinates the selection, dimension
// and history models in response to host requests.
//
// The head of the undo log is the only grid state read by any query.
// Grid is not safe for concurrent use; drive it from one goroutine.
type Grid struct {
	opt     Options
	history *History
	future  *History
	dims    *Dimensions
	sel     Selection
	version uint64
}

// New validates initial, commits it as the origin commit and lays it out.
func New(initial Snapshot, opt Options) (*Grid, error) {
	if err := initial.Validate(); err != nil {
		return nil, fmt.Errorf("new grid: %w", err)
	}
	opt = opt.withDefaults()
	g := &Grid{
		opt:     opt,
		history: NewHistory(opt.HistoryLimit, opt.DefaultCell),
		future:  NewHistory(opt.HistoryLimit, opt.DefaultCell),
		dims:    NewDimensions(opt),
	}
	g.history.AddData(initial.Clone())
	g.dims.Calculate(g.Snapshot(), nil)
	return g, nil
}

func (g *Grid) Options() Options { return g.opt }

// Version increments on every state-changing call.
func (g *Grid) Version() uint64 { return g.version }

// Snapshot returns the current grid state. It must not be modified.
func (g *Grid) Snapshot() Snapshot {
	head, ok := g.history.Head()
	if !ok {
		return nil
	}
	return head.Data()
}

func (g *Grid) Cell(row, col int) (Cell, bool) { return g.Snapshot().At(row, col) }

func (g *Grid) RowCount() int { return g.Snapshot().Rows() }

func (g *Grid) ColCount() int { return g.Snapshot().Cols() }

func (g *Grid) Dimensions() *Dimensions { return g.dims }

func (g *Grid) Rows() []int { return g.dims.Rows() }

func (g *Grid) Columns() []int { return g.dims.Columns() }

func (g *Grid) HistoryLen() int { return g.history.Len() }

func (g *Grid) FutureLen() int { return g.future.Len() }

func (g *Grid) CanUndo() bool { return g.history.Len() > 1 }

func (g *Grid) CanRedo() bool { return g.future.Len() > 0 }

// CellAt maps a pixel position to a cell.
func (g *Grid) CellAt(x, y int) (Pos, error) { return g.dims.CellAt(x, y) }

// BoundsOf returns the pixel box of a cell.
func (g *Grid) BoundsOf(row, col int) (Bounds, error) { return g.dims.CellBounds(row, col) }

// Layout records sizes for the cells inside boundaries (all cells when nil)
// and returns the grid's total height and width.
func (g *Grid) Layout(boundaries *Rect) (totalHeight, totalWidth int, err error) {
	if boundaries != nil {
		if err := CheckRect(*boundaries); err != nil {
			return 0, 0, err
		}
	}
	totalHeight, totalWidth = g.dims.Calculate(g.Snapshot(), boundaries)
	return totalHeight, totalWidth, nil
}

// SetCellValue commits value at (row, col). Writing the current value is a no-op.
//
// Whether the column width changes decides between a full relayout and a
// single-cell repaint.
func (g *Grid) SetCellValue(row, col int, value string) error {
	cur := g.Snapshot()
	prev, ok := cur.At(row, col)
	if !ok {
		return fmt.Errorf("set cell (%d,%d): %w", row, col, ErrOutOfRange)
	}
	if prev.Value == value {
		return nil
	}

	resize := g.dims.WillRequireResize(row, col, value, cur)
	g.commit(cur.WithValue(row, col, value))
	g.relayout(resize, []Pos{{Row: row, Col: col}})
	return nil
}

// ClearRange empties the value of every cell in r as a single commit.
func (g *Grid) ClearRange(r Rect) error {
	if err := CheckRect(r); err != nil {
		return err
	}
	cur := g.Snapshot()
	if !cur.InBounds(r.Top, r.Left) || !cur.InBounds(r.Bottom, r.Right) {
		return fmt.Errorf("clear rows [%d,%d] cols [%d,%d]: %w", r.Top, r.Bottom, r.Left, r.Right, ErrOutOfRange)
	}

	next, cells := cur.ClearValues(r)
	if len(cells) == 0 {
		return nil
	}

	resize := len(cells) > 1 || g.dims.WillRequireResize(cells[0].Row, cells[0].Col, "", cur)
	g.commit(next)
	g.relayout(resize, cells)
	return nil
}

// Undo rewinds the most recent commit. The origin commit cannot be undone.
func (g *Grid) Undo() bool {
	if !g.CanUndo() {
		return false
	}
	before := g.Snapshot()
	c, _ := g.history.Pop()
	g.future.AddCommit(c)
	g.replay(c, before, false)
	return true
}

// Redo re-applies the most recently undone commit.
func (g *Grid) Redo() bool {
	c, ok := g.future.Pop()
	if !ok {
		return false
	}
	before := g.Snapshot()
	g.history.AddCommit(c)
	g.replay(c, before, true)
	return true
}

// SetSelection selects the rectangle spanned by two cells.
func (g *Grid) SetSelection(start, end Pos) error {
	cur := g.Snapshot()
	for _, p := range []Pos{start, end} {
		if !cur.InBounds(p.Row, p.Col) {
			return fmt.Errorf("select (%d,%d): %w", p.Row, p.Col, ErrOutOfRange)
		}
	}

	region := NormalizeRect(start, end)
	if prev, ok := g.sel.Corners(); ok {
		if prev == region {
			return nil
		}
		region = region.Union(prev)
	}
	g.sel.Update(start, end)
	g.version++
	g.repaint(Repaint{Region: region})
	return nil
}

// SelectRows selects every column of rows [start, end] in either order.
func (g *Grid) SelectRows(start, end int) error {
	last := g.ColCount() - 1
	return g.SetSelection(Pos{Row: start, Col: 0}, Pos{Row: end, Col: last})
}

// SelectColumns selects every row of columns [start, end] in either order.
func (g *Grid) SelectColumns(start, end int) error {
	last := g.RowCount() - 1
	return g.SetSelection(Pos{Row: 0, Col: start}, Pos{Row: last, Col: end})
}

func (g *Grid) ClearSelection() {
	prev, ok := g.sel.Corners()
	if !ok {
		return
	}
	g.sel.Flush()
	g.version++
	g.repaint(Repaint{Region: prev})
}

// Selection returns the selected rectangle, or false when nothing is selected.
func (g *Grid) Selection() (Rect, bool) { return g.sel.Corners() }

func (g *Grid) IsSelected(row, col int) bool { return g.sel.Contains(row, col) }

func (g *Grid) commit(next Snapshot) {
	g.history.AddData(next)
	g.future.Flush()
}

// replay walks c's diffs after a transfer between the logs. The head already
// holds the target state; each diff only decides how much must be redrawn.
func (g *Grid) replay(c *Commit, before Snapshot, forward bool) {
	full := c.Len() > 1
	cells := make([]Pos, 0, c.Len())
	for _, d := range c.All() {
		cells = append(cells, Pos{Row: d.Row, Col: d.Col})
		if full {
			continue
		}
		p := d.From
		if forward {
			p = d.To
		}
		if p.HasValue && g.dims.WillRequireResize(d.Row, d.Col, p.Value, before) {
			full = true
		}
	}
	g.relayout(full, cells)
}

func (g *Grid) relayout(full bool, cells []Pos) {
	g.version++
	if full {
		g.dims.Flush()
		g.dims.Calculate(g.Snapshot(), nil)
		g.repaint(Repaint{Full: true})
		return
	}
	for _, p := range cells {
		g.repaint(Repaint{Region: CellRect(p.Row, p.Col)})
	}
}

func (g *Grid) repaint(r Repaint) {
	if g.opt.OnRepaint != nil {
		g.opt.OnRepaint(r)
	}
}
