package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/gridcanvas/grid"
)

type dragMode int

const (
	dragNone dragMode = iota
	dragCells
	dragRows
	dragCols
)

// Model is a Bubble Tea component that renders and interacts with a grid.
type Model struct {
	cfg   Config
	grid  *grid.Grid
	paint *paintState

	focused bool

	viewport viewport.Model
	xOffset  int

	anchor grid.Pos
	cursor grid.Pos

	editing bool
	editPos grid.Pos
	input   textinput.Model

	drag       dragMode
	dragAnchor grid.Pos
	lastClick  clickRecord

	lastVersion uint64
	lastCursor  grid.Pos
	lastEditing bool
}

// New creates a Model and the grid it edits.
func New(cfg Config) (Model, error) {
	cfg = cfg.withDefaults()

	snap := cfg.Snapshot
	if snap == nil {
		snap = grid.NewSnapshot(cfg.Rows, cfg.Cols, grid.Cell{})
	}

	paint := newPaintState()
	opt := GridOptions(cfg.HistoryLimit)
	opt.OnRepaint = paint.handle
	g, err := grid.New(snap, opt)
	if err != nil {
		return Model{}, fmt.Errorf("view: %w", err)
	}

	input := textinput.New()
	input.Prompt = ""

	m := Model{
		cfg:      cfg,
		grid:     g,
		paint:    paint,
		focused:  true,
		viewport: viewport.New(0, 0),
		input:    input,
	}
	if g.RowCount() > 0 && g.ColCount() > 0 {
		_ = g.SetSelection(m.anchor, m.cursor)
	}
	m.lastVersion = g.Version()
	m.rebuildContent()
	return m, nil
}

// Grid returns the grid the model edits. Mutations made through it are picked
// up on the next Update.
func (m Model) Grid() *grid.Grid { return m.grid }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Cursor() grid.Pos { return m.cursor }

func (m Model) Editing() bool { return m.editing }

func (m Model) SetSize(width, height int) Model {
	width, height = max(width, 0), max(height, 0)
	m.viewport.Width = width
	m.viewport.Height = max(height-m.headerHeight(), 0)

	m.paint.invalidateAll()
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.paint.invalidateAll()
		m.rebuildContent()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.cancelEdit()
		m.paint.invalidateAll()
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	default:
		m, cmd = m.updateInput(msg)
	}

	// The host may have mutated the grid outside of the view.
	(&m).syncFromGrid()
	return m, cmd
}

func (m Model) View() string {
	body := m.viewport.View()
	if !m.cfg.ShowHeaders {
		return body
	}
	return m.columnHeaderLine() + "\n" + body
}

func (m *Model) syncFromGrid() {
	m.clampCursor()
	m.rebuildContent()

	ver := m.grid.Version()
	if ver == m.lastVersion && m.cursor == m.lastCursor && m.editing == m.lastEditing {
		return
	}
	m.lastVersion = ver
	m.lastCursor = m.cursor
	m.lastEditing = m.editing
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m))
	}
}

// clampCursor keeps the cursor and anchor inside the grid after external edits.
func (m *Model) clampCursor() {
	rows, cols := m.grid.RowCount(), m.grid.ColCount()
	clamp := func(p grid.Pos) grid.Pos {
		return grid.Pos{Row: clampInt(p.Row, 0, rows-1), Col: clampInt(p.Col, 0, cols-1)}
	}
	m.cursor = clamp(m.cursor)
	m.anchor = clamp(m.anchor)
}

// moveTo places the cursor at p. When extend is false the anchor follows it.
func (m *Model) moveTo(p grid.Pos, extend bool) {
	p = grid.Pos{
		Row: clampInt(p.Row, 0, m.grid.RowCount()-1),
		Col: clampInt(p.Col, 0, m.grid.ColCount()-1),
	}
	m.paint.invalidateRow(m.cursor.Row)
	m.paint.invalidateRow(p.Row)
	m.cursor = p
	if !extend {
		m.anchor = p
	}
	_ = m.grid.SetSelection(m.anchor, m.cursor)
	m.followCursor()
}

// followCursor scrolls the cursor cell into view. A cell larger than the
// viewport keeps its top-left corner visible.
func (m *Model) followCursor() {
	b, err := m.grid.BoundsOf(m.cursor.Row, m.cursor.Col)
	if err != nil {
		return
	}

	if h := m.visibleRowCount(); h > 0 {
		y := m.viewport.YOffset
		switch {
		case b.Top < y:
			m.viewport.SetYOffset(b.Top)
		case b.Top+b.Height > y+h:
			m.viewport.SetYOffset(min(b.Top+b.Height-h, b.Top))
		}
	}

	if w := m.contentWidth(); w > 0 {
		switch {
		case b.Left < m.xOffset:
			m.setXOffset(b.Left)
		case b.Left+b.Width > m.xOffset+w:
			m.setXOffset(min(b.Left+b.Width-w, b.Left))
		}
	}
}

func (m *Model) setXOffset(x int) {
	x = max(x, 0)
	if x == m.xOffset {
		return
	}
	m.xOffset = x
	m.rebuildContent()
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
