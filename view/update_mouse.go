package view

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/gridcanvas/grid"
)

type clickRecord struct {
	pos grid.Pos
	at  time.Time
	ok  bool
}

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if tea.MouseEvent(msg).IsWheel() {
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if !m.focused || m.grid.RowCount() == 0 || m.grid.ColCount() == 0 {
		return m, nil
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		zone, p := m.hitTest(msg.X, msg.Y)
		switch zone { //nolint:exhaustive
		case hitCell:
			return m.pressCell(p, msg.Shift)
		case hitRowHeader:
			(&m).commitEdit()
			m.drag, m.dragAnchor = dragRows, p
			m.selectRows(p.Row, p.Row)
		case hitColHeader:
			(&m).commitEdit()
			m.drag, m.dragAnchor = dragCols, p
			m.selectCols(p.Col, p.Col)
		case hitCorner:
			(&m).commitEdit()
			m.drag = dragNone
			m.selectRows(0, m.grid.RowCount()-1)
		}

	case tea.MouseActionMotion:
		if m.drag == dragNone {
			return m, nil
		}
		x, y := m.clampToContent(msg.X, msg.Y)
		zone, p := m.hitTest(x, y)
		switch m.drag {
		case dragCells:
			if zone == hitCell {
				m.moveTo(p, true)
			}
		case dragRows:
			if zone == hitRowHeader || zone == hitCell {
				m.selectRows(m.dragAnchor.Row, p.Row)
			}
		case dragCols:
			if zone == hitColHeader || zone == hitCell {
				m.selectCols(m.dragAnchor.Col, p.Col)
			}
		}

	case tea.MouseActionRelease:
		m.drag = dragNone
	}
	return m, nil
}

// pressCell moves the cursor to p. A second press on the same cell within the
// double-click interval opens the editor.
func (m Model) pressCell(p grid.Pos, extend bool) (Model, tea.Cmd) {
	now := m.cfg.Clock()
	double := m.lastClick.ok && m.lastClick.pos == p && now.Sub(m.lastClick.at) <= m.cfg.DoubleClickInterval
	m.lastClick = clickRecord{pos: p, at: now, ok: !double}

	if m.editing && m.editPos == p {
		return m, nil
	}
	(&m).commitEdit()

	m.moveTo(p, extend)
	m.drag = dragCells
	if double {
		m.drag = dragNone
		cell, _ := m.grid.Cell(p.Row, p.Col)
		cmd := (&m).startEdit(cell.Value)
		return m, cmd
	}
	return m, nil
}

// selectRows selects whole rows and puts the cursor at the start of the
// last one touched.
func (m *Model) selectRows(anchor, row int) {
	last := m.grid.ColCount() - 1
	m.paint.invalidateRow(m.cursor.Row)
	m.anchor = grid.Pos{Row: anchor, Col: last}
	m.cursor = grid.Pos{Row: row, Col: 0}
	_ = m.grid.SelectRows(anchor, row)
	m.paint.invalidateRow(m.cursor.Row)
	m.followCursor()
}

// selectCols selects whole columns and puts the cursor at the top of the
// last one touched.
func (m *Model) selectCols(anchor, col int) {
	last := m.grid.RowCount() - 1
	m.paint.invalidateRow(m.cursor.Row)
	m.anchor = grid.Pos{Row: last, Col: anchor}
	m.cursor = grid.Pos{Row: 0, Col: col}
	_ = m.grid.SelectColumns(anchor, col)
	m.paint.invalidateRow(m.cursor.Row)
	m.followCursor()
}

// clampToContent keeps drag coordinates inside the model so a drag past the
// edge keeps extending to the last visible cell.
func (m *Model) clampToContent(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = clampInt(x, 0, m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = clampInt(y, 0, m.headerHeight()+m.viewport.Height-1)
	}
	return max(x, 0), max(y, 0)
}
