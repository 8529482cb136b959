package view

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/gridcanvas/grid"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.grid.RowCount() == 0 || m.grid.ColCount() == 0 {
		return m, nil
	}
	if m.editing {
		return m.updateEditKey(msg)
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Up):
		m.moveBy(-1, 0, false)
	case key.Matches(msg, km.Down):
		m.moveBy(1, 0, false)
	case key.Matches(msg, km.Left):
		m.moveBy(0, -1, false)
	case key.Matches(msg, km.Right):
		m.moveBy(0, 1, false)

	case key.Matches(msg, km.ExtendUp):
		m.moveBy(-1, 0, true)
	case key.Matches(msg, km.ExtendDown):
		m.moveBy(1, 0, true)
	case key.Matches(msg, km.ExtendLeft):
		m.moveBy(0, -1, true)
	case key.Matches(msg, km.ExtendRight):
		m.moveBy(0, 1, true)

	case key.Matches(msg, km.Edit):
		cell, _ := m.grid.Cell(m.cursor.Row, m.cursor.Col)
		cmd := (&m).startEdit(cell.Value)
		return m, cmd

	case key.Matches(msg, km.Clear):
		if sel, ok := m.grid.Selection(); ok {
			_ = m.grid.ClearRange(sel)
		} else {
			_ = m.grid.ClearRange(grid.CellRect(m.cursor.Row, m.cursor.Col))
		}

	case key.Matches(msg, km.Undo):
		m.grid.Undo()
	case key.Matches(msg, km.Redo):
		m.grid.Redo()

	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0:
		// Typing over a cell replaces its value.
		cmd := (&m).startEdit("")
		var inputCmd tea.Cmd
		m.input, inputCmd = m.input.Update(msg)
		return m, tea.Batch(cmd, inputCmd)
	}
	return m, nil
}

func (m Model) updateEditKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Commit):
		(&m).commitEdit()
		m.moveBy(1, 0, false)
		return m, nil
	case key.Matches(msg, km.NextCell):
		(&m).commitEdit()
		m.moveBy(0, 1, false)
		return m, nil
	case key.Matches(msg, km.Cancel):
		(&m).cancelEdit()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.paint.invalidateRow(m.editPos.Row)
	return m, cmd
}

// updateInput forwards non-key messages (cursor blink) to the open editor.
func (m Model) updateInput(msg tea.Msg) (Model, tea.Cmd) {
	if !m.editing {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.paint.invalidateRow(m.editPos.Row)
	return m, cmd
}

func (m *Model) moveBy(dRow, dCol int, extend bool) {
	m.moveTo(grid.Pos{Row: m.cursor.Row + dRow, Col: m.cursor.Col + dCol}, extend)
}

// startEdit opens the inline editor on the cursor cell holding value.
func (m *Model) startEdit(value string) tea.Cmd {
	m.editing = true
	m.editPos = m.cursor
	m.input.SetValue(value)
	m.input.CursorEnd()
	if w, ok := m.grid.Dimensions().ColumnWidth(m.cursor.Col); ok {
		m.input.Width = max(w-3, 1)
	}
	m.paint.invalidateRow(m.editPos.Row)
	return m.input.Focus()
}

// commitEdit writes the editor's value to the grid and closes the editor.
func (m *Model) commitEdit() {
	if !m.editing {
		return
	}
	value := m.input.Value()
	m.closeEdit()
	_ = m.grid.SetCellValue(m.editPos.Row, m.editPos.Col, value)
}

func (m *Model) cancelEdit() {
	if m.editing {
		m.closeEdit()
	}
}

func (m *Model) closeEdit() {
	m.editing = false
	m.input.Blur()
	m.input.SetValue("")
	m.paint.invalidateRow(m.editPos.Row)
}
