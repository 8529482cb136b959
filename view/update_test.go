package view

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/gridcanvas/grid"
)

func TestUpdate_ArrowsMoveAndClamp(t *testing.T) {
	m := newTestModel(t, Config{})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got, want := m.Cursor(), (grid.Pos{Row: 1, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got, want := m.Cursor(), (grid.Pos{Row: 0, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got, _ := m.Grid().Selection(); got != grid.CellRect(0, 1) {
		t.Fatalf("selection=%v, want %v", got, grid.CellRect(0, 1))
	}
}

func TestUpdate_ShiftArrowsExtendSelection(t *testing.T) {
	m := newTestModel(t, Config{Rows: 3, Cols: 3})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftDown})
	want := grid.Rect{Top: 0, Bottom: 1, Left: 0, Right: 1}
	if got, _ := m.Grid().Selection(); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}

	// A plain move collapses the selection onto the cursor.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got, _ := m.Grid().Selection(); got != grid.CellRect(1, 2) {
		t.Fatalf("selection=%v, want %v", got, grid.CellRect(1, 2))
	}
}

func TestUpdate_TypeCommitMovesDown(t *testing.T) {
	m := newTestModel(t, Config{})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("H")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})
	if !m.Editing() {
		t.Fatalf("expected editor open")
	}
	if got, _ := m.Grid().Cell(0, 0); got.Value != "" {
		t.Fatalf("value committed before enter: %q", got.Value)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Editing() {
		t.Fatalf("expected editor closed")
	}
	if got, _ := m.Grid().Cell(0, 0); got.Value != "Hi" {
		t.Fatalf("cell=%q, want %q", got.Value, "Hi")
	}
	if got, want := m.Cursor(), (grid.Pos{Row: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if !m.Grid().CanUndo() {
		t.Fatalf("expected an undoable commit")
	}
}

func TestUpdate_TabCommitsAndMovesRight(t *testing.T) {
	m := newTestModel(t, Config{})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got, _ := m.Grid().Cell(0, 0); got.Value != "x" {
		t.Fatalf("cell=%q, want %q", got.Value, "x")
	}
	if got, want := m.Cursor(), (grid.Pos{Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestUpdate_EscDiscardsEdit(t *testing.T) {
	snap := grid.NewSnapshot(2, 2, grid.Cell{}).WithValue(0, 0, "keep")
	m := newTestModel(t, Config{Snapshot: snap})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Editing() {
		t.Fatalf("expected editor open")
	}
	if got := m.input.Value(); got != "keep" {
		t.Fatalf("editor value=%q, want %q", got, "keep")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if m.Editing() {
		t.Fatalf("expected editor closed")
	}
	if got, _ := m.Grid().Cell(0, 0); got.Value != "keep" {
		t.Fatalf("cell=%q, want %q", got.Value, "keep")
	}
	if m.Grid().CanUndo() {
		t.Fatalf("discarded edit must not commit")
	}
}

func TestUpdate_UndoRedo(t *testing.T) {
	m := newTestModel(t, Config{})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got, _ := m.Grid().Cell(0, 0); got.Value != "" {
		t.Fatalf("after undo cell=%q, want empty", got.Value)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if got, _ := m.Grid().Cell(0, 0); got.Value != "a" {
		t.Fatalf("after redo cell=%q, want %q", got.Value, "a")
	}
}

func TestUpdate_ClearEmptiesSelection(t *testing.T) {
	snap := grid.NewSnapshot(2, 2, grid.Cell{}).
		WithValue(0, 0, "a").
		WithValue(0, 1, "b").
		WithValue(1, 1, "c")
	m := newTestModel(t, Config{Snapshot: snap})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDelete})

	for _, p := range []grid.Pos{{Row: 0, Col: 0}, {Row: 0, Col: 1}} {
		if got, _ := m.Grid().Cell(p.Row, p.Col); got.Value != "" {
			t.Fatalf("cell %v=%q, want empty", p, got.Value)
		}
	}
	if got, _ := m.Grid().Cell(1, 1); got.Value != "c" {
		t.Fatalf("cell outside selection=%q, want %q", got.Value, "c")
	}
	if got, want := m.Grid().HistoryLen(), 2; got != want {
		t.Fatalf("history=%d, want %d", got, want)
	}
}

func TestUpdateMouse_PressMovesCursor(t *testing.T) {
	m := newTestModel(t, Config{})

	m, _ = m.Update(press(9, 2))
	if got, want := m.Cursor(), (grid.Pos{Row: 1, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if m.Editing() {
		t.Fatalf("single press must not open the editor")
	}
}

func TestUpdateMouse_DoubleClickOpensEditor(t *testing.T) {
	now := time.Unix(0, 0)
	snap := grid.NewSnapshot(2, 2, grid.Cell{}).WithValue(1, 0, "val")
	m := newTestModel(t, Config{Snapshot: snap, Clock: func() time.Time { return now }})

	m, _ = m.Update(press(1, 2))
	m, _ = m.Update(release(1, 2))
	now = now.Add(200 * time.Millisecond)
	m, _ = m.Update(press(1, 2))

	if !m.Editing() {
		t.Fatalf("expected editor open after double click")
	}
	if got := m.input.Value(); got != "val" {
		t.Fatalf("editor value=%q, want %q", got, "val")
	}
}

func TestUpdateMouse_SlowSecondPressDoesNotEdit(t *testing.T) {
	now := time.Unix(0, 0)
	m := newTestModel(t, Config{Clock: func() time.Time { return now }})

	m, _ = m.Update(press(1, 0))
	now = now.Add(DefaultDoubleClickInterval + time.Millisecond)
	m, _ = m.Update(press(1, 0))
	if m.Editing() {
		t.Fatalf("presses past the interval must not open the editor")
	}
}

func TestUpdateMouse_DoubleClickOnDifferentCellsDoesNotEdit(t *testing.T) {
	now := time.Unix(0, 0)
	m := newTestModel(t, Config{Clock: func() time.Time { return now }})

	m, _ = m.Update(press(1, 0))
	m, _ = m.Update(press(9, 0))
	if m.Editing() {
		t.Fatalf("presses on different cells must not open the editor")
	}
}

func TestUpdateMouse_DragExtendsSelection(t *testing.T) {
	m := newTestModel(t, Config{Rows: 3, Cols: 3})

	m, _ = m.Update(press(1, 0))
	m, _ = m.Update(tea.MouseMsg{X: 17, Y: 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	want := grid.Rect{Top: 0, Bottom: 1, Left: 0, Right: 2}
	if got, _ := m.Grid().Selection(); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}

	m, _ = m.Update(release(17, 2))
	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 4, Action: tea.MouseActionMotion})
	if got, _ := m.Grid().Selection(); got != want {
		t.Fatalf("motion after release changed selection to %v", got)
	}
}

func TestUpdateMouse_HeadersSelectWholeLines(t *testing.T) {
	m := newTestModel(t, Config{Rows: 3, Cols: 3, ShowHeaders: true})
	// Gutter is 2 wide, header is 1 high.

	m, _ = m.Update(press(11, 0))
	want := grid.Rect{Top: 0, Bottom: 2, Left: 1, Right: 1}
	if got, _ := m.Grid().Selection(); got != want {
		t.Fatalf("column selection=%v, want %v", got, want)
	}

	m, _ = m.Update(press(0, 3))
	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	want = grid.Rect{Top: 1, Bottom: 2, Left: 0, Right: 2}
	if got, _ := m.Grid().Selection(); got != want {
		t.Fatalf("row selection=%v, want %v", got, want)
	}

	m, _ = m.Update(release(0, 5))
	m, _ = m.Update(press(0, 0))
	want = grid.Rect{Top: 0, Bottom: 2, Left: 0, Right: 2}
	if got, _ := m.Grid().Selection(); got != want {
		t.Fatalf("corner selection=%v, want %v", got, want)
	}
}

func TestUpdateMouse_PressCommitsOpenEditor(t *testing.T) {
	m := newTestModel(t, Config{})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")})
	m, _ = m.Update(press(9, 2))
	if m.Editing() {
		t.Fatalf("expected editor closed")
	}
	if got, _ := m.Grid().Cell(0, 0); got.Value != "z" {
		t.Fatalf("cell=%q, want %q", got.Value, "z")
	}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}
