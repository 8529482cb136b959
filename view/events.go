package view

import "github.com/iw2rmb/gridcanvas/grid"

type ChangeEvent struct {
	// Version is the grid version after the update.
	Version      uint64
	Cursor       grid.Pos
	Selection    grid.Rect
	HasSelection bool
	Editing      bool
}

func buildChangeEvent(m *Model) ChangeEvent {
	ev := ChangeEvent{
		Version: m.grid.Version(),
		Cursor:  m.cursor,
		Editing: m.editing,
	}
	ev.Selection, ev.HasSelection = m.grid.Selection()
	return ev
}
