package grid

// Selection tracks one active rectangular range over cell indices.
//
// The zero value has no selection. Indices are not checked against any grid;
// Grid validates them before calling Update.
type Selection struct {
	rect   Rect
	active bool
}

// Update normalizes the two corners and replaces the selection.
func (s *Selection) Update(start, end Pos) {
	*s = Selection{rect: NormalizeRect(start, end), active: true}
}

// Corners returns the selected rectangle, or false when nothing is selected.
func (s *Selection) Corners() (Rect, bool) {
	if !s.active {
		return Rect{}, false
	}
	return s.rect, true
}

func (s *Selection) Active() bool { return s.active }

func (s *Selection) Contains(row, col int) bool {
	return s.active && s.rect.Contains(row, col)
}

// Flush clears the selection.
func (s *Selection) Flush() {
	*s = Selection{}
}
