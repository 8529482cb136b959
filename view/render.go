package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/gridcanvas/grid"
	graphemeutil "github.com/iw2rmb/gridcanvas/internal/grapheme"
)

const (
	sepThin    = "│"
	sepBold    = "┃"
	borderThin = "─"
	borderBold = "━"
	crossThin  = "┼"
	crossBold  = "╋"
)

// rebuildContent renders stale rows into the paint cache and hands the
// visible slice of every line to the viewport.
func (m *Model) rebuildContent() {
	rowCount := m.grid.RowCount()
	m.paint.reset(rowCount)

	gutter := m.gutterWidth()
	width := m.contentWidth()

	var lines []string
	for row := range rowCount {
		if m.paint.rows[row] == nil {
			m.paint.rows[row] = m.renderRow(row)
			m.paint.renders++
		}
		h := len(m.paint.rows[row])
		for i, line := range m.paint.rows[row] {
			if width > 0 {
				line = ansi.Cut(line, m.xOffset, m.xOffset+width)
			}
			if gutter > 0 {
				line = m.rowGutter(row, i, h, gutter) + line
			}
			lines = append(lines, line)
		}
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

// renderRow renders every line of row at full width, without the gutter.
func (m *Model) renderRow(row int) []string {
	height, _ := m.grid.Dimensions().RowHeight(row)
	height = max(height, 1)
	widths := m.grid.Columns()
	snap := m.grid.Snapshot()

	lines := make([]string, height)
	for i := range height {
		var sb strings.Builder
		for col, w := range widths {
			cell, _ := snap.At(row, col)
			bold := cell.Config.BorderStyle == grid.BorderBold
			border := m.borderStyle(cell)
			if i == height-1 {
				line, cross := borderThin, crossThin
				if bold {
					line, cross = borderBold, crossBold
				}
				sb.WriteString(border.Render(strings.Repeat(line, max(w-1, 0)) + cross))
				continue
			}

			if i == 0 {
				sb.WriteString(m.cellText(row, col, cell, w-1))
			} else {
				sb.WriteString(m.cellStyle(row, col, cell).Render(strings.Repeat(" ", max(w-1, 0))))
			}
			sep := sepThin
			if bold {
				sep = sepBold
			}
			sb.WriteString(border.Render(sep))
		}
		lines[i] = sb.String()
	}
	return lines
}

// cellText renders the content area of one cell padded to width cells.
func (m *Model) cellText(row, col int, cell grid.Cell, width int) string {
	if width <= 0 {
		return ""
	}
	st := m.cellStyle(row, col, cell)

	if m.editing && m.editPos == (grid.Pos{Row: row, Col: col}) {
		v := ansi.Truncate(" "+m.input.View(), width, "")
		pad := max(width-ansi.StringWidth(v), 0)
		return m.cfg.Style.Editor.Render(v + strings.Repeat(" ", pad))
	}

	text, used := graphemeutil.Truncate(graphemeutil.Printable(cell.Value), max(width-1, 0))
	text = " " + text + strings.Repeat(" ", max(width-1-used, 0))
	return st.Render(text)
}

func (m *Model) cellStyle(row, col int, cell grid.Cell) lipgloss.Style {
	st := m.cfg.Style.Cell
	if c := cell.Config.FillColor; c != "" {
		st = st.Background(lipgloss.Color(c))
	}
	if c := cell.Config.FontColor; c != "" {
		st = st.Foreground(lipgloss.Color(c))
	}
	if !m.focused {
		return st
	}
	switch {
	case m.cursor == (grid.Pos{Row: row, Col: col}):
		st = m.cfg.Style.Cursor.Inherit(st)
	case m.grid.IsSelected(row, col):
		st = m.cfg.Style.Selected.Inherit(st)
	}
	return st
}

func (m *Model) borderStyle(cell grid.Cell) lipgloss.Style {
	if c := cell.Config.BorderColor; c != "" {
		return m.cfg.Style.Border.Foreground(lipgloss.Color(c))
	}
	return m.cfg.Style.Border
}

// rowGutter renders line i of the row header for row.
func (m *Model) rowGutter(row, i, height, gutter int) string {
	sel, ok := m.grid.Selection()
	st := m.cfg.Style.Header
	if ok && row >= sel.Top && row <= sel.Bottom {
		st = m.cfg.Style.HeaderSelected
	}
	switch {
	case i == height-1:
		return m.cfg.Style.Border.Render(strings.Repeat(borderThin, gutter))
	case i == 0:
		num := strconv.Itoa(row + 1)
		return st.Render(strings.Repeat(" ", max(gutter-1-len(num), 0)) + num + " ")
	default:
		return strings.Repeat(" ", gutter)
	}
}

// columnHeaderLine renders the column letters above the grid.
func (m *Model) columnHeaderLine() string {
	sel, ok := m.grid.Selection()
	var sb strings.Builder
	for col, w := range m.grid.Columns() {
		st := m.cfg.Style.Header
		if ok && col >= sel.Left && col <= sel.Right {
			st = m.cfg.Style.HeaderSelected
		}
		name := ColumnName(col)
		inner := max(w-1, 0)
		left := max((inner-len(name))/2, 0)
		label := strings.Repeat(" ", left) + name
		label = ansi.Truncate(label, inner, "")
		label += strings.Repeat(" ", max(inner-ansi.StringWidth(label), 0))
		sb.WriteString(st.Render(label))
		sb.WriteString(" ")
	}
	line := sb.String()
	if width := m.contentWidth(); width > 0 {
		line = ansi.Cut(line, m.xOffset, m.xOffset+width)
	}
	return strings.Repeat(" ", m.gutterWidth()) + line
}

// ColumnName returns the spreadsheet letter name of col: A..Z, AA, AB, ...
func ColumnName(col int) string {
	var b []byte
	for n := col + 1; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('A' + (n-1)%26)}, b...)
	}
	return string(b)
}

func (m *Model) headerHeight() int {
	if m.cfg.ShowHeaders {
		return 1
	}
	return 0
}

// gutterWidth is the width of the row header: the widest row number plus a space.
func (m *Model) gutterWidth() int {
	if !m.cfg.ShowHeaders {
		return 0
	}
	return len(strconv.Itoa(max(m.grid.RowCount(), 1))) + 1
}

// contentWidth is the number of grid cells visible horizontally. Zero means
// the model has no size yet and nothing is clipped.
func (m *Model) contentWidth() int {
	if m.viewport.Width <= 0 {
		return 0
	}
	return max(m.viewport.Width-m.gutterWidth(), 1)
}

func (m *Model) visibleRowCount() int { return m.viewport.Height }
