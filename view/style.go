package view

import "github.com/charmbracelet/lipgloss"

// Style controls the grid's rendering.
//
// Styles should avoid layout-affecting options (padding/margin/width) to keep
// the cell geometry and hit-testing in sync.
type Style struct {
	Cell     lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Editor   lipgloss.Style
	Border   lipgloss.Style

	Header         lipgloss.Style
	HeaderSelected lipgloss.Style
}

func DefaultStyle() Style {
	header := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	return Style{
		Cell:           lipgloss.NewStyle(),
		Selected:       lipgloss.NewStyle().Background(lipgloss.Color("24")),
		Cursor:         lipgloss.NewStyle().Background(lipgloss.Color("33")).Foreground(lipgloss.Color("15")),
		Editor:         lipgloss.NewStyle().Background(lipgloss.Color("236")),
		Border:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Header:         header,
		HeaderSelected: header.Foreground(lipgloss.Color("15")).Bold(true),
	}
}
