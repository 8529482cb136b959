package view

import (
	"reflect"
	"time"

	"github.com/iw2rmb/gridcanvas/grid"
	graphemeutil "github.com/iw2rmb/gridcanvas/internal/grapheme"
)

const (
	DefaultRows                = 20
	DefaultCols                = 8
	DefaultDoubleClickInterval = 500 * time.Millisecond

	// TerminalFontSize gives one text line plus one border line per row.
	TerminalFontSize     = 0.5
	TerminalMinCellWidth = 6
	TerminalCellPadding  = 2
)

// Config configures the grid Model.
type Config struct {
	// Initial grid content. When nil, a blank Rows x Cols grid is created.
	Snapshot grid.Snapshot
	Rows     int
	Cols     int

	// Forwarded to grid.Options.
	HistoryLimit int

	// ShowHeaders renders column letters and row numbers.
	ShowHeaders bool
	Style       Style
	KeyMap      KeyMap

	// DoubleClickInterval is the longest gap between two presses on the same
	// cell that opens the inline editor. Default: 500ms.
	DoubleClickInterval time.Duration
	// Clock returns the current time. Default: time.Now.
	Clock func() time.Time

	// OnChange is called after every update that changed the grid, the
	// cursor, or the editing state.
	OnChange func(ChangeEvent)
}

// Measure returns the terminal cell width of text as the grid renders it,
// with control clusters drawn as placeholders. Terminal glyphs have a fixed
// size, so fontSize is ignored.
func Measure(text string, _ float64) float64 {
	return float64(graphemeutil.Width(graphemeutil.Printable(text)))
}

// GridOptions returns grid options scaled to terminal cells.
func GridOptions(historyLimit int) grid.Options {
	return grid.Options{
		HistoryLimit:    historyLimit,
		MinColumnWidth:  TerminalMinCellWidth,
		CellPadding:     TerminalCellPadding,
		DefaultFontSize: TerminalFontSize,
		Measure:         Measure,
	}
}

func (c Config) withDefaults() Config {
	if c.Rows <= 0 {
		c.Rows = DefaultRows
	}
	if c.Cols <= 0 {
		c.Cols = DefaultCols
	}
	if reflect.DeepEqual(c.Style, Style{}) {
		c.Style = DefaultStyle()
	}
	if reflect.DeepEqual(c.KeyMap, KeyMap{}) {
		c.KeyMap = DefaultKeyMap()
	}
	if c.DoubleClickInterval <= 0 {
		c.DoubleClickInterval = DefaultDoubleClickInterval
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	return c
}
