package grid

import graphemeutil "github.com/iw2rmb/gridcanvas/internal/grapheme"

const (
	DefaultHistoryLimit   = 10
	DefaultMinColumnWidth = 50
	DefaultCellPadding    = 10
	DefaultFontSize       = 11
	DefaultFillColor      = "#FFFFFF"
	DefaultFontColor      = "#000000"
)

// MeasureFunc returns the rendered width of text at fontSize, in pixels.
type MeasureFunc func(text string, fontSize float64) float64

type Options struct {
	// HistoryLimit bounds the undo log. Default: 10.
	HistoryLimit int

	// DefaultCell is the origin every cell of the first commit is diffed against.
	// Default: empty value, DefaultFillColor, DefaultFontSize.
	DefaultCell Cell

	// MinColumnWidth is the narrowest measured cell width before padding. Default: 50.
	MinColumnWidth int
	// CellPadding is added to every measured cell width.
	// Zero selects the default (10); negative means no padding.
	CellPadding int

	// DefaultFontSize applies to cells without a font size. Default: 11.
	DefaultFontSize float64
	// DefaultFontColor applies to cells without a font color.
	DefaultFontColor string

	// Measure is the host's text-measurement function.
	// When nil, every grapheme advances 0.6 * fontSize.
	Measure MeasureFunc

	// OnRepaint is invoked after every state-changing call.
	OnRepaint func(Repaint)
}

func DefaultOptions() Options {
	return Options{}.withDefaults()
}

func (o Options) withDefaults() Options {
	if o.HistoryLimit <= 0 {
		o.HistoryLimit = DefaultHistoryLimit
	}
	if o.DefaultCell == (Cell{}) {
		o.DefaultCell = Cell{Config: CellConfig{FillColor: DefaultFillColor, FontSize: DefaultFontSize}}
	}
	if o.MinColumnWidth <= 0 {
		o.MinColumnWidth = DefaultMinColumnWidth
	}
	if o.CellPadding == 0 {
		o.CellPadding = DefaultCellPadding
	}
	if o.CellPadding < 0 {
		o.CellPadding = 0
	}
	if o.DefaultFontSize <= 0 {
		o.DefaultFontSize = DefaultFontSize
	}
	if o.DefaultFontColor == "" {
		o.DefaultFontColor = DefaultFontColor
	}
	if o.Measure == nil {
		o.Measure = fixedAdvance
	}
	return o
}

func fixedAdvance(text string, fontSize float64) float64 {
	return float64(graphemeutil.Count(text)) * fontSize * 0.6
}
