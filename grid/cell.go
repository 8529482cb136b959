package grid

// BorderStyle selects how a cell border is drawn.
type BorderStyle string

const (
	BorderThin BorderStyle = ""
	BorderBold BorderStyle = "bold"
)

// ConfigField is a bit set naming CellConfig keys.
type ConfigField uint8

const (
	FieldFillColor ConfigField = 1 << iota
	FieldFontColor
	FieldFontSize
	FieldBorderStyle
	FieldBorderColor

	AllConfigFields = FieldFillColor | FieldFontColor | FieldFontSize | FieldBorderStyle | FieldBorderColor
)

func (f ConfigField) Has(g ConfigField) bool { return f&g == g }

// CellConfig holds per-cell presentation keys. Zero values mean "unset".
type CellConfig struct {
	FillColor   string
	FontColor   string
	FontSize    float64
	BorderStyle BorderStyle
	BorderColor string
}

// Cell is an immutable value: edits produce a new Cell.
type Cell struct {
	Value  string
	Config CellConfig
}

// changedFields returns the keys whose values differ between c and o.
func (c CellConfig) changedFields(o CellConfig) ConfigField {
	var f ConfigField
	if c.FillColor != o.FillColor {
		f |= FieldFillColor
	}
	if c.FontColor != o.FontColor {
		f |= FieldFontColor
	}
	if c.FontSize != o.FontSize {
		f |= FieldFontSize
	}
	if c.BorderStyle != o.BorderStyle {
		f |= FieldBorderStyle
	}
	if c.BorderColor != o.BorderColor {
		f |= FieldBorderColor
	}
	return f
}

// setFields returns the keys holding a non-zero value.
func (c CellConfig) setFields() ConfigField {
	return c.changedFields(CellConfig{})
}

// pick returns a copy of c holding only the keys in f.
func (c CellConfig) pick(f ConfigField) CellConfig {
	return CellConfig{}.merge(c, f)
}

// merge copies the keys in f from patch onto c.
func (c CellConfig) merge(patch CellConfig, f ConfigField) CellConfig {
	if f.Has(FieldFillColor) {
		c.FillColor = patch.FillColor
	}
	if f.Has(FieldFontColor) {
		c.FontColor = patch.FontColor
	}
	if f.Has(FieldFontSize) {
		c.FontSize = patch.FontSize
	}
	if f.Has(FieldBorderStyle) {
		c.BorderStyle = patch.BorderStyle
	}
	if f.Has(FieldBorderColor) {
		c.BorderColor = patch.BorderColor
	}
	return c
}

func borderSpace(cfg CellConfig) int {
	if cfg.BorderStyle == BorderBold {
		return 2
	}
	return 1
}
