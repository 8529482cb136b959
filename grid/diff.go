package grid

// CellPatch holds only the changed parts of a cell.
//
// HasValue reports whether Value is part of the patch; Fields names the
// config keys present in Config.
type CellPatch struct {
	Value    string
	HasValue bool
	Config   CellConfig
	Fields   ConfigField
}

func (p CellPatch) IsEmpty() bool { return !p.HasValue && p.Fields == 0 }

// Apply returns c with the patch's value and config keys written over it.
func (p CellPatch) Apply(c Cell) Cell {
	if p.HasValue {
		c.Value = p.Value
	}
	c.Config = c.Config.merge(p.Config, p.Fields)
	return c
}

// Diff records the change at one cell between two commits.
type Diff struct {
	Row  int
	Col  int
	From CellPatch
	To   CellPatch
}

// diffCell compares prev and next. A value change and a config change each
// qualify on their own; config keys are compared in both directions.
func diffCell(row, col int, prev, next Cell) (Diff, bool) {
	d := Diff{Row: row, Col: col}
	if prev.Value != next.Value {
		d.From.Value, d.From.HasValue = prev.Value, true
		d.To.Value, d.To.HasValue = next.Value, true
	}
	if f := prev.Config.changedFields(next.Config); f != 0 {
		d.From.Config, d.From.Fields = prev.Config.pick(f), f
		d.To.Config, d.To.Fields = next.Config.pick(f), f
	}
	return d, !d.From.IsEmpty()
}

// originDiff describes cell as a change from the default cell. Only config
// keys that cell sets and that differ from the default are recorded.
func originDiff(row, col int, cell, origin Cell) Diff {
	f := cell.Config.setFields() & origin.Config.changedFields(cell.Config)
	return Diff{
		Row:  row,
		Col:  col,
		From: CellPatch{Value: origin.Value, HasValue: true, Config: origin.Config, Fields: AllConfigFields},
		To:   CellPatch{Value: cell.Value, HasValue: true, Config: cell.Config.pick(f), Fields: f},
	}
}

func generateOrigin(next Snapshot, origin Cell) []Diff {
	diffs := make([]Diff, 0, next.Rows()*next.Cols())
	for row, cells := range next {
		for col, cell := range cells {
			diffs = append(diffs, originDiff(row, col, cell, origin))
		}
	}
	return diffs
}

func generateDiffs(prev, next Snapshot) []Diff {
	var diffs []Diff
	for row, cells := range next {
		for col, cell := range cells {
			before, _ := prev.At(row, col)
			if d, ok := diffCell(row, col, before, cell); ok {
				diffs = append(diffs, d)
			}
		}
	}
	return diffs
}
