package grid

// Test widths, after border space, minimum width 20 and padding 10:
// "eighty" -> 80, "sixty" -> 60, "fifty" -> 50, "forty" -> 40, "" -> 30.
var testWidths = map[string]float64{
	"ninety": 79,
	"eighty": 69,
	"sixty":  49,
	"fifty":  39,
	"forty":  29,
}

func testOptions() Options {
	return Options{
		MinColumnWidth: 20,
		CellPadding:    10,
		Measure: func(text string, _ float64) float64 {
			if w, ok := testWidths[text]; ok {
				return w
			}
			return float64(len(text))
		},
	}
}

func column(values ...string) Snapshot {
	s := make(Snapshot, len(values))
	for i, v := range values {
		s[i] = []Cell{{Value: v}}
	}
	return s
}

type repaintLog struct {
	events []Repaint
}

func (l *repaintLog) record(r Repaint) { l.events = append(l.events, r) }

func (l *repaintLog) last() (Repaint, bool) {
	if len(l.events) == 0 {
		return Repaint{}, false
	}
	return l.events[len(l.events)-1], true
}
