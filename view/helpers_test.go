package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

type tickMsg struct{}

func newTestModel(t *testing.T, cfg Config) Model {
	t.Helper()
	if cfg.Rows == 0 {
		cfg.Rows = 2
	}
	if cfg.Cols == 0 {
		cfg.Cols = 2
	}
	m, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m.SetSize(40, 10)
}

// plainLines returns View() without styling or trailing padding.
func plainLines(m Model) []string {
	lines := strings.Split(ansi.Strip(m.View()), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}
