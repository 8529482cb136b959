package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/gridcanvas"
	"github.com/iw2rmb/gridcanvas/grid"
	"github.com/iw2rmb/gridcanvas/view"
)

var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

type model struct {
	grid     view.Model
	keys     view.KeyMap
	quit     key.Binding
	helpKey  key.Binding
	help     help.Model
	showHelp bool
	height   int
}

func newModel(cfg Config, rows, cols, history int) (model, error) {
	km := cfg.ToKeyMap()
	g, err := view.New(view.Config{
		Rows:         rows,
		Cols:         cols,
		HistoryLimit: history,
		ShowHeaders:  true,
		Style:        view.DefaultStyle(),
		KeyMap:       km,
		OnChange:     logChange,
	})
	if err != nil {
		return model{}, err
	}
	return model{
		grid:    g,
		keys:    km,
		quit:    cfg.QuitBinding(),
		helpKey: cfg.HelpBinding(),
		help:    help.New(),
	}, nil
}

func (m model) Init() tea.Cmd { return m.grid.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.help.Width = msg.Width
		m.grid = m.grid.SetSize(msg.Width, max(msg.Height-2, 0))
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.quit) {
			return m, tea.Quit
		}
		if m.showHelp {
			// Any key closes the help overlay.
			m.showHelp = false
			return m, nil
		}
		if !m.grid.Editing() && key.Matches(msg, m.helpKey) {
			m.showHelp = true
			return m, nil
		}
		if !m.grid.Editing() {
			g := m.grid.Grid()
			switch {
			case key.Matches(msg, m.keys.Undo):
				log.Printf("undo: history=%d future=%d", g.HistoryLen(), g.FutureLen())
			case key.Matches(msg, m.keys.Redo):
				log.Printf("redo: history=%d future=%d", g.HistoryLen(), g.FutureLen())
			}
		}
	}

	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	return m, cmd
}

func (m model) View() string {
	body := m.grid.View()
	if m.showHelp {
		full := m.help
		full.ShowAll = true
		body = overlay.Composite(helpBoxStyle.Render(full.View(m)), body, overlay.Center, overlay.Center, 0, 0)
	}
	return body + "\n" + statusStyle.Render(m.status()) + "\n" + m.help.View(m)
}

func (m model) status() string {
	g := m.grid.Grid()
	cur := m.grid.Cursor()
	s := cellName(cur)
	if sel, ok := g.Selection(); ok && (sel.Top != sel.Bottom || sel.Left != sel.Right) {
		s += fmt.Sprintf(" [%s:%s]", cellName(grid.Pos{Row: sel.Top, Col: sel.Left}), cellName(grid.Pos{Row: sel.Bottom, Col: sel.Right}))
	}
	if c, ok := g.Cell(cur.Row, cur.Col); ok && c.Value != "" {
		s += "  " + strconv.Quote(c.Value)
	}
	return s + fmt.Sprintf("  undo:%d redo:%d", g.HistoryLen()-1, g.FutureLen())
}

func (m model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Edit, m.keys.Clear, m.keys.Undo, m.keys.Redo, m.helpKey, m.quit}
}

func (m model) FullHelp() [][]key.Binding {
	k := m.keys
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.ExtendUp, k.ExtendDown, k.ExtendLeft, k.ExtendRight},
		{k.Edit, k.Commit, k.Cancel, k.NextCell, k.Clear},
		{k.Undo, k.Redo, m.helpKey, m.quit},
	}
}

func cellName(p grid.Pos) string {
	return view.ColumnName(p.Col) + strconv.Itoa(p.Row+1)
}

func logChange(ev view.ChangeEvent) {
	log.Printf("change: version=%d cursor=%s editing=%v", ev.Version, cellName(ev.Cursor), ev.Editing)
}

func main() {
	rows := flag.Int("rows", view.DefaultRows, "number of rows")
	cols := flag.Int("cols", view.DefaultCols, "number of columns")
	history := flag.Int("history", grid.DefaultHistoryLimit, "undo history limit")
	configPath := flag.String("config", "", "path to a JSON key config")
	logPath := flag.String("log", "", "write logs to this file")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println(gridcanvas.ReadBuildInfo())
		return
	}

	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "gridcanvas")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	m, err := newModel(cfg, *rows, *cols, *history)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		log.Printf("program: %v", err)
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
