package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/dynarray/internal/dynarray"
	"github.com/san-kum/dynarray/internal/viz"
	"github.com/san-kum/dynarray/internal/workload"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

const maxHistory = 12

const helpText = `ops:   add v | insert i v | add_all v... | insert_all i v... | remove_at i
       remove v | remove_all v... | retain_all v... | set i v | get i | clear
       ensure_capacity n | trim | index_of v | last_index_of v | contains v
       contains_all v... | iterate
repl:  iter (hold an iterator) | next | reset | help | quit`

type entry struct {
	input  string
	output string
	failed bool
}

type model struct {
	list     *dynarray.List[string]
	iter     *dynarray.Iterator[string]
	capacity int

	input   string
	history []entry

	width  int
	height int
}

// newREPL returns a model driving a fresh list of the given initial capacity.
func newREPL(initialCapacity int) (*model, error) {
	l, err := dynarray.WithCapacity[string](initialCapacity)
	if err != nil {
		return nil, err
	}
	return &model{
		list:     l,
		capacity: initialCapacity,
		history:  make([]entry, 0, maxHistory),
		width:    80,
		height:   24,
	}, nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		line := strings.TrimSpace(m.input)
		m.input = ""
		if line == "" {
			return m, nil
		}
		return m.exec(line)
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m, nil
}

// exec runs one command line against the list.
func (m model) exec(line string) (model, tea.Cmd) {
	switch strings.ToLower(line) {
	case "quit", "exit", "q":
		return m, tea.Quit
	case "help", "?":
		m.push(line, helpText, false)
		return m, nil
	case "reset":
		m.list, _ = dynarray.WithCapacity[string](m.capacity)
		m.iter = nil
		m.push(line, "new list", false)
		return m, nil
	case "iter":
		m.iter = m.list.Iterator()
		m.push(line, fmt.Sprintf("iterator at generation %d", m.list.Generation()), false)
		return m, nil
	case "next":
		m.next(line)
		return m, nil
	}

	op, err := workload.ParseOp(line)
	if err != nil {
		m.push(line, err.Error(), true)
		return m, nil
	}
	out, err := workload.Apply(m.list, op)
	if err != nil {
		m.push(line, err.Error(), true)
		return m, nil
	}
	m.push(line, out, false)
	return m, nil
}

func (m *model) next(line string) {
	if m.iter == nil {
		m.push(line, "no iterator, run iter first", true)
		return
	}
	v, err := m.iter.Next()
	switch {
	case errors.Is(err, dynarray.ErrNoElement):
		m.push(line, "exhausted", true)
	case err != nil:
		m.push(line, err.Error(), true)
	default:
		m.push(line, v, false)
	}
}

func (m *model) push(input, output string, failed bool) {
	m.history = append(m.history, entry{input: input, output: output, failed: failed})
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("   " + viz.Title.Render("d y n a r r a y") + "  " + dim.Render(m.list.String()) + "\n")
	b.WriteString(dimmer.Render("   "+strings.Repeat("─", 40)) + "\n")

	stats := viz.RenderStats(m.list.Size(), m.list.Cap(), m.list.Generation())
	if m.iter != nil {
		stats += "  " + dim.Render("iter held")
	}
	panel := viz.Panel.Render(viz.RenderList(m.list) + "\n\n" + stats)
	for _, line := range strings.Split(panel, "\n") {
		b.WriteString("   " + line + "\n")
	}
	b.WriteString("\n")

	for _, e := range m.history {
		b.WriteString("   " + dim.Render("> "+e.input) + "\n")
		style := viz.OKText
		if e.failed {
			style = viz.ErrorText
		}
		for _, line := range strings.Split(e.output, "\n") {
			b.WriteString("     " + style.Render(line) + "\n")
		}
	}

	b.WriteString("\n   " + cyan.Render("> ") + white.Render(m.input+"▋") + "\n")
	b.WriteString(viz.KeyHint.Render("   enter run  help ops  esc quit") + "\n")

	return b.String()
}

func RunREPL(initialCapacity int) error {
	m, err := newREPL(initialCapacity)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
