package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/dynarray/internal/workload"
)

func newModel(t *testing.T) model {
	t.Helper()
	m, err := newREPL(2)
	if err != nil {
		t.Fatal(err)
	}
	return *m
}

func typeLine(m model, line string) model {
	for _, r := range line {
		var msg tea.KeyMsg
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		}
		next, _ := m.Update(msg)
		m = next.(model)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(model)
}

func last(m model) entry {
	return m.history[len(m.history)-1]
}

func TestREPL_NegativeCapacity(t *testing.T) {
	if _, err := newREPL(-1); err == nil {
		t.Error("expected error for negative capacity")
	}
}

func TestREPL_Ops(t *testing.T) {
	m := newModel(t)
	m = typeLine(m, "add a")
	m = typeLine(m, "add b")
	m = typeLine(m, "insert 1 c")

	if got := m.list.String(); got != "{a, c, b}" {
		t.Errorf("list = %s", got)
	}
	if m.list.Cap() != 10 {
		t.Errorf("cap = %d, want 10", m.list.Cap())
	}

	m = typeLine(m, "get 7")
	if e := last(m); !e.failed || !strings.Contains(e.output, "index 7 is out of range") {
		t.Errorf("unexpected entry %+v", e)
	}

	m = typeLine(m, "bogus")
	if !last(m).failed {
		t.Error("unknown op should fail")
	}
}

func TestREPL_Iterator(t *testing.T) {
	m := newModel(t)
	m = typeLine(m, "next")
	if !last(m).failed {
		t.Error("next without iter should fail")
	}

	m = typeLine(m, "add a")
	m = typeLine(m, "iter")
	m = typeLine(m, "next")
	if e := last(m); e.failed || e.output != "a" {
		t.Errorf("next = %+v", e)
	}
	m = typeLine(m, "next")
	if e := last(m); e.output != "exhausted" {
		t.Errorf("expected exhaustion, got %+v", e)
	}

	m = typeLine(m, "iter")
	m = typeLine(m, "add b")
	m = typeLine(m, "next")
	if e := last(m); !e.failed || !strings.Contains(e.output, "modified during iteration") {
		t.Errorf("expected concurrent modification, got %+v", e)
	}
}

func TestREPL_ResetAndQuit(t *testing.T) {
	m := newModel(t)
	m = typeLine(m, "add_all a b c")
	m = typeLine(m, "reset")
	if m.list.Size() != 0 || m.list.Cap() != 2 || m.iter != nil {
		t.Errorf("reset left size=%d cap=%d", m.list.Size(), m.list.Cap())
	}

	for _, line := range []string{"add x", "quit"} {
		for _, r := range line {
			next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
			m = next.(model)
		}
		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = next.(model)
		if line == "quit" && cmd == nil {
			t.Error("quit should return a command")
		}
	}
}

func TestREPL_HistoryBounded(t *testing.T) {
	m := newModel(t)
	for i := 0; i < maxHistory+5; i++ {
		m = typeLine(m, "add x")
	}
	if len(m.history) != maxHistory {
		t.Errorf("history len = %d", len(m.history))
	}
}

func TestREPL_Backspace(t *testing.T) {
	m := newModel(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")})
	m = next.(model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(model)
	if m.input != "a" {
		t.Errorf("input = %q", m.input)
	}
	if !strings.Contains(m.View(), "a▋") {
		t.Error("view should show the pending input")
	}
}

func TestLiveRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, "demo", 1000)
	r.Start()
	r.OnStep(workload.Snapshot{Step: 0, Op: "new", Cap: 10})
	r.OnStep(workload.Snapshot{Step: 1, Op: "get 3", Cap: 10, Err: "boom"})
	r.Stop()

	if r.failed != 1 || len(r.sizes) != 2 {
		t.Errorf("failed=%d samples=%d", r.failed, len(r.sizes))
	}
	if !strings.Contains(buf.String(), "demo") {
		t.Error("expected a drawn frame")
	}
	if !strings.HasSuffix(buf.String(), showCursor) {
		t.Error("Stop should restore the cursor")
	}
}

func TestREPL_ViewPanel(t *testing.T) {
	m := newModel(t)
	m = typeLine(m, "add a")
	m = typeLine(m, "iter")

	view := m.View()
	for _, want := range []string{"╭", "╰", "[a  ]", "iter held", "enter run"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestLiveRenderer_StopDrawsLastStep(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, "demo", 1)
	r.OnStep(workload.Snapshot{Step: 0, Op: "new", Cap: 10})
	r.OnStep(workload.Snapshot{Step: 1, Op: "add a", Size: 1, Cap: 10, Output: "true"})

	if strings.Contains(buf.String(), "step 1") {
		t.Fatal("second step should have been throttled")
	}
	r.Stop()
	if !strings.Contains(buf.String(), "step 1") {
		t.Error("Stop should draw the final step")
	}

	buf.Reset()
	r.Stop()
	if buf.String() != showCursor {
		t.Errorf("a drawn step should not be redrawn, got %q", buf.String())
	}
}
