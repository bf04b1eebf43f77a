package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/dynarray/internal/viz"
	"github.com/san-kum/dynarray/internal/workload"
)

const (
	historyLen  = 48
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer redraws a small dashboard while a workload runs. It is a
// workload.Observer and drops frames above frameRate.
type LiveRenderer struct {
	out       io.Writer
	name      string
	frameRate int
	lastFrame time.Time
	sizes     []float64
	caps      []float64
	failed    int
	last      workload.Snapshot
	seen      bool
	drawn     bool
}

func NewLiveRenderer(out io.Writer, name string, frameRate int) *LiveRenderer {
	return &LiveRenderer{
		out:       out,
		name:      name,
		frameRate: max(frameRate, 1),
		sizes:     make([]float64, 0, historyLen),
		caps:      make([]float64, 0, historyLen),
	}
}

func (r *LiveRenderer) OnStep(s workload.Snapshot) {
	r.sizes = appendBounded(r.sizes, float64(s.Size))
	r.caps = appendBounded(r.caps, float64(s.Cap))
	if s.Failed() {
		r.failed++
	}
	r.last, r.seen, r.drawn = s, true, false

	if time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = time.Now()
	r.draw(s)
}

func (r *LiveRenderer) Start() {
	fmt.Fprint(r.out, hideCursor)
}

// Stop draws the final snapshot if the throttle skipped it, then restores
// the cursor.
func (r *LiveRenderer) Stop() {
	if r.seen && !r.drawn {
		r.draw(r.last)
	}
	fmt.Fprint(r.out, showCursor)
}

func (r *LiveRenderer) draw(s workload.Snapshot) {
	r.drawn = true

	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString("  " + viz.HeaderStyle.Render(r.name+"  "+fmt.Sprintf("step %d", s.Step)) + "\n\n")
	b.WriteString("  " + viz.RenderStats(s.Size, s.Cap, s.Generation) + "\n\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", dim.Render("size"), cyan.Render(viz.Sparkline(r.sizes, historyLen))))
	b.WriteString(fmt.Sprintf("  %s  %s\n\n", dim.Render("cap"), cyan.Render(viz.Sparkline(r.caps, historyLen))))

	op := white.Render(s.Op)
	if s.Failed() {
		op += "  " + viz.ErrorText.Render(s.Err)
	} else if s.Output != "" {
		op += "  " + viz.OKText.Render(s.Output)
	}
	b.WriteString("  " + op + "\n")
	b.WriteString(dim.Render(fmt.Sprintf("  %d failed", r.failed)) + "\n")
	fmt.Fprint(r.out, b.String())
}

func appendBounded(xs []float64, v float64) []float64 {
	xs = append(xs, v)
	if len(xs) > historyLen {
		xs = xs[1:]
	}
	return xs
}
