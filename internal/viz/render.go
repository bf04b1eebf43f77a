package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/dynarray/internal/dynarray"
	"github.com/san-kum/dynarray/internal/workload"
)

const (
	cellWidth = 5
	// slots beyond this are summarised instead of drawn
	maxCells = 32
)

// RenderList draws one bracketed cell per slot. Live cells show the element,
// slack cells are drawn empty, and every fifth slot is numbered underneath.
func RenderList[T comparable](l *dynarray.List[T]) string {
	items := l.ToArray()
	capacity := l.Cap()
	shown := min(capacity, maxCells)

	var cells, ruler strings.Builder
	for i := 0; i < shown; i++ {
		if i < len(items) {
			cells.WriteString(LiveCell.Render(cell(fmt.Sprint(items[i]))))
		} else {
			cells.WriteString(SlackCell.Render(cell("")))
		}

		label := ""
		if i%5 == 0 {
			label = fmt.Sprint(i)
		}
		ruler.WriteString(fmt.Sprintf("%-*s", cellWidth, label))
	}

	if capacity == 0 {
		cells.WriteString(SlackCell.Render("(no slots)"))
	}
	if capacity > shown {
		cells.WriteString(Subtle.Render(fmt.Sprintf(" +%d slots", capacity-shown)))
	}

	return cells.String() + "\n" + Subtle.Render(strings.TrimRight(ruler.String(), " "))
}

// cell pads or truncates s to fit between brackets.
func cell(s string) string {
	inner := cellWidth - 2
	r := []rune(s)
	if len(r) > inner {
		r = append(r[:inner-1], '…')
	}
	return "[" + fmt.Sprintf("%-*s", inner, string(r)) + "]"
}

func RenderStats(size, capacity int, generation uint64) string {
	load := 0.0
	if capacity > 0 {
		load = float64(size) / float64(capacity)
	}
	return fmt.Sprintf("%s %s  %s %s  %s %s  %s %s",
		MetricLabel.Render("size"), MetricValue.Render(fmt.Sprint(size)),
		MetricLabel.Render("cap"), MetricValue.Render(fmt.Sprint(capacity)),
		MetricLabel.Render("gen"), MetricValue.Render(fmt.Sprint(generation)),
		MetricLabel.Render("load"), FillBar(load, 10))
}

// PlotTrace charts size and capacity against step. It returns "" when the
// trace has fewer than two snapshots.
func PlotTrace(trace []workload.Snapshot, width, height int) string {
	if len(trace) < 2 {
		return ""
	}

	sizes := make([]float64, len(trace))
	caps := make([]float64, len(trace))
	for i, s := range trace {
		sizes[i] = float64(s.Size)
		caps[i] = float64(s.Cap)
	}

	return asciigraph.PlotMany([][]float64{caps, sizes},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(asciigraph.Magenta, asciigraph.Cyan),
		asciigraph.SeriesLegends("capacity", "size"),
		asciigraph.Caption(fmt.Sprintf("%d steps", len(trace)-1)),
	)
}
