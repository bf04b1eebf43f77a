package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/dynarray/internal/workload"
)

const (
	sizeColor = "#00ccff"
	capColor  = "#ff00ff"
)

// TraceToSVG draws size and capacity against step as two paths sharing one
// vertical scale. Traces shorter than two snapshots yield "".
func TraceToSVG(trace []workload.Snapshot, width, height int) string {
	if len(trace) < 2 || width <= 0 || height <= 0 {
		return ""
	}

	maxY := 1
	for _, s := range trace {
		maxY = max(maxY, s.Cap, s.Size)
	}
	// headroom above the tallest point
	top := float64(maxY) * 1.1
	lastStep := float64(len(trace) - 1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	series := []struct {
		color string
		value func(workload.Snapshot) int
	}{
		{capColor, func(s workload.Snapshot) int { return s.Cap }},
		{sizeColor, func(s workload.Snapshot) int { return s.Size }},
	}

	for _, se := range series {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, se.color))
		for i, s := range trace {
			x := float64(i) / lastStep * float64(width)
			y := float64(height) - float64(se.value(s))/top*float64(height)

			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString(fmt.Sprintf(`<text x="8" y="16" fill="%s" font-family="monospace" font-size="12">capacity</text>
<text x="8" y="32" fill="%s" font-family="monospace" font-size="12">size</text>
</svg>`, capColor, sizeColor))
	return sb.String()
}
