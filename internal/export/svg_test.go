package export

import (
	"strings"
	"testing"

	"github.com/san-kum/dynarray/internal/workload"
)

func TestTraceToSVG(t *testing.T) {
	trace := []workload.Snapshot{
		{Step: 0, Size: 0, Cap: 10},
		{Step: 1, Size: 1, Cap: 10},
		{Step: 2, Size: 11, Cap: 20},
	}

	svg := TraceToSVG(trace, 200, 100)
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("output is not an svg document")
	}
	if n := strings.Count(svg, "<path"); n != 2 {
		t.Errorf("expected 2 paths, got %d", n)
	}
	if strings.Count(svg, " L") != 4 {
		t.Errorf("expected 2 segments per path")
	}
}

func TestTraceToSVG_TooShort(t *testing.T) {
	if TraceToSVG([]workload.Snapshot{{}}, 100, 100) != "" {
		t.Error("single snapshot should produce no svg")
	}
	if TraceToSVG(nil, 100, 100) != "" {
		t.Error("nil trace should produce no svg")
	}
}
