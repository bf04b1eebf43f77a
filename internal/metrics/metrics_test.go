package metrics

import (
	"context"
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/san-kum/dynarray/internal/workload"
)

func snaps(pairs ...[2]int) []workload.Snapshot {
	out := make([]workload.Snapshot, len(pairs))
	for i, p := range pairs {
		out[i] = workload.Snapshot{Step: i, Size: p[0], Cap: p[1]}
	}
	return out
}

func TestReallocations(t *testing.T) {
	m := NewReallocations()
	for _, s := range snaps([2]int{0, 10}, [2]int{10, 10}, [2]int{11, 20}, [2]int{11, 20}, [2]int{11, 11}) {
		m.Observe(s)
	}
	if m.Value() != 2 {
		t.Errorf("expected 2 reallocations, got %v", m.Value())
	}

	m.Reset()
	m.Observe(workload.Snapshot{Cap: 40})
	if m.Value() != 0 {
		t.Error("first snapshot after reset should not count")
	}
}

func TestPeakSlack(t *testing.T) {
	m := NewPeakSlack()
	for _, s := range snaps([2]int{0, 10}, [2]int{11, 20}, [2]int{20, 20}) {
		m.Observe(s)
	}
	if m.Value() != 10 {
		t.Errorf("expected peak slack 10, got %v", m.Value())
	}
}

func TestLoadFactor(t *testing.T) {
	m := NewLoadFactor()
	if m.Value() != 0 {
		t.Error("empty load factor should be 0")
	}
	for _, s := range snaps([2]int{0, 0}, [2]int{5, 10}) {
		m.Observe(s)
	}
	if math.Abs(m.Value()-0.75) > 1e-12 {
		t.Errorf("expected 0.75, got %v", m.Value())
	}
}

func TestFailedOps(t *testing.T) {
	m := NewFailedOps()
	m.Observe(workload.Snapshot{})
	m.Observe(workload.Snapshot{Err: "boom"})
	if m.Value() != 1 {
		t.Errorf("expected 1 failure, got %v", m.Value())
	}
}

func TestDefaults_WithRunner(t *testing.T) {
	registry := workload.NewRegistry()
	w, err := registry.Generate("append", 100, 0, 10)
	if err != nil {
		t.Fatal(err)
	}

	r := workload.New(zerolog.Nop())
	for _, m := range Defaults() {
		r.AddMetric(m)
	}
	result, err := r.Run(context.Background(), w)
	if err != nil {
		t.Fatal(err)
	}

	// 10 -> 20 -> 40 -> 80 -> 160, widest gap right after the last doubling
	if result.Metrics["reallocations"] != 4 {
		t.Errorf("reallocations = %v", result.Metrics["reallocations"])
	}
	if result.Metrics["peak_slack"] != 79 {
		t.Errorf("peak_slack = %v", result.Metrics["peak_slack"])
	}
	if result.Metrics["failed_ops"] != 0 {
		t.Errorf("failed_ops = %v", result.Metrics["failed_ops"])
	}
	if lf := result.Metrics["load_factor"]; lf <= 0 || lf > 1 {
		t.Errorf("load_factor out of range: %v", lf)
	}
}
