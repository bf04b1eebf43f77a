package workload

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/san-kum/dynarray/internal/dynarray"
)

type countingMetric struct {
	observed int
	resets   int
}

func (m *countingMetric) Name() string       { return "count" }
func (m *countingMetric) Observe(_ Snapshot) { m.observed++ }
func (m *countingMetric) Value() float64     { return float64(m.observed) }
func (m *countingMetric) Reset()             { m.observed = 0; m.resets++ }

type recordingObserver struct {
	steps []int
}

func (o *recordingObserver) OnStep(s Snapshot) { o.steps = append(o.steps, s.Step) }

func mustParse(t *testing.T, lines ...string) []Op {
	t.Helper()
	ops := make([]Op, len(lines))
	for i, line := range lines {
		op, err := ParseOp(line)
		if err != nil {
			t.Fatalf("ParseOp(%q): %v", line, err)
		}
		ops[i] = op
	}
	return ops
}

func TestRunnerRun(t *testing.T) {
	w := &Workload{
		Name:            "demo",
		InitialCapacity: 2,
		Ops:             mustParse(t, "add a", "add b", "add c", "get 7", "remove_at 0"),
	}

	metric := &countingMetric{}
	obs := &recordingObserver{}
	r := New(zerolog.Nop())
	r.AddMetric(metric)
	r.AddObserver(obs)

	result, err := r.Run(context.Background(), w)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Snapshots) != 6 {
		t.Fatalf("expected 6 snapshots, got %d", len(result.Snapshots))
	}
	if result.Snapshots[0].Op != "new" || result.Snapshots[0].Cap != 2 {
		t.Errorf("unexpected initial snapshot %+v", result.Snapshots[0])
	}
	if grown := result.Snapshots[3]; grown.Cap != 10 || grown.Size != 3 {
		t.Errorf("expected growth to 10 on third add, got %+v", grown)
	}

	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(result.Errors))
	}
	var stepErr *StepError
	if !errors.As(result.Errors[0], &stepErr) || stepErr.Step != 4 {
		t.Errorf("unexpected error %v", result.Errors[0])
	}
	if !errors.Is(result.Errors[0], dynarray.ErrIndexOutOfRange) {
		t.Error("StepError should unwrap to the list error")
	}
	if !result.Snapshots[4].Failed() {
		t.Error("snapshot for failed op not marked")
	}

	if len(result.Final) != 2 || result.Final[0] != "b" {
		t.Errorf("unexpected final contents %v", result.Final)
	}
	if result.Metrics["count"] != 6 || metric.resets != 1 {
		t.Errorf("metric observed %v snapshots, reset %d times", result.Metrics["count"], metric.resets)
	}
	if len(obs.steps) != 6 || obs.steps[5] != 5 {
		t.Errorf("observer saw %v", obs.steps)
	}
}

func TestRunnerRun_NegativeCapacity(t *testing.T) {
	w := &Workload{Name: "bad", InitialCapacity: -1}
	if _, err := New(zerolog.Nop()).Run(context.Background(), w); !errors.Is(err, dynarray.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestRunnerRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &Workload{Name: "c", InitialCapacity: 1, Ops: mustParse(t, "add a", "add b")}
	result, err := New(zerolog.Nop()).Run(ctx, w)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(result.Snapshots) != 1 {
		t.Errorf("expected only the initial snapshot, got %d", len(result.Snapshots))
	}
}

func TestRunnerRunOn(t *testing.T) {
	l := dynarray.Of("x", "y")
	w := &Workload{Name: "existing", Ops: mustParse(t, "iterate", "clear")}

	result, err := New(zerolog.Nop()).RunOn(context.Background(), l, w)
	if err != nil {
		t.Fatal(err)
	}
	if result.Snapshots[1].Output != "visited 2" {
		t.Errorf("iterate output %q", result.Snapshots[1].Output)
	}
	if !l.IsEmpty() || l.Generation() != 1 {
		t.Error("RunOn did not operate on the given list")
	}
}
