package workload

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/san-kum/dynarray/internal/dynarray"
)

// Snapshot records the list after one op. Step 0 is the freshly built list.
type Snapshot struct {
	Step       int    `json:"step" msgpack:"step"`
	Op         string `json:"op" msgpack:"op"`
	Size       int    `json:"size" msgpack:"size"`
	Cap        int    `json:"cap" msgpack:"cap"`
	Generation uint64 `json:"generation" msgpack:"generation"`
	Output     string `json:"output,omitempty" msgpack:"output"`
	Err        string `json:"error,omitempty" msgpack:"error"`
}

func (s Snapshot) Failed() bool { return s.Err != "" }

type Metric interface {
	Name() string
	Observe(s Snapshot)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(s Snapshot)
}

type Result struct {
	Workload  string
	Snapshots []Snapshot
	Final     []string
	Metrics   map[string]float64
	Errors    []error
	Elapsed   time.Duration
}

type Runner struct {
	logger    zerolog.Logger
	metrics   []Metric
	observers []Observer
}

func New(logger zerolog.Logger) *Runner {
	return &Runner{
		logger:    logger,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run executes w against a new list built with w.InitialCapacity.
func (r *Runner) Run(ctx context.Context, w *Workload) (*Result, error) {
	list, err := dynarray.WithCapacity[string](w.InitialCapacity)
	if err != nil {
		return nil, err
	}
	return r.RunOn(ctx, list, w)
}

// RunOn executes w against an existing list. Op failures are recorded in
// the result and do not stop the run; context cancellation does.
func (r *Runner) RunOn(ctx context.Context, list *dynarray.List[string], w *Workload) (*Result, error) {
	result := &Result{
		Workload:  w.Name,
		Snapshots: make([]Snapshot, 0, len(w.Ops)+1),
		Metrics:   make(map[string]float64),
		Errors:    make([]error, 0),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	start := time.Now()
	r.record(result, snapshot(0, "new", list, "", nil))

	for i, op := range w.Ops {
		select {
		case <-ctx.Done():
			result.Elapsed = time.Since(start)
			return result, ctx.Err()
		default:
		}

		out, err := Apply(list, op)
		if err != nil {
			r.logger.Debug().Int("step", i+1).Str("op", op.String()).Err(err).Msg("op failed")
			result.Errors = append(result.Errors, &StepError{Step: i + 1, Op: op, Wrapped: err})
		}
		r.record(result, snapshot(i+1, op.String(), list, out, err))
	}

	result.Elapsed = time.Since(start)
	result.Final = list.ToArray()
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	r.logger.Info().
		Str("workload", w.Name).
		Int("ops", len(w.Ops)).
		Int("errors", len(result.Errors)).
		Int("size", list.Size()).
		Int("cap", list.Cap()).
		Dur("elapsed", result.Elapsed).
		Msg("workload complete")

	return result, nil
}

func (r *Runner) record(result *Result, s Snapshot) {
	for _, m := range r.metrics {
		m.Observe(s)
	}
	for _, obs := range r.observers {
		obs.OnStep(s)
	}
	result.Snapshots = append(result.Snapshots, s)
}

func snapshot(step int, op string, l *dynarray.List[string], out string, err error) Snapshot {
	s := Snapshot{
		Step:       step,
		Op:         op,
		Size:       l.Size(),
		Cap:        l.Cap(),
		Generation: l.Generation(),
		Output:     out,
	}
	if err != nil {
		s.Err = err.Error()
	}
	return s
}
