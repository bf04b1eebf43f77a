package workload

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type BenchResult struct {
	Generator string
	Ops       int
	Errors    int
	Final     Snapshot
	Elapsed   time.Duration
	Metrics   map[string]float64
}

// Bench runs each generator concurrently, every run on its own list and
// runner. newMetrics is called once per run.
func Bench(ctx context.Context, logger zerolog.Logger, registry *Registry, generators []string, count int, seed int64, newMetrics func() []Metric) ([]BenchResult, error) {
	results := make([]BenchResult, len(generators))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range generators {
		g.Go(func() error {
			w, err := registry.Generate(name, count, seed, DefaultInitialCapacity)
			if err != nil {
				return err
			}

			runner := New(logger.With().Str("generator", name).Logger())
			if newMetrics != nil {
				for _, m := range newMetrics() {
					runner.AddMetric(m)
				}
			}

			res, err := runner.Run(ctx, w)
			if err != nil {
				return err
			}

			results[i] = BenchResult{
				Generator: name,
				Ops:       len(w.Ops),
				Errors:    len(res.Errors),
				Final:     res.Snapshots[len(res.Snapshots)-1],
				Elapsed:   res.Elapsed,
				Metrics:   res.Metrics,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
