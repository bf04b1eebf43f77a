package optim

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/san-kum/dynarray/internal/workload"
)

// Point is one evaluated grid cell.
type Point struct {
	Params map[string]int
	Value  float64
	Errors int
}

// GridSearch runs a workload for every combination of integer parameters
// and keeps the one minimising a metric.
type GridSearch struct {
	paramNames []string
	ranges     [][]int
	logger     zerolog.Logger
}

func NewGridSearch(logger zerolog.Logger, params []string, ranges [][]int) (*GridSearch, error) {
	if len(params) != len(ranges) {
		return nil, fmt.Errorf("%d params but %d ranges", len(params), len(ranges))
	}
	return &GridSearch{paramNames: params, ranges: ranges, logger: logger}, nil
}

// Search evaluates every cell in order. Cells whose build fails are skipped;
// a cancelled context stops the search and returns what was evaluated.
func (g *GridSearch) Search(
	ctx context.Context,
	build func(params map[string]int) (*workload.Workload, error),
	newMetrics func() []workload.Metric,
	metricName string,
) (Point, []Point, error) {
	best := Point{Value: math.Inf(1)}
	points := make([]Point, 0)

	err := g.searchRecursive(ctx, 0, make(map[string]int), build, newMetrics, metricName, &best, &points)
	if best.Params == nil && err == nil {
		err = fmt.Errorf("no grid cell produced %s", metricName)
	}
	return best, points, err
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]int,
	build func(map[string]int) (*workload.Workload, error),
	newMetrics func() []workload.Metric,
	metricName string,
	best *Point,
	points *[]Point,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if depth == len(g.paramNames) {
		w, err := build(current)
		if err != nil {
			g.logger.Debug().Interface("params", current).Err(err).Msg("skipping grid cell")
			return nil
		}

		runner := workload.New(g.logger)
		for _, m := range newMetrics() {
			runner.AddMetric(m)
		}
		result, err := runner.Run(ctx, w)
		if err != nil {
			return err
		}

		val, ok := result.Metrics[metricName]
		if !ok {
			return fmt.Errorf("unknown metric: %s", metricName)
		}

		p := Point{Params: copyParams(current), Value: val, Errors: len(result.Errors)}
		*points = append(*points, p)
		if val < best.Value {
			*best = p
		}
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		next := copyParams(current)
		next[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, next, build, newMetrics, metricName, best, points); err != nil {
			return err
		}
	}
	return nil
}

func copyParams(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
