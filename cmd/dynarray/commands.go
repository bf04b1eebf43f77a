package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/dynarray/internal/config"
	"github.com/san-kum/dynarray/internal/export"
	"github.com/san-kum/dynarray/internal/metrics"
	"github.com/san-kum/dynarray/internal/optim"
	"github.com/san-kum/dynarray/internal/storage"
	"github.com/san-kum/dynarray/internal/tui"
	"github.com/san-kum/dynarray/internal/viz"
	"github.com/san-kum/dynarray/internal/workload"
)

// resolveWorkload picks the workload for the run command. Precedence is
// script argument, then config file script, then preset, then config, with
// changed flags overriding the generator settings.
func resolveWorkload(cmd *cobra.Command, args []string) (*workload.Workload, error) {
	wc := cfg.Workload
	flags := cmd.Flags()

	if flags.Changed("generator") {
		wc.Generator = generator
	}
	if preset != "" {
		p := config.GetPreset(wc.Generator, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(wc.Generator))
		}
		wc = *p
	}
	if flags.Changed("count") {
		wc.Count = count
	}
	if flags.Changed("seed") {
		wc.Seed = seed
	}
	if flags.Changed("capacity") {
		wc.InitialCapacity = capacity
	}

	path := wc.File
	if len(args) > 0 {
		path = args[0]
	}
	if path != "" {
		w, err := workload.Load(path)
		if err != nil {
			return nil, err
		}
		if flags.Changed("capacity") {
			w.InitialCapacity = capacity
		}
		return w, nil
	}

	return workload.NewRegistry().Generate(wc.Generator, wc.Count, wc.Seed, wc.InitialCapacity)
}

func runWorkload(cmd *cobra.Command, args []string) error {
	w, err := resolveWorkload(cmd, args)
	if err != nil {
		return err
	}
	return execute(w)
}

func execute(w *workload.Workload) error {
	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runner := workload.New(log.Logger)
	for _, m := range metrics.Defaults() {
		runner.AddMetric(m)
	}

	var renderer *tui.LiveRenderer
	if live {
		renderer = tui.NewLiveRenderer(os.Stdout, w.Name, frameRate)
		runner.AddObserver(renderer)
		renderer.Start()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running %s (%d ops)...\n", w.Name, len(w.Ops))
	result, err := runner.Run(ctx, w)
	if renderer != nil {
		renderer.Stop()
	}
	if err != nil {
		return fmt.Errorf("run %s: %w", w.Name, err)
	}

	runID, err := st.Save(w, result)
	if err != nil {
		return err
	}

	final := result.Snapshots[len(result.Snapshots)-1]
	fmt.Printf("completed in %v\n", result.Elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("ops: %d  errors: %d\n", len(w.Ops), len(result.Errors))
	fmt.Println(viz.RenderStats(final.Size, final.Cap, final.Generation))
	fmt.Println("\nmetrics:")
	for _, m := range metrics.Defaults() {
		fmt.Printf("  %s: %.4f\n", m.Name(), result.Metrics[m.Name()])
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.DataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWORKLOAD\tTIME\tOPS\tERRORS\tSIZE\tCAP")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
			run.ID,
			run.Workload,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Ops,
			run.Errors,
			run.FinalSize,
			run.FinalCap,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(cfg.DataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	if len(trace) < 2 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("workload: %s\n", meta.Workload)
	fmt.Printf("steps: %d\n\n", len(trace)-1)
	fmt.Println(viz.PlotTrace(trace, 80, 15))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.DataDir)
	data, err := st.Export(args[0])
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch strings.ToLower(format) {
	case "json":
		return storage.ExportJSON(out, data)
	case "msgpack":
		return storage.ExportMsgpack(out, data)
	case "svg":
		svg := export.TraceToSVG(data.Trace, 800, 400)
		if svg == "" {
			return fmt.Errorf("no data to draw")
		}
		_, err := io.WriteString(out, svg)
		return err
	}
	return fmt.Errorf("unknown format: %s (want json, msgpack or svg)", format)
}

func replayRun(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.DataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	w, err := st.LoadWorkload(args[0])
	if err != nil {
		return err
	}

	log.Info().Str("run", meta.ID).Int("size", meta.FinalSize).Int("cap", meta.FinalCap).Msg("replaying")
	return execute(w)
}

func benchGenerators(cmd *cobra.Command, args []string) error {
	registry := workload.NewRegistry()
	names := args
	if len(names) == 0 {
		names = registry.ListGenerators()
	}

	fmt.Printf("benchmarking %s (%d ops each)\n\n", strings.Join(names, ", "), count)
	results, err := workload.Bench(cmd.Context(), log.Logger, registry, names, count, seed, metrics.Defaults)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GENERATOR\tOPS\tERRORS\tSIZE\tCAP\tTIME\tOPS/SEC\tREALLOC\tPEAK_SLACK\tLOAD")

	for _, r := range results {
		opsPerSec := float64(r.Ops) / max(r.Elapsed.Seconds(), 1e-9)
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%v\t%.0f\t%.0f\t%.0f\t%.3f\n",
			r.Generator,
			r.Ops,
			r.Errors,
			r.Final.Size,
			r.Final.Cap,
			r.Elapsed,
			opsPerSec,
			r.Metrics["reallocations"],
			r.Metrics["peak_slack"],
			r.Metrics["load_factor"],
		)
	}

	return w.Flush()
}

func sweepCapacity(cmd *cobra.Command, args []string) error {
	gen := args[0]
	registry := workload.NewRegistry()

	search, err := optim.NewGridSearch(log.Logger, []string{"capacity"}, [][]int{capacities})
	if err != nil {
		return err
	}

	build := func(p map[string]int) (*workload.Workload, error) {
		return registry.Generate(gen, count, seed, p["capacity"])
	}

	best, points, err := search.Search(cmd.Context(), build, metrics.Defaults, metricName)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "CAPACITY\t%s\tERRORS\n", strings.ToUpper(metricName))
	for _, p := range points {
		fmt.Fprintf(w, "%d\t%.3f\t%d\n", p.Params["capacity"], p.Value, p.Errors)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nbest: capacity %d (%s %.3f)\n", best.Params["capacity"], metricName, best.Value)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	generators := config.ListGenerators()
	if len(args) > 0 {
		generators = args
	}

	for _, g := range generators {
		presets := config.ListPresets(g)
		if len(presets) == 0 {
			fmt.Printf("no presets for generator: %s\n", g)
			continue
		}
		fmt.Printf("presets for %s:\n", g)
		for _, p := range presets {
			wc := config.GetPreset(g, p)
			fmt.Printf("  %-10s count=%d capacity=%d seed=%d\n", p, wc.Count, wc.InitialCapacity, wc.Seed)
		}
	}
	return nil
}
