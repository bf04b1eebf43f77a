package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"github.com/spf13/cobra"

	"github.com/san-kum/dynarray/internal/config"
	"github.com/san-kum/dynarray/internal/tui"
)

var (
	dataDir    string
	logLevel   string
	configFile string

	generator string
	preset    string
	count     int
	seed      int64
	capacity  int
	live      bool
	frameRate int

	format  string
	outPath string

	capacities []int
	metricName string

	cfg *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "dynarray",
		Short:             "growable array workbench",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunREPL(cfg.Workload.InitialCapacity)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	runCmd := &cobra.Command{
		Use:   "run [workload.yaml]",
		Short: "run a workload script or a generated workload",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWorkload,
	}
	runCmd.Flags().StringVar(&generator, "generator", config.DefaultGenerator, "workload generator")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset for the generator")
	runCmd.Flags().IntVar(&count, "count", config.DefaultCount, "number of generated ops")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	runCmd.Flags().IntVar(&capacity, "capacity", config.DefaultCapacity, "initial capacity")
	runCmd.Flags().BoolVar(&live, "live", false, "show a live dashboard while running")
	runCmd.Flags().IntVar(&frameRate, "fps", 30, "live dashboard frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot size and capacity of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a run as json, msgpack or svg",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&format, "format", "json", "json, msgpack or svg")
	exportCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	replayCmd := &cobra.Command{
		Use:   "replay [run_id]",
		Short: "rerun the workload stored with a run",
		Args:  cobra.ExactArgs(1),
		RunE:  replayRun,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [generator...]",
		Short: "run generators concurrently and compare",
		RunE:  benchGenerators,
	}
	benchCmd.Flags().IntVar(&count, "count", config.DefaultCount, "ops per generator")
	benchCmd.Flags().Int64Var(&seed, "seed", 0, "random seed")

	sweepCmd := &cobra.Command{
		Use:   "sweep [generator]",
		Short: "search initial capacities for the lowest metric value",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepCapacity,
	}
	sweepCmd.Flags().IntSliceVar(&capacities, "capacities", []int{0, 10, 100, 1000}, "initial capacities to try")
	sweepCmd.Flags().StringVar(&metricName, "metric", "reallocations", "metric to minimise")
	sweepCmd.Flags().IntVar(&count, "count", config.DefaultCount, "ops per run")
	sweepCmd.Flags().Int64Var(&seed, "seed", 0, "random seed")

	presetsCmd := &cobra.Command{
		Use:   "presets [generator]",
		Short: "list workload presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "interactive list shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("capacity") {
				cfg.Workload.InitialCapacity = capacity
			}
			return tui.RunREPL(cfg.Workload.InitialCapacity)
		},
	}
	replCmd.Flags().IntVar(&capacity, "capacity", config.DefaultCapacity, "initial capacity")

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, replayCmd, benchCmd, sweepCmd, presetsCmd, replCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the config file, applies persistent flag overrides and
// configures the global logger.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	log.Debug().Str("data", cfg.DataDir).Str("config", configFile).Msg("config loaded")
	return nil
}
