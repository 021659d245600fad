// Package main provides the CLI entry point for contbench, a container
// micro-benchmark tool.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/weiihann/contbench/harness"
	"github.com/weiihann/contbench/report"
	"github.com/weiihann/contbench/suite"
)

func main() {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(logger, level)
	if err := root.ExecuteContext(ctx); err != nil {
		logger.Error("contbench failed", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger, level *slog.LevelVar) *cobra.Command {
	root := &cobra.Command{
		Use:   "contbench",
		Short: "Container micro-benchmark tool",
		Long: `Contbench compares vectors, lists, deques, intrusive lists and colonies
by timing fill, search, insert, erase, sort and destruction workloads over
a sweep of sizes and element types.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(logger, level))
	root.AddCommand(newListCmd())

	return root
}

func newRunCmd(logger *slog.Logger, level *slog.LevelVar) *cobra.Command {
	var (
		configPath  string
		benchmarks  []string
		types       []string
		scale       float64
		seed        int64
		outputJSON  bool
		outputPath  string
		metricsFile string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run container benchmarks",
		Long: `Run the selected benchmarks for the selected element types and print
one table per graph. Flags override the values of --config.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				level.Set(slog.LevelDebug)
			}

			cfg := suite.DefaultConfig()
			if configPath != "" {
				var err error

				cfg, err = suite.LoadConfig(configPath)
				if err != nil {
					return err
				}
			}

			flags := cmd.Flags()
			if flags.Changed("bench") {
				cfg.Benchmarks = benchmarks
			}
			if flags.Changed("types") {
				cfg.Types = types
			}
			if flags.Changed("scale") {
				cfg.Scale = scale
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if flags.Changed("json") {
				cfg.Output.JSON = outputJSON
			}
			if flags.Changed("output") {
				cfg.Output.Path = outputPath
			}
			if flags.Changed("metrics-file") {
				cfg.Output.MetricsFile = metricsFile
			}

			return runBenchmarks(cmd.Context(), logger, cmd.OutOrStdout(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "",
		"Path to a YAML suite config")
	flags.StringSliceVar(&benchmarks, "bench", nil,
		"Benchmarks to run (default: all, see 'contbench list')")
	flags.StringSliceVar(&types, "types", nil,
		"Element types to run (default: "+strings.Join(suite.TypeNames(), ",")+")")
	flags.Float64Var(&scale, "scale", 1,
		"Multiplier applied to every benchmark size")
	flags.Int64Var(&seed, "seed", 0,
		"Seed for shuffled inputs and random keys")
	flags.BoolVar(&outputJSON, "json", false,
		"Output results as JSON instead of tables")
	flags.StringVar(&outputPath, "output", "",
		"Write results to this file instead of stdout")
	flags.StringVar(&metricsFile, "metrics-file", "",
		"Also write results as a Prometheus textfile")
	flags.BoolVarP(&verbose, "verbose", "v", false,
		"Log every result")

	return cmd
}

func runBenchmarks(
	ctx context.Context,
	logger *slog.Logger,
	stdout io.Writer,
	cfg suite.Config,
) error {
	benchmarks, types, err := cfg.Selected()
	if err != nil {
		return fmt.Errorf("select benchmarks: %w", err)
	}

	logger.InfoContext(ctx, "starting benchmarks",
		slog.Int("benchmarks", len(benchmarks)),
		slog.Int("types", len(types)),
		slog.Float64("scale", cfg.Scale),
		slog.Int64("seed", cfg.Seed),
		slog.Int("repeat", harness.Repeat),
	)

	collector := report.NewCollector()
	runner := suite.NewRunner(collector, cfg, logger)

	if err := runner.Run(ctx, benchmarks, types); err != nil {
		return fmt.Errorf("run benchmarks: %w", err)
	}

	return collector.Flush(func(graphs []report.Graph) error {
		return writeResults(ctx, logger, stdout, cfg.Output, graphs)
	})
}

func writeResults(
	ctx context.Context,
	logger *slog.Logger,
	stdout io.Writer,
	out suite.Output,
	graphs []report.Graph,
) error {
	w := stdout

	if out.Path != "" {
		f, err := os.Create(out.Path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()

		w = f
	}

	if out.JSON {
		if err := report.GenerateJSON(w, report.NewRun(graphs, time.Now())); err != nil {
			return fmt.Errorf("generate JSON report: %w", err)
		}
	} else {
		if err := report.Generate(w, graphs); err != nil {
			return fmt.Errorf("generate report: %w", err)
		}
	}

	if out.MetricsFile != "" {
		if err := report.WriteMetrics(out.MetricsFile, graphs); err != nil {
			return err
		}

		logger.InfoContext(ctx, "metrics written",
			slog.String("path", out.MetricsFile))
	}

	logger.InfoContext(ctx, "results written", slog.Int("graphs", len(graphs)))

	return nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the benchmarks and element types",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printCatalogue(cmd.OutOrStdout())
		},
	}
}

func printCatalogue(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "BENCHMARK\tUNIT\tSIZES\tTYPES\tDESCRIPTION")

	for _, b := range suite.Benchmarks() {
		which := "all"
		if b.SmallOnly {
			which = "small"
		}

		fmt.Fprintf(tw, "%s\t%s\t%d..%d\t%s\t%s\n",
			b.Name,
			harness.UnitName(b.Unit),
			b.Sizes[0], b.Sizes[len(b.Sizes)-1],
			which,
			b.Description,
		)
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "TYPE\tBYTES\tSMALL")

	for _, t := range suite.Types() {
		fmt.Fprintf(tw, "%s\t%d\t%v\n", t.Name, t.Size, t.Small)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("print catalogue: %w", err)
	}

	return nil
}
