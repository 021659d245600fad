package suite

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/weiihann/contbench/harness"
	"github.com/weiihann/contbench/report"
)

// Runner opens one graph per benchmark and element type and sweeps every
// series of it into the collector.
type Runner struct {
	h         *harness.Harness
	collector *report.Collector
	logger    *slog.Logger
	seed      int64
	scale     float64
}

// NewRunner creates a Runner reporting into collector. opts configure the
// underlying harness.
func NewRunner(
	collector *report.Collector,
	cfg Config,
	logger *slog.Logger,
	opts ...harness.Option,
) *Runner {
	logger = logger.With(slog.String("component", "suite"))

	opts = append([]harness.Option{harness.WithLogger(logger)}, opts...)

	return &Runner{
		h:         harness.New(collector, opts...),
		collector: collector,
		logger:    logger,
		seed:      cfg.Seed,
		scale:     cfg.Scale,
	}
}

// Run runs every benchmark for every type, benchmarks outermost. It stops
// between graphs once ctx is done. A benchmark a type cannot run is
// skipped without a graph.
func (r *Runner) Run(ctx context.Context, benchmarks []Benchmark, types []Type) error {
	start := time.Now()
	graphs := 0

	for _, b := range benchmarks {
		for _, t := range types {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("run stopped before %s/%s: %w", b.Name, t.Name, err)
			}

			if !t.Runs(b) {
				r.logger.DebugContext(ctx, "skipping",
					slog.String("benchmark", b.Name),
					slog.String("type", t.Name),
				)

				continue
			}

			r.runGraph(ctx, b, t)
			graphs++
		}
	}

	r.logger.InfoContext(ctx, "run complete",
		slog.Int("graphs", graphs),
		slog.Duration("elapsed", time.Since(start)),
	)

	return nil
}

func (r *Runner) runGraph(ctx context.Context, b Benchmark, t Type) {
	r.collector.NewGraph(
		report.Tag(b.Name+"_"+t.Name),
		report.Title(b.Name, t.Name, uint64(t.Size)),
		b.Unit,
	)

	s := sweep{
		h:     r.h,
		unit:  b.Unit,
		sizes: Scaled(b.Sizes, r.scale),
		seed:  r.seed,
		small: t.Small,
	}

	start := time.Now()

	t.benches[b.Name](s)

	r.logger.InfoContext(ctx, "graph complete",
		slog.String("benchmark", b.Name),
		slog.String("type", t.Name),
		slog.Duration("elapsed", time.Since(start)),
	)
}
