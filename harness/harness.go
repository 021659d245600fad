package harness

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"
)

// Harness carries what every sweep shares: where results go, how time is
// read, and how many trials are averaged.
type Harness struct {
	sink   Sink
	clock  Clock
	repeat int
	logger *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(h *Harness) { h.clock = c }
}

// WithRepeat overrides the number of trials per size.
func WithRepeat(n int) Option {
	return func(h *Harness) { h.repeat = n }
}

// WithLogger sets the logger used for per-result debug records.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) { h.logger = l }
}

// New creates a Harness reporting into sink.
func New(sink Sink, opts ...Option) *Harness {
	h := &Harness{
		sink:   sink,
		clock:  wallClock{},
		repeat: Repeat,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(h)
	}

	if h.sink == nil {
		panic("harness: nil sink")
	}

	if h.repeat <= 0 {
		panic(fmt.Sprintf("harness: repeat must be positive, got %d", h.repeat))
	}

	return h
}

// Repeat returns the number of trials averaged per size.
func (h *Harness) Repeat() int { return h.repeat }

// Bench sweeps sizes in the given order. For every size it runs Repeat
// trials; a trial makes a fresh container with create and times ops
// applied in order. Each trial's elapsed time is truncated to unit before
// it is summed, and the sum is divided by the trial count with integer
// division. One result per size goes to the sink under series label.
// create.Clean runs once the sweep is done.
//
// A panic raised by a policy propagates to the caller; a failed trial
// invalidates the whole sweep.
func Bench[C any](
	h *Harness,
	label string,
	unit time.Duration,
	sizes []int,
	create Creator[C],
	ops ...Operation[C],
) {
	if unit <= 0 {
		panic(fmt.Sprintf("harness: non-positive unit %v", unit))
	}

	if create == nil {
		panic("harness: nil create policy")
	}

	for _, size := range sizes {
		if size <= 0 {
			panic(fmt.Sprintf("harness: non-positive size %d", size))
		}
	}

	chain := Chain[C](ops)

	for _, size := range sizes {
		var total uint64

		for range h.repeat {
			container := create.Make(size)

			t0 := h.clock.Now()
			chain.Run(container, size)
			t1 := h.clock.Now()

			if elapsed := t1.Sub(t0); elapsed > 0 {
				total += uint64(elapsed / unit)
			}
		}

		value := total / uint64(h.repeat)
		group := strconv.Itoa(size)

		h.logger.Debug("result",
			slog.String("series", label),
			slog.String("group", group),
			slog.Uint64("value", value),
		)

		h.sink.AddResult(label, group, value)
	}

	create.Clean()
}
