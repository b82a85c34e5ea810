// Package benchmark times the sorting algorithms against a shared random
// dataset, counting the work each one does and checking its output.
package benchmark

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/alitto/pond/v2"
	amperrors "github.com/amp-labs/amp-sorting/errors"
	"github.com/amp-labs/amp-sorting/logger"
	"github.com/amp-labs/amp-sorting/randfill"
	"github.com/amp-labs/amp-sorting/sorting"
	"github.com/amp-labs/amp-sorting/spans"
	"github.com/amp-labs/amp-sorting/verify"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"
)

// Runner executes benchmark runs. Its progress counters accumulate across
// runs and may be read from any goroutine while a run is in flight.
type Runner struct {
	completed *atomic.Int64
	failed    *atomic.Int64
	progress  func(done, total int)
}

// Option configures a Runner.
type Option func(*Runner)

// WithProgress registers f to be called after every measurement with the
// number finished so far in the current run. It may be called concurrently.
func WithProgress(f func(done, total int)) Option {
	return func(r *Runner) {
		r.progress = f
	}
}

// NewRunner creates a Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		completed: atomic.NewInt64(0),
		failed:    atomic.NewInt64(0),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Completed returns the number of measurements taken by r.
func (r *Runner) Completed() int64 {
	return r.completed.Load()
}

// Failed returns the number of measurements whose output failed verification.
func (r *Runner) Failed() int64 {
	return r.failed.Load()
}

type job struct {
	algorithm sorting.Algorithm
	iteration int
}

// Run generates one dataset from cfg and sorts a private copy of it with
// every selected algorithm, cfg.Repeat times each, at most cfg.Concurrency
// sorts at a time. Each sort call is itself single-threaded.
//
// Cancellation is observed between measurements: a sort that has started
// always finishes. When ctx is canceled the partial report is returned along
// with the context error. Verification failures do not make Run fail; they are
// recorded on the measurements and summarized by Report.Err.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	runId := uuid.NewString()
	ctx = logger.WithRunId(ctx, runId)

	return spans.RunValue(ctx, "benchmark.run",
		func(ctx context.Context, span trace.Span) (*Report, error) {
			return r.run(ctx, span, runId, cfg)
		},
		spans.WithAttributes(
			attribute.String("run_id", runId),
			attribute.Int("size", cfg.Size),
			attribute.String("direction", cfg.Direction.String()),
			attribute.Int("repeat", cfg.Repeat),
			attribute.Int("concurrency", cfg.Concurrency),
		),
		spans.WithErrorMessage("benchmark run"),
	)
}

func (r *Runner) run(ctx context.Context, span trace.Span, runId string, cfg Config) (*Report, error) {
	log := logger.Get(ctx)

	gen := randfill.NewGenerator(cfg.Seed)

	data, err := randfill.GenerateWith(gen, cfg.Size, cfg.Min, cfg.Max)
	if err != nil {
		return nil, fmt.Errorf("generating dataset: %w", err)
	}

	span.SetAttributes(attribute.String("seed", strconv.FormatUint(gen.Seed(), 10)))

	report := &Report{
		RunId:     runId,
		Seed:      gen.Seed(),
		Config:    cfg,
		StartedAt: time.Now(),
		Input:     verify.Fingerprint[int64](sorting.NewBuffer(data)),
	}

	jobs := make([]job, 0, len(cfg.Algorithms)*cfg.Repeat)

	for _, alg := range cfg.Algorithms {
		for it := 1; it <= cfg.Repeat; it++ {
			jobs = append(jobs, job{algorithm: alg, iteration: it})
		}
	}

	log.Info("starting benchmark",
		"size", cfg.Size,
		"seed", report.Seed,
		"direction", cfg.Direction,
		"measurements", len(jobs),
		"concurrency", cfg.Concurrency)

	results := make([]*Measurement, len(jobs))
	done := atomic.NewInt64(0)

	pool := pond.NewPool(cfg.Concurrency)
	defer pool.StopAndWait()

	tasks := make([]pond.Task, 0, len(jobs))

	for i, j := range jobs {
		tasks = append(tasks, pool.Submit(func() {
			results[i] = r.measure(ctx, j, data, report.Input, cfg)

			if r.progress != nil && results[i] != nil {
				r.progress(int(done.Inc()), len(jobs))
			}
		}))
	}

	var errs amperrors.Collection

	for _, task := range tasks {
		errs.Add(task.Wait())
	}

	for _, m := range results {
		if m != nil {
			report.Measurements = append(report.Measurements, *m)
		}
	}

	report.Elapsed = time.Since(report.StartedAt)

	if err := errs.GetError(); err != nil {
		return report, fmt.Errorf("measurement failed: %w", err)
	}

	if err := ctx.Err(); err != nil {
		log.Warn("benchmark canceled",
			"completed", len(report.Measurements),
			"planned", len(jobs))

		return report, err
	}

	log.Info("benchmark complete",
		"elapsed", report.Elapsed,
		"failures", report.Failures())

	return report, nil
}

// measure sorts a copy of data once. It returns nil if ctx was canceled
// before the sort began.
func (r *Runner) measure(
	ctx context.Context, j job, data []int64, input verify.Digest, cfg Config,
) *Measurement {
	if ctx.Err() != nil {
		return nil
	}

	sorter := sorting.MustNew[int64](j.algorithm)
	seq := sorting.Clone[int64](sorting.NewBuffer(data))

	ctx = logger.With(ctx, "algorithm", j.algorithm.String(), "iteration", j.iteration)

	m, err := spans.RunValue(ctx, "benchmark.measure",
		func(ctx context.Context, span trace.Span) (*Measurement, error) {
			start := time.Now()
			stats := sorter.SortWithStats(seq, cfg.Direction)
			elapsed := time.Since(start)

			m := &Measurement{
				Algorithm: j.algorithm,
				Direction: cfg.Direction,
				Iteration: j.iteration,
				Size:      seq.Len(),
				Duration:  elapsed,
				Stats:     stats,
			}

			span.SetAttributes(
				attribute.Int64("comparisons", stats.Comparisons),
				attribute.Int64("swaps", stats.Swaps),
				attribute.Int64("writes", stats.Writes),
			)

			if cfg.Verify {
				err := verify.Check[int64](sorter, input, seq, cfg.Direction)
				m.Verified = err == nil

				if err != nil {
					m.Error = err.Error()

					return m, logger.AnnotateError(err,
						"size", seq.Len(),
						"direction", cfg.Direction.String())
				}
			}

			return m, nil
		},
		spans.WithAttributes(
			attribute.String("algorithm", j.algorithm.String()),
			attribute.Int("iteration", j.iteration),
		),
		spans.WithErrorMessage("verification"),
	)

	r.completed.Inc()

	if err != nil {
		r.failed.Inc()
		logger.Get(ctx).Error("sort output failed verification", "error", err)
	} else {
		logger.Get(ctx).Debug("measurement taken",
			"duration", m.Duration,
			"comparisons", m.Stats.Comparisons)
	}

	observe(m)

	return m
}
