package benchmark

import (
	"context"
	"testing"

	"github.com/amp-labs/amp-sorting/logger"
	"github.com/amp-labs/amp-sorting/sorting"
	"github.com/amp-labs/amp-sorting/spans"
	"github.com/neilotoole/slogt"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/atomic"
)

func testContext(t *testing.T) context.Context {
	t.Helper()

	return logger.WithLogger(t.Context(), slogt.New(t))
}

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Size = 200
	cfg.Min = -50
	cfg.Max = 50
	cfg.Seed = 42

	return cfg
}

func TestRun_AllAlgorithmsVerified(t *testing.T) {
	t.Parallel()

	cfg := smallConfig()
	cfg.Repeat = 2
	cfg.Concurrency = 3

	runner := NewRunner()

	report, err := runner.Run(testContext(t), cfg)
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.NotEmpty(t, report.RunId)
	assert.Equal(t, uint64(42), report.Seed)
	assert.Equal(t, 200, report.Input.Count)
	require.Len(t, report.Measurements, 8)

	algorithms := sorting.Algorithms()

	for i, m := range report.Measurements {
		assert.Equal(t, algorithms[i/2], m.Algorithm, m.Name())
		assert.Equal(t, i%2+1, m.Iteration, m.Name())
		assert.Equal(t, 200, m.Size)
		assert.True(t, m.Verified, m.Name())
		assert.Empty(t, m.Error)
		assert.Positive(t, m.Stats.Comparisons)
	}

	assert.Zero(t, report.Failures())
	require.NoError(t, report.Err())
	assert.Equal(t, int64(8), runner.Completed())
	assert.Zero(t, runner.Failed())
}

func TestRun_SameSeedSameWork(t *testing.T) {
	t.Parallel()

	cfg := smallConfig()
	cfg.Direction = sorting.Descending

	first, err := NewRunner().Run(testContext(t), cfg)
	require.NoError(t, err)

	second, err := NewRunner().Run(testContext(t), cfg)
	require.NoError(t, err)

	assert.NotEqual(t, first.RunId, second.RunId)
	assert.Equal(t, first.Input, second.Input)
	require.Len(t, second.Measurements, len(first.Measurements))

	for i := range first.Measurements {
		assert.Equal(t, first.Measurements[i].Stats, second.Measurements[i].Stats,
			first.Measurements[i].Name())
	}
}

func TestRun_RandomSeedIsReported(t *testing.T) {
	t.Parallel()

	cfg := smallConfig()
	cfg.Seed = 0
	cfg.Algorithms = []sorting.Algorithm{sorting.Insertion}

	report, err := NewRunner().Run(testContext(t), cfg)
	require.NoError(t, err)
	assert.NotZero(t, report.Seed)
}

func TestRun_ConstantDataset(t *testing.T) {
	t.Parallel()

	cfg := smallConfig()
	cfg.Min = 5
	cfg.Max = 5
	cfg.Algorithms = []sorting.Algorithm{sorting.Bubble, sorting.Selection}

	report, err := NewRunner().Run(testContext(t), cfg)
	require.NoError(t, err)
	require.Len(t, report.Measurements, 2)

	bubble := report.Measurements[0]
	assert.Equal(t, sorting.Bubble, bubble.Algorithm)
	assert.Equal(t, int64(1), bubble.Stats.Passes)
	assert.Zero(t, bubble.Stats.Swaps)
	assert.Equal(t, int64(cfg.Size-1), bubble.Stats.Comparisons)

	assert.Zero(t, report.Measurements[1].Stats.Swaps)
}

func TestRun_EmptyDataset(t *testing.T) {
	t.Parallel()

	cfg := smallConfig()
	cfg.Size = 0

	report, err := NewRunner().Run(testContext(t), cfg)
	require.NoError(t, err)
	require.Len(t, report.Measurements, len(sorting.Algorithms()))

	for _, m := range report.Measurements {
		assert.True(t, m.Verified)
		assert.Equal(t, sorting.Stats{}, m.Stats)
	}
}

func TestRun_VerifyDisabled(t *testing.T) {
	t.Parallel()

	cfg := smallConfig()
	cfg.Verify = false

	report, err := NewRunner().Run(testContext(t), cfg)
	require.NoError(t, err)

	for _, m := range report.Measurements {
		assert.False(t, m.Verified)
		assert.Empty(t, m.Error)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := smallConfig()
	cfg.Min = 10
	cfg.Max = 1
	cfg.Repeat = 0

	report, err := NewRunner().Run(testContext(t), cfg)
	require.Error(t, err)
	assert.Nil(t, report)
	require.ErrorIs(t, err, ErrInvalidRange)
	require.ErrorIs(t, err, ErrInvalidRepeat)
}

func TestRun_CanceledBeforeStart(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(testContext(t))
	cancel()

	runner := NewRunner()

	report, err := runner.Run(ctx, smallConfig())
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	assert.Empty(t, report.Measurements)
	assert.Zero(t, runner.Completed())
}

func TestRun_CancelBetweenMeasurements(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(testContext(t))
	defer cancel()

	// With one worker the measurements run in order, so canceling after the
	// first one finishes leaves the rest unstarted.
	runner := NewRunner(WithProgress(func(done, _ int) {
		if done == 1 {
			cancel()
		}
	}))

	report, err := runner.Run(ctx, smallConfig())
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, report.Measurements, 1)
	assert.Equal(t, sorting.Selection, report.Measurements[0].Algorithm)
	assert.True(t, report.Measurements[0].Verified)
}

func TestRun_Progress(t *testing.T) {
	t.Parallel()

	cfg := smallConfig()
	cfg.Repeat = 3
	cfg.Concurrency = 4

	calls := atomic.NewInt64(0)
	highest := atomic.NewInt64(0)

	runner := NewRunner(WithProgress(func(done, total int) {
		assert.Equal(t, 12, total)

		calls.Inc()

		for {
			cur := highest.Load()
			if int64(done) <= cur || highest.CompareAndSwap(cur, int64(done)) {
				break
			}
		}
	}))

	_, err := runner.Run(testContext(t), cfg)
	require.NoError(t, err)

	assert.Equal(t, int64(12), calls.Load())
	assert.Equal(t, int64(12), highest.Load())
}

func TestRun_Spans(t *testing.T) {
	t.Parallel()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
	})

	ctx := spans.WithTracer(testContext(t), tp.Tracer("test"))

	cfg := smallConfig()
	cfg.Algorithms = []sorting.Algorithm{sorting.Merge, sorting.Insertion}

	_, err := NewRunner().Run(ctx, cfg)
	require.NoError(t, err)

	recorded := exporter.GetSpans()
	require.Len(t, recorded, 3)

	run := recorded[len(recorded)-1]
	assert.Equal(t, "benchmark.run", run.Name)
	assert.Equal(t, codes.Ok, run.Status.Code)

	for _, s := range recorded[:2] {
		assert.Equal(t, "benchmark.measure", s.Name)
		assert.Equal(t, run.SpanContext.SpanID(), s.Parent.SpanID())
	}
}

func TestRun_Metrics(t *testing.T) { //nolint:paralleltest
	runs := sortRuns.WithLabelValues("bubble", "descending")
	comparisons := sortComparisons.WithLabelValues("bubble", "descending")

	runsBefore := testutil.ToFloat64(runs)
	comparisonsBefore := testutil.ToFloat64(comparisons)

	cfg := smallConfig()
	cfg.Algorithms = []sorting.Algorithm{sorting.Bubble}
	cfg.Direction = sorting.Descending
	cfg.Repeat = 2

	report, err := NewRunner().Run(testContext(t), cfg)
	require.NoError(t, err)

	var total int64
	for _, m := range report.Measurements {
		total += m.Stats.Comparisons
	}

	assert.InDelta(t, 2, testutil.ToFloat64(runs)-runsBefore, 0)
	assert.InDelta(t, float64(total), testutil.ToFloat64(comparisons)-comparisonsBefore, 0)
}
