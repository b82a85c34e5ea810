// Package sortingtest checks that a sorting.Sorter behaves like a sort. For
// every input, in both directions and for both sequence kinds, the output
// must be ordered and a permutation of the input, and sorting it again must
// change nothing.
//
//	func TestMySorter(t *testing.T) {
//	    sortingtest.Conformance(t, mySorter)
//	}
//
// Random inputs use a fresh seed per call, logged so a failure can be replayed
// with SORTING_TEST_SEED. Large inputs only run with SORTING_LONG_TESTS=true.
package sortingtest

import (
	"context"
	"fmt"
	"slices"
	"testing"

	"github.com/amp-labs/amp-sorting/envutil"
	"github.com/amp-labs/amp-sorting/randfill"
	"github.com/amp-labs/amp-sorting/sorting"
	"github.com/amp-labs/amp-sorting/verify"
	"github.com/google/uuid"
)

const (
	SeedKey      = "SORTING_TEST_SEED"
	LongTestsKey = "SORTING_LONG_TESTS"
)

type contextKey string

const runIdKey contextKey = "runId"

// Case is a named input.
type Case struct {
	Name   string
	Values []int
}

// NewContext returns t.Context() tagged with a unique id for this run,
// which Conformance includes in its log output.
func NewContext(t *testing.T) context.Context {
	t.Helper()

	return context.WithValue(t.Context(), runIdKey, "sortingtest-"+uuid.NewString())
}

// RunId returns the id stored by NewContext.
func RunId(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIdKey).(string)

	return id, ok
}

// CheckSkipped skips t unless envKey reads as true.
func CheckSkipped(ctx context.Context, t *testing.T, envKey string) {
	t.Helper()

	if !envutil.Bool(ctx, envKey, envutil.Default(false)).ValueOrElse(false) {
		t.Skipf("skipping: set %s=true to run", envKey)
	}
}

// Cases returns the inputs Conformance runs: the edge cases every sort must
// handle plus random inputs drawn from gen.
func Cases(ctx context.Context, gen *randfill.Generator) ([]Case, error) {
	cases := []Case{
		{Name: "empty", Values: []int{}},
		{Name: "single", Values: []int{7}},
		{Name: "pair", Values: []int{2, 1}},
		{Name: "sorted", Values: []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{Name: "reversed", Values: []int{8, 7, 6, 5, 4, 3, 2, 1}},
		{Name: "equal", Values: []int{4, 4, 4, 4, 4}},
		{Name: "sawtooth", Values: []int{3, 1, 2, 3, 1, 2, 3, 1, 2}},
		{Name: "negative", Values: []int{0, -3, 5, -3, -10, 2}},
		{Name: "odd", Values: []int{5, 3, 8, 1, 9, 2, 7}},
	}

	sizes := []int{17, 100, 257}

	if envutil.Bool(ctx, LongTestsKey, envutil.Default(false)).ValueOrElse(false) {
		sizes = append(sizes, 2000, 4099) //nolint:mnd
	}

	for _, n := range sizes {
		values, err := randfill.GenerateWith(gen, n, -n/4, n/4) //nolint:mnd
		if err != nil {
			return nil, fmt.Errorf("random-%d: %w", n, err)
		}

		cases = append(cases, Case{Name: fmt.Sprintf("random-%d", n), Values: values})
	}

	return cases, nil
}

// Conformance runs sorter against Cases in both directions, on a Buffer and
// on a Vector, as parallel subtests.
func Conformance(t *testing.T, sorter sorting.Sorter[int]) {
	t.Helper()

	ctx := NewContext(t)
	seed := envutil.Uint[uint64](ctx, SeedKey, envutil.Default[uint64](0)).ValueOrElse(0)
	gen := randfill.NewGenerator(seed)

	runId, _ := RunId(ctx)
	t.Logf("%s: %s=%d", runId, SeedKey, gen.Seed())

	cases, err := Cases(ctx, gen)
	if err != nil {
		t.Fatalf("building cases: %v", err)
	}

	for _, tc := range cases {
		for _, dir := range []sorting.Direction{sorting.Ascending, sorting.Descending} {
			t.Run(fmt.Sprintf("%s/%s/%s", sorter.Algorithm(), tc.Name, dir), func(t *testing.T) {
				t.Parallel()

				check(t, sorter, sorting.NewBuffer(slices.Clone(tc.Values)), dir)
				check(t, sorter, sorting.NewVector(tc.Values...), dir)
			})
		}
	}
}

type valued interface {
	sorting.Sequence[int]
	Values() []int
}

func check(t *testing.T, sorter sorting.Sorter[int], seq valued, dir sorting.Direction) {
	t.Helper()

	before := verify.Fingerprint[int](seq)

	sorter.Sort(seq, dir)

	got := seq.Values()

	if !slices.IsSortedFunc(got, orderOf(dir)) {
		t.Errorf("%T not in %s order: %v", seq, dir, got)
	}

	if err := verify.Permutation(before, seq); err != nil {
		t.Errorf("%T: %v", seq, err)
	}

	once := slices.Clone(got)

	sorter.Sort(seq, dir)

	if !slices.Equal(once, seq.Values()) {
		t.Errorf("%T: sorting twice changed the result: %v then %v", seq, once, seq.Values())
	}
}

func orderOf(dir sorting.Direction) func(a, b int) int {
	if dir == sorting.Descending {
		return func(a, b int) int { return b - a }
	}

	return func(a, b int) int { return a - b }
}
