// Package randfill produces uniformly distributed random values for exercising
// and benchmarking the sorting algorithms.
//
// Generate draws from a freshly seeded source on every call, so results are not
// reproducible. When a benchmark needs to be repeatable, create a Generator with
// a fixed seed and use GenerateWith or Fill.
package randfill

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/amp-labs/amp-sorting/sorting"
)

var (
	ErrNegativeCount = errors.New("count must not be negative")
	ErrInvalidRange  = errors.New("min must not be greater than max")
)

// Integer is the set of integer element types Generate can produce.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of floating point element types Generate can produce.
type Float interface {
	~float32 | ~float64
}

// Number is every element type Generate can produce.
type Number interface {
	Integer | Float
}

// Generator is a source of uniformly distributed values. It is safe for
// concurrent use.
type Generator struct {
	mut  sync.Mutex
	seed uint64
	rng  *rand.Rand
}

// NewGenerator returns a Generator seeded with seed. A zero seed picks a random
// one, which Seed reports afterwards so a run can be reproduced.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = rand.Uint64() | 1
	}

	return &Generator{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), //nolint:gosec // not used for secrets
	}
}

// Seed returns the seed the Generator was created with.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Generate returns count values drawn independently and uniformly from
// [min, max]. Floating point draws reach max only through rounding.
// Every call uses a new, randomly seeded source.
func Generate[T Number](count int, minVal, maxVal T) ([]T, error) {
	return GenerateWith(NewGenerator(0), count, minVal, maxVal)
}

// GenerateWith is Generate drawing from gen.
func GenerateWith[T Number](gen *Generator, count int, minVal, maxVal T) ([]T, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}

	if err := checkRange(minVal, maxVal); err != nil {
		return nil, err
	}

	out := make([]T, count)

	gen.mut.Lock()
	defer gen.mut.Unlock()

	for i := range out {
		out[i] = draw(gen.rng, minVal, maxVal)
	}

	return out, nil
}

// Fill overwrites every element of seq with a value drawn from gen. It works
// with fixed buffers and vectors alike; the length of seq is not changed.
func Fill[T Number](gen *Generator, seq sorting.Sequence[T], minVal, maxVal T) error {
	if err := checkRange(minVal, maxVal); err != nil {
		return err
	}

	gen.mut.Lock()
	defer gen.mut.Unlock()

	for i := range seq.Len() {
		seq.Set(i, draw(gen.rng, minVal, maxVal))
	}

	return nil
}

func checkRange[T Number](minVal, maxVal T) error {
	// Written this way round so NaN bounds are rejected too.
	if !(minVal <= maxVal) { //nolint:staticcheck
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, minVal, maxVal)
	}

	return nil
}

func isInteger[T Number]() bool {
	var one T = 1

	return one/2 == 0
}

func draw[T Number](rng *rand.Rand, lo, hi T) T { //nolint:ireturn
	if isInteger[T]() {
		// Two's complement arithmetic keeps this correct for unsigned types
		// above math.MaxInt64 as well.
		span := uint64(int64(hi) - int64(lo))

		var offset uint64
		if span == math.MaxUint64 {
			offset = rng.Uint64()
		} else {
			offset = rng.Uint64N(span + 1)
		}

		return T(int64(lo) + int64(offset)) //nolint:gosec
	}

	r := rng.Float64()

	// Interpolating avoids overflowing hi-lo on very wide ranges. Rounding
	// can step just outside [lo, hi], so the result is clamped.
	return min(max(T(float64(lo)*(1-r)+float64(hi)*r), lo), hi)
}
