package randfill

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/amp-labs/amp-sorting/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Floats(t *testing.T) {
	t.Parallel()

	values, err := Generate(1000, -5.0, 5.0)
	require.NoError(t, err)
	require.Len(t, values, 1000)

	for _, v := range values {
		assert.GreaterOrEqual(t, v, -5.0)
		assert.LessOrEqual(t, v, 5.0)
	}
}

// topSource makes rand.Float64 return its largest possible value.
type topSource struct{}

func (topSource) Uint64() uint64 { return math.MaxUint64 }

func TestDraw_FloatsStayInClosedRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		lo, hi float64
	}{
		{name: "unit", lo: 0, hi: 1},
		{name: "tenths", lo: 0.1, hi: 0.3},
		{name: "negative", lo: -7.7, hi: -1.1},
		{name: "degenerate", lo: 0.1, hi: 0.1},
		{name: "wide", lo: -math.MaxFloat64, hi: math.MaxFloat64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := draw(rand.New(topSource{}), tt.lo, tt.hi) //nolint:gosec
			assert.GreaterOrEqual(t, v, tt.lo)
			assert.LessOrEqual(t, v, tt.hi)
		})
	}

	assert.Equal(t, float32(0.3), draw(rand.New(topSource{}), float32(0.1), float32(0.3))) //nolint:gosec
}

func TestGenerate_IntegersCoverInclusiveRange(t *testing.T) {
	t.Parallel()

	values, err := Generate(2000, 1, 3)
	require.NoError(t, err)

	seen := map[int]int{}
	for _, v := range values {
		seen[v]++
	}

	assert.Len(t, seen, 3)
	assert.Positive(t, seen[1])
	assert.Positive(t, seen[3])
}

func TestGenerate_NarrowAndWideTypes(t *testing.T) {
	t.Parallel()

	t.Run("int8 full range", func(t *testing.T) {
		t.Parallel()

		values, err := Generate[int8](500, math.MinInt8, math.MaxInt8)
		require.NoError(t, err)
		assert.Len(t, values, 500)
	})

	t.Run("uint64 full range", func(t *testing.T) {
		t.Parallel()

		values, err := Generate[uint64](100, 0, math.MaxUint64)
		require.NoError(t, err)
		assert.Len(t, values, 100)
	})

	t.Run("uint64 high range", func(t *testing.T) {
		t.Parallel()

		lo := uint64(math.MaxUint64 - 10)

		values, err := Generate[uint64](200, lo, math.MaxUint64)
		require.NoError(t, err)

		for _, v := range values {
			assert.GreaterOrEqual(t, v, lo)
		}
	})

	t.Run("float32", func(t *testing.T) {
		t.Parallel()

		values, err := Generate[float32](200, 0, 1)
		require.NoError(t, err)

		for _, v := range values {
			assert.GreaterOrEqual(t, v, float32(0))
			assert.LessOrEqual(t, v, float32(1))
		}
	})

	t.Run("very wide float range", func(t *testing.T) {
		t.Parallel()

		values, err := Generate(200, -math.MaxFloat64, math.MaxFloat64)
		require.NoError(t, err)

		for _, v := range values {
			assert.False(t, math.IsInf(v, 0))
		}
	})
}

func TestGenerate_DegenerateRange(t *testing.T) {
	t.Parallel()

	values, err := Generate(5, 7, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 7, 7, 7, 7}, values)

	empty, err := Generate(0, 0.0, 1.0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	_, err := Generate(-1, 0, 1)
	require.ErrorIs(t, err, ErrNegativeCount)

	_, err = Generate(3, 10, 1)
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = Generate(3, math.NaN(), 1)
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestGenerator_SeedIsReproducible(t *testing.T) {
	t.Parallel()

	first, err := GenerateWith(NewGenerator(1234), 50, 0, 1_000_000)
	require.NoError(t, err)

	second, err := GenerateWith(NewGenerator(1234), 50, 0, 1_000_000)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, uint64(1234), NewGenerator(1234).Seed())
	assert.NotZero(t, NewGenerator(0).Seed())
}

func TestFill(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(99)

	var arr [16]int
	require.NoError(t, Fill[int](gen, sorting.NewBuffer(arr[:]), 100, 200))

	for _, v := range arr {
		assert.GreaterOrEqual(t, v, 100)
		assert.LessOrEqual(t, v, 200)
	}

	vec := sorting.NewVector(make([]float64, 8)...)
	require.NoError(t, Fill[float64](gen, vec, 1, 2))
	assert.Equal(t, 8, vec.Len())

	require.ErrorIs(t, Fill[int](gen, sorting.NewVector(1, 2), 5, 4), ErrInvalidRange)
}
