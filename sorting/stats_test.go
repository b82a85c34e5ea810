package sorting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_Bubble(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []int
		dir      Direction
		expected Stats
	}{
		{
			name:     "already sorted stops after one pass",
			input:    []int{1, 2, 3, 4, 5},
			dir:      Ascending,
			expected: Stats{Comparisons: 4, Passes: 1},
		},
		{
			name:     "already sorted descending stops after one pass",
			input:    []int{9, 7, 7, 2},
			dir:      Descending,
			expected: Stats{Comparisons: 3, Passes: 1},
		},
		{
			name:     "one inversion needs a confirming pass",
			input:    []int{2, 1, 3, 4, 5},
			dir:      Ascending,
			expected: Stats{Comparisons: 7, Swaps: 1, Passes: 2},
		},
		{
			name:     "reversed input",
			input:    []int{5, 4, 3, 2, 1},
			dir:      Ascending,
			expected: Stats{Comparisons: 10, Swaps: 10, Passes: 4},
		},
		{
			name:     "equal neighbours never swap",
			input:    []int{3, 3, 3},
			dir:      Descending,
			expected: Stats{Comparisons: 2, Passes: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stats := MustNew[int](Bubble).SortWithStats(NewBuffer(tt.input), tt.dir)

			assert.Equal(t, tt.expected, stats)
		})
	}
}

func TestStats_Insertion(t *testing.T) {
	t.Parallel()

	sorter := MustNew[int](Insertion)

	sorted := sorter.SortWithStats(NewBuffer([]int{1, 2, 3, 4, 5}), Ascending)
	assert.Equal(t, Stats{Comparisons: 4, Passes: 4}, sorted)

	reversed := sorter.SortWithStats(NewBuffer([]int{5, 4, 3, 2, 1}), Ascending)
	assert.Equal(t, Stats{Comparisons: 10, Writes: 14, Passes: 4}, reversed)
}

func TestStats_Selection(t *testing.T) {
	t.Parallel()

	sorter := MustNew[int](Selection)

	sorted := sorter.SortWithStats(NewBuffer([]int{1, 2, 3, 4, 5}), Ascending)
	assert.Equal(t, Stats{Comparisons: 10, Passes: 4}, sorted)

	reversed := sorter.SortWithStats(NewBuffer([]int{5, 4, 3, 2, 1}), Ascending)
	assert.Equal(t, int64(10), reversed.Comparisons)
	assert.LessOrEqual(t, reversed.Swaps, int64(4))
}

func TestStats_Merge(t *testing.T) {
	t.Parallel()

	stats := MustNew[int](Merge).SortWithStats(NewBuffer([]int{1, 2, 3, 4, 5, 6, 7, 8}), Ascending)

	assert.Equal(t, Stats{Comparisons: 12, Writes: 24, Passes: 3}, stats)
}

func TestStats_TrivialInputs(t *testing.T) {
	t.Parallel()

	for _, alg := range Algorithms() {
		sorter := MustNew[int](alg)

		assert.Equal(t, Stats{}, sorter.SortWithStats(NewBuffer([]int{}), Ascending), alg.String())
		assert.Equal(t, Stats{}, sorter.SortWithStats(NewVector(1), Descending), alg.String())
	}
}

func TestStats_Add(t *testing.T) {
	t.Parallel()

	a := Stats{Comparisons: 1, Swaps: 2, Writes: 3, Passes: 4}
	b := Stats{Comparisons: 10, Swaps: 20, Writes: 30, Passes: 40}

	assert.Equal(t, Stats{Comparisons: 11, Swaps: 22, Writes: 33, Passes: 44}, a.Add(b))
}
