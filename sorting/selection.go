package sorting

import "github.com/amp-labs/amp-sorting/compare"

// selectionSort moves the extremal element of the unsorted suffix into place
// once per position. The comparison is strict so the first extremum seen wins
// and ties never cause a swap.
func selectionSort[T any](seq Sequence[T], before compare.LessFunc[T], stats *Stats) {
	n := seq.Len()

	for i := 0; i < n-1; i++ {
		stats.Passes++

		extreme := i

		for j := i + 1; j < n; j++ {
			stats.Comparisons++

			if before(seq.At(j), seq.At(extreme)) {
				extreme = j
			}
		}

		if extreme != i {
			seq.Swap(i, extreme)
			stats.Swaps++
		}
	}
}
