package sorting

import "github.com/amp-labs/amp-sorting/compare"

// bubbleSort swaps strictly out-of-order neighbours, shrinking the unsorted
// prefix by one each pass. A pass without a swap means the sequence is in
// order and ends the sort, which makes sorted input a single O(n) pass.
func bubbleSort[T any](seq Sequence[T], before compare.LessFunc[T], stats *Stats) {
	n := seq.Len()

	for i := 0; i < n-1; i++ {
		stats.Passes++

		swapped := false

		for j := 0; j < n-1-i; j++ {
			stats.Comparisons++

			if before(seq.At(j+1), seq.At(j)) {
				seq.Swap(j, j+1)
				stats.Swaps++

				swapped = true
			}
		}

		if !swapped {
			return
		}
	}
}
