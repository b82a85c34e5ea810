package sorting

import "github.com/amp-labs/amp-sorting/compare"

// mergeSort is the iterative bottom-up merge sort. Runs of width 1, 2, 4, ...
// are merged pairwise until a single run covers the sequence. The bounds are
// clamped to n-1 so the trailing partial block never overruns.
func mergeSort[T any](seq Sequence[T], before compare.LessFunc[T], stats *Stats) {
	n := seq.Len()

	for width := 1; width < n; width *= 2 {
		stats.Passes++

		for left := 0; left < n-1; left += 2 * width {
			mid := min(left+width-1, n-1)
			right := min(left+2*width-1, n-1)

			// Trailing block without a right-hand neighbour is already a run.
			if mid >= right {
				continue
			}

			merge(seq, left, mid, right, before, stats)
		}
	}
}

// merge combines the adjacent runs [left, mid] and [mid+1, right]. Both halves
// are copied into temporaries sized exactly to them and released when the call
// returns. On a tie the left element wins, which keeps the sort stable.
func merge[T any](seq Sequence[T], left, mid, right int, before compare.LessFunc[T], stats *Stats) {
	lower := make([]T, mid-left+1)
	upper := make([]T, right-mid)

	for i := range lower {
		lower[i] = seq.At(left + i)
	}

	for j := range upper {
		upper[j] = seq.At(mid + 1 + j)
	}

	i, j, k := 0, 0, left

	for i < len(lower) && j < len(upper) {
		stats.Comparisons++

		if before(upper[j], lower[i]) {
			seq.Set(k, upper[j])
			j++
		} else {
			seq.Set(k, lower[i])
			i++
		}

		stats.Writes++
		k++
	}

	for ; i < len(lower); i++ {
		seq.Set(k, lower[i])
		stats.Writes++
		k++
	}

	for ; j < len(upper); j++ {
		seq.Set(k, upper[j])
		stats.Writes++
		k++
	}
}
