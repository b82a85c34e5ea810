package sorting

import "github.com/amp-labs/amp-sorting/compare"

// insertionSort grows a sorted prefix one element at a time, shifting larger
// (in the requested direction) elements right to open a slot for the key.
// Equal elements are never shifted past each other.
func insertionSort[T any](seq Sequence[T], before compare.LessFunc[T], stats *Stats) {
	n := seq.Len()

	for i := 1; i < n; i++ {
		stats.Passes++

		key := seq.At(i)
		j := i - 1

		for ; j >= 0; j-- {
			stats.Comparisons++

			if !before(key, seq.At(j)) {
				break
			}

			seq.Set(j+1, seq.At(j))
			stats.Writes++
		}

		// Key already in its slot.
		if j+1 == i {
			continue
		}

		seq.Set(j+1, key)
		stats.Writes++
	}
}
