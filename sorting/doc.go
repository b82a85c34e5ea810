// Package sorting implements four classic comparison sorts (selection, bubble,
// insertion and merge) once, generically, over any mutable indexable sequence.
//
// # Overview
//
// Every algorithm rearranges a caller-owned [Sequence] in place into the order
// requested by a [Direction]. The sequence may be a fixed-size [Buffer] viewing
// caller memory (an array or a slice) or a resizable [Vector]; the algorithms do
// not know which one they are given.
//
//	values := []int{5, 3, 8, 1}
//	sorting.MergeSort[int](sorting.NewBuffer(values), sorting.Ascending)
//	// values is now [1 3 5 8]
//
// Strategies can also be chosen at runtime:
//
//	sorter, err := sorting.New[float64](sorting.Bubble)
//	if err != nil {
//	    return err
//	}
//
//	stats := sorter.SortWithStats(sorting.NewBuffer(data), sorting.Descending)
//
// Element types either satisfy cmp.Ordered ([New]) or implement
// [github.com/amp-labs/amp-sorting/sortable.Sortable] ([NewSortable]).
//
// # Stability
//
//   - Selection: not stable. The first-seen extremum wins, so ties never cause
//     extra swaps, but a swap can move an element past its equals.
//   - Bubble, Insertion: stable. Only strictly out-of-order neighbours move.
//   - Merge: stable. On a tie the element from the left run is taken first.
//
// # Complexity
//
//	Algorithm   Best        Worst       Extra space
//	Selection   O(n²)       O(n²)       O(1)
//	Bubble      O(n)        O(n²)       O(1)
//	Insertion   O(n)        O(n²)       O(1)
//	Merge       O(n log n)  O(n log n)  O(n) per merge, released after it
//
// # Thread Safety
//
// A sort call must have exclusive access to its sequence; nothing is locked
// internally. [Strategy] values hold no mutable state and may be shared by
// goroutines sorting different sequences.
//
// Orders that are not strict weak orderings (for example float64 NaN compared
// with < and >) produce an unspecified permutation of the input.
package sorting
