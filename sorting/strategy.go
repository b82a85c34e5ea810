package sorting

import (
	"cmp"
	"fmt"

	"github.com/amp-labs/amp-sorting/compare"
	"github.com/amp-labs/amp-sorting/sortable"
)

// Sorter is the capability shared by every strategy: rearrange a sequence in
// place into the requested order.
type Sorter[T any] interface {
	Algorithm() Algorithm
	Sort(seq Sequence[T], dir Direction)
	SortWithStats(seq Sequence[T], dir Direction) Stats
}

type sortFunc[T any] func(seq Sequence[T], before compare.LessFunc[T], stats *Stats)

// Strategy binds one algorithm to the natural order of T. It holds no mutable
// state, so one Strategy may sort many sequences, concurrently if they are
// distinct.
type Strategy[T any] struct {
	algorithm Algorithm
	less      compare.LessFunc[T]
	run       sortFunc[T]
}

var _ Sorter[int] = (*Strategy[int])(nil)

// New returns the strategy for alg over a built-in ordered element type.
func New[T cmp.Ordered](alg Algorithm) (*Strategy[T], error) {
	return newStrategy(alg, compare.Natural[T]())
}

// NewSortable returns the strategy for alg over a type that orders itself.
func NewSortable[T sortable.Sortable[T]](alg Algorithm) (*Strategy[T], error) {
	return newStrategy(alg, sortable.Less[T]())
}

// MustNew is like New but panics on an unknown algorithm.
func MustNew[T cmp.Ordered](alg Algorithm) *Strategy[T] {
	s, err := New[T](alg)
	if err != nil {
		panic(err)
	}

	return s
}

func newStrategy[T any](alg Algorithm, less compare.LessFunc[T]) (*Strategy[T], error) {
	var run sortFunc[T]

	switch alg {
	case Selection:
		run = selectionSort[T]
	case Bubble:
		run = bubbleSort[T]
	case Insertion:
		run = insertionSort[T]
	case Merge:
		run = mergeSort[T]
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}

	return &Strategy[T]{
		algorithm: alg,
		less:      less,
		run:       run,
	}, nil
}

// Algorithm returns the algorithm this strategy runs.
func (s *Strategy[T]) Algorithm() Algorithm {
	return s.algorithm
}

// Stable reports whether equal elements keep their input order.
func (s *Strategy[T]) Stable() bool {
	return s.algorithm.Stable()
}

// Sort rearranges seq in place into dir order. Empty and single-element
// sequences are left untouched.
func (s *Strategy[T]) Sort(seq Sequence[T], dir Direction) {
	s.SortWithStats(seq, dir)
}

// SortWithStats is Sort, returning the work it performed.
func (s *Strategy[T]) SortWithStats(seq Sequence[T], dir Direction) Stats {
	var stats Stats

	if seq.Len() < 2 { //nolint:mnd
		return stats
	}

	s.run(seq, orient(s.less, dir), &stats)

	return stats
}

// IsSorted reports whether seq is already in dir order under this strategy's
// element order. Equal neighbours are allowed.
func (s *Strategy[T]) IsSorted(seq Sequence[T], dir Direction) bool {
	before := orient(s.less, dir)

	for i := 1; i < seq.Len(); i++ {
		if before(seq.At(i), seq.At(i-1)) {
			return false
		}
	}

	return true
}

// SelectionSort sorts seq in place with selection sort. It is not stable.
func SelectionSort[T cmp.Ordered](seq Sequence[T], dir Direction) {
	MustNew[T](Selection).Sort(seq, dir)
}

// BubbleSort sorts seq in place with bubble sort, stopping after the first
// pass that makes no swap.
func BubbleSort[T cmp.Ordered](seq Sequence[T], dir Direction) {
	MustNew[T](Bubble).Sort(seq, dir)
}

// InsertionSort sorts seq in place with insertion sort.
func InsertionSort[T cmp.Ordered](seq Sequence[T], dir Direction) {
	MustNew[T](Insertion).Sort(seq, dir)
}

// MergeSort sorts seq in place with iterative bottom-up merge sort.
func MergeSort[T cmp.Ordered](seq Sequence[T], dir Direction) {
	MustNew[T](Merge).Sort(seq, dir)
}

// Slice sorts values in place with alg. It is shorthand for wrapping values in
// a Buffer.
func Slice[T cmp.Ordered](values []T, alg Algorithm, dir Direction) error {
	s, err := New[T](alg)
	if err != nil {
		return err
	}

	s.Sort(NewBuffer(values), dir)

	return nil
}

// IsSorted reports whether seq is in dir order under the natural order of T.
func IsSorted[T cmp.Ordered](seq Sequence[T], dir Direction) bool {
	return MustNew[T](Merge).IsSorted(seq, dir)
}
