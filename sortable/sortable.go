package sortable

import (
	"github.com/amp-labs/amp-sorting/compare"
)

// Sortable is implemented by values that know how to order themselves.
// LessThan must be a strict ordering: x.LessThan(x) is false.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Less adapts a Sortable type to a compare.LessFunc.
func Less[T Sortable[T]]() compare.LessFunc[T] {
	return func(a, b T) bool {
		return a.LessThan(b)
	}
}
