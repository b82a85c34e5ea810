// Package compare provides the equality and ordering primitives shared by the
// sortable wrapper types and the sorting algorithms.
package compare

import "cmp"

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// LessFunc reports whether a is strictly ordered before b. Implementations
// must describe a strict weak ordering: LessFunc(a, a) is always false.
type LessFunc[T any] func(a, b T) bool

// Natural returns the LessFunc for the built-in ordering of T.
func Natural[T cmp.Ordered]() LessFunc[T] {
	return cmp.Less[T]
}

// Reverse returns a LessFunc that orders values the opposite way to less.
// Strictness is preserved: equal values stay unordered in both directions.
func Reverse[T any](less LessFunc[T]) LessFunc[T] {
	return func(a, b T) bool {
		return less(b, a)
	}
}

// Equivalent reports whether neither value is ordered before the other.
func (less LessFunc[T]) Equivalent(a, b T) bool {
	return !less(a, b) && !less(b, a)
}
