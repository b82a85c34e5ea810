// Package sortable provides wrapper types for primitive values that implement
// the Sortable interface, so they can be used as keys by the sorting package
// alongside caller-defined record types.
//
// # Overview
//
// The Sortable interface extends [github.com/amp-labs/amp-sorting/compare.Comparable]
// with a LessThan method, providing both equality and a strict ordering. Ready-made
// implementations exist for [Int], [Float], [Byte] and [String].
//
// Built-in ordered types do not need a wrapper: [github.com/amp-labs/amp-sorting/sorting.New]
// accepts any cmp.Ordered element directly. Wrappers are for code that is already written
// against Sortable, and the interface is how records with a sort key are described.
//
// # Creating Custom Sortable Types
//
// A record sorted by one field implements LessThan on that field only, so records with
// equal keys compare as equivalent and the stable algorithms keep their input order:
//
//	type Job struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (j Job) Equals(other Job) bool {
//	    return j.Priority == other.Priority && j.Name == other.Name
//	}
//
//	func (j Job) LessThan(other Job) bool {
//	    return j.Priority < other.Priority
//	}
//
//	sorter, _ := sorting.NewSortable[Job](sorting.Merge)
//	sorter.Sort(sorting.NewBuffer(jobs), sorting.Descending)
//
// # Thread Safety
//
// The wrapper types in this package are value types and are safe for concurrent reads.
package sortable
