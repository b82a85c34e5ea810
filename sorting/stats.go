package sorting

// Stats counts the work done by one sort call.
type Stats struct {
	// Comparisons is the number of times two elements were ordered.
	Comparisons int64 `json:"comparisons" yaml:"comparisons"`

	// Swaps is the number of element exchanges (selection and bubble sort).
	Swaps int64 `json:"swaps" yaml:"swaps"`

	// Writes is the number of single-element stores (insertion and merge sort).
	Writes int64 `json:"writes" yaml:"writes"`

	// Passes is the number of outer iterations. For bubble sort on input that
	// is already in order this is exactly one.
	Passes int64 `json:"passes" yaml:"passes"`
}

// Add returns the element-wise sum of s and other.
func (s Stats) Add(other Stats) Stats {
	return Stats{
		Comparisons: s.Comparisons + other.Comparisons,
		Swaps:       s.Swaps + other.Swaps,
		Writes:      s.Writes + other.Writes,
		Passes:      s.Passes + other.Passes,
	}
}
