package sorting

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned when an algorithm name or value is not recognized.
var ErrUnknownAlgorithm = errors.New("unknown sorting algorithm")

// Algorithm identifies one of the sorting strategies.
type Algorithm int

const (
	Selection Algorithm = iota
	Bubble
	Insertion
	Merge
)

var algorithmNames = [...]string{ //nolint:gochecknoglobals
	Selection: "selection",
	Bubble:    "bubble",
	Insertion: "insertion",
	Merge:     "merge",
}

// Algorithms returns every algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Selection, Bubble, Insertion, Merge}
}

// String returns the lower-case algorithm name, e.g. "merge".
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Valid reports whether a names a known algorithm.
func (a Algorithm) Valid() bool {
	return a >= Selection && a <= Merge
}

// Stable reports whether the algorithm preserves the input order of elements
// that compare as equal.
func (a Algorithm) Stable() bool {
	switch a {
	case Bubble, Insertion, Merge:
		return true
	default:
		return false
	}
}

// ParseAlgorithm parses an algorithm name. Matching ignores case, surrounding
// whitespace and an optional "sort" suffix, so "Merge", "merge_sort" and
// "mergesort" all parse as Merge.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimSuffix(name, "sort")
	name = strings.TrimRight(name, "_- ")

	for alg, candidate := range algorithmNames {
		if name == candidate {
			return Algorithm(alg), nil
		}
	}

	return Selection, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}
