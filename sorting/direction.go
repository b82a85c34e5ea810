package sorting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amp-labs/amp-sorting/compare"
)

// ErrInvalidDirection is returned when a direction name cannot be parsed.
var ErrInvalidDirection = errors.New("invalid sort direction")

// Direction selects the order a sort produces.
type Direction int8

const (
	// Ascending sorts from the smallest element to the largest (non-decreasing).
	Ascending Direction = iota

	// Descending sorts from the largest element to the smallest (non-increasing).
	Descending
)

// String returns "ascending" or "descending".
func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return fmt.Sprintf("Direction(%d)", int8(d))
	}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Descending {
		return Ascending
	}

	return Descending
}

// Valid reports whether d is one of the two defined directions.
func (d Direction) Valid() bool {
	return d == Ascending || d == Descending
}

// ParseDirection parses a direction name. It accepts "ascending", "asc",
// "descending" and "desc" in any case, with surrounding whitespace ignored.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascending", "asc":
		return Ascending, nil
	case "descending", "desc":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int8(d))
	}

	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// orient turns an ascending LessFunc into one that reports whether a belongs
// strictly before b in the given direction. Anything but Descending sorts
// ascending.
func orient[T any](less compare.LessFunc[T], dir Direction) compare.LessFunc[T] {
	if dir == Descending {
		return compare.Reverse(less)
	}

	return less
}
