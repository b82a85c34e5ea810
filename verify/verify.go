// Package verify checks the two properties every sort must hold: the output is
// ordered, and it is a permutation of the input.
//
// The permutation check compares order-independent fingerprints of the element
// multiset, so the input never has to be copied and re-sorted by a trusted
// reference implementation:
//
//	digest := verify.Fingerprint[float64](seq)
//	sorter.Sort(seq, sorting.Ascending)
//	if err := verify.Check[float64](sorter, digest, seq, sorting.Ascending); err != nil {
//	    ...
//	}
package verify

import (
	"errors"
	"fmt"

	amperrors "github.com/amp-labs/amp-sorting/errors"
	"github.com/amp-labs/amp-sorting/sorting"
	"github.com/zeebo/xxh3"
)

var (
	ErrNotSorted      = errors.New("sequence is not sorted")
	ErrNotPermutation = errors.New("sequence is not a permutation of the input")
)

// Digest is an order-independent fingerprint of a multiset of elements.
// Two sequences holding the same elements in any order have equal digests.
type Digest struct {
	Count int    `json:"count" yaml:"count"`
	Sum   uint64 `json:"sum"   yaml:"sum"`
	Xor   uint64 `json:"xor"   yaml:"xor"`
}

// Orderer reports whether a sequence is in the requested order.
// *sorting.Strategy implements it.
type Orderer[T any] interface {
	IsSorted(seq sorting.Sequence[T], dir sorting.Direction) bool
}

// Fingerprint hashes every element with xxh3 and folds the hashes with
// commutative operations. Elements are encoded with their default fmt
// formatting, so values that print the same are treated as equal.
func Fingerprint[T any](seq sorting.Sequence[T]) Digest {
	var (
		digest Digest
		buf    []byte
	)

	for i := range seq.Len() {
		buf = fmt.Append(buf[:0], seq.At(i))
		h := xxh3.Hash(buf)

		digest.Sum += h
		digest.Xor ^= h
	}

	digest.Count = seq.Len()

	return digest
}

// Permutation returns ErrNotPermutation if seq does not hold the multiset
// described by before.
func Permutation[T any](before Digest, seq sorting.Sequence[T]) error {
	after := Fingerprint(seq)
	if after != before {
		return fmt.Errorf("%w: had %d elements (sum %x), now %d (sum %x)",
			ErrNotPermutation, before.Count, before.Sum, after.Count, after.Sum)
	}

	return nil
}

// Check verifies seq is ordered in dir and is a permutation of the input
// described by before. Both failures are reported when both occur.
func Check[T any](orderer Orderer[T], before Digest, seq sorting.Sequence[T], dir sorting.Direction) error {
	var errs amperrors.Collection

	errs.Addf(!orderer.IsSorted(seq, dir), fmt.Errorf("%w (%s)", ErrNotSorted, dir))
	errs.Add(Permutation(before, seq))

	return errs.GetError()
}
