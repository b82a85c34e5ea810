package sorting_test

import (
	"testing"

	"github.com/amp-labs/amp-sorting/sorting"
	"github.com/amp-labs/amp-sorting/sorting/sortingtest"
)

func TestConformance(t *testing.T) {
	t.Parallel()

	for _, alg := range sorting.Algorithms() {
		sortingtest.Conformance(t, sorting.MustNew[int](alg))
	}
}
