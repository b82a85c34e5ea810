package config

import (
	"context"
	"slices"
	"strings"

	"github.com/amp-labs/amp-sorting/envutil"
	"github.com/amp-labs/amp-sorting/sorting"
	"github.com/amp-labs/amp-sorting/xform"
)

// direction reads a sort direction ("ascending", "desc", ...).
func direction(
	ctx context.Context, key string, opts ...envutil.Option[sorting.Direction],
) envutil.Reader[sorting.Direction] {
	return withOptions(envutil.Map(envutil.String(ctx, key), sorting.ParseDirection), opts)
}

// algorithms reads a comma-separated list of algorithm names; "all" selects
// every algorithm.
func algorithms(
	ctx context.Context, key string, opts ...envutil.Option[[]sorting.Algorithm],
) envutil.Reader[[]sorting.Algorithm] {
	names := envutil.Map(envutil.String(ctx, key), xform.SplitString(","))

	return withOptions(envutil.Map(names, parseAlgorithms), opts)
}

// parseAlgorithms drops duplicates while keeping the position of the first
// occurrence.
func parseAlgorithms(names []string) ([]sorting.Algorithm, error) {
	if len(names) == 0 {
		return nil, xform.ErrEmptyList
	}

	out := make([]sorting.Algorithm, 0, len(names))
	add := func(alg sorting.Algorithm) {
		if !slices.Contains(out, alg) {
			out = append(out, alg)
		}
	}

	for _, name := range names {
		if strings.EqualFold(strings.TrimSpace(name), "all") {
			for _, alg := range sorting.Algorithms() {
				add(alg)
			}

			continue
		}

		alg, err := sorting.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}

		add(alg)
	}

	return out, nil
}

func withOptions[T any](rdr envutil.Reader[T], opts []envutil.Option[T]) envutil.Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}
