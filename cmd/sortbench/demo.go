package main

import (
	"fmt"
	"io"

	"github.com/amp-labs/amp-sorting/benchmark"
	"github.com/amp-labs/amp-sorting/randfill"
	"github.com/amp-labs/amp-sorting/report"
	"github.com/amp-labs/amp-sorting/sorting"
)

// demo fills a fixed buffer with random values and prints it, then prints
// the output of each selected algorithm on its own copy.
func demo(cfg benchmark.Config, w io.Writer) error {
	gen := randfill.NewGenerator(cfg.Seed)

	input := sorting.NewBuffer(make([]int64, cfg.Size))
	if err := randfill.Fill(gen, input, cfg.Min, cfg.Max); err != nil {
		return err
	}

	fmt.Fprintf(w, "input (seed %d):\n", gen.Seed())

	if err := report.Values(w, input); err != nil {
		return err
	}

	for _, alg := range cfg.Algorithms {
		sorter, err := sorting.New[int64](alg)
		if err != nil {
			return err
		}

		out := sorting.Clone[int64](input)
		sorter.Sort(out, cfg.Direction)

		fmt.Fprintf(w, "%s, %s:\n", alg, cfg.Direction)

		if err := report.Values(w, out); err != nil {
			return err
		}
	}

	return nil
}
