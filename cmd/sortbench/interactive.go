package main

import (
	"github.com/amp-labs/amp-sorting/benchmark"
	"github.com/amp-labs/amp-sorting/cli"
	"github.com/amp-labs/amp-sorting/sorting"
)

const (
	maxInteractiveSize   = 1_000_000
	maxInteractiveRepeat = 100
	valueBound           = 1 << 53
)

// prompt lets the user adjust the benchmark settings, offering the loaded
// ones as defaults. Picking no algorithms keeps the configured list.
func prompt(cfg *benchmark.Config) error {
	names := make([]string, 0, len(sorting.Algorithms()))
	for _, alg := range sorting.Algorithms() {
		names = append(names, alg.String())
	}

	picked, err := cli.MultiSelect("Algorithms", names...)
	if err != nil {
		return err
	}

	if len(picked) > 0 {
		algorithms := make([]sorting.Algorithm, 0, len(picked))

		for _, name := range picked {
			alg, err := sorting.ParseAlgorithm(name)
			if err != nil {
				return err
			}

			algorithms = append(algorithms, alg)
		}

		cfg.Algorithms = algorithms
	}

	dir, err := cli.Select("Direction", sorting.Ascending.String(), sorting.Descending.String())
	if err != nil {
		return err
	}

	if cfg.Direction, err = sorting.ParseDirection(dir); err != nil {
		return err
	}

	size, err := cli.PromptInt("Number of values", int64(cfg.Size), 0, maxInteractiveSize)
	if err != nil {
		return err
	}

	cfg.Size = int(size)

	if cfg.Min, err = cli.PromptInt("Smallest value", cfg.Min, -valueBound, valueBound); err != nil {
		return err
	}

	if cfg.Max, err = cli.PromptInt("Largest value", max(cfg.Max, cfg.Min), cfg.Min, valueBound); err != nil {
		return err
	}

	repeat, err := cli.PromptInt("Runs per algorithm", int64(cfg.Repeat), 1, maxInteractiveRepeat)
	if err != nil {
		return err
	}

	cfg.Repeat = int(repeat)

	cfg.Verify, err = cli.PromptConfirm("Verify results")

	return err
}
