// Package config assembles the benchmark settings from SORTBENCH_* variables,
// optionally seeded from a .env, .json or .yaml file.
package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/amp-labs/amp-sorting/benchmark"
	"github.com/amp-labs/amp-sorting/envutil"
	amperrors "github.com/amp-labs/amp-sorting/errors"
	"github.com/amp-labs/amp-sorting/report"
	"github.com/amp-labs/amp-sorting/xform"
)

// Prefix is prepended to every variable name read by Load.
const Prefix = "SORTBENCH_"

const (
	KeySize        = Prefix + "SIZE"
	KeyMin         = Prefix + "MIN"
	KeyMax         = Prefix + "MAX"
	KeyAlgorithms  = Prefix + "ALGORITHMS"
	KeyDirection   = Prefix + "DIRECTION"
	KeyRepeat      = Prefix + "REPEAT"
	KeyConcurrency = Prefix + "CONCURRENCY"
	KeySeed        = Prefix + "SEED"
	KeyFormat      = Prefix + "FORMAT"
	KeyVerify      = Prefix + "VERIFY"
)

// Config is everything the sortbench binary needs to run and print a benchmark.
type Config struct {
	Benchmark benchmark.Config
	Format    report.Format
}

// WithFile returns a context in which the variables from path are visible to
// Load. Variables already set in the process environment take precedence
// over the file.
func WithFile(ctx context.Context, path string) (context.Context, error) {
	ldr := envutil.NewLoader()

	if _, err := ldr.LoadFile(path); err != nil {
		return ctx, fmt.Errorf("loading config file %s: %w", path, err)
	}

	for _, key := range ldr.Keys() {
		if _, set := os.LookupEnv(key); set {
			ldr.Delete(key)
		}
	}

	return ldr.EnhanceContext(ctx), nil
}

// Load reads the configuration. Every malformed or invalid value is reported
// in the returned error, not just the first.
func Load(ctx context.Context) (*Config, error) {
	var errs amperrors.Collection

	def := benchmark.DefaultConfig()

	cfg := &Config{
		Benchmark: benchmark.Config{
			Size: read(&errs, envutil.Int[int](ctx, KeySize,
				envutil.Default(def.Size), envutil.Validate(nonNegative[int]))),
			Min:        read(&errs, envutil.Int[int64](ctx, KeyMin, envutil.Default(def.Min))),
			Max:        read(&errs, envutil.Int[int64](ctx, KeyMax, envutil.Default(def.Max))),
			Algorithms: read(&errs, algorithms(ctx, KeyAlgorithms, envutil.Default(def.Algorithms))),
			Direction:  read(&errs, direction(ctx, KeyDirection, envutil.Default(def.Direction))),
			Repeat: read(&errs, envutil.Int[int](ctx, KeyRepeat,
				envutil.Default(def.Repeat), envutil.Validate(positive[int]))),
			Concurrency: read(&errs, envutil.Int[int](ctx, KeyConcurrency,
				envutil.Default(def.Concurrency), envutil.Validate(positive[int]))),
			Seed:   read(&errs, envutil.Uint[uint64](ctx, KeySeed, envutil.Default[uint64](0))),
			Verify: read(&errs, envutil.Bool(ctx, KeyVerify, envutil.Default(def.Verify))),
		},
		Format: read(&errs, envutil.Map(envutil.String(ctx, KeyFormat,
			envutil.Default(string(report.Text))), report.ParseFormat)),
	}

	if errs.HasError() {
		return nil, errs.GetError()
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cross-field constraints that individual variables cannot,
// such as MIN not exceeding MAX.
func Validate(cfg *Config) error {
	var errs amperrors.Collection

	errs.Add(cfg.Benchmark.Validate())

	if _, err := report.ParseFormat(string(cfg.Format)); err != nil {
		errs.Add(err)
	}

	return errs.GetError()
}

// Environ renders cfg back into SORTBENCH_* assignments that reproduce the
// run. seed is the seed actually used, which matters when cfg asked for a
// random one.
func Environ(cfg *Config, seed uint64) map[string]string {
	if cfg.Benchmark.Seed != 0 {
		seed = cfg.Benchmark.Seed
	}

	names := make([]string, 0, len(cfg.Benchmark.Algorithms))
	for _, alg := range cfg.Benchmark.Algorithms {
		names = append(names, alg.String())
	}

	return map[string]string{
		KeySize:        fmt.Sprint(cfg.Benchmark.Size),
		KeyMin:         fmt.Sprint(cfg.Benchmark.Min),
		KeyMax:         fmt.Sprint(cfg.Benchmark.Max),
		KeyAlgorithms:  strings.Join(names, ","),
		KeyDirection:   cfg.Benchmark.Direction.String(),
		KeyRepeat:      fmt.Sprint(cfg.Benchmark.Repeat),
		KeyConcurrency: fmt.Sprint(cfg.Benchmark.Concurrency),
		KeySeed:        fmt.Sprint(seed),
		KeyFormat:      cfg.Format.String(),
		KeyVerify:      fmt.Sprint(cfg.Benchmark.Verify),
	}
}

func read[T any](errs *amperrors.Collection, rdr envutil.Reader[T]) T { //nolint:ireturn
	val, err := rdr.Value()
	errs.Add(err)

	return val
}

func positive[T xform.Numeric](v T) error {
	_, err := xform.Positive(v)

	return err
}

func nonNegative[T xform.Numeric](v T) error {
	_, err := xform.NonNegative(v)

	return err
}
