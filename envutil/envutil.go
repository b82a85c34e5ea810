// Package envutil reads typed configuration from environment variables.
//
// Every lookup first consults overrides stored in the context (installed with
// WithEnvOverride or Loader.EnhanceContext) and then the process environment,
// so tests and config files never need to call os.Setenv:
//
//	ldr := envutil.NewLoader()
//	if _, err := ldr.LoadFile("bench.yaml"); err != nil {
//	    return err
//	}
//
//	ctx = ldr.EnhanceContext(ctx)
//	size := envutil.Int[int](ctx, "SORTBENCH_SIZE", envutil.Default(1000)).ValueOrFatal()
package envutil

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/amp-labs/amp-sorting/xform"
)

type envContextKey struct{}

// WithEnvOverride returns a context in which key reads as value.
func WithEnvOverride(ctx context.Context, key string, value string) context.Context {
	return WithEnvOverrides(ctx, map[string]string{key: value})
}

// WithEnvOverrides returns a context in which every key in values reads as
// its mapped value. Overrides already in ctx are kept unless replaced.
func WithEnvOverrides(ctx context.Context, values map[string]string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	merged := make(map[string]string, len(values))

	if existing, ok := ctx.Value(envContextKey{}).(map[string]string); ok {
		for k, v := range existing {
			merged[k] = v
		}
	}

	for k, v := range values {
		merged[k] = v
	}

	return context.WithValue(ctx, envContextKey{}, merged)
}

func lookup(ctx context.Context, key string) (string, bool) {
	if ctx != nil {
		if overrides, ok := ctx.Value(envContextKey{}).(map[string]string); ok {
			if val, found := overrides[key]; found {
				return val, true
			}
		}
	}

	return os.LookupEnv(key)
}

// get returns a Reader for the given variable.
func get(ctx context.Context, key string) Reader[string] {
	val, ok := lookup(ctx, key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

// String returns a Reader for the given variable.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

// Bool reads a boolean such as "true", "0" or " T ".
func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(Map(get(ctx, key), xform.TrimString), xform.Bool), opts)
}

// Int reads a signed integer into any integer type. Underscore digit
// separators ("10_000") are accepted.
func Int[I xform.Intish](ctx context.Context, key string, opts ...Option[I]) Reader[I] {
	return apply(Map(Map(Map(get(ctx, key), xform.TrimString), xform.Int64), xform.CastNumeric[int64, I]), opts)
}

// Uint reads an unsigned integer into any unsigned integer type.
func Uint[U xform.Uintish](ctx context.Context, key string, opts ...Option[U]) Reader[U] {
	return apply(Map(Map(Map(get(ctx, key), xform.TrimString), xform.Uint64), xform.CastNumeric[uint64, U]), opts)
}

// Float64 reads a floating point number.
func Float64(ctx context.Context, key string, opts ...Option[float64]) Reader[float64] {
	return apply(Map(Map(get(ctx, key), xform.TrimString), xform.Float64), opts)
}

// Duration reads a duration in time.ParseDuration syntax, e.g. "150ms".
func Duration(ctx context.Context, key string, opts ...Option[time.Duration]) Reader[time.Duration] {
	return apply(Map(Map(get(ctx, key), xform.TrimString), xform.Duration), opts)
}

// SlogLevel reads a log level name such as "debug" or " WARN ".
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	rdr := Map(Map(Map(get(ctx, key), xform.TrimString), xform.ToLower), xform.SlogLevel)

	return apply(rdr, opts)
}

// Strings reads a comma-separated list.
func Strings(ctx context.Context, key string, opts ...Option[[]string]) Reader[[]string] {
	return apply(Map(get(ctx, key), xform.SplitString(",")), opts)
}
