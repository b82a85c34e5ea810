// Package xform holds small string-to-value transformers. Each one has the
// shape func(A) (B, error) so they compose with envutil.Map when reading
// configuration.
package xform

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"
)

// TrimString removes leading and trailing whitespace from a string.
func TrimString(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

// ToLower converts a string to lowercase.
func ToLower(s string) (string, error) {
	return strings.ToLower(s), nil
}

// SplitString returns a transformer that splits a string by the given separator,
// trimming each part and dropping empty ones. "a, b,,c" split on "," yields
// [a b c].
func SplitString(sep string) func(string) ([]string, error) {
	return func(s string) ([]string, error) {
		parts := strings.Split(s, sep)
		out := parts[:0]

		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}

		return out, nil
	}
}

// OneOf returns a transformer that validates a value is one of the allowed choices.
// Returns ErrInvalidChoice if the value doesn't match any of the choices.
func OneOf[A comparable](choices ...A) func(A) (A, error) { //nolint:ireturn
	return func(value A) (A, error) {
		if slices.Contains(choices, value) {
			return value, nil
		}

		return value, fmt.Errorf("%w: %v (expected one of %v)", ErrInvalidChoice, value, choices)
	}
}

// Bool parses a string as a boolean value.
// Accepts: "1", "t", "T", "true", "TRUE", "True", "0", "f", "F", "false", "FALSE", "False".
func Bool(value string) (bool, error) {
	return strconv.ParseBool(value)
}

// Int64 parses a string as a base-10 int64. Underscore digit separators are
// allowed, so "1_000_000" is accepted.
func Int64(value string) (int64, error) {
	return strconv.ParseInt(strings.ReplaceAll(value, "_", ""), 10, 64)
}

// Uint64 parses a string as a base-10 uint64.
func Uint64(value string) (uint64, error) {
	return strconv.ParseUint(strings.ReplaceAll(value, "_", ""), 10, 64)
}

// Float64 parses a string as a float64.
func Float64(value string) (float64, error) {
	return strconv.ParseFloat(value, 64)
}

// Duration parses a string as a time.Duration.
func Duration(value string) (time.Duration, error) {
	return time.ParseDuration(value)
}

// Positive validates that a numeric value is greater than zero.
func Positive[A Numeric](value A) (A, error) { // nolint:ireturn
	if value <= 0 {
		return value, ErrNonPositive
	}

	return value, nil
}

// NonNegative validates that a numeric value is zero or greater.
func NonNegative[A Numeric](value A) (A, error) { // nolint:ireturn
	if value < 0 {
		return value, ErrNegative
	}

	return value, nil
}

// CastNumeric converts a numeric value from one type to another.
// Note: This may truncate or lose precision depending on the types involved.
func CastNumeric[A Numeric, B Numeric](value A) (B, error) { //nolint:ireturn
	return B(value), nil
}

// SlogLevel parses a string as a slog.Level.
// Accepts: "debug", "info", "warn", "error" (case-sensitive; lower-case first).
func SlogLevel(value string) (slog.Level, error) {
	switch value {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}
