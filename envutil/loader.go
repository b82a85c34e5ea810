package envutil

import (
	"context"
	"maps"
	"os"
	"slices"
	"strings"
)

// Loader is an isolated, mutable set of variables. It never touches the
// process environment; EnhanceContext makes its contents visible to the
// Reader functions instead.
//
// Loader is not safe for concurrent use.
type Loader struct {
	environment map[string]string
}

// NewLoader creates an empty Loader.
func NewLoader() *Loader {
	return &Loader{
		environment: make(map[string]string),
	}
}

// LoadEnv copies the current process environment into the loader, replacing
// keys that are already present.
func (l *Loader) LoadEnv() {
	for _, line := range os.Environ() {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		l.environment[key] = value
	}
}

// LoadFile merges the variables from a .env, .json or .yaml file, replacing
// keys that are already present. It returns the number of variables read.
func (l *Loader) LoadFile(filename string) (int64, error) {
	vars, err := LoadEnvFile(filename)
	if err != nil {
		return 0, err
	}

	maps.Copy(l.environment, vars)

	return int64(len(vars)), nil
}

// Get returns the value of key.
func (l *Loader) Get(key string) (string, bool) {
	val, ok := l.environment[key]

	return val, ok
}

// Set assigns value to key.
func (l *Loader) Set(key string, value string) {
	l.environment[key] = value
}

// Delete removes key.
func (l *Loader) Delete(key string) {
	delete(l.environment, key)
}

// Keys returns every key in sorted order.
func (l *Loader) Keys() []string {
	return slices.Sorted(maps.Keys(l.environment))
}

// EnhanceContext returns a context in which every loaded variable overrides
// the process environment for the Reader functions.
func (l *Loader) EnhanceContext(ctx context.Context) context.Context {
	return WithEnvOverrides(ctx, l.environment)
}
