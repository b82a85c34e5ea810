package benchmark

import (
	"errors"
	"fmt"

	amperrors "github.com/amp-labs/amp-sorting/errors"
	"github.com/amp-labs/amp-sorting/sorting"
)

var (
	ErrInvalidSize        = errors.New("size must not be negative")
	ErrInvalidRange       = errors.New("min must not be greater than max")
	ErrNoAlgorithms       = errors.New("at least one algorithm is required")
	ErrInvalidRepeat      = errors.New("repeat must be positive")
	ErrInvalidConcurrency = errors.New("concurrency must be positive")
)

const (
	DefaultSize        = 1000
	DefaultMin         = 0
	DefaultMax         = 1000
	DefaultRepeat      = 1
	DefaultConcurrency = 1
)

// Config describes one benchmark run: a single random dataset sorted by each
// selected algorithm Repeat times.
type Config struct {
	Size        int                 `json:"size"        yaml:"size"`
	Min         int64               `json:"min"         yaml:"min"`
	Max         int64               `json:"max"         yaml:"max"`
	Algorithms  []sorting.Algorithm `json:"algorithms"  yaml:"algorithms"`
	Direction   sorting.Direction   `json:"direction"   yaml:"direction"`
	Repeat      int                 `json:"repeat"      yaml:"repeat"`
	Concurrency int                 `json:"concurrency" yaml:"concurrency"`
	Seed        uint64              `json:"seed"        yaml:"seed"`
	Verify      bool                `json:"verify"      yaml:"verify"`
}

// DefaultConfig returns a Config running every algorithm once, ascending,
// over 1000 values in [0, 1000], with verification on.
func DefaultConfig() Config {
	return Config{
		Size:        DefaultSize,
		Min:         DefaultMin,
		Max:         DefaultMax,
		Algorithms:  sorting.Algorithms(),
		Direction:   sorting.Ascending,
		Repeat:      DefaultRepeat,
		Concurrency: DefaultConcurrency,
		Verify:      true,
	}
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var errs amperrors.Collection

	errs.Addf(c.Size < 0, fmt.Errorf("%w: %d", ErrInvalidSize, c.Size))
	errs.Addf(c.Min > c.Max, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, c.Min, c.Max))
	errs.Addf(len(c.Algorithms) == 0, ErrNoAlgorithms)
	errs.Addf(c.Repeat < 1, fmt.Errorf("%w: %d", ErrInvalidRepeat, c.Repeat))
	errs.Addf(c.Concurrency < 1, fmt.Errorf("%w: %d", ErrInvalidConcurrency, c.Concurrency))
	errs.Addf(!c.Direction.Valid(), fmt.Errorf("%w: %d", sorting.ErrInvalidDirection, c.Direction))

	for _, alg := range c.Algorithms {
		errs.Addf(!alg.Valid(), fmt.Errorf("%w: %d", sorting.ErrUnknownAlgorithm, alg))
	}

	return errs.GetError()
}
