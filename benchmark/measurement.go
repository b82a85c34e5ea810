package benchmark

import (
	"errors"
	"fmt"
	"time"

	amperrors "github.com/amp-labs/amp-sorting/errors"
	"github.com/amp-labs/amp-sorting/sorting"
	"github.com/amp-labs/amp-sorting/verify"
)

// ErrVerificationFailed is returned by Report.Err when any measurement
// produced output that was not sorted or not a permutation of the input.
var ErrVerificationFailed = errors.New("verification failed")

// Measurement is the outcome of one sort call.
type Measurement struct {
	Algorithm sorting.Algorithm `json:"algorithm"       yaml:"algorithm"`
	Direction sorting.Direction `json:"direction"       yaml:"direction"`
	Iteration int               `json:"iteration"       yaml:"iteration"`
	Size      int               `json:"size"            yaml:"size"`
	Duration  time.Duration     `json:"duration_ns"     yaml:"duration"`
	Stats     sorting.Stats     `json:"stats"           yaml:"stats"`
	Verified  bool              `json:"verified"        yaml:"verified"`
	Error     string            `json:"error,omitempty" yaml:"error,omitempty"`
}

// Name identifies the measurement within a run, e.g. "merge#2".
func (m Measurement) Name() string {
	return fmt.Sprintf("%s#%d", m.Algorithm, m.Iteration)
}

// Report is the result of one Runner.Run. Measurements are in submission
// order: grouped by algorithm in the configured order, then by iteration.
type Report struct {
	RunId        string        `json:"run_id"       yaml:"run_id"`
	Seed         uint64        `json:"seed"         yaml:"seed"`
	Config       Config        `json:"config"       yaml:"config"`
	StartedAt    time.Time     `json:"started_at"   yaml:"started_at"`
	Elapsed      time.Duration `json:"elapsed_ns"   yaml:"elapsed"`
	Input        verify.Digest `json:"input"        yaml:"input"`
	Measurements []Measurement `json:"measurements" yaml:"measurements"`
}

// Failures returns the number of measurements that failed verification.
func (r *Report) Failures() int {
	n := 0

	for _, m := range r.Measurements {
		if m.Error != "" {
			n++
		}
	}

	return n
}

// Err returns nil when every measurement passed (or verification was off),
// otherwise an ErrVerificationFailed for each failing measurement, joined.
func (r *Report) Err() error {
	var errs amperrors.Collection

	for _, m := range r.Measurements {
		errs.Addf(m.Error != "", fmt.Errorf("%w: %s: %s", ErrVerificationFailed, m.Name(), m.Error))
	}

	return errs.GetError()
}

// Summary aggregates the measurements of one algorithm.
type Summary struct {
	Algorithm sorting.Algorithm `json:"algorithm"  yaml:"algorithm"`
	Runs      int               `json:"runs"       yaml:"runs"`
	Total     time.Duration     `json:"total_ns"   yaml:"total"`
	Fastest   time.Duration     `json:"fastest_ns" yaml:"fastest"`
	Slowest   time.Duration     `json:"slowest_ns" yaml:"slowest"`
	Stats     sorting.Stats     `json:"stats"      yaml:"stats"`
	Failures  int               `json:"failures"   yaml:"failures"`
}

// Mean returns the average duration of the summarized runs.
func (s Summary) Mean() time.Duration {
	if s.Runs == 0 {
		return 0
	}

	return s.Total / time.Duration(s.Runs)
}

// Summaries aggregates measurements per algorithm, in the order algorithms
// first appear in the report.
func (r *Report) Summaries() []Summary {
	var (
		out   []Summary
		index = make(map[sorting.Algorithm]int)
	)

	for _, m := range r.Measurements {
		i, ok := index[m.Algorithm]
		if !ok {
			i = len(out)
			index[m.Algorithm] = i

			out = append(out, Summary{
				Algorithm: m.Algorithm,
				Fastest:   m.Duration,
				Slowest:   m.Duration,
			})
		}

		s := &out[i]
		s.Runs++
		s.Total += m.Duration
		s.Fastest = min(s.Fastest, m.Duration)
		s.Slowest = max(s.Slowest, m.Duration)
		s.Stats = s.Stats.Add(m.Stats)

		if m.Error != "" {
			s.Failures++
		}
	}

	return out
}
