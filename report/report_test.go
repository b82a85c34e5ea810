package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/amp-labs/amp-sorting/benchmark"
	"github.com/amp-labs/amp-sorting/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport(repeat int) *benchmark.Report {
	cfg := benchmark.DefaultConfig()
	cfg.Size = 12000
	cfg.Repeat = repeat
	cfg.Seed = 7

	rep := &benchmark.Report{
		RunId:   "6f1d3c2e-run",
		Seed:    7,
		Config:  cfg,
		Elapsed: 1500 * time.Millisecond,
	}

	for it := 1; it <= repeat; it++ {
		rep.Measurements = append(rep.Measurements,
			benchmark.Measurement{
				Algorithm: sorting.Merge,
				Iteration: it,
				Size:      cfg.Size,
				Duration:  time.Duration(it) * time.Millisecond,
				Stats:     sorting.Stats{Comparisons: 152000, Writes: 160000, Passes: 14},
				Verified:  true,
			},
		)
	}

	rep.Measurements = append(rep.Measurements, benchmark.Measurement{
		Algorithm: sorting.Bubble,
		Iteration: 1,
		Size:      cfg.Size,
		Duration:  2 * time.Second,
		Stats:     sorting.Stats{Comparisons: 71994000, Swaps: 36000000, Passes: 11999},
		Error:     "sequence is not sorted (ascending)",
	})

	return rep
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Format
	}{
		{"text", Text},
		{" TXT ", Text},
		{"json", JSON},
		{"YAML", YAML},
		{"yml", YAML},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("xml")
	require.ErrorIs(t, err, ErrUnknownFormat)

	var f Format
	require.NoError(t, f.UnmarshalText([]byte("json")))
	assert.Equal(t, JSON, f)
	assert.Equal(t, "json", f.String())
	assert.Len(t, Formats(), 3)
}

func TestRender_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, Render(&buf, sampleReport(1), Text))

	out := buf.String()

	assert.Contains(t, out, "run 6f1d3c2e-run")
	assert.Contains(t, out, "size 12,000")
	assert.Contains(t, out, "elapsed 1.5s")
	assert.Contains(t, out, "71,994,000")
	assert.Contains(t, out, "FAILED: sequence is not sorted (ascending)")
	assert.NotContains(t, out, "ALGORITHM", "no summary for single runs")

	// Natural order puts bubble before merge.
	assert.Less(t, strings.Index(out, "bubble#1"), strings.Index(out, "merge#1"))
}

func TestRender_TextNaturalOrder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, Render(&buf, sampleReport(10), Text))

	out := buf.String()

	assert.Less(t, strings.Index(out, "merge#2 "), strings.Index(out, "merge#10 "))
	assert.Less(t, strings.Index(out, "merge#9 "), strings.Index(out, "merge#10 "))
	assert.Contains(t, out, "ALGORITHM")
	assert.Contains(t, out, "5.5ms", "mean of 1ms..10ms")
}

func TestRender_VerifyDisabled(t *testing.T) {
	t.Parallel()

	rep := sampleReport(1)
	rep.Config.Verify = false
	rep.Measurements = rep.Measurements[:1]
	rep.Measurements[0].Verified = false

	var buf bytes.Buffer

	require.NoError(t, Render(&buf, rep, Text))
	assert.NotContains(t, buf.String(), " ok")
}

func TestRender_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, Render(&buf, sampleReport(1), JSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "6f1d3c2e-run", decoded["run_id"])

	cfg, ok := decoded["config"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ascending", cfg["direction"])
	assert.Equal(t, []any{"selection", "bubble", "insertion", "merge"}, cfg["algorithms"])

	measurements, ok := decoded["measurements"].([]any)
	require.True(t, ok)
	require.Len(t, measurements, 2)

	first, ok := measurements[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "merge", first["algorithm"])
	assert.NotContains(t, first, "error")
}

func TestRender_YAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, Render(&buf, sampleReport(1), YAML))

	var decoded struct {
		RunId        string `yaml:"run_id"`
		Measurements []struct {
			Algorithm string `yaml:"algorithm"`
			Duration  string `yaml:"duration"`
			Error     string `yaml:"error"`
		} `yaml:"measurements"`
	}

	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "6f1d3c2e-run", decoded.RunId)
	require.Len(t, decoded.Measurements, 2)
	assert.Equal(t, "merge", decoded.Measurements[0].Algorithm)
	assert.Equal(t, "1ms", decoded.Measurements[0].Duration)
	assert.Equal(t, "bubble", decoded.Measurements[1].Algorithm)
	assert.NotEmpty(t, decoded.Measurements[1].Error)
}

func TestRender_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := Render(&bytes.Buffer{}, sampleReport(1), Format("csv"))
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		seq  sorting.Sequence[int]
		want string
	}{
		{name: "empty", seq: sorting.NewVector[int](), want: "\n"},
		{name: "single", seq: sorting.NewVector(4), want: "4\n"},
		{name: "buffer", seq: sorting.NewBuffer([]int{1, 3, 5, 8}), want: "1 3 5 8\n"},
		{name: "vector", seq: sorting.NewVector(8, 5, 3, 1), want: "8 5 3 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			require.NoError(t, Values(&buf, tt.seq))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
