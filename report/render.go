// Package report renders benchmark results for people (an aligned text table)
// and for tools (JSON or YAML).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
	"time"

	"facette.io/natsort"
	"github.com/amp-labs/amp-sorting/benchmark"
	"github.com/amp-labs/amp-sorting/sorting"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Render writes rep to w in the given format.
func Render(w io.Writer, rep *benchmark.Report, format Format) error {
	switch format {
	case Text:
		return renderText(w, rep)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(rep)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2) //nolint:mnd

		if err := enc.Encode(rep); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// Values writes the elements of seq separated by single spaces and
// terminated by a newline. An empty sequence produces just the newline.
func Values[T any](w io.Writer, seq sorting.Sequence[T]) error {
	buf := make([]byte, 0, seq.Len()*4) //nolint:mnd

	for i := range seq.Len() {
		if i > 0 {
			buf = append(buf, ' ')
		}

		buf = fmt.Append(buf, seq.At(i))
	}

	buf = append(buf, '\n')

	_, err := w.Write(buf)

	return err
}

func renderText(w io.Writer, rep *benchmark.Report) error {
	p := message.NewPrinter(language.English)
	cfg := rep.Config

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd

	fmt.Fprintf(tw, "run %s\tseed %d\n", rep.RunId, rep.Seed)
	p.Fprintf(tw, "size %d\trange [%d, %d]\tdirection %s\telapsed %s\n",
		cfg.Size, cfg.Min, cfg.Max, cfg.Direction, round(rep.Elapsed))
	fmt.Fprintln(tw)

	rows := slices.Clone(rep.Measurements)
	slices.SortStableFunc(rows, func(a, b benchmark.Measurement) int {
		switch an, bn := a.Name(), b.Name(); {
		case natsort.Compare(an, bn):
			return -1
		case natsort.Compare(bn, an):
			return 1
		default:
			return 0
		}
	})

	fmt.Fprintln(tw, "NAME\tDURATION\tCOMPARISONS\tSWAPS\tWRITES\tPASSES\tCHECK")

	for _, m := range rows {
		p.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			m.Name(), round(m.Duration),
			m.Stats.Comparisons, m.Stats.Swaps, m.Stats.Writes, m.Stats.Passes,
			check(m, cfg.Verify))
	}

	if cfg.Repeat > 1 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "ALGORITHM\tRUNS\tMEAN\tFASTEST\tSLOWEST\tFAILURES")

		for _, s := range rep.Summaries() {
			p.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%d\n",
				s.Algorithm, s.Runs, round(s.Mean()), round(s.Fastest), round(s.Slowest), s.Failures)
		}
	}

	return tw.Flush()
}

func check(m benchmark.Measurement, enabled bool) string {
	switch {
	case !enabled:
		return "-"
	case m.Verified:
		return "ok"
	default:
		return "FAILED: " + m.Error
	}
}

func round(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(time.Microsecond).String()
	default:
		return d.String()
	}
}
