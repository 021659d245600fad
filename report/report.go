// Package report collects benchmark results into graphs and renders them
// as markdown tables, JSON, or Prometheus textfile metrics.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Generate writes one markdown table per graph. Rows are sizes and
// columns are series, both in the order they were first reported.
func Generate(w io.Writer, graphs []Graph) error {
	if len(graphs) == 0 {
		return fmt.Errorf("no results to report")
	}

	fmt.Fprintln(w, "## Benchmark Results")

	for _, g := range graphs {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "### %s (%s)\n", g.Title, g.Unit)
		fmt.Fprintln(w)

		if len(g.Results) == 0 {
			fmt.Fprintln(w, "_no results_")
			continue
		}

		series, groups, cells := pivot(g.Results)

		fmt.Fprint(w, "| Size |")
		for _, s := range series {
			fmt.Fprintf(w, " %s |", s)
		}
		fmt.Fprintln(w, " Fastest |")

		fmt.Fprint(w, "|------|")
		for range series {
			fmt.Fprint(w, "------|")
		}
		fmt.Fprintln(w, "---------|")

		for _, group := range groups {
			row := cells[group]

			fmt.Fprintf(w, "| %s |", group)
			for _, s := range series {
				fmt.Fprintf(w, " %s |", formatValue(row, s))
			}
			fmt.Fprintf(w, " %s |\n", findFastest(row, series))
		}
	}

	return nil
}

// Run is the JSON envelope of one benchmark run.
type Run struct {
	ID       string    `json:"run_id"`
	Finished time.Time `json:"finished"`
	Graphs   []Graph   `json:"graphs"`
}

// NewRun wraps graphs in a Run with a fresh id.
func NewRun(graphs []Graph, finished time.Time) Run {
	return Run{
		ID:       uuid.NewString(),
		Finished: finished.UTC(),
		Graphs:   graphs,
	}
}

// GenerateJSON writes run as JSON to w.
func GenerateJSON(w io.Writer, run Run) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(run)
}

func pivot(results []Result) ([]string, []string, map[string]map[string]uint64) {
	var series, groups []string

	cells := make(map[string]map[string]uint64)

	for _, r := range results {
		if !slices.Contains(series, r.Series) {
			series = append(series, r.Series)
		}

		row, ok := cells[r.Group]
		if !ok {
			row = make(map[string]uint64)
			cells[r.Group] = row
			groups = append(groups, r.Group)
		}

		row[r.Series] = r.Value
	}

	return series, groups, cells
}

func formatValue(row map[string]uint64, series string) string {
	v, ok := row[series]
	if !ok {
		return "-"
	}

	return fmt.Sprintf("%d", v)
}

func findFastest(row map[string]uint64, series []string) string {
	fastest := uint64(math.MaxUint64)
	name := "-"

	for _, s := range series {
		if v, ok := row[s]; ok && v < fastest {
			fastest = v
			name = s
		}
	}

	return name
}
