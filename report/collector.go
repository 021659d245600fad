package report

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/weiihann/contbench/harness"
)

// ErrFlushed is returned when a Collector is flushed a second time.
var ErrFlushed = errors.New("collector already flushed")

// Result is one averaged timing.
type Result struct {
	Series string `json:"series"`
	Group  string `json:"group"`
	Value  uint64 `json:"value"`
}

// Graph is a named set of results sharing a unit.
type Graph struct {
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Unit    string   `json:"unit"`
	Results []Result `json:"results"`
}

// Collector accumulates the graphs of one run. Results are appended to
// the graph opened last. A Collector is created when the run starts and
// flushed once when it ends.
type Collector struct {
	graphs  []*Graph
	flushed bool
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// NewGraph opens a graph; results added afterwards go to it.
func (c *Collector) NewGraph(name, title string, unit time.Duration) {
	c.graphs = append(c.graphs, &Graph{
		Name:  name,
		Title: title,
		Unit:  harness.UnitName(unit),
	})
}

// AddResult appends to the current graph.
func (c *Collector) AddResult(series, group string, value uint64) {
	if len(c.graphs) == 0 {
		panic("report: result added before any graph was opened")
	}

	g := c.graphs[len(c.graphs)-1]
	g.Results = append(g.Results, Result{Series: series, Group: group, Value: value})
}

// Graphs returns a copy of every graph collected so far.
func (c *Collector) Graphs() []Graph {
	out := make([]Graph, len(c.graphs))
	for i, g := range c.graphs {
		out[i] = *g
		out[i].Results = slices.Clone(g.Results)
	}

	return out
}

// Flush hands the collected graphs to fn. It succeeds once per Collector.
func (c *Collector) Flush(fn func(graphs []Graph) error) error {
	if c.flushed {
		return ErrFlushed
	}

	c.flushed = true

	if err := fn(c.Graphs()); err != nil {
		return fmt.Errorf("flush graphs: %w", err)
	}

	return nil
}

// Tag turns name into an identifier by replacing anything outside
// [A-Za-z0-9_] with an underscore.
func Tag(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}

// Title names the graph of one benchmark for one element type of the
// given size in bytes.
func Title(test, typeName string, size uint64) string {
	return fmt.Sprintf("%s - %s (%s)", test, typeName, formatBytes(size))
}

func formatBytes(b uint64) string {
	if b == 0 {
		return "-"
	}

	units := []string{"B", "KB", "MB", "GB", "TB"}
	size := float64(b)
	unit := 0

	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}

	formatted := fmt.Sprintf("%.1f", size)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimRight(formatted, ".")

	return formatted + " " + units[unit]
}
