package suite

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiihann/contbench/harness"
	"github.com/weiihann/contbench/report"
	"github.com/weiihann/contbench/workload"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seriesOf(g report.Graph) []string {
	var out []string
	for _, r := range g.Results {
		if !slices.Contains(out, r.Series) {
			out = append(out, r.Series)
		}
	}

	return out
}

func TestCatalogueIsComplete(t *testing.T) {
	names := BenchmarkNames()
	require.Len(t, names, 19)

	seen := make(map[string]bool)
	for _, b := range Benchmarks() {
		assert.False(t, seen[b.Name], "duplicate benchmark %s", b.Name)
		seen[b.Name] = true

		assert.Positive(t, b.Unit, b.Name)
		assert.Len(t, b.Sizes, 10, b.Name)
		assert.True(t, slices.IsSorted(b.Sizes), b.Name)

		for _, typ := range Types() {
			assert.NotNil(t, typ.benches[b.Name], "%s has no %s", typ.Name, b.Name)
		}
	}
}

func TestBenchmarksIsCopy(t *testing.T) {
	b := Benchmarks()
	b[0].Sizes[0] = -1

	fresh, ok := LookupBenchmark(b[0].Name)
	require.True(t, ok)
	assert.Equal(t, 100000, fresh.Sizes[0])
}

func TestLookup(t *testing.T) {
	b, ok := LookupBenchmark("SORT")
	require.True(t, ok)
	assert.Equal(t, "sort", b.Name)

	_, ok = LookupBenchmark("bogosort")
	assert.False(t, ok)

	typ, ok := LookupType("trivial8")
	require.True(t, ok)
	assert.Equal(t, "Trivial8", typ.Name)
	assert.EqualValues(t, 8, typ.Size)
	assert.True(t, typ.Small)

	big, ok := LookupType("Trivial4096")
	require.True(t, ok)
	assert.False(t, big.Small)

	_, ok = LookupType("Trivial7")
	assert.False(t, ok)
}

func TestTypeRuns(t *testing.T) {
	small, _ := LookupType("Trivial32")
	big, _ := LookupType("Trivial128")
	find, _ := LookupBenchmark("find")
	sort, _ := LookupBenchmark("sort")

	assert.True(t, small.Runs(find))
	assert.False(t, big.Runs(find))
	assert.True(t, big.Runs(sort))
}

func TestScaled(t *testing.T) {
	assert.Equal(t, []int{50, 100}, Scaled([]int{100, 200}, 0.5))
	assert.Equal(t, []int{1, 1}, Scaled([]int{1, 2}, 0.1), "floor of one")
	assert.Equal(t, []int{300}, Scaled([]int{100}, 3))
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	data := `
benchmarks: [sort, fill_back]
types: [Trivial8, string]
scale: 0.25
output:
  json: true
  metrics_file: /tmp/contbench.prom
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"sort", "fill_back"}, cfg.Benchmarks)
	assert.Equal(t, 0.25, cfg.Scale)
	assert.Equal(t, workload.DefaultSeed, cfg.Seed, "unset seed keeps default")
	assert.True(t, cfg.Output.JSON)
	assert.Equal(t, "/tmp/contbench.prom", cfg.Output.MetricsFile)

	benchmarks, types, err := cfg.Selected()
	require.NoError(t, err)
	assert.Equal(t, "sort", benchmarks[0].Name)
	assert.Equal(t, "String", types[1].Name)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("scale: [1"), 0o600))
	_, err = LoadConfig(bad)
	assert.Error(t, err)

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("benchmarks: [nope]\nscale: -1\n"), 0o600))
	_, err = LoadConfig(unknown)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown benchmark "nope"`)
	assert.Contains(t, err.Error(), "scale must be positive")
}

func TestSelectedDefaultsToEverything(t *testing.T) {
	benchmarks, types, err := DefaultConfig().Selected()
	require.NoError(t, err)

	assert.Len(t, benchmarks, len(BenchmarkNames()))
	assert.Equal(t, TypeNames(), func() []string {
		var names []string
		for _, typ := range types {
			names = append(names, typ.Name)
		}
		return names
	}())
}

func newTestRunner(c *report.Collector, scale float64) *Runner {
	cfg := DefaultConfig()
	cfg.Scale = scale

	return NewRunner(c, cfg, quietLogger(), harness.WithRepeat(1))
}

func TestRunnerRunsWholeCatalogue(t *testing.T) {
	c := report.NewCollector()
	r := newTestRunner(c, 0.0005)

	var selected []Type
	for _, name := range []string{"Trivial8", "String", "Blob"} {
		typ, ok := LookupType(name)
		require.True(t, ok)
		selected = append(selected, typ)
	}

	require.NoError(t, r.Run(context.Background(), Benchmarks(), selected))

	graphs := c.Graphs()
	require.Len(t, graphs, len(BenchmarkNames())*len(selected))

	for _, g := range graphs {
		assert.NotEmpty(t, g.Results, g.Name)

		for _, res := range g.Results {
			size, err := strconv.Atoi(res.Group)
			require.NoError(t, err)
			assert.Positive(t, size)
		}
	}

	assert.Equal(t, "fill_back_Trivial8", graphs[0].Name)
	assert.Equal(t, "fill_back - Trivial8 (8 B)", graphs[0].Title)
	assert.Equal(t, "us", graphs[0].Unit)
	assert.Equal(t,
		[]string{"vector", "list", "deque", "ilist", "vector_reserve", "colony", "colony_reserve"},
		seriesOf(graphs[0]))
}

func TestRunnerSeries(t *testing.T) {
	tests := []struct {
		bench string
		typ   string
		want  []string
	}{
		{"fill_front", "Trivial8", []string{"vector", "list", "deque", "ilist"}},
		{"fill_front", "Trivial1024", []string{"list", "deque", "ilist"}},
		{"random_insert", "Trivial8", []string{"vector", "list", "deque", "ilist"}},
		{"random_remove", "Trivial8", []string{
			"vector", "list", "deque", "ilist", "colony",
			"vector_rem", "list_rem", "deque_rem", "ilist_rem", "colony_rem",
		}},
		{"sort", "Trivial32", []string{"vector", "list", "deque", "ilist", "colony", "colony_timsort"}},
		{"reverse", "Trivial8", []string{
			"vector", "list", "deque", "ilist", "ilist_safe", "ilist_auto_unlink", "colony",
		}},
		{"fill_back_backup", "Trivial8", []string{"vector", "vector_reserve", "list", "deque", "ilist"}},
	}

	for _, tt := range tests {
		t.Run(tt.bench+"/"+tt.typ, func(t *testing.T) {
			b, ok := LookupBenchmark(tt.bench)
			require.True(t, ok)
			typ, ok := LookupType(tt.typ)
			require.True(t, ok)

			c := report.NewCollector()
			require.NoError(t, newTestRunner(c, 0.001).Run(context.Background(), []Benchmark{b}, []Type{typ}))

			graphs := c.Graphs()
			require.Len(t, graphs, 1)
			assert.Equal(t, tt.want, seriesOf(graphs[0]))
			assert.Len(t, graphs[0].Results, len(tt.want)*len(b.Sizes))
		})
	}
}

func TestRunnerSkipsSmallOnlyForLargeTypes(t *testing.T) {
	find, _ := LookupBenchmark("find")
	big, _ := LookupType("Trivial4096")

	c := report.NewCollector()
	require.NoError(t, newTestRunner(c, 0.001).Run(context.Background(), []Benchmark{find}, []Type{big}))

	assert.Empty(t, c.Graphs())
}

func TestRunnerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := report.NewCollector()
	err := newTestRunner(c, 0.001).Run(ctx, Benchmarks(), Types())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, c.Graphs())
}
