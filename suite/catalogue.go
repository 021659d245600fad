// Package suite is the benchmark catalogue: which series every benchmark
// compares, at which sizes, for which element types, and the Runner that
// drives them into a report.Collector.
package suite

import (
	"slices"
	"strings"
	"time"
)

// Benchmark describes one graph family.
type Benchmark struct {
	Name        string
	Description string
	Unit        time.Duration
	Sizes       []int
	// SmallOnly restricts the benchmark to element types of at most
	// 32 bytes.
	SmallOnly bool
}

// steps returns n sizes going up from first in increments of first.
func steps(first, n int) []int {
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = first * (i + 1)
	}

	return sizes
}

var catalogue = []Benchmark{
	{
		Name:        "fill_back",
		Description: "push a copied value to the back",
		Unit:        time.Microsecond,
		Sizes:       steps(100000, 10),
	},
	{
		Name:        "emplace_back",
		Description: "construct values at the back",
		Unit:        time.Microsecond,
		Sizes:       steps(100000, 10),
	},
	{
		Name:        "fill_front",
		Description: "push a copied value to the front",
		Unit:        time.Microsecond,
		Sizes:       steps(10000, 10),
	},
	{
		Name:        "emplace_front",
		Description: "construct values at the front",
		Unit:        time.Microsecond,
		Sizes:       steps(10000, 10),
	},
	{
		Name:        "linear_search",
		Description: "search every key in a shuffled container",
		Unit:        time.Microsecond,
		Sizes:       steps(1000, 10),
	},
	{
		Name:        "write",
		Description: "update every value in place",
		Unit:        time.Microsecond,
		Sizes:       steps(10000, 10),
	},
	{
		Name:        "random_insert",
		Description: "find a key and insert before it, 1000 times",
		Unit:        time.Millisecond,
		Sizes:       steps(10000, 10),
	},
	{
		Name:        "random_remove",
		Description: "find a key and erase it, 1000 times",
		Unit:        time.Microsecond,
		Sizes:       steps(10000, 10),
	},
	{
		Name:        "sort",
		Description: "sort a shuffled container",
		Unit:        time.Millisecond,
		Sizes:       steps(100000, 10),
	},
	{
		Name:        "reverse",
		Description: "reverse a filled container",
		Unit:        time.Microsecond,
		Sizes:       steps(100000, 10),
	},
	{
		Name:        "destruction",
		Description: "destroy a filled container",
		Unit:        time.Microsecond,
		Sizes:       steps(100000, 10),
	},
	{
		Name:        "number_crunching",
		Description: "insert random keys keeping the container sorted",
		Unit:        time.Millisecond,
		Sizes:       steps(10000, 10),
		SmallOnly:   true,
	},
	{
		Name:        "erase1",
		Description: "erase 1% of the values in one pass",
		Unit:        time.Microsecond,
		Sizes:       steps(10000, 10),
	},
	{
		Name:        "erase10",
		Description: "erase 10% of the values in one pass",
		Unit:        time.Microsecond,
		Sizes:       steps(10000, 10),
	},
	{
		Name:        "erase25",
		Description: "erase 25% of the values in one pass",
		Unit:        time.Microsecond,
		Sizes:       steps(10000, 10),
	},
	{
		Name:        "erase50",
		Description: "erase 50% of the values in one pass",
		Unit:        time.Microsecond,
		Sizes:       steps(10000, 10),
	},
	{
		Name:        "traversal",
		Description: "iterate over every value",
		Unit:        time.Microsecond,
		Sizes:       steps(10000, 10),
	},
	{
		Name:        "find",
		Description: "search every key in a shuffled container",
		Unit:        time.Microsecond,
		Sizes:       steps(10000, 10),
		SmallOnly:   true,
	},
	{
		Name:        "fill_back_backup",
		Description: "push distinct prebuilt values to the back",
		Unit:        time.Microsecond,
		Sizes:       steps(100000, 10),
	},
}

// Benchmarks returns the catalogue in run order.
func Benchmarks() []Benchmark {
	out := slices.Clone(catalogue)
	for i := range out {
		out[i].Sizes = slices.Clone(out[i].Sizes)
	}

	return out
}

// BenchmarkNames returns the names of the catalogue in run order.
func BenchmarkNames() []string {
	names := make([]string, len(catalogue))
	for i, b := range catalogue {
		names[i] = b.Name
	}

	return names
}

// LookupBenchmark finds a benchmark by name.
func LookupBenchmark(name string) (Benchmark, bool) {
	i := slices.IndexFunc(catalogue, func(b Benchmark) bool {
		return strings.EqualFold(b.Name, name)
	})
	if i < 0 {
		return Benchmark{}, false
	}

	return catalogue[i], true
}

// Scaled multiplies every size by scale, keeping at least one element.
func Scaled(sizes []int, scale float64) []int {
	out := make([]int, len(sizes))
	for i, s := range sizes {
		out[i] = max(1, int(float64(s)*scale))
	}

	return out
}
