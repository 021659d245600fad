package suite

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/weiihann/contbench/workload"
)

// Config selects what a run measures and where its results go.
type Config struct {
	// Benchmarks to run, in the given order. Empty means all.
	Benchmarks []string `yaml:"benchmarks"`
	// Types to run each benchmark for. Empty means all.
	Types []string `yaml:"types"`
	// Scale multiplies every size of the catalogue.
	Scale float64 `yaml:"scale"`
	// Seed fixes every shuffled input and random key sequence.
	Seed   int64  `yaml:"seed"`
	Output Output `yaml:"output"`
}

// Output configures the renderers run after the last graph.
type Output struct {
	JSON        bool   `yaml:"json"`
	Path        string `yaml:"path"`
	MetricsFile string `yaml:"metrics_file"`
}

// DefaultConfig runs the whole catalogue at full size.
func DefaultConfig() Config {
	return Config{
		Scale: 1,
		Seed:  workload.DefaultSeed,
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every name is known and the scale is usable.
func (c Config) Validate() error {
	var errs []error

	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %v", c.Scale))
	}

	for _, name := range c.Benchmarks {
		if _, ok := LookupBenchmark(name); !ok {
			errs = append(errs, fmt.Errorf("unknown benchmark %q", name))
		}
	}

	for _, name := range c.Types {
		if _, ok := LookupType(name); !ok {
			errs = append(errs, fmt.Errorf("unknown type %q", name))
		}
	}

	return errors.Join(errs...)
}

// Selected resolves the benchmark and type names, expanding empty lists to
// the whole catalogue.
func (c Config) Selected() ([]Benchmark, []Type, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}

	benchmarks := Benchmarks()
	if len(c.Benchmarks) > 0 {
		benchmarks = benchmarks[:0]
		for _, name := range c.Benchmarks {
			b, _ := LookupBenchmark(name)
			benchmarks = append(benchmarks, b)
		}
	}

	selected := Types()
	if len(c.Types) > 0 {
		selected = selected[:0]
		for _, name := range c.Types {
			t, _ := LookupType(name)
			selected = append(selected, t)
		}
	}

	return benchmarks, selected, nil
}
