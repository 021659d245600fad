package report

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// WriteMetrics writes every result as a gauge to a Prometheus textfile at
// path, for node_exporter's textfile collector to pick up.
func WriteMetrics(path string, graphs []Graph) error {
	reg := prometheus.NewRegistry()

	result := promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "contbench",
		Name:      "result",
		Help:      "Averaged trial duration in the graph unit.",
	}, []string{"graph", "series", "size", "unit"})

	for _, g := range graphs {
		for _, r := range g.Results {
			if _, err := strconv.Atoi(r.Group); err != nil {
				return fmt.Errorf("graph %s: size %q: %w", g.Name, r.Group, err)
			}

			result.WithLabelValues(g.Name, r.Series, r.Group, g.Unit).Set(float64(r.Value))
		}
	}

	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}

	return nil
}
