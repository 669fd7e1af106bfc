// Package metrics exposes run counters as prometheus metrics. A batch run
// has no scrape endpoint, instead the gathered families can be written to a
// file for the node_exporter textfile collector.
package metrics

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

//nolint:gochecknoglobals
var reg = prometheus.NewRegistry()

// RegisterMetric registers prometheus collector
func RegisterMetric(c prometheus.Collector) {
	_ = reg.Register(c)
}

// WriteToFile writes all gathered metric families in text exposition format
func WriteToFile(path string) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("can't gather metrics: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("can't create metrics file '%s': %w", path, err)
	}
	defer file.Close()

	encoder := expfmt.NewEncoder(file, expfmt.FmtText)

	for _, family := range families {
		if err := encoder.Encode(family); err != nil {
			return fmt.Errorf("can't encode metrics: %w", err)
		}
	}

	return nil
}
