package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sbinet/npyio"

	"github.com/observe-l/bchcode/analysis"
)

// WriteNPY writes the histogram as a dense int64 array where index d holds
// the number of pairs at distance d.
func WriteNPY(w io.Writer, h *analysis.Histogram) error {
	return npyio.Write(w, h.Dense())
}

// WriteMetrics dumps the run metrics in the Prometheus text format, for the
// node exporter textfile collector.
func WriteMetrics(path string, m *analysis.Metrics) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}
