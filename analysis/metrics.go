package analysis

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes the outcome of a run as Prometheus collectors on a private
// registry.
type Metrics struct {
	Registry *prometheus.Registry

	codewords   prometheus.Counter
	pairs       prometheus.Counter
	distances   *prometheus.GaugeVec
	minDistance prometheus.Gauge
	patterns    prometheus.Gauge
	correctable prometheus.Gauge
	phases      *prometheus.GaugeVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		codewords: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bch", Name: "codewords_total",
			Help: "Codewords encoded and verified.",
		}),
		pairs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bch", Name: "pairs_total",
			Help: "Codeword pairs compared.",
		}),
		distances: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "bch", Name: "distance_pairs",
			Help: "Codeword pairs per Hamming distance.",
		}, []string{"distance"}),
		minDistance: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bch", Name: "min_distance",
			Help: "Minimum distance of the code.",
		}),
		patterns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bch", Name: "syndrome_patterns",
			Help: "Entries in the low-weight syndrome table.",
		}),
		correctable: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bch", Name: "syndromes_distinct",
			Help: "1 if all low-weight error patterns have distinct non-zero syndromes.",
		}),
		phases: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "bch", Name: "phase_duration_seconds",
			Help: "Wall time per analysis phase.",
		}, []string{"phase"}),
	}
	m.Registry.MustRegister(m.codewords, m.pairs, m.distances, m.minDistance, m.patterns, m.correctable, m.phases)
	return m
}

func (m *Metrics) observePhase(name string, d time.Duration) {
	if m == nil {
		return
	}
	m.phases.WithLabelValues(name).Set(d.Seconds())
}

// Observe records res. It is called by Run once all phases succeeded.
func (m *Metrics) Observe(res *Result) {
	if m == nil || res == nil {
		return
	}
	m.codewords.Add(float64(res.Codebook.Len()))
	m.pairs.Add(float64(res.Histogram.Total()))
	for _, b := range res.Histogram.Bins() {
		m.distances.WithLabelValues(strconv.Itoa(b.Distance)).Set(float64(b.Count))
	}
	if d, ok := res.Histogram.MinDistance(); ok {
		m.minDistance.Set(float64(d))
	}
	m.patterns.Set(float64(len(res.Syndromes.Entries)))
	if res.Syndromes.Correctable() {
		m.correctable.Set(1)
	} else {
		m.correctable.Set(0)
	}
}
