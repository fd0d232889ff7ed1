package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for a report run.
type Metrics struct {
	RecordsRead       prometheus.Counter
	RecordsDropped    prometheus.Counter
	UnrecognizedCodes prometheus.Counter
	RunDuration       prometheus.Histogram
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RecordsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_report",
			Name:      "records_read_total",
			Help:      "Total raw records extracted from the input table.",
		}),
		RecordsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_report",
			Name:      "records_dropped_total",
			Help:      "Records dropped because the event label matched no catalog entry.",
		}),
		UnrecognizedCodes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_report",
			Name:      "unrecognized_magnitude_codes_total",
			Help:      "Damage magnitude codes outside the code table, decoded with exponent 0.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "storm_report",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete extract-normalize-aggregate run.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}

	prometheus.MustRegister(
		m.RecordsRead,
		m.RecordsDropped,
		m.UnrecognizedCodes,
		m.RunDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RecordsRead:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "storm_report", Name: "records_read_total"}),
		RecordsDropped:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "storm_report", Name: "records_dropped_total"}),
		UnrecognizedCodes: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "storm_report", Name: "unrecognized_magnitude_codes_total"}),
		RunDuration:       prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "storm_report", Name: "run_duration_seconds"}),
	}
}
