package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "weather_analyzer"

// Metrics holds the Prometheus counters, histograms, and gauges for one analyzer run.
type Metrics struct {
	RecordsLoaded       prometheus.Counter
	DateFormatAnomalies prometheus.Counter
	LoadErrors          prometheus.Counter
	LoadDuration        prometheus.Histogram

	// Record export metrics.
	RecordsExported prometheus.Counter
	ExportErrors    prometheus.Counter

	LastRunTimestamp prometheus.Gauge
}

// NewMetrics creates and registers all analyzer metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	m.MustRegister(prometheus.DefaultRegisterer)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RecordsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_loaded_total",
			Help:      "Total weather records parsed from the input file.",
		}),
		DateFormatAnomalies: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "date_format_anomalies_total",
			Help:      "Records kept with a date in neither accepted format.",
		}),
		LoadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "load_errors_total",
			Help:      "Fatal failures while reading or parsing the input file.",
		}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "load_duration_seconds",
			Help:      "Time spent reading and parsing the input file.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		RecordsExported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_exported_total",
			Help:      "Total records published to the export topic.",
		}),
		ExportErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "export_errors_total",
			Help:      "Failed record export attempts.",
		}),
		LastRunTimestamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time at which the last report was generated.",
		}),
	}
}

// MustRegister registers every metric with reg, panicking on conflicts.
func (m *Metrics) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(m.collectors()...)
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.RecordsLoaded,
		m.DateFormatAnomalies,
		m.LoadErrors,
		m.LoadDuration,
		m.RecordsExported,
		m.ExportErrors,
		m.LastRunTimestamp,
	}
}

// WriteTextfile dumps everything g gathers to path in the Prometheus text format,
// for pickup by the node_exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
