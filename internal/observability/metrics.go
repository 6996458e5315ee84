package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "weatherman"

// Metrics holds the Prometheus counters and histograms for report runs.
type Metrics struct {
	FilesRead       prometheus.Counter
	RowsParsed      prometheus.Counter
	MalformedFields prometheus.Counter
	FileCache       *prometheus.CounterVec // labels: result={hit,miss}

	ReportsRendered *prometheus.CounterVec   // labels: mode
	ReportErrors    *prometheus.CounterVec   // labels: mode, kind
	ReportDuration  *prometheus.HistogramVec // labels: mode
}

func newMetrics() *Metrics {
	return &Metrics{
		FilesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_read_total",
			Help:      "Weather files opened and parsed.",
		}),
		RowsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_parsed_total",
			Help:      "Data rows parsed from weather files, headers excluded.",
		}),
		MalformedFields: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "malformed_fields_total",
			Help:      "Non-numeric tokens found in numeric columns.",
		}),
		FileCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "file_cache_total",
			Help:      "Parsed-file cache lookups by result.",
		}, []string{"result"}),
		ReportsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_rendered_total",
			Help:      "Reports written to output by mode.",
		}, []string{"mode"}),
		ReportErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_errors_total",
			Help:      "Failed reports by mode and error kind.",
		}, []string{"mode", "kind"}),
		ReportDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "report_duration_seconds",
			Help:      "Time to locate, parse, aggregate and render one report.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"mode"}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.FilesRead,
		m.RowsParsed,
		m.MalformedFields,
		m.FileCache,
		m.ReportsRendered,
		m.ReportErrors,
		m.ReportDuration,
	}
}

// NewMetrics creates all metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(m.collectors()...)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, so tests can
// build as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

// WriteTextfile dumps everything g gathers to path in the text exposition
// format, for node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
