// Package metrics records generation counters for Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns a private registry so tests and commands do not share state.
type Recorder struct {
	registry      *prometheus.Registry
	sheetsFetched *prometheus.CounterVec
	fetchErrors   *prometheus.CounterVec
	rows          *prometheus.CounterVec
	bytesWritten  *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	lastSuccess   *prometheus.GaugeVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		sheetsFetched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "explorergen",
			Name:      "sheets_fetched_total",
			Help:      "Worksheets fetched from the sheet source.",
		}, []string{"document"}),
		fetchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "explorergen",
			Name:      "sheet_fetch_errors_total",
			Help:      "Worksheet fetches that failed.",
		}, []string{"document"}),
		rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "explorergen",
			Name:      "rows_generated_total",
			Help:      "Rows generated per explorer and block.",
		}, []string{"explorer", "block"}),
		bytesWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "explorergen",
			Name:      "bytes_written_total",
			Help:      "Encoded explorer bytes handed to the sink.",
		}, []string{"explorer"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "explorergen",
			Name:      "build_duration_seconds",
			Help:      "Time spent building and encoding one explorer.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"explorer"}),
		lastSuccess: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "explorergen",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful write per explorer.",
		}, []string{"explorer"}),
	}
	r.registry.MustRegister(r.sheetsFetched, r.fetchErrors, r.rows, r.bytesWritten, r.duration, r.lastSuccess)
	return r
}

func (r *Recorder) SheetFetched(document string) { r.sheetsFetched.WithLabelValues(document).Inc() }

func (r *Recorder) SheetFailed(document string) { r.fetchErrors.WithLabelValues(document).Inc() }

// ExplorerBuilt records one explorer's output size and build time.
func (r *Recorder) ExplorerBuilt(name string, grapherRows, columnRows, bytes int, elapsed time.Duration) {
	r.rows.WithLabelValues(name, "graphers").Add(float64(grapherRows))
	r.rows.WithLabelValues(name, "columns").Add(float64(columnRows))
	r.bytesWritten.WithLabelValues(name).Add(float64(bytes))
	r.duration.WithLabelValues(name).Observe(elapsed.Seconds())
}

func (r *Recorder) ExplorerWritten(name string, at time.Time) {
	r.lastSuccess.WithLabelValues(name).Set(float64(at.Unix()))
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the registry for tests and textfile export.
func (r *Recorder) Gatherer() prometheus.Gatherer { return r.registry }

// WriteToTextfile writes the registry for the node_exporter textfile collector.
func (r *Recorder) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
