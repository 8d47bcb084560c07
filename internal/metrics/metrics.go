// Package metrics provides the centralized Prometheus registry for the
// trade journal.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	ImportsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "trade_journal",
		Name:      "imports_total",
		Help:      "Total number of completed imports",
	})
	ImportFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "trade_journal",
		Name:      "import_failures_total",
		Help:      "Total number of failed imports",
	})
	SummaryLinesParsedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "trade_journal",
		Name:      "summary_lines_parsed_total",
		Help:      "Total number of summary lines with a label/value pair",
	})
	SummaryLinesSkippedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "trade_journal",
		Name:      "summary_lines_skipped_total",
		Help:      "Total number of summary lines without a delimiter",
	})
	ScheduledRefreshesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "trade_journal",
		Name:      "scheduled_refreshes_total",
		Help:      "Total number of cron-triggered refresh runs",
	})
)

// Gauge metrics
var (
	TradesLoaded = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "trade_journal",
		Name:      "trades_loaded",
		Help:      "Number of trades in the current session",
	})
	NetProfit = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "trade_journal",
		Name:      "net_profit",
		Help:      "Total net profit reported by the current summary",
	})
)

// Histogram metrics
var (
	RecomputeDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "trade_journal",
		Name:      "recompute_duration_seconds",
		Help:      "Duration of derived-statistics recomputation in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	SourceFetchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "trade_journal",
		Name:      "source_fetch_duration_seconds",
		Help:      "Duration of import source fetches in seconds",
		Buckets:   prometheus.DefBuckets,
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		// Register counter metrics
		registry.MustRegister(ImportsTotal)
		registry.MustRegister(ImportFailuresTotal)
		registry.MustRegister(SummaryLinesParsedTotal)
		registry.MustRegister(SummaryLinesSkippedTotal)
		registry.MustRegister(ScheduledRefreshesTotal)

		// Register gauge metrics
		registry.MustRegister(TradesLoaded)
		registry.MustRegister(NetProfit)

		// Register histogram metrics
		registry.MustRegister(RecomputeDuration)
		registry.MustRegister(SourceFetchDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordImport records a completed import.
func RecordImport() {
	ImportsTotal.Inc()
}

// RecordImportFailure records a failed import.
func RecordImportFailure() {
	ImportFailuresTotal.Inc()
}

// RecordSummaryLines records the line counts of one summary parse.
func RecordSummaryLines(parsed, skipped int) {
	SummaryLinesParsedTotal.Add(float64(parsed))
	SummaryLinesSkippedTotal.Add(float64(skipped))
}

// RecordScheduledRefresh records a cron-triggered refresh run.
func RecordScheduledRefresh() {
	ScheduledRefreshesTotal.Inc()
}

// RecordRecompute records the duration of one recompute pass.
func RecordRecompute(durationSeconds float64) {
	RecomputeDuration.Observe(durationSeconds)
}

// RecordSourceFetch records the duration of one source fetch.
func RecordSourceFetch(durationSeconds float64) {
	SourceFetchDuration.Observe(durationSeconds)
}

// UpdateJournal updates the session gauges after a recompute.
func UpdateJournal(trades int, netProfit float64) {
	TradesLoaded.Set(float64(trades))
	NetProfit.Set(netProfit)
}
