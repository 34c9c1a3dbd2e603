package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/sells-group/vessel-qa/internal/qa"
)

// Metrics are the Prometheus collectors exported on /metrics.
type Metrics struct {
	Reports  *prometheus.CounterVec
	Sheets   *prometheus.CounterVec
	Tests    *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics registers the server collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Reports: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vesselqa",
			Name:      "reports_total",
			Help:      "QA reports generated, by overall result.",
		}, []string{"result"}),
		Sheets: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vesselqa",
			Name:      "sheets_total",
			Help:      "Vessel report sheets seen, by outcome.",
		}, []string{"outcome"}),
		Tests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vesselqa",
			Name:      "tests_total",
			Help:      "Test results evaluated, by status.",
		}, []string{"status"}),
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "vesselqa",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "code"}),
	}
}

// ObserveReport records the outcome of a finished run.
func (m *Metrics) ObserveReport(r *qa.Report) {
	result := "pass"
	if !r.Passed() {
		result = "fail"
	}
	m.Reports.WithLabelValues(result).Inc()

	m.Sheets.WithLabelValues("processed").Add(float64(len(r.Summaries)))
	for _, d := range r.SkippedSheets() {
		m.Sheets.WithLabelValues(string(d.Reason)).Inc()
	}
	for _, s := range r.Summaries {
		m.Tests.WithLabelValues(string(qa.StatusPass)).Add(float64(s.Passed))
		m.Tests.WithLabelValues(string(qa.StatusFail)).Add(float64(s.Failed))
	}
}

// ObserveError records a run that failed before producing a report.
func (m *Metrics) ObserveError() {
	m.Reports.WithLabelValues("error").Inc()
}
