package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	AuditsTotal         *prometheus.CounterVec
	AuditDuration       prometheus.Histogram
	LinkChecksTotal     *prometheus.CounterVec
	LinksSkippedTotal   prometheus.Counter
	HistoryErrorsTotal  *prometheus.CounterVec
}

// New registers the service metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		AuditsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seo_audits_total",
				Help: "Total number of SEO audits.",
			},
			[]string{"outcome"}, // ok, fetch_error
		),
		AuditDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "seo_audit_duration_seconds",
				Help:    "Duration of complete SEO audits, link checks included.",
				Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
			},
		),
		LinkChecksTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seo_link_checks_total",
				Help: "Total number of outbound link checks.",
			},
			[]string{"result"}, // ok, broken
		),
		LinksSkippedTotal: f.NewCounter(
			prometheus.CounterOpts{
				Name: "seo_links_skipped_total",
				Help: "Anchors skipped because they do not resolve to http(s).",
			},
		),
		HistoryErrorsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seo_history_errors_total",
				Help: "Failures while recording audit history.",
			},
			[]string{"store"},
		),
	}
}

func (m *Metrics) IncAudit(outcome string) {
	m.AuditsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncLinkCheck(broken bool) {
	result := "ok"
	if broken {
		result = "broken"
	}
	m.LinkChecksTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) IncHistoryError(store string) {
	m.HistoryErrorsTotal.WithLabelValues(store).Inc()
}
