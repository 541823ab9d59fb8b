package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the crew center
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Cache Metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Upstream Metrics
	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamRequestDuration *prometheus.HistogramVec
	FallbacksTotal          *prometheus.CounterVec

	// Mail outbox Metrics
	MailEnqueuedTotal *prometheus.CounterVec
	MailSentTotal     prometheus.Counter
	MailFailedTotal   prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all
// metrics registered on reg. Pass prometheus.DefaultRegisterer in the server
// and a fresh prometheus.NewRegistry() in tests.
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)

	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crewcenter_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "crewcenter_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "crewcenter_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"method"},
		),

		// Cache Metrics
		CacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crewcenter_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crewcenter_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		// Upstream Metrics
		UpstreamRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crewcenter_upstream_requests_total",
				Help: "Requests issued to NOAA and fsHub by source and outcome",
			},
			[]string{"source", "outcome"},
		),
		UpstreamRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "crewcenter_upstream_request_duration_seconds",
				Help:    "Upstream request latency in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"source"},
		),
		FallbacksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crewcenter_fallbacks_total",
				Help: "Times a caller was served a fallback value instead of upstream data",
			},
			[]string{"operation"},
		),

		// Mail outbox Metrics
		MailEnqueuedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crewcenter_mail_enqueued_total",
				Help: "Messages placed on the mail outbox by kind",
			},
			[]string{"kind"},
		),
		MailSentTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "crewcenter_mail_sent_total",
				Help: "Messages handed to the mailer successfully",
			},
		),
		MailFailedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "crewcenter_mail_failed_total",
				Help: "Messages the mailer rejected",
			},
		),
	}
}

// Nop returns a registry that is not attached to any exporter
func Nop() *MetricsRegistry {
	return NewMetricsRegistry(prometheus.NewRegistry())
}
