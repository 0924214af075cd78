// Package telemetry provides OpenTelemetry instrumentation for the
// estimator service. It exports Prometheus metrics and provides tracing
// capabilities.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "estimator"

// Metrics holds all estimator Prometheus metrics.
type Metrics struct {
	// Conversation metrics
	QueriesProcessed  *prometheus.CounterVec
	Clarifications    *prometheus.CounterVec
	EstimatesComputed prometheus.Counter

	// Rerank metrics
	RerankDuration    prometheus.Histogram
	CandidatePoolSize prometheus.Histogram
	FilterRelaxations prometheus.Counter
	EmptyResults      prometheus.Counter

	// Catalog metrics
	CatalogErrors prometheus.Counter
}

// Provider wraps telemetry providers.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics.
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	m := &Metrics{}

	m.QueriesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "estimator_queries_processed_total",
		Help: "Total conversational turns, labeled by response status",
	}, []string{"status"})

	m.Clarifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "estimator_clarifications_total",
		Help: "Clarification questions asked, labeled by missing slot",
	}, []string{"slot"})

	m.EstimatesComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "estimator_estimates_computed_total",
		Help: "Productivity estimates successfully computed",
	})

	m.RerankDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "estimator_rerank_duration_seconds",
		Help:    "Time spent filtering, scoring and sorting a candidate pool",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
	})

	m.CandidatePoolSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "estimator_candidate_pool_size",
		Help:    "Number of candidates entering a rerank",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
	})

	m.FilterRelaxations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "estimator_filter_relaxations_total",
		Help: "Times the man-hours filter was relaxed to recover candidates",
	})

	m.EmptyResults = promauto.NewCounter(prometheus.CounterOpts{
		Name: "estimator_empty_results_total",
		Help: "Reranks that returned zero results above the confidence floor",
	})

	m.CatalogErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "estimator_catalog_errors_total",
		Help: "Catalog backend failures surfaced as data_source_missing",
	})

	return m
}

// RecordQuery records a completed conversational turn.
func (p *Provider) RecordQuery(status string) {
	p.Metrics.QueriesProcessed.WithLabelValues(status).Inc()
}

// RecordClarification records one clarification question by missing slot.
func (p *Provider) RecordClarification(slot string) {
	p.Metrics.Clarifications.WithLabelValues(slot).Inc()
}

// RecordEstimate records a computed productivity estimate.
func (p *Provider) RecordEstimate() {
	p.Metrics.EstimatesComputed.Inc()
}

// RecordRerank records the duration and outcome of a rerank call.
func (p *Provider) RecordRerank(start time.Time, poolSize, resultCount int) {
	p.Metrics.RerankDuration.Observe(time.Since(start).Seconds())
	p.Metrics.CandidatePoolSize.Observe(float64(poolSize))
	if resultCount == 0 {
		p.Metrics.EmptyResults.Inc()
	}
}

// RecordRelaxations records applications of the filter relaxation policy.
func (p *Provider) RecordRelaxations(n int) {
	if n > 0 {
		p.Metrics.FilterRelaxations.Add(float64(n))
	}
}

// RecordCatalogError records a catalog backend failure.
func (p *Provider) RecordCatalogError() {
	p.Metrics.CatalogErrors.Inc()
}

// StartSpan starts a new trace span.
// The caller is responsible for ending the span with span.End().
func (p *Provider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return p.Tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}
