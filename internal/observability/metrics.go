// Package observability exposes the service's prometheus instrumentation.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the counters the chat pipeline reports into.
type Metrics struct {
	ChatRequests     *prometheus.CounterVec
	ResolverFallback *prometheus.CounterVec
	CommandsDropped  *prometheus.CounterVec
	RequestDuration  prometheus.Histogram
}

// NewMetrics registers the service metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ChatRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "amy_chat_requests_total",
			Help: "Chat requests handled, by resolution mode.",
		}, []string{"mode"}),
		ResolverFallback: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "amy_resolver_fallback_total",
			Help: "Generative resolver failures that fell back to the rule-based matcher, by reason.",
		}, []string{"reason"}),
		CommandsDropped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "amy_commands_dropped_total",
			Help: "Raw UI commands dropped by the normalizer, by reason.",
		}, []string{"reason"}),
		RequestDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "amy_chat_request_duration_seconds",
			Help:    "Wall time of chat request handling.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Nop returns metrics bound to a throwaway registry, for tests and optional
// wiring.
func Nop() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}
