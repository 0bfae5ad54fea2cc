// Package metrics holds the Prometheus collectors for provider calls and the offer pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "justsearch"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by method, path and status code.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds.",
		Buckets:   []float64{0.05, 0.1, 0.3, 0.5, 1, 2, 5, 10, 20},
	}, []string{"method", "path"})

	ProviderRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provider_requests_total",
		Help:      "Total title searches sent to the provider by result status.",
	}, []string{"status"})

	ProviderRequestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "provider_request_duration_seconds",
		Help:      "Provider title search duration in seconds.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 15},
	})

	CandidatesEmittedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "candidates_emitted_total",
		Help:      "Playback candidates emitted by monetization type.",
	}, []string{"monetization"})

	OffersSkippedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "offers_skipped_total",
		Help:      "Offers dropped by the normalizer by reason.",
	}, []string{"reason"})
)

// Skip reasons.
const (
	ReasonNoURL     = "no_url"
	ReasonGate      = "preference"
	ReasonDuplicate = "duplicate"
	ReasonCategory  = "category"
)

// Provider statuses.
const (
	StatusOK        = "ok"
	StatusError     = "error"
	StatusMalformed = "malformed"
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		ProviderRequestsTotal,
		ProviderRequestDuration,
		CandidatesEmittedTotal,
		OffersSkippedTotal,
	)
}
