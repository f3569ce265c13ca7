package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// API Client Metrics
var (
	ClientRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "api_client_requests_total",
		Help: "The total number of upstream API requests by endpoint and outcome",
	}, []string{"endpoint", "outcome"})

	ClientRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "api_client_retries_total",
		Help: "The total number of upstream API retries by endpoint",
	}, []string{"endpoint"})

	ClientMockFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "api_client_mock_fallbacks_total",
		Help: "The number of failed requests answered with mock data",
	})

	ClientRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "api_client_request_duration_seconds",
		Help:    "Time taken by a single upstream API attempt",
		Buckets: prometheus.DefBuckets,
	})
)

// Pager Metrics
var (
	PagerFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pager_fetches_total",
		Help: "The total number of pager fetch cycles by outcome",
	}, []string{"outcome"})

	PagerStaleResponses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pager_stale_responses_total",
		Help: "The number of fetch results discarded because a newer fetch was started",
	})
)

// Network Metrics
var (
	NetworkSelectionChanges = promauto.NewCounter(prometheus.CounterOpts{
		Name: "network_selection_changes_total",
		Help: "The number of times the selected network was changed",
	})
)

// HTTP API Metrics
var (
	HandlerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "api_handler_duration_seconds",
		Help:    "Time taken to serve dashboard API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "status"})
)
