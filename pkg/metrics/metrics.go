// Package metrics holds the prometheus collectors shared across the HTTP
// layer and the background workers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// HTTPRequestsTotal counts handled HTTP requests by method and status class.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shopapi_http_requests_total",
		Help: "Number of handled HTTP requests.",
	}, []string{"method", "status"})

	// HTTPRequestDuration observes request latency in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shopapi_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: DefaultBuckets,
	}, []string{"method"})

	// ShipmentEventsIngested counts tracking events accepted by source.
	ShipmentEventsIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shopapi_shipment_events_ingested_total",
		Help: "Number of new shipment events stored, by source.",
	}, []string{"source"})

	// ShipmentPolls counts poll job executions by outcome.
	ShipmentPolls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shopapi_shipment_polls_total",
		Help: "Number of shipment poll jobs run, by outcome.",
	}, []string{"outcome"})
)
