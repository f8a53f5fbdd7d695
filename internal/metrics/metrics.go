// Package metrics exposes Prometheus collectors for the HTTP surface and the
// document lifecycle.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration observes HTTP request latency per route and status.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gamewatch_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// DocumentLoads counts document load attempts by outcome.
	DocumentLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamewatch_document_loads_total",
			Help: "Total number of games document load attempts",
		},
		[]string{"status"},
	)

	// DocumentGames tracks the number of games in the loaded document.
	DocumentGames = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gamewatch_document_games",
			Help: "Number of games in the loaded document",
		},
	)

	// ListQueries counts list derivations by sort key.
	ListQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamewatch_list_queries_total",
			Help: "Total number of list filter/sort derivations",
		},
		[]string{"sort"},
	)
)
