// Package metrics exposes Prometheus instrumentation for graph construction
// and queries.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GraphNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cinegraph_graph_nodes",
		Help: "Number of title nodes in the current graph",
	})

	GraphEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cinegraph_graph_edges",
		Help: "Number of similarity edges in the current graph",
	})

	DuplicateKeys = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cinegraph_duplicate_keys_total",
		Help: "Records that overwrote an existing node key during graph construction",
	})

	BuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinegraph_build_duration_seconds",
			Help:    "Duration of graph construction in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"strategy"},
	)

	QueryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinegraph_queries_total",
			Help: "Graph queries answered, by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinegraph_query_duration_seconds",
			Help:    "Duration of graph queries in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"operation"},
	)
)

// RecordBuild publishes the shape and cost of a freshly built graph.
func RecordBuild(strategy string, nodes, edges, duplicates int, took time.Duration) {
	GraphNodes.Set(float64(nodes))
	GraphEdges.Set(float64(edges))
	DuplicateKeys.Add(float64(duplicates))
	BuildDuration.WithLabelValues(strategy).Observe(took.Seconds())
}

// RecordQuery counts one query. Outcome is "ok", "not_found", "no_path" or "error".
func RecordQuery(operation, outcome string, took time.Duration) {
	QueryTotal.WithLabelValues(operation, outcome).Inc()
	QueryDuration.WithLabelValues(operation).Observe(took.Seconds())
}
