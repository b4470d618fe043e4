package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.PairsEvaluatedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "conclave_pairs_evaluated_total",
			Help: "Cardinal pairs scored by the weighting function",
		},
	)

	r.EdgesCreatedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "conclave_edges_created_total",
			Help: "Pairs whose similarity weight was positive",
		},
	)

	r.GraphNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "conclave_graph_nodes",
			Help: "Nodes in the most recently built graph",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "conclave_graph_edges",
			Help: "Edges in the most recently built graph",
		},
	)

	r.GraphTotalWeight = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "conclave_graph_total_weight",
			Help: "Sum of edge weights in the most recently built graph",
		},
	)
}

func (r *Registry) initPipelineMetrics() {
	r.PipelineRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "conclave_pipeline_runs_total",
			Help: "Pipeline runs by outcome",
		},
		[]string{"status"},
	)

	r.StageDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "conclave_stage_duration_seconds",
			Help:    "Duration of each pipeline stage in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"stage"},
	)
}
