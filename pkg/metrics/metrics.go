package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultRegistry returns the process-wide registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry with every collector initialised
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initGraphMetrics()
	r.initPipelineMetrics()
	r.initCommunityMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// All Record methods are no-ops on a nil *Registry so stages can run unmetered.

// RecordGraph records the outcome of a graph build
func (r *Registry) RecordGraph(pairs, nodes, edges int, totalWeight float64) {
	if r == nil {
		return
	}
	r.PairsEvaluatedTotal.Add(float64(pairs))
	r.EdgesCreatedTotal.Add(float64(edges))
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
	r.GraphTotalWeight.Set(totalWeight)
}

// RecordStage records how long a pipeline stage took
func (r *Registry) RecordStage(stage string, duration time.Duration) {
	if r == nil {
		return
	}
	r.StageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// RecordRun counts a finished pipeline run
func (r *Registry) RecordRun(status string) {
	if r == nil {
		return
	}
	r.PipelineRunsTotal.WithLabelValues(status).Inc()
}

// RecordPartition records the shape of a partition
func (r *Registry) RecordPartition(partitioner string, modularity float64, sizes []int) {
	if r == nil {
		return
	}
	r.Modularity.Set(modularity)
	r.CommunitiesTotal.Set(float64(len(sizes)))
	for _, s := range sizes {
		r.CommunitySize.WithLabelValues(partitioner).Observe(float64(s))
	}
}

// RecordLouvain records the work done by one Louvain run
func (r *Registry) RecordLouvain(levels, moves int) {
	if r == nil {
		return
	}
	r.LouvainLevels.Set(float64(levels))
	r.LouvainMovesTotal.Add(float64(moves))
}
