package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds the collectors for one pipeline process
type Registry struct {
	// Graph construction
	PairsEvaluatedTotal prometheus.Counter
	EdgesCreatedTotal   prometheus.Counter
	GraphNodes          prometheus.Gauge
	GraphEdges          prometheus.Gauge
	GraphTotalWeight    prometheus.Gauge

	// Pipeline
	PipelineRunsTotal *prometheus.CounterVec
	StageDuration     *prometheus.HistogramVec

	// Community detection
	LouvainLevels      prometheus.Gauge
	LouvainMovesTotal  prometheus.Counter
	Modularity         prometheus.Gauge
	CommunitiesTotal   prometheus.Gauge
	CommunitySize *prometheus.HistogramVec

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)
