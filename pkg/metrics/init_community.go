package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initCommunityMetrics() {
	r.LouvainLevels = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "conclave_louvain_levels",
			Help: "Aggregation levels performed by the last Louvain run",
		},
	)

	r.LouvainMovesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "conclave_louvain_moves_total",
			Help: "Node moves accepted during Louvain local optimisation",
		},
	)

	r.Modularity = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "conclave_modularity",
			Help: "Weighted modularity of the last partition",
		},
	)

	r.CommunitiesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "conclave_communities",
			Help: "Communities in the last partition",
		},
	)

	r.CommunitySize = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "conclave_community_size",
			Help:    "Distribution of community sizes",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
		},
		[]string{"partitioner"},
	)
}
