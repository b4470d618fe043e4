package analysis

import (
	"math"

	"github.com/dd0wney/cluso-conclave/pkg/algorithms"
	"github.com/dd0wney/cluso-conclave/pkg/network"
)

// GlobalOptions configures ComputeGlobalMetrics
type GlobalOptions struct {
	TopK int // Entries per centrality ranking
}

// DefaultGlobalOptions returns the rankings size used by the reports
func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{TopK: 5}
}

// GlobalMetrics describes the whole graph, independent of any partition
type GlobalMetrics struct {
	Nodes            int     `json:"nodes"`
	Edges            int     `json:"edges"`
	AvgDegree        float64 `json:"avg_degree"`
	Components       int     `json:"components"`
	LargestComponent int     `json:"largest_component"`
	Connected        bool    `json:"connected"`

	// Hop distances inside the largest connected component
	Diameter        float64 `json:"diameter"`
	AvgShortestPath float64 `json:"avg_shortest_path"`

	AvgClustering float64 `json:"avg_clustering"`

	TopDegree      []algorithms.RankedNode `json:"top_degree"`
	TopCloseness   []algorithms.RankedNode `json:"top_closeness"`
	TopBetweenness []algorithms.RankedNode `json:"top_betweenness"`

	// Per-node scores, indexed by node
	DegreeCentrality []float64 `json:"-"`
}

// ComputeGlobalMetrics computes counts, path metrics, clustering and
// centrality rankings. On an empty graph every ratio is NaN and the rankings
// are empty. Path metrics of a disconnected graph cover its largest component,
// and stay NaN when the graph has no edges.
func ComputeGlobalMetrics(g *network.Graph, opts GlobalOptions) (*GlobalMetrics, error) {
	if g == nil {
		return nil, algorithms.ErrNilGraph
	}
	if opts.TopK <= 0 {
		opts.TopK = DefaultGlobalOptions().TopK
	}

	n := g.NodeCount()
	m := &GlobalMetrics{
		Nodes:           n,
		Edges:           g.EdgeCount(),
		AvgDegree:       math.NaN(),
		Diameter:        math.NaN(),
		AvgShortestPath: math.NaN(),
		AvgClustering:   math.NaN(),
	}
	if n == 0 {
		return m, nil
	}

	m.AvgDegree = 2 * float64(m.Edges) / float64(n)

	components, err := algorithms.ConnectedComponents(g)
	if err != nil {
		return nil, err
	}
	m.Components = len(components.Communities)
	m.Connected = m.Components == 1

	largest := algorithms.LargestComponent(g)
	m.LargestComponent = len(largest)
	if len(largest) > 1 {
		paths := algorithms.ComponentPathStats(g, largest)
		m.Diameter = float64(paths.Diameter)
		m.AvgShortestPath = paths.AvgShortestPath
	}

	if avg, ok := algorithms.AverageClusteringCoefficient(g); ok {
		m.AvgClustering = avg
	}

	centrality, err := algorithms.ComputeAllCentrality(g, opts.TopK)
	if err != nil {
		return nil, err
	}
	m.TopDegree = centrality.TopByDegree
	m.TopCloseness = centrality.TopByCloseness
	m.TopBetweenness = centrality.TopByBetweenness
	m.DegreeCentrality = centrality.Degree

	return m, nil
}
