package analysis

import (
	"errors"
	"math"
	"sort"

	"github.com/dd0wney/cluso-conclave/pkg/algorithms"
	"github.com/dd0wney/cluso-conclave/pkg/network"
)

// ErrForeignPartition is returned when a partition was not built for the graph
var ErrForeignPartition = errors.New("partition does not belong to graph")

// IsUndefined reports whether v is the undefined-metric sentinel
func IsUndefined(v float64) bool {
	return math.IsNaN(v)
}

// CommunityStats describes one community
type CommunityStats struct {
	ID            int     `json:"id"`
	Size          int     `json:"size"`
	Density       float64 `json:"density"`
	AvgDegree     float64 `json:"avg_degree"` // within the community
	AvgWeight     float64 `json:"avg_weight"` // over the full graph
	TotalWeight   int     `json:"total_weight"`
	Countries     int     `json:"countries"`
	Continents    int     `json:"continents"`
	InternalEdges int     `json:"internal_edges"`
	ExternalEdges int     `json:"external_edges"`
	InternalRatio float64 `json:"internal_ratio"` // NaN without incident edges
	AvgAge        float64 `json:"avg_age"`
	CBCount       int     `json:"cb_count"`
	CBRatio       float64 `json:"cb_ratio"`
}

// StatsTable holds community statistics keyed by community ID
type StatsTable map[int]CommunityStats

// IDs returns the community IDs in ascending order
func (t StatsTable) IDs() []int {
	ids := make([]int, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Rows returns the statistics ordered by community ID
func (t StatsTable) Rows() []CommunityStats {
	rows := make([]CommunityStats, 0, len(t))
	for _, id := range t.IDs() {
		rows = append(rows, t[id])
	}
	return rows
}

// ComputeCommunityStats computes statistics for every community of p.
// Incident edges are counted from each member's side: an edge inside the
// community counts once for each endpoint, an edge leaving it counts once as
// external here and once in the neighbouring community.
func ComputeCommunityStats(g *network.Graph, p *algorithms.Partition) (StatsTable, error) {
	if g == nil || p == nil || !p.Matches(g) {
		return nil, ErrForeignPartition
	}

	table := make(StatsTable, p.Count())
	for id, members := range p.Members() {
		table[id] = communityStats(g, p, id, members)
	}
	return table, nil
}

func communityStats(g *network.Graph, p *algorithms.Partition, id int, members []int) CommunityStats {
	stats := CommunityStats{ID: id, Size: len(members)}

	countries := make(map[string]struct{})
	continents := make(map[string]struct{})
	ageSum := 0

	for _, i := range members {
		node := g.Node(i)
		c := node.Cardinal

		countries[c.Country] = struct{}{}
		continents[c.Continent] = struct{}{}
		ageSum += c.Age
		if c.Distinguished() {
			stats.CBCount++
		}
		stats.TotalWeight += node.Weight

		for _, nb := range g.Neighbors(i) {
			if p.Of(nb.Node) == id {
				stats.InternalEdges++
			} else {
				stats.ExternalEdges++
			}
		}
	}

	stats.Countries = len(countries)
	stats.Continents = len(continents)

	if stats.Size > 0 {
		size := float64(stats.Size)
		stats.AvgDegree = float64(stats.InternalEdges) / size
		stats.AvgWeight = float64(stats.TotalWeight) / size
		stats.AvgAge = float64(ageSum) / size
		stats.CBRatio = float64(stats.CBCount) / size
	}

	if stats.Size > 1 {
		possible := stats.Size * (stats.Size - 1) / 2
		stats.Density = float64(stats.InternalEdges/2) / float64(possible)
	}

	if incident := stats.InternalEdges + stats.ExternalEdges; incident > 0 {
		stats.InternalRatio = float64(stats.InternalEdges) / float64(incident)
	} else {
		stats.InternalRatio = math.NaN()
	}

	return stats
}
