package algorithms

import (
	"errors"

	"github.com/dd0wney/cluso-conclave/pkg/network"
)

var (
	ErrNilGraph          = errors.New("nil graph")
	ErrPartitionMismatch = errors.New("partition does not cover the graph's nodes")
	ErrNegativeCommunity = errors.New("negative community id")
)

// Community represents a detected community
type Community struct {
	ID      int
	Nodes   []int    // node indices, ascending
	Names   []string // cardinal names, same order as Nodes
	Size    int
	Density float64 // Edge density within community
}

// LouvainLevel summarises one aggregation level of a Louvain run
type LouvainLevel struct {
	Level       int
	Communities int
	Moves       int
	Modularity  float64
}

// CommunityDetectionResult contains detected communities
type CommunityDetectionResult struct {
	Algorithm   string
	Communities []*Community // sorted by ID
	Modularity  float64      // Quality measure of the partitioning
	Partition   *Partition
	Levels      []LouvainLevel // Louvain only
	Seed        uint64         // Louvain only: seed that drove node ordering
}

// Sizes returns community sizes indexed by community ID
func (r *CommunityDetectionResult) Sizes() []int {
	sizes := make([]int, len(r.Communities))
	for i, c := range r.Communities {
		sizes[i] = c.Size
	}
	return sizes
}

func newDetectionResult(algorithm string, g *network.Graph, p *Partition) *CommunityDetectionResult {
	members := p.Members()
	communities := make([]*Community, len(members))

	for id, nodes := range members {
		names := make([]string, len(nodes))
		inCommunity := make(map[int]bool, len(nodes))
		for i, n := range nodes {
			names[i] = g.Node(n).Cardinal.Name
			inCommunity[n] = true
		}

		internal := 0
		for _, n := range nodes {
			for _, nb := range g.Neighbors(n) {
				if nb.Node > n && inCommunity[nb.Node] {
					internal++
				}
			}
		}

		size := len(nodes)
		density := 0.0
		if size > 1 {
			density = float64(internal) / float64(size*(size-1)/2)
		}

		communities[id] = &Community{
			ID:      id,
			Nodes:   nodes,
			Names:   names,
			Size:    size,
			Density: density,
		}
	}

	return &CommunityDetectionResult{
		Algorithm:   algorithm,
		Communities: communities,
		Modularity:  Modularity(g, p),
		Partition:   p,
	}
}
