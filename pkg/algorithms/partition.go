package algorithms

import (
	"fmt"

	"github.com/dd0wney/cluso-conclave/pkg/network"
)

// Partition assigns every node of a graph to exactly one community.
// Community IDs are renumbered 0..Count()-1 in order of first appearance by
// node index. A Partition is immutable; accessors return copies.
type Partition struct {
	membership []int
	names      []string
	byName     map[string]int
	count      int
}

// NewPartition validates a membership slice against g. membership[i] is the
// community of node i; any non-negative labels are accepted and renumbered.
func NewPartition(g *network.Graph, membership []int) (*Partition, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(membership) != g.NodeCount() {
		return nil, fmt.Errorf("%w: %d assignments for %d nodes", ErrPartitionMismatch, len(membership), g.NodeCount())
	}

	p := &Partition{
		membership: make([]int, len(membership)),
		names:      make([]string, len(membership)),
		byName:     make(map[string]int, len(membership)),
	}

	relabel := make(map[int]int)
	for i, label := range membership {
		if label < 0 {
			return nil, fmt.Errorf("node %d: %w %d", i, ErrNegativeCommunity, label)
		}
		id, ok := relabel[label]
		if !ok {
			id = len(relabel)
			relabel[label] = id
		}
		name := g.Node(i).Cardinal.Name
		p.membership[i] = id
		p.names[i] = name
		p.byName[name] = id
	}
	p.count = len(relabel)

	return p, nil
}

// NodeCount returns the number of assigned nodes
func (p *Partition) NodeCount() int {
	return len(p.membership)
}

// Count returns the number of communities
func (p *Partition) Count() int {
	return p.count
}

// Of returns the community of node i
func (p *Partition) Of(i int) int {
	return p.membership[i]
}

// Community returns the community of the named cardinal
func (p *Partition) Community(name string) (int, bool) {
	id, ok := p.byName[name]
	return id, ok
}

// Membership returns a copy of the node index -> community slice
func (p *Partition) Membership() []int {
	out := make([]int, len(p.membership))
	copy(out, p.membership)
	return out
}

// Map returns a copy of the name -> community mapping
func (p *Partition) Map() map[string]int {
	out := make(map[string]int, len(p.byName))
	for k, v := range p.byName {
		out[k] = v
	}
	return out
}

// Members returns node indices per community, ascending within each community
func (p *Partition) Members() [][]int {
	members := make([][]int, p.count)
	for i, c := range p.membership {
		members[c] = append(members[c], i)
	}
	return members
}

// Sizes returns the member count of each community
func (p *Partition) Sizes() []int {
	sizes := make([]int, p.count)
	for _, c := range p.membership {
		sizes[c]++
	}
	return sizes
}

// Matches reports whether p was built for a graph with g's node identities
func (p *Partition) Matches(g *network.Graph) bool {
	if g == nil || g.NodeCount() != len(p.names) {
		return false
	}
	for i, name := range p.names {
		if g.Node(i).Cardinal.Name != name {
			return false
		}
	}
	return true
}
