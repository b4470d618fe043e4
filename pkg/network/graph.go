package network

import (
	"fmt"
	"sort"

	"github.com/dd0wney/cluso-conclave/pkg/cardinal"
)

// Node is a cardinal plus its accumulated incident edge weight
type Node struct {
	Index    int
	Cardinal cardinal.Cardinal
	Weight   int
}

// Edge is an undirected similarity link between two node indices
type Edge struct {
	Source int
	Target int
	Weight int
}

// Neighbor is one adjacency entry
type Neighbor struct {
	Node   int
	Weight int
}

// Graph is the weighted undirected similarity graph
type Graph struct {
	nodes       []Node
	index       map[string]int
	edges       []Edge
	adj         [][]Neighbor
	totalWeight int
}

// NewGraph builds a graph from cardinals and an explicit edge list. Edge
// endpoints may be given in either order; they are normalised to Source < Target.
func NewGraph(cardinals []cardinal.Cardinal, edges []Edge) (*Graph, error) {
	g := newGraph(cardinals)
	if len(g.index) != len(cardinals) {
		return nil, ErrDuplicateNode
	}

	seen := make(map[[2]int]struct{}, len(edges))
	normalized := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.Source > e.Target {
			e.Source, e.Target = e.Target, e.Source
		}
		switch {
		case e.Source < 0 || e.Target >= len(g.nodes):
			return nil, fmt.Errorf("edge %d-%d: %w", e.Source, e.Target, ErrUnknownNode)
		case e.Source == e.Target:
			return nil, fmt.Errorf("edge %d-%d: %w", e.Source, e.Target, ErrSelfLoop)
		case e.Weight <= 0:
			return nil, fmt.Errorf("edge %d-%d weight %d: %w", e.Source, e.Target, e.Weight, ErrInvalidWeight)
		}
		key := [2]int{e.Source, e.Target}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("edge %d-%d: %w", e.Source, e.Target, ErrDuplicateEdge)
		}
		seen[key] = struct{}{}
		normalized = append(normalized, e)
	}

	sort.Slice(normalized, func(i, j int) bool {
		if normalized[i].Source != normalized[j].Source {
			return normalized[i].Source < normalized[j].Source
		}
		return normalized[i].Target < normalized[j].Target
	})

	g.setEdges(normalized)
	return g, nil
}

func newGraph(cardinals []cardinal.Cardinal) *Graph {
	g := &Graph{
		nodes: make([]Node, len(cardinals)),
		index: make(map[string]int, len(cardinals)),
		adj:   make([][]Neighbor, len(cardinals)),
	}
	for i, c := range cardinals {
		g.nodes[i] = Node{Index: i, Cardinal: c}
		g.index[c.Name] = i
	}
	return g
}

// setEdges installs edges already sorted by (Source, Target) and derives
// adjacency and node weights.
func (g *Graph) setEdges(edges []Edge) {
	g.edges = edges
	for _, e := range edges {
		g.adj[e.Source] = append(g.adj[e.Source], Neighbor{Node: e.Target, Weight: e.Weight})
		g.adj[e.Target] = append(g.adj[e.Target], Neighbor{Node: e.Source, Weight: e.Weight})
		g.nodes[e.Source].Weight += e.Weight
		g.nodes[e.Target].Weight += e.Weight
		g.totalWeight += e.Weight
	}
	for i := range g.adj {
		sort.Slice(g.adj[i], func(a, b int) bool { return g.adj[i][a].Node < g.adj[i][b].Node })
	}
}

// NodeCount returns the number of nodes
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Node returns the node at index i
func (g *Graph) Node(i int) Node {
	return g.nodes[i]
}

// NodeByName finds a node by cardinal name
func (g *Graph) NodeByName(name string) (Node, bool) {
	i, ok := g.index[name]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// Nodes returns a copy of all nodes in index order
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns a copy of all edges sorted by (Source, Target)
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Neighbors returns the adjacency list of node i sorted by neighbor index.
// The slice is shared; callers must not modify it.
func (g *Graph) Neighbors(i int) []Neighbor {
	return g.adj[i]
}

// Degree returns the number of edges incident to node i
func (g *Graph) Degree(i int) int {
	return len(g.adj[i])
}

// Weight returns the accumulated incident edge weight of node i
func (g *Graph) Weight(i int) int {
	return g.nodes[i].Weight
}

// EdgeWeight returns the weight of edge u-v, if present
func (g *Graph) EdgeWeight(u, v int) (int, bool) {
	if u < 0 || v < 0 || u >= len(g.adj) || v >= len(g.adj) {
		return 0, false
	}
	list := g.adj[u]
	k := sort.Search(len(list), func(k int) bool { return list[k].Node >= v })
	if k < len(list) && list[k].Node == v {
		return list[k].Weight, true
	}
	return 0, false
}

// TotalWeight returns the sum of all edge weights
func (g *Graph) TotalWeight() int {
	return g.totalWeight
}
