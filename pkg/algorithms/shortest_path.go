package algorithms

import (
	"container/list"

	"github.com/dd0wney/cluso-conclave/pkg/network"
)

// BFSDistances returns hop distances from src to every node, -1 when unreachable
func BFSDistances(g *network.Graph, src int) []int {
	distance := make([]int, g.NodeCount())
	for i := range distance {
		distance[i] = -1
	}
	distance[src] = 0

	queue := list.New()
	queue.PushBack(src)
	for queue.Len() > 0 {
		v, ok := queue.Remove(queue.Front()).(int)
		if !ok {
			continue
		}
		for _, nb := range g.Neighbors(v) {
			if distance[nb.Node] < 0 {
				distance[nb.Node] = distance[v] + 1
				queue.PushBack(nb.Node)
			}
		}
	}
	return distance
}

// ShortestPath returns the node indices of a shortest hop path from start to
// end, inclusive, or nil when end is unreachable.
func ShortestPath(g *network.Graph, start, end int) []int {
	if start == end {
		return []int{start}
	}

	parent := make([]int, g.NodeCount())
	for i := range parent {
		parent[i] = -1
	}
	parent[start] = start

	queue := list.New()
	queue.PushBack(start)
	for queue.Len() > 0 {
		v, ok := queue.Remove(queue.Front()).(int)
		if !ok {
			continue
		}
		for _, nb := range g.Neighbors(v) {
			if parent[nb.Node] >= 0 {
				continue
			}
			parent[nb.Node] = v
			if nb.Node == end {
				return reconstructPath(parent, start, end)
			}
			queue.PushBack(nb.Node)
		}
	}
	return nil
}

func reconstructPath(parent []int, start, end int) []int {
	path := []int{end}
	for v := end; v != start; {
		v = parent[v]
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PathStats summarises hop distances inside a connected node set
type PathStats struct {
	Nodes           int
	Diameter        int     // Largest eccentricity
	AvgShortestPath float64 // Mean over ordered pairs of distinct nodes
}

// ComponentPathStats computes diameter and average shortest path over nodes,
// which must form one connected component of g. A single node gives zeros.
func ComponentPathStats(g *network.Graph, nodes []int) PathStats {
	stats := PathStats{Nodes: len(nodes)}
	if len(nodes) < 2 {
		return stats
	}

	total := 0
	for _, src := range nodes {
		distance := BFSDistances(g, src)
		for _, dst := range nodes {
			d := distance[dst]
			if d <= 0 {
				continue
			}
			total += d
			if d > stats.Diameter {
				stats.Diameter = d
			}
		}
	}

	n := len(nodes)
	stats.AvgShortestPath = float64(total) / float64(n*(n-1))
	return stats
}
