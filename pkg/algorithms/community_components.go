package algorithms

import (
	"container/list"

	"github.com/dd0wney/cluso-conclave/pkg/network"
)

const AlgorithmComponents = "components"

// componentLabels labels every node with its connected component. Components
// are numbered in order of their smallest node index.
func componentLabels(g *network.Graph) ([]int, int) {
	n := g.NodeCount()
	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}

	count := 0
	for start := 0; start < n; start++ {
		if labels[start] >= 0 {
			continue
		}

		queue := list.New()
		queue.PushBack(start)
		labels[start] = count

		for queue.Len() > 0 {
			v, ok := queue.Remove(queue.Front()).(int)
			if !ok {
				continue
			}
			for _, nb := range g.Neighbors(v) {
				if labels[nb.Node] < 0 {
					labels[nb.Node] = count
					queue.PushBack(nb.Node)
				}
			}
		}
		count++
	}
	return labels, count
}

// ConnectedComponents finds all connected components in the graph
func ConnectedComponents(g *network.Graph) (*CommunityDetectionResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	labels, _ := componentLabels(g)
	p, err := NewPartition(g, labels)
	if err != nil {
		return nil, err
	}
	return newDetectionResult(AlgorithmComponents, g, p), nil
}

// LargestComponent returns the node indices of the largest connected
// component, ascending. Ties go to the component holding the lowest index.
func LargestComponent(g *network.Graph) []int {
	labels, count := componentLabels(g)
	if count == 0 {
		return nil
	}

	sizes := make([]int, count)
	for _, c := range labels {
		sizes[c]++
	}
	best := 0
	for c := 1; c < count; c++ {
		if sizes[c] > sizes[best] {
			best = c
		}
	}

	nodes := make([]int, 0, sizes[best])
	for i, c := range labels {
		if c == best {
			nodes = append(nodes, i)
		}
	}
	return nodes
}
