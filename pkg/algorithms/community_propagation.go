package algorithms

import (
	"github.com/dd0wney/cluso-conclave/pkg/network"
	"github.com/dd0wney/cluso-conclave/pkg/validation"
)

const AlgorithmLabelPropagation = "label_propagation"

// DefaultLabelPropagationIterations bounds LabelPropagation when maxIterations <= 0
const DefaultLabelPropagationIterations = 100

// LabelPropagation performs weighted label propagation for community detection.
// Nodes are visited in index order and adopt the label with the largest total
// edge weight among their neighbours. Ties keep the current label when it is
// among the best, otherwise the smallest label wins, so results are
// deterministic.
func LabelPropagation(g *network.Graph, maxIterations int) (*CommunityDetectionResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	maxIterations = validation.DefaultOrInt(maxIterations, DefaultLabelPropagationIterations)

	n := g.NodeCount()
	labels := make([]int, n)
	for i := range labels {
		labels[i] = i
	}

	for iter := 0; iter < maxIterations; iter++ {
		changed := false

		for i := 0; i < n; i++ {
			neighbors := g.Neighbors(i)
			if len(neighbors) == 0 {
				continue
			}

			labelWeight := make(map[int]int, len(neighbors))
			for _, nb := range neighbors {
				labelWeight[labels[nb.Node]] += nb.Weight
			}

			current := labels[i]
			best, bestWeight := current, labelWeight[current]
			for label, w := range labelWeight {
				if w > bestWeight || (w == bestWeight && best != current && label < best) {
					best, bestWeight = label, w
				}
			}

			if best != current {
				labels[i] = best
				changed = true
			}
		}

		if !changed {
			break
		}
	}

	p, err := NewPartition(g, labels)
	if err != nil {
		return nil, err
	}
	return newDetectionResult(AlgorithmLabelPropagation, g, p), nil
}
