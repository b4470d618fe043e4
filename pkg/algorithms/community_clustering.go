package algorithms

import "github.com/dd0wney/cluso-conclave/pkg/network"

// ClusteringCoefficient computes the unweighted local clustering coefficient
// of every node: closed neighbour pairs over possible neighbour pairs. Nodes
// with fewer than two neighbours score 0.
func ClusteringCoefficient(g *network.Graph) []float64 {
	n := g.NodeCount()
	coefficients := make([]float64, n)

	for i := 0; i < n; i++ {
		neighbors := g.Neighbors(i)
		k := len(neighbors)
		if k < 2 {
			continue
		}

		triangles := 0
		for a := 0; a < k; a++ {
			for b := a + 1; b < k; b++ {
				if _, ok := g.EdgeWeight(neighbors[a].Node, neighbors[b].Node); ok {
					triangles++
				}
			}
		}

		possibleTriangles := k * (k - 1) / 2
		coefficients[i] = float64(triangles) / float64(possibleTriangles)
	}

	return coefficients
}

// AverageClusteringCoefficient computes the mean local clustering coefficient
// over all nodes. An empty graph returns 0 and false.
func AverageClusteringCoefficient(g *network.Graph) (float64, bool) {
	coefficients := ClusteringCoefficient(g)
	if len(coefficients) == 0 {
		return 0, false
	}

	sum := 0.0
	for _, coef := range coefficients {
		sum += coef
	}
	return sum / float64(len(coefficients)), true
}
