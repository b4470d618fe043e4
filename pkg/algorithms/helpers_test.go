package algorithms

import (
	"fmt"
	"testing"

	"github.com/dd0wney/cluso-conclave/pkg/cardinal"
	"github.com/dd0wney/cluso-conclave/pkg/network"
)

// setupTestGraph builds a graph of n cardinals named N0..N{n-1} over edges
func setupTestGraph(t *testing.T, n int, edges ...network.Edge) *network.Graph {
	t.Helper()

	g, err := buildGraph(n, edges)
	if err != nil {
		t.Fatalf("NewGraph() = %v", err)
	}
	return g
}

func buildGraph(n int, edges []network.Edge) (*network.Graph, error) {
	cardinals := make([]cardinal.Cardinal, n)
	for i := range cardinals {
		cardinals[i] = cardinal.Cardinal{
			Name:      fmt.Sprintf("N%d", i),
			Country:   "Italy",
			Continent: "Europe",
			Order:     "CP",
			Age:       75,
		}
	}
	return network.NewGraph(cardinals, edges)
}

// twoTriangles is two weight-5 triangles {0,1,2} and {3,4,5} joined by a
// weight-1 bridge between 2 and 3
func twoTriangles(t *testing.T) *network.Graph {
	return setupTestGraph(t, 6,
		network.Edge{Source: 0, Target: 1, Weight: 5},
		network.Edge{Source: 0, Target: 2, Weight: 5},
		network.Edge{Source: 1, Target: 2, Weight: 5},
		network.Edge{Source: 3, Target: 4, Weight: 5},
		network.Edge{Source: 3, Target: 5, Weight: 5},
		network.Edge{Source: 4, Target: 5, Weight: 5},
		network.Edge{Source: 2, Target: 3, Weight: 1},
	)
}

func assertTotal(t *testing.T, g *network.Graph, p *Partition) {
	t.Helper()

	if p.NodeCount() != g.NodeCount() {
		t.Fatalf("partition covers %d nodes, graph has %d", p.NodeCount(), g.NodeCount())
	}
	seen := make([]bool, p.Count())
	for i := 0; i < p.NodeCount(); i++ {
		c := p.Of(i)
		if c < 0 || c >= p.Count() {
			t.Fatalf("node %d in community %d outside [0,%d)", i, c, p.Count())
		}
		seen[c] = true
	}
	for c, ok := range seen {
		if !ok {
			t.Errorf("community %d has no members", c)
		}
	}
}
