package algorithms

import (
	"container/heap"
	"container/list"
	"sort"

	"github.com/dd0wney/cluso-conclave/pkg/network"
)

// RankedNode represents a node with its rank
type RankedNode struct {
	Index int
	Name  string
	Score float64
}

// brandesCentrality runs a single O(VE) Brandes pass over hop distances and
// returns raw, unnormalised node betweenness. Every unordered pair is
// accumulated once from each endpoint.
func brandesCentrality(g *network.Graph) []float64 {
	n := g.NodeCount()
	betweenness := make([]float64, n)

	stack := make([]int, 0, n)
	predecessors := make([][]int, n)
	sigma := make([]float64, n)
	distance := make([]int, n)
	delta := make([]float64, n)

	for source := 0; source < n; source++ {
		stack = stack[:0]
		for i := 0; i < n; i++ {
			predecessors[i] = predecessors[i][:0]
			sigma[i] = 0
			distance[i] = -1
			delta[i] = 0
		}
		sigma[source] = 1
		distance[source] = 0

		queue := list.New()
		queue.PushBack(source)

		for queue.Len() > 0 {
			v, ok := queue.Remove(queue.Front()).(int)
			if !ok {
				continue
			}
			stack = append(stack, v)

			for _, nb := range g.Neighbors(v) {
				w := nb.Node
				if distance[w] < 0 {
					queue.PushBack(w)
					distance[w] = distance[v] + 1
				}
				if distance[w] == distance[v]+1 {
					sigma[w] += sigma[v]
					predecessors[w] = append(predecessors[w], v)
				}
			}
		}

		// Back-propagate dependencies in order of non-increasing distance
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range predecessors[w] {
				delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
			}
			if w != source {
				betweenness[w] += delta[w]
			}
		}
	}

	return betweenness
}

// BetweennessCentrality computes betweenness centrality for all nodes.
// Measures how often a node appears on shortest paths between other nodes.
// Scores are normalised by 1/((n-1)(n-2)) when n > 2.
func BetweennessCentrality(g *network.Graph) []float64 {
	betweenness := brandesCentrality(g)

	n := len(betweenness)
	if n > 2 {
		normFactor := 1.0 / float64((n-1)*(n-2))
		for i := range betweenness {
			betweenness[i] *= normFactor
		}
	}
	return betweenness
}

// ClosenessCentrality computes closeness centrality for all nodes.
// For a node reaching r other nodes at total distance d the score is
// (r/d)*(r/(n-1)), which keeps disconnected graphs comparable. Nodes that
// reach nothing score 0.
func ClosenessCentrality(g *network.Graph) []float64 {
	n := g.NodeCount()
	closeness := make([]float64, n)
	if n < 2 {
		return closeness
	}

	for source := 0; source < n; source++ {
		totalDistance := 0
		reachable := 0
		for _, d := range BFSDistances(g, source) {
			if d > 0 {
				totalDistance += d
				reachable++
			}
		}

		if totalDistance > 0 {
			r := float64(reachable)
			closeness[source] = (r / float64(totalDistance)) * (r / float64(n-1))
		}
	}
	return closeness
}

// DegreeCentrality computes degree/(n-1) for all nodes. A single node graph
// scores 1.
func DegreeCentrality(g *network.Graph) []float64 {
	n := g.NodeCount()
	degree := make([]float64, n)
	if n == 1 {
		degree[0] = 1
		return degree
	}
	for i := 0; i < n; i++ {
		degree[i] = float64(g.Degree(i)) / float64(n-1)
	}
	return degree
}

// rankedNodeHeap is a min-heap of RankedNode. The root is the weakest entry:
// lowest score, and on equal scores the highest index.
type rankedNodeHeap []RankedNode

func (h rankedNodeHeap) Len() int { return len(h) }
func (h rankedNodeHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return h[i].Index > h[j].Index
}
func (h rankedNodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *rankedNodeHeap) Push(x any) {
	*h = append(*h, x.(RankedNode))
}

func (h *rankedNodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// TopNodes returns the k highest scoring nodes, descending by score with ties
// broken by ascending node index.
func TopNodes(g *network.Graph, scores []float64, k int) []RankedNode {
	if k <= 0 || len(scores) == 0 {
		return nil
	}

	h := make(rankedNodeHeap, 0, k)
	heap.Init(&h)

	for i, score := range scores {
		rn := RankedNode{Index: i, Name: g.Node(i).Cardinal.Name, Score: score}
		if h.Len() < k {
			heap.Push(&h, rn)
		} else if score > h[0].Score {
			heap.Pop(&h)
			heap.Push(&h, rn)
		}
	}

	result := make([]RankedNode, h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		result[i] = heap.Pop(&h).(RankedNode)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].Index < result[j].Index
	})
	return result
}

// CentralityResult contains centrality measures for all nodes, indexed by node
type CentralityResult struct {
	Betweenness      []float64
	Closeness        []float64
	Degree           []float64
	TopByBetweenness []RankedNode
	TopByCloseness   []RankedNode
	TopByDegree      []RankedNode
}

// ComputeAllCentrality computes degree, closeness and betweenness centrality
// and ranks the top k nodes of each.
func ComputeAllCentrality(g *network.Graph, k int) (*CentralityResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	betweenness := BetweennessCentrality(g)
	closeness := ClosenessCentrality(g)
	degree := DegreeCentrality(g)

	return &CentralityResult{
		Betweenness:      betweenness,
		Closeness:        closeness,
		Degree:           degree,
		TopByBetweenness: TopNodes(g, betweenness, k),
		TopByCloseness:   TopNodes(g, closeness, k),
		TopByDegree:      TopNodes(g, degree, k),
	}, nil
}
