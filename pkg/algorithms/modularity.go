package algorithms

import (
	"sort"

	"github.com/dd0wney/cluso-conclave/pkg/network"
)

// wedge is an adjacency entry of the working graph used by Louvain
type wedge struct {
	to int
	w  float64
}

// wgraph is a weighted undirected graph with self loops, the form the
// original graph takes after each Louvain contraction. loops[i] holds the
// full A_ii contribution, so k[i] = loops[i] + sum of adj weights and the
// sum of k is always 2m.
type wgraph struct {
	adj   [][]wedge
	loops []float64
	k     []float64
	m2    float64
}

func fromGraph(g *network.Graph) *wgraph {
	n := g.NodeCount()
	wg := &wgraph{
		adj:   make([][]wedge, n),
		loops: make([]float64, n),
		k:     make([]float64, n),
	}
	for i := 0; i < n; i++ {
		for _, nb := range g.Neighbors(i) {
			wg.adj[i] = append(wg.adj[i], wedge{to: nb.Node, w: float64(nb.Weight)})
			wg.k[i] += float64(nb.Weight)
		}
		wg.m2 += wg.k[i]
	}
	return wg
}

// aggregate contracts each community into a single node
func (wg *wgraph) aggregate(comm []int, count int) *wgraph {
	next := &wgraph{
		adj:   make([][]wedge, count),
		loops: make([]float64, count),
		k:     make([]float64, count),
		m2:    wg.m2,
	}

	links := make([]map[int]float64, count)
	for i := range wg.adj {
		ci := comm[i]
		next.loops[ci] += wg.loops[i]
		for _, e := range wg.adj[i] {
			cj := comm[e.to]
			if ci == cj {
				next.loops[ci] += e.w
				continue
			}
			if links[ci] == nil {
				links[ci] = make(map[int]float64)
			}
			links[ci][cj] += e.w
		}
	}

	for c := 0; c < count; c++ {
		next.k[c] = next.loops[c]
		for to, w := range links[c] {
			next.adj[c] = append(next.adj[c], wedge{to: to, w: w})
			next.k[c] += w
		}
		sort.Slice(next.adj[c], func(a, b int) bool { return next.adj[c][a].to < next.adj[c][b].to })
	}
	return next
}

// modularity of comm over wg, with count communities
func (wg *wgraph) modularity(comm []int, count int, resolution float64) float64 {
	if wg.m2 == 0 {
		return 0
	}
	in := make([]float64, count)
	tot := make([]float64, count)
	for i := range wg.adj {
		c := comm[i]
		tot[c] += wg.k[i]
		in[c] += wg.loops[i]
		for _, e := range wg.adj[i] {
			if comm[e.to] == c {
				in[c] += e.w
			}
		}
	}
	return modularityFromSums(in, tot, wg.m2, resolution)
}

func modularityFromSums(in, tot []float64, m2, resolution float64) float64 {
	q := 0.0
	for c := range in {
		share := tot[c] / m2
		q += in[c]/m2 - resolution*share*share
	}
	return q
}

// Modularity computes weighted Newman-Girvan modularity of p over g.
// A graph without edges has modularity 0.
func Modularity(g *network.Graph, p *Partition) float64 {
	if g == nil || p == nil || !p.Matches(g) {
		return 0
	}
	return fromGraph(g).modularity(p.membership, p.count, 1)
}
