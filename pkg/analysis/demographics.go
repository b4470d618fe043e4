package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/dd0wney/cluso-conclave/pkg/network"
)

// Age bracket labels
const (
	BracketUnder70  = "<70"
	Bracket70To75   = "70-75"
	Bracket75To80   = "75-80"
	Bracket80AndOld = ">=80"
)

// CountEntry is a label with a count
type CountEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ContinentLink counts edges between two different continents. A <= B.
type ContinentLink struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Count int    `json:"count"`
}

// Demographics groups the population-level breakdowns of the graph
type Demographics struct {
	Continents           []CountEntry    `json:"continents"`
	InterContinentLinks  []ContinentLink `json:"inter_continent_links"`
	AgeBrackets          []CountEntry    `json:"age_brackets"`
	AgeDegreeCorrelation float64         `json:"age_degree_correlation"`
}

// ComputeDemographics computes every breakdown. degreeCentrality is indexed by
// node, as returned in GlobalMetrics.
func ComputeDemographics(g *network.Graph, degreeCentrality []float64) *Demographics {
	return &Demographics{
		Continents:           ContinentDistribution(g),
		InterContinentLinks:  InterContinentLinks(g),
		AgeBrackets:          AgeBrackets(g),
		AgeDegreeCorrelation: AgeCentralityCorrelation(g, degreeCentrality),
	}
}

// ContinentDistribution counts cardinals per continent, largest first, ties by name
func ContinentDistribution(g *network.Graph) []CountEntry {
	counts := make(map[string]int)
	for _, n := range g.Nodes() {
		counts[n.Cardinal.Continent]++
	}

	entries := make([]CountEntry, 0, len(counts))
	for label, count := range counts {
		entries = append(entries, CountEntry{Label: label, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Label < entries[j].Label
	})
	return entries
}

// InterContinentLinks counts edges whose endpoints sit on different
// continents, per unordered continent pair, largest first.
func InterContinentLinks(g *network.Graph) []ContinentLink {
	counts := make(map[[2]string]int)
	for _, e := range g.Edges() {
		a := g.Node(e.Source).Cardinal.Continent
		b := g.Node(e.Target).Cardinal.Continent
		if a == b {
			continue
		}
		if b < a {
			a, b = b, a
		}
		counts[[2]string{a, b}]++
	}

	links := make([]ContinentLink, 0, len(counts))
	for pair, count := range counts {
		links = append(links, ContinentLink{A: pair[0], B: pair[1], Count: count})
	}
	sort.Slice(links, func(i, j int) bool {
		if links[i].Count != links[j].Count {
			return links[i].Count > links[j].Count
		}
		if links[i].A != links[j].A {
			return links[i].A < links[j].A
		}
		return links[i].B < links[j].B
	})
	return links
}

// AgeBrackets counts cardinals in the four age brackets, youngest first.
// Every bracket is present even when empty.
func AgeBrackets(g *network.Graph) []CountEntry {
	entries := []CountEntry{
		{Label: BracketUnder70},
		{Label: Bracket70To75},
		{Label: Bracket75To80},
		{Label: Bracket80AndOld},
	}
	for _, n := range g.Nodes() {
		switch age := n.Cardinal.Age; {
		case age < 70:
			entries[0].Count++
		case age < 75:
			entries[1].Count++
		case age < 80:
			entries[2].Count++
		default:
			entries[3].Count++
		}
	}
	return entries
}

// AgeCentralityCorrelation is the Pearson correlation between age and the
// given per-node centrality. NaN when fewer than two nodes or either series
// is constant.
func AgeCentralityCorrelation(g *network.Graph, centrality []float64) float64 {
	n := g.NodeCount()
	if n < 2 || len(centrality) != n {
		return math.NaN()
	}

	ages := make([]float64, n)
	for i := range ages {
		ages[i] = float64(g.Node(i).Cardinal.Age)
	}
	if constant(ages) || constant(centrality) {
		return math.NaN()
	}
	return stat.Correlation(ages, centrality, nil)
}

func constant(xs []float64) bool {
	return floats.Min(xs) == floats.Max(xs)
}
