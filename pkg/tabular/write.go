package tabular

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"github.com/dd0wney/cluso-conclave/pkg/algorithms"
	"github.com/dd0wney/cluso-conclave/pkg/analysis"
	"github.com/dd0wney/cluso-conclave/pkg/network"
)

// Undefined is written in place of NaN metrics
const Undefined = "undefined"

var (
	edgeHeader      = []string{"Source", "Target", "Weight"}
	nodeHeader      = []string{"Id", "Country", "Continent", "Order", "Age", "Weight"}
	partitionHeader = []string{"Id", "Community"}
	statsHeader     = []string{
		"Community", "Size", "Density", "AvgDegree", "AvgWeight", "TotalWeight",
		"Countries", "Continents", "InternalEdges", "ExternalEdges", "InternalRatio",
		"AvgAge", "CBCount", "CBRatio",
	}
)

func formatFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Undefined
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeAll(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

// WriteEdges writes the edge list as Source,Target,Weight
func WriteEdges(w io.Writer, g *network.Graph) error {
	edges := g.EdgeRows()
	rows := make([][]string, len(edges))
	for i, e := range edges {
		rows[i] = []string{e.Source, e.Target, strconv.Itoa(e.Weight)}
	}
	return writeAll(w, edgeHeader, rows)
}

// WriteNodes writes the node list as Id,Country,Continent,Order,Age,Weight
func WriteNodes(w io.Writer, g *network.Graph) error {
	nodes := g.NodeRows()
	rows := make([][]string, len(nodes))
	for i, n := range nodes {
		rows[i] = []string{n.ID, n.Country, n.Continent, n.Order, strconv.Itoa(n.Age), strconv.Itoa(n.Weight)}
	}
	return writeAll(w, nodeHeader, rows)
}

// WritePartition writes one Id,Community line per node, in node order
func WritePartition(w io.Writer, g *network.Graph, p *algorithms.Partition) error {
	if !p.Matches(g) {
		return analysis.ErrForeignPartition
	}
	rows := make([][]string, g.NodeCount())
	for i := range rows {
		rows[i] = []string{g.Node(i).Cardinal.Name, strconv.Itoa(p.Of(i))}
	}
	return writeAll(w, partitionHeader, rows)
}

func statsRecord(s analysis.CommunityStats) []string {
	return []string{
		strconv.Itoa(s.ID),
		strconv.Itoa(s.Size),
		formatFloat(s.Density),
		formatFloat(s.AvgDegree),
		formatFloat(s.AvgWeight),
		strconv.Itoa(s.TotalWeight),
		strconv.Itoa(s.Countries),
		strconv.Itoa(s.Continents),
		strconv.Itoa(s.InternalEdges),
		strconv.Itoa(s.ExternalEdges),
		formatFloat(s.InternalRatio),
		formatFloat(s.AvgAge),
		strconv.Itoa(s.CBCount),
		formatFloat(s.CBRatio),
	}
}

// WriteStats writes one line per community, ordered by community ID
func WriteStats(w io.Writer, table analysis.StatsTable) error {
	stats := table.Rows()
	rows := make([][]string, len(stats))
	for i, s := range stats {
		rows[i] = statsRecord(s)
	}
	return writeAll(w, statsHeader, rows)
}
