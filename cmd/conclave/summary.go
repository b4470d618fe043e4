package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-conclave/pkg/algorithms"
	"github.com/dd0wney/cluso-conclave/pkg/pipeline"
	"github.com/dd0wney/cluso-conclave/pkg/tabular"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	statsBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(0, 2).
			MarginRight(2)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Width(20)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1)
)

func formatMetric(v float64) string {
	if math.IsNaN(v) {
		return tabular.Undefined
	}
	return fmt.Sprintf("%.3f", v)
}

func line(label, value string) string {
	return labelStyle.Render(label) + value
}

func rankingBox(title string, ranked []algorithms.RankedNode) string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(title))
	for i, r := range ranked {
		fmt.Fprintf(&s, "\n%d. %-28s %.3f", i+1, r.Name, r.Score)
	}
	return statsBoxStyle.Render(s.String())
}

// renderSummary formats the run for the terminal
func renderSummary(result *pipeline.Result, written []string) string {
	g := result.Global
	d := result.Detection

	graph := statsBoxStyle.Render(strings.Join([]string{
		headerStyle.Render("Graph"),
		line("Nodes", fmt.Sprint(g.Nodes)),
		line("Edges", fmt.Sprint(g.Edges)),
		line("Avg degree", formatMetric(g.AvgDegree)),
		line("Components", fmt.Sprint(g.Components)),
		line("Largest component", fmt.Sprint(g.LargestComponent)),
		line("Diameter", formatMetric(g.Diameter)),
		line("Avg shortest path", formatMetric(g.AvgShortestPath)),
		line("Avg clustering", formatMetric(g.AvgClustering)),
	}, "\n"))

	communities := []string{
		headerStyle.Render("Communities"),
		line("Algorithm", d.Algorithm),
		line("Communities", fmt.Sprint(d.Partition.Count())),
		line("Modularity", formatMetric(d.Modularity)),
	}
	if d.Algorithm == algorithms.AlgorithmLouvain {
		communities = append(communities,
			line("Levels", fmt.Sprint(len(d.Levels))),
			line("Seed", fmt.Sprint(d.Seed)))
	}
	for _, s := range result.Stats.Rows() {
		communities = append(communities, line(
			fmt.Sprintf("  #%d", s.ID),
			fmt.Sprintf("size %d, density %s, internal %s", s.Size, formatMetric(s.Density), formatMetric(s.InternalRatio)),
		))
	}

	rankings := lipgloss.JoinHorizontal(lipgloss.Top,
		rankingBox("Degree", g.TopDegree),
		rankingBox("Closeness", g.TopCloseness),
		rankingBox("Betweenness", g.TopBetweenness),
	)

	var s strings.Builder
	s.WriteString(titleStyle.Render("Conclave network " + result.RunID))
	s.WriteString("\n")
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, graph, statsBoxStyle.Render(strings.Join(communities, "\n"))))
	s.WriteString("\n")
	s.WriteString(rankings)
	if len(written) > 0 {
		s.WriteString("\n")
		s.WriteString(helpStyle.Render("Wrote " + strings.Join(written, ", ")))
	}
	return s.String()
}
