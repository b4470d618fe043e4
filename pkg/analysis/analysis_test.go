package analysis

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-conclave/pkg/algorithms"
	"github.com/dd0wney/cluso-conclave/pkg/cardinal"
	"github.com/dd0wney/cluso-conclave/pkg/network"
)

func buildGraph(t *testing.T, cs ...cardinal.Cardinal) *network.Graph {
	t.Helper()

	store, err := cardinal.FromCardinals(cs...)
	require.NoError(t, err)
	g, err := network.Build(store, network.DefaultBuildOptions())
	require.NoError(t, err)
	return g
}

// three linked Europeans plus an Asian who shares nothing with them; nobody
// is young or CB, so only country and continent link anyone
func isolatedPopulation(t *testing.T) *network.Graph {
	return buildGraph(t,
		cardinal.Cardinal{Name: "A", Country: "Italy", Continent: "Europe", Order: "CP", Age: 72},
		cardinal.Cardinal{Name: "B", Country: "Italy", Continent: "Europe", Order: "CP", Age: 75},
		cardinal.Cardinal{Name: "C", Country: "Spain", Continent: "Europe", Order: "CP", Age: 81},
		cardinal.Cardinal{Name: "D", Country: "Japan", Continent: "Asia", Order: "CP", Age: 85},
	)
}

func TestComputeCommunityStats(t *testing.T) {
	g := isolatedPopulation(t)
	require.Equal(t, 0, g.Weight(3), "D should be isolated")

	p, err := algorithms.NewPartition(g, []int{0, 0, 0, 1})
	require.NoError(t, err)

	table, err := ComputeCommunityStats(g, p)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, table.IDs())

	europe := table[0]
	assert.Equal(t, 3, europe.Size)
	assert.Equal(t, 1.0, europe.Density)
	assert.Equal(t, 2.0, europe.AvgDegree)
	assert.Equal(t, 6, europe.InternalEdges)
	assert.Equal(t, 0, europe.ExternalEdges)
	assert.Equal(t, 1.0, europe.InternalRatio)
	assert.Equal(t, 2, europe.Countries)
	assert.Equal(t, 1, europe.Continents)
	assert.Equal(t, 0, europe.CBCount)
	assert.Equal(t, 0.0, europe.CBRatio)
	assert.InDelta(t, (72.0+75+81)/3, europe.AvgAge, 1e-12)
	assert.Equal(t, g.Weight(0)+g.Weight(1)+g.Weight(2), europe.TotalWeight)
	assert.InDelta(t, float64(europe.TotalWeight)/3, europe.AvgWeight, 1e-12)

	isolated := table[1]
	assert.Equal(t, 1, isolated.Size)
	assert.Equal(t, 0.0, isolated.Density)
	assert.Equal(t, 0.0, isolated.AvgWeight)
	assert.True(t, IsUndefined(isolated.InternalRatio))
}

func TestComputeCommunityStats_ExternalEdgesCountedOnBothSides(t *testing.T) {
	g := isolatedPopulation(t)
	p, err := algorithms.NewPartition(g, []int{0, 0, 1, 2})
	require.NoError(t, err)

	table, err := ComputeCommunityStats(g, p)
	require.NoError(t, err)

	// A-B internal; A-C and B-C cross the boundary
	assert.Equal(t, 2, table[0].InternalEdges)
	assert.Equal(t, 2, table[0].ExternalEdges)
	assert.Equal(t, 0, table[1].InternalEdges)
	assert.Equal(t, 2, table[1].ExternalEdges)
	assert.Equal(t, 0.0, table[1].InternalRatio)
	assert.Equal(t, 0.5, table[0].InternalRatio)
}

func TestComputeCommunityStats_RejectsForeignPartition(t *testing.T) {
	g := isolatedPopulation(t)
	other := buildGraph(t, cardinal.Cardinal{Name: "X", Country: "Peru", Continent: "South America", Order: "CP", Age: 77})

	p, err := algorithms.NewPartition(other, []int{0})
	require.NoError(t, err)

	_, err = ComputeCommunityStats(g, p)
	assert.ErrorIs(t, err, ErrForeignPartition)
}

func TestStatsTable_Rows(t *testing.T) {
	table := StatsTable{2: {ID: 2}, 0: {ID: 0}, 1: {ID: 1}}
	rows := table.Rows()
	require.Len(t, rows, 3)
	for i, r := range rows {
		assert.Equal(t, i, r.ID)
	}
}

func TestComputeGlobalMetrics(t *testing.T) {
	g := isolatedPopulation(t)

	m, err := ComputeGlobalMetrics(g, GlobalOptions{TopK: 2})
	require.NoError(t, err)

	assert.Equal(t, 4, m.Nodes)
	assert.Equal(t, 3, m.Edges)
	assert.Equal(t, 1.5, m.AvgDegree)
	assert.Equal(t, 2, m.Components)
	assert.False(t, m.Connected)
	assert.Equal(t, 3, m.LargestComponent)
	assert.Equal(t, 1.0, m.Diameter)
	assert.Equal(t, 1.0, m.AvgShortestPath)
	assert.InDelta(t, 0.75, m.AvgClustering, 1e-12)

	require.Len(t, m.TopDegree, 2)
	assert.Equal(t, "A", m.TopDegree[0].Name)
	assert.Equal(t, "B", m.TopDegree[1].Name)
	require.Len(t, m.TopCloseness, 2)
	require.Len(t, m.TopBetweenness, 2)
	assert.Len(t, m.DegreeCentrality, 4)
}

func TestComputeGlobalMetrics_Empty(t *testing.T) {
	g := buildGraph(t)

	m, err := ComputeGlobalMetrics(g, DefaultGlobalOptions())
	require.NoError(t, err)

	assert.Equal(t, 0, m.Nodes)
	assert.True(t, IsUndefined(m.AvgDegree))
	assert.True(t, IsUndefined(m.Diameter))
	assert.True(t, IsUndefined(m.AvgShortestPath))
	assert.True(t, IsUndefined(m.AvgClustering))
	assert.Empty(t, m.TopDegree)
}

func TestComputeGlobalMetrics_SingleNode(t *testing.T) {
	g := buildGraph(t, cardinal.Cardinal{Name: "X", Country: "Peru", Continent: "South America", Order: "CP", Age: 77})

	m, err := ComputeGlobalMetrics(g, DefaultGlobalOptions())
	require.NoError(t, err)

	assert.True(t, IsUndefined(m.Diameter))
	assert.True(t, IsUndefined(m.AvgShortestPath))
	assert.Equal(t, 0.0, m.AvgDegree)
	assert.True(t, m.Connected)
}

func TestComputeGlobalMetrics_NoEdges(t *testing.T) {
	g, err := network.NewGraph([]cardinal.Cardinal{
		{Name: "A", Country: "Italy", Continent: "Europe", Order: "CP", Age: 72},
		{Name: "B", Country: "Peru", Continent: "South America", Order: "CD", Age: 79},
		{Name: "C", Country: "Japan", Continent: "Asia", Order: "CP", Age: 81},
	}, nil)
	require.NoError(t, err)

	m, err := ComputeGlobalMetrics(g, DefaultGlobalOptions())
	require.NoError(t, err)

	assert.Equal(t, 0, m.Edges)
	assert.Equal(t, 3, m.Components)
	assert.Equal(t, 1, m.LargestComponent)
	assert.True(t, IsUndefined(m.Diameter))
	assert.True(t, IsUndefined(m.AvgShortestPath))
	assert.Equal(t, 0.0, m.AvgDegree)
	assert.False(t, m.Connected)
}

func TestDemographics(t *testing.T) {
	g := buildGraph(t,
		cardinal.Cardinal{Name: "A", Country: "Italy", Continent: "Europe", Order: "CB", Age: 66},
		cardinal.Cardinal{Name: "B", Country: "Brazil", Continent: "South America", Order: "CP", Age: 72},
		cardinal.Cardinal{Name: "C", Country: "Spain", Continent: "Europe", Order: "CP", Age: 79},
		cardinal.Cardinal{Name: "D", Country: "Ghana", Continent: "Africa", Order: "CD", Age: 80},
	)

	d := ComputeDemographics(g, []float64{1, 1.0 / 3, 2.0 / 3, 0})

	assert.Equal(t, []CountEntry{
		{Label: "Europe", Count: 2},
		{Label: "Africa", Count: 1},
		{Label: "South America", Count: 1},
	}, d.Continents)

	assert.Equal(t, []CountEntry{
		{Label: BracketUnder70, Count: 1},
		{Label: Bracket70To75, Count: 1},
		{Label: Bracket75To80, Count: 1},
		{Label: Bracket80AndOld, Count: 1},
	}, d.AgeBrackets)

	for _, l := range d.InterContinentLinks {
		assert.NotEqual(t, l.A, l.B)
		assert.LessOrEqual(t, l.A, l.B)
	}
	assert.Less(t, d.AgeDegreeCorrelation, 0.0)
}

func TestComputeCommunityStats_CountsCB(t *testing.T) {
	g := buildGraph(t,
		cardinal.Cardinal{Name: "A", Country: "Italy", Continent: "Europe", Order: "CB", Age: 66},
		cardinal.Cardinal{Name: "B", Country: "Brazil", Continent: "South America", Order: "CP", Age: 72},
	)
	p, err := algorithms.NewPartition(g, []int{0, 0})
	require.NoError(t, err)

	table, err := ComputeCommunityStats(g, p)
	require.NoError(t, err)
	assert.Equal(t, 1, table[0].CBCount)
	assert.Equal(t, 0.5, table[0].CBRatio)
	assert.Equal(t, 69.0, table[0].AvgAge)
}

func TestAgeCentralityCorrelation_Linear(t *testing.T) {
	g := buildGraph(t,
		cardinal.Cardinal{Name: "A", Country: "Italy", Continent: "Europe", Order: "CP", Age: 70},
		cardinal.Cardinal{Name: "B", Country: "Chile", Continent: "South America", Order: "CP", Age: 75},
		cardinal.Cardinal{Name: "C", Country: "Kenya", Continent: "Africa", Order: "CP", Age: 80},
	)

	assert.InDelta(t, 1.0, AgeCentralityCorrelation(g, []float64{0.1, 0.2, 0.3}), 1e-9)
	assert.InDelta(t, -1.0, AgeCentralityCorrelation(g, []float64{3, 2, 1}), 1e-9)
}

func TestAgeCentralityCorrelation_Undefined(t *testing.T) {
	g := isolatedPopulation(t)
	assert.True(t, IsUndefined(AgeCentralityCorrelation(g, []float64{1, 1, 1, 1})))
	assert.True(t, IsUndefined(AgeCentralityCorrelation(g, []float64{1})))
}

func TestCommunityStatsProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	properties := gopter.NewProperties(parameters)

	population := gen.SliceOfN(10, gopter.CombineGens(
		gen.OneConstOf("Italy", "Spain", "Brazil", "Ghana"),
		gen.OneConstOf("CB", "CP"),
		gen.IntRange(60, 90),
	)).Map(func(rows [][]any) []cardinal.Cardinal {
		continent := map[string]string{"Italy": "Europe", "Spain": "Europe", "Brazil": "South America", "Ghana": "Africa"}
		cs := make([]cardinal.Cardinal, len(rows))
		for i, v := range rows {
			country := v[0].(string)
			cs[i] = cardinal.Cardinal{
				Name:      string(rune('A' + i)),
				Country:   country,
				Continent: continent[country],
				Order:     v[1].(string),
				Age:       v[2].(int),
			}
		}
		return cs
	})

	properties.Property("density and internal ratio stay within [0,1]", prop.ForAll(
		func(cs []cardinal.Cardinal, seed uint64) bool {
			store, err := cardinal.FromCardinals(cs...)
			if err != nil {
				return false
			}
			g, err := network.Build(store, network.DefaultBuildOptions())
			if err != nil {
				return false
			}
			result, err := algorithms.Louvain(g, algorithms.LouvainOptions{Seed: seed})
			if err != nil {
				return false
			}
			table, err := ComputeCommunityStats(g, result.Partition)
			if err != nil {
				return false
			}
			for _, s := range table {
				if s.Density < 0 || s.Density > 1 {
					return false
				}
				if !math.IsNaN(s.InternalRatio) && (s.InternalRatio < 0 || s.InternalRatio > 1) {
					return false
				}
			}
			return len(table) == result.Partition.Count()
		},
		population,
		gen.UInt64Range(1, 1<<32),
	))

	properties.TestingRun(t)
}
