package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/dd0wney/cluso-conclave/pkg/algorithms"
	"github.com/dd0wney/cluso-conclave/pkg/analysis"
	"github.com/dd0wney/cluso-conclave/pkg/cardinal"
	"github.com/dd0wney/cluso-conclave/pkg/network"
)

var (
	countries = map[string]string{
		"Italy": "Europe", "Spain": "Europe", "France": "Europe", "Poland": "Europe",
		"Brazil": "South America", "Argentina": "South America",
		"United States": "North America", "Mexico": "North America",
		"Nigeria": "Africa", "Ghana": "Africa",
		"India": "Asia", "Philippines": "Asia", "Japan": "Asia",
		"Australia": "Oceania",
	}
	countryNames = []string{
		"Italy", "Spain", "France", "Poland", "Brazil", "Argentina", "United States",
		"Mexico", "Nigeria", "Ghana", "India", "Philippines", "Japan", "Australia",
	}
	orders = []string{"CB", "CP", "CD"}
	popes  = []string{"John Paul II", "Benedict XVI", "Francis"}
)

// population generates n cardinals with attributes drawn from rng
func population(n int, rng *rand.Rand) []cardinal.Cardinal {
	cs := make([]cardinal.Cardinal, n)
	for i := range cs {
		country := countryNames[rng.IntN(len(countryNames))]
		pope := popes[rng.IntN(len(popes))]
		cs[i] = cardinal.Cardinal{
			Name:           fmt.Sprintf("cardinal-%04d", i),
			Country:        country,
			Continent:      countries[country],
			Order:          orders[rng.IntN(len(orders))],
			Age:            55 + rng.IntN(40),
			Pope:           pope,
			ConsistoryDate: fmt.Sprintf("%s/%d", pope, rng.IntN(4)),
		}
	}
	return cs
}

func timed(name string, fn func() error) {
	fmt.Printf("\n📊 %s\n", name)
	start := time.Now()
	if err := fn(); err != nil {
		log.Fatalf("%s failed: %v", name, err)
	}
	fmt.Printf("✅ %s completed in %v\n", name, time.Since(start))
}

func main() {
	size := flag.Int("cardinals", 250, "Number of cardinals to generate")
	seed := flag.Uint64("seed", 1, "Seed for the generated population and Louvain")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "Workers for pair scoring")
	flag.Parse()

	fmt.Printf("🔥 Conclave - Community Pipeline Benchmark\n")
	fmt.Printf("==========================================\n\n")
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Cardinals: %d\n", *size)
	fmt.Printf("  Pairs: %d\n", *size*(*size-1)/2)
	fmt.Printf("  Workers: %d\n", *workers)

	rng := rand.New(rand.NewPCG(*seed, *seed))
	store, err := cardinal.FromCardinals(population(*size, rng)...)
	if err != nil {
		log.Fatalf("Failed to build population: %v", err)
	}

	var g *network.Graph
	for _, w := range []int{1, *workers} {
		timed(fmt.Sprintf("Graph build (%d workers)", w), func() error {
			var err error
			g, err = network.Build(store, network.BuildOptions{Workers: w})
			return err
		})
	}
	fmt.Printf("  Edges: %d, total weight %d\n", g.EdgeCount(), g.TotalWeight())

	timed("Louvain", func() error {
		opts := algorithms.DefaultLouvainOptions()
		opts.Seed = *seed
		result, err := algorithms.Louvain(g, opts)
		if err != nil {
			return err
		}
		fmt.Printf("  Communities: %d, modularity %.4f, levels %d\n",
			result.Partition.Count(), result.Modularity, len(result.Levels))
		return nil
	})

	timed("Label Propagation", func() error {
		result, err := algorithms.LabelPropagation(g, 100)
		if err != nil {
			return err
		}
		fmt.Printf("  Communities: %d, modularity %.4f\n", result.Partition.Count(), result.Modularity)
		return nil
	})

	timed("Connected Components", func() error {
		result, err := algorithms.ConnectedComponents(g)
		if err != nil {
			return err
		}
		fmt.Printf("  Components: %d\n", len(result.Communities))
		return nil
	})

	timed("Global Metrics", func() error {
		m, err := analysis.ComputeGlobalMetrics(g, analysis.DefaultGlobalOptions())
		if err != nil {
			return err
		}
		fmt.Printf("  Diameter: %.0f, avg shortest path %.3f, avg clustering %.3f\n",
			m.Diameter, m.AvgShortestPath, m.AvgClustering)
		for i, r := range m.TopBetweenness {
			fmt.Printf("    %d. %s (betweenness: %.6f)\n", i+1, r.Name, r.Score)
		}
		return nil
	})

	fmt.Printf("\n✅ Benchmark complete!\n")
}
