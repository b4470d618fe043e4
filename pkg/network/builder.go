package network

import (
	"github.com/dd0wney/cluso-conclave/pkg/cardinal"
	"github.com/dd0wney/cluso-conclave/pkg/logging"
	"github.com/dd0wney/cluso-conclave/pkg/metrics"
	"github.com/dd0wney/cluso-conclave/pkg/parallel"
	"github.com/dd0wney/cluso-conclave/pkg/similarity"
)

// BuildOptions configures graph construction
type BuildOptions struct {
	// Workers is the number of goroutines scoring pairs. 0 uses GOMAXPROCS, 1 is sequential.
	Workers int
	// Weigher scores pairs. nil uses the default rule set.
	Weigher *similarity.Weigher
	Logger  logging.Logger
	Metrics *metrics.Registry
}

// DefaultBuildOptions scores pairs sequentially with the default rules
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{Workers: 1}
}

// Build scores every unordered pair of cardinals once and keeps pairs with
// positive weight as edges. The result does not depend on Workers: each row
// of the upper triangle is scored independently and rows are merged in order.
func Build(store *cardinal.Store, opts BuildOptions) (*Graph, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	weigher := opts.Weigher
	if weigher == nil {
		weigher = similarity.NewWeigher()
	}
	logger := logging.OrNop(opts.Logger)

	cardinals := store.All()
	n := len(cardinals)

	rows := make([][]Edge, n)
	err := parallel.Range(opts.Workers, n, func(i int) {
		var row []Edge
		for j := i + 1; j < n; j++ {
			if w := weigher.Weight(cardinals[i], cardinals[j]); w > 0 {
				row = append(row, Edge{Source: i, Target: j, Weight: w})
			}
		}
		rows[i] = row
	})
	if err != nil {
		return nil, err
	}

	total := 0
	for _, row := range rows {
		total += len(row)
	}
	edges := make([]Edge, 0, total)
	for _, row := range rows {
		edges = append(edges, row...)
	}

	g := newGraph(cardinals)
	g.setEdges(edges)

	pairs := n * (n - 1) / 2
	opts.Metrics.RecordGraph(pairs, n, len(edges), float64(g.totalWeight))
	logger.Debug("similarity graph built",
		logging.Int("nodes", n),
		logging.Int("pairs", pairs),
		logging.Int("edges", len(edges)),
		logging.Int("isolated", g.isolatedCount()),
	)

	return g, nil
}

func (g *Graph) isolatedCount() int {
	count := 0
	for _, list := range g.adj {
		if len(list) == 0 {
			count++
		}
	}
	return count
}
