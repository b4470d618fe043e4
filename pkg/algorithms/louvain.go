package algorithms

import (
	"math/rand/v2"

	"github.com/dd0wney/cluso-conclave/pkg/logging"
	"github.com/dd0wney/cluso-conclave/pkg/network"
	"github.com/dd0wney/cluso-conclave/pkg/validation"
)

const AlgorithmLouvain = "louvain"

// LouvainOptions configures Louvain community detection
type LouvainOptions struct {
	Seed       uint64  // 0 draws a random seed
	MaxLevels  int     // Aggregation levels
	MaxPasses  int     // Local-move sweeps per level
	MinGain    float64 // Minimum modularity improvement for another sweep
	Resolution float64 // 1 is standard modularity
	Logger     logging.Logger
}

// DefaultLouvainOptions returns default Louvain configuration
func DefaultLouvainOptions() LouvainOptions {
	return LouvainOptions{
		MaxLevels:  32,
		MaxPasses:  100,
		MinGain:    1e-7,
		Resolution: 1,
	}
}

func (o LouvainOptions) normalized() LouvainOptions {
	def := DefaultLouvainOptions()
	o.MaxLevels = validation.DefaultOrInt(o.MaxLevels, def.MaxLevels)
	o.MaxPasses = validation.DefaultOrInt(o.MaxPasses, def.MaxPasses)
	o.Resolution = validation.DefaultOrFloat(o.Resolution, def.Resolution)
	if o.MinGain < 0 {
		o.MinGain = def.MinGain
	}
	o.Logger = logging.OrNop(o.Logger)
	return o
}

// Louvain detects communities by greedy weighted modularity optimisation.
// Each level moves nodes between neighbouring communities while modularity
// improves, then contracts every community into a single node and repeats
// on the contracted graph. Node visiting order is shuffled from opts.Seed, so
// different seeds may give different partitions of similar quality.
func Louvain(g *network.Graph, opts LouvainOptions) (*CommunityDetectionResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	opts = opts.normalized()

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	n := g.NodeCount()
	wg := fromGraph(g)

	// membership of every original node in the current level's nodes
	membership := make([]int, n)
	for i := range membership {
		membership[i] = i
	}

	var levels []LouvainLevel
	if wg.m2 > 0 {
		for level := 0; level < opts.MaxLevels; level++ {
			comm, count, moves := wg.oneLevel(rng, opts)
			if moves == 0 {
				break
			}
			for i := range membership {
				membership[i] = comm[membership[i]]
			}
			q := wg.modularity(comm, count, opts.Resolution)
			levels = append(levels, LouvainLevel{
				Level:       level,
				Communities: count,
				Moves:       moves,
				Modularity:  q,
			})
			opts.Logger.Debug("louvain level complete",
				logging.Int("level", level),
				logging.Count(count),
				logging.Int("moves", moves),
				logging.Modularity(q))

			if count == len(wg.adj) {
				break
			}
			wg = wg.aggregate(comm, count)
		}
	}

	p, err := NewPartition(g, membership)
	if err != nil {
		return nil, err
	}

	result := newDetectionResult(AlgorithmLouvain, g, p)
	result.Levels = levels
	result.Seed = seed
	return result, nil
}

// oneLevel runs local-move sweeps until no node changes community, the
// improvement of a sweep drops below MinGain or MaxPasses is reached. It
// returns compact community ids for the level's nodes.
func (wg *wgraph) oneLevel(rng *rand.Rand, opts LouvainOptions) ([]int, int, int) {
	n := len(wg.adj)
	comm := make([]int, n)
	tot := make([]float64, n)
	in := make([]float64, n)
	for i := 0; i < n; i++ {
		comm[i] = i
		tot[i] = wg.k[i]
		in[i] = wg.loops[i]
	}

	res := opts.Resolution
	neighW := make([]float64, n)
	for i := range neighW {
		neighW[i] = -1
	}
	touched := make([]int, 0, 16)

	totalMoves := 0
	q := modularityFromSums(in, tot, wg.m2, res)

	for pass := 0; pass < opts.MaxPasses; pass++ {
		moved := 0
		for _, i := range rng.Perm(n) {
			ci := comm[i]
			ki := wg.k[i]

			touched = touched[:0]
			neighW[ci] = 0
			touched = append(touched, ci)
			for _, e := range wg.adj[i] {
				c := comm[e.to]
				if neighW[c] < 0 {
					neighW[c] = 0
					touched = append(touched, c)
				}
				neighW[c] += e.w
			}

			// remove i from its community
			tot[ci] -= ki
			in[ci] -= 2*neighW[ci] + wg.loops[i]

			best := ci
			bestGain := neighW[ci] - res*tot[ci]*ki/wg.m2
			for _, c := range touched {
				gain := neighW[c] - res*tot[c]*ki/wg.m2
				if gain > bestGain {
					best, bestGain = c, gain
				}
			}

			tot[best] += ki
			in[best] += 2*neighW[best] + wg.loops[i]
			comm[i] = best
			if best != ci {
				moved++
			}

			for _, c := range touched {
				neighW[c] = -1
			}
		}

		totalMoves += moved
		next := modularityFromSums(in, tot, wg.m2, res)
		improvement := next - q
		q = next
		if moved == 0 || improvement < opts.MinGain {
			break
		}
	}

	// renumber communities 0..count-1 by first appearance
	renumber := make(map[int]int)
	for i, c := range comm {
		id, ok := renumber[c]
		if !ok {
			id = len(renumber)
			renumber[c] = id
		}
		comm[i] = id
	}
	return comm, len(renumber), totalMoves
}
