// Package pipeline runs the batch: similarity graph, community detection,
// community statistics, global metrics and demographics, in that order.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-conclave/pkg/algorithms"
	"github.com/dd0wney/cluso-conclave/pkg/analysis"
	"github.com/dd0wney/cluso-conclave/pkg/cardinal"
	"github.com/dd0wney/cluso-conclave/pkg/logging"
	"github.com/dd0wney/cluso-conclave/pkg/metrics"
	"github.com/dd0wney/cluso-conclave/pkg/network"
)

// Stage names used in logs and metrics
const (
	StageBuild        = "build"
	StagePartition    = "partition"
	StageStats        = "community_stats"
	StageGlobal       = "global_metrics"
	StageDemographics = "demographics"
)

// ErrNilStore is returned when Run is given no population
var ErrNilStore = errors.New("nil store")

// Deps are the collaborators of a run. Both may be nil.
type Deps struct {
	Logger  logging.Logger
	Metrics *metrics.Registry
}

// Result holds every stage output of one run
type Result struct {
	RunID        string
	Graph        *network.Graph
	Detection    *algorithms.CommunityDetectionResult
	Stats        analysis.StatsTable
	Global       *analysis.GlobalMetrics
	Demographics *analysis.Demographics
}

// Run executes every stage over store. Stage outputs are immutable and each
// stage only reads the outputs of earlier ones.
func Run(store *cardinal.Store, cfg Config, deps Deps) (*Result, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	logger := logging.OrNop(deps.Logger).With(logging.RunID(runID))
	reg := deps.Metrics

	result, err := run(store, cfg, logger, reg)
	if err != nil {
		reg.RecordRun("error")
		logger.Error("pipeline failed", logging.Error(err))
		return nil, err
	}
	reg.RecordRun("ok")

	result.RunID = runID
	logger.Info("pipeline complete",
		logging.Int("nodes", result.Graph.NodeCount()),
		logging.Int("edges", result.Graph.EdgeCount()),
		logging.Int("communities", result.Detection.Partition.Count()),
		logging.Modularity(result.Detection.Modularity))
	return result, nil
}

func run(store *cardinal.Store, cfg Config, logger logging.Logger, reg *metrics.Registry) (*Result, error) {
	res := &Result{}

	err := stage(StageBuild, logger, reg, func() error {
		g, err := network.Build(store, network.BuildOptions{
			Workers: cfg.Build.Workers,
			Logger:  logger,
			Metrics: reg,
		})
		res.Graph = g
		return err
	})
	if err != nil {
		return nil, err
	}

	err = stage(StagePartition, logger, reg, func() error {
		detection, err := partition(res.Graph, cfg, logger)
		if err != nil {
			return err
		}
		res.Detection = detection
		reg.RecordPartition(detection.Algorithm, detection.Modularity, detection.Sizes())
		if detection.Algorithm == algorithms.AlgorithmLouvain {
			moves := 0
			for _, l := range detection.Levels {
				moves += l.Moves
			}
			reg.RecordLouvain(len(detection.Levels), moves)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = stage(StageStats, logger, reg, func() error {
		stats, err := analysis.ComputeCommunityStats(res.Graph, res.Detection.Partition)
		res.Stats = stats
		return err
	})
	if err != nil {
		return nil, err
	}

	err = stage(StageGlobal, logger, reg, func() error {
		global, err := analysis.ComputeGlobalMetrics(res.Graph, analysis.GlobalOptions{TopK: cfg.Metrics.TopK})
		res.Global = global
		return err
	})
	if err != nil {
		return nil, err
	}

	err = stage(StageDemographics, logger, reg, func() error {
		res.Demographics = analysis.ComputeDemographics(res.Graph, res.Global.DegreeCentrality)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func partition(g *network.Graph, cfg Config, logger logging.Logger) (*algorithms.CommunityDetectionResult, error) {
	switch cfg.Partitioner {
	case PartitionerLouvain:
		opts := cfg.LouvainOptions()
		opts.Logger = logger
		return algorithms.Louvain(g, opts)
	case PartitionerLabelPropagation:
		return algorithms.LabelPropagation(g, cfg.Propagation.MaxIterations)
	case PartitionerComponents:
		return algorithms.ConnectedComponents(g)
	default:
		return nil, fmt.Errorf("unknown partitioner %q", cfg.Partitioner)
	}
}

// stage times fn, logs its outcome and records its duration
func stage(name string, logger logging.Logger, reg *metrics.Registry, fn func() error) error {
	timer := logging.StartTimer(logger, "stage", logging.Stage(name))
	if err := fn(); err != nil {
		reg.RecordStage(name, timer.EndError(err))
		return fmt.Errorf("%s: %w", name, err)
	}
	reg.RecordStage(name, timer.End())
	return nil
}
