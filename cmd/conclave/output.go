package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dd0wney/cluso-conclave/pkg/pipeline"
	"github.com/dd0wney/cluso-conclave/pkg/tabular"
)

// writeOutputs writes every table of result into dir and returns the paths
func writeOutputs(dir string, result *pipeline.Result, xlsx bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	outputs := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"edges.csv", func(w io.Writer) error { return tabular.WriteEdges(w, result.Graph) }},
		{"nodes.csv", func(w io.Writer) error { return tabular.WriteNodes(w, result.Graph) }},
		{"communities.csv", func(w io.Writer) error {
			return tabular.WritePartition(w, result.Graph, result.Detection.Partition)
		}},
		{"stats.csv", func(w io.Writer) error { return tabular.WriteStats(w, result.Stats) }},
	}
	if xlsx {
		outputs = append(outputs, struct {
			name  string
			write func(io.Writer) error
		}{"stats.xlsx", func(w io.Writer) error {
			return tabular.WriteStatsXLSX(w, result.Stats, result.Global)
		}})
	}

	written := make([]string, 0, len(outputs))
	for _, out := range outputs {
		path := filepath.Join(dir, out.name)
		if err := writeFile(path, out.write); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
