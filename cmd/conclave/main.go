package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-conclave/pkg/cardinal"
	"github.com/dd0wney/cluso-conclave/pkg/logging"
	"github.com/dd0wney/cluso-conclave/pkg/metrics"
	"github.com/dd0wney/cluso-conclave/pkg/pipeline"
	"github.com/dd0wney/cluso-conclave/pkg/tabular"
)

func main() {
	var (
		input      = flag.String("input", "cardinals.csv", "Cardinals CSV file")
		configFile = flag.String("config", "", "YAML config file (defaults when empty)")
		continents = flag.String("continents", "", "YAML map of country to continent")
		outDir     = flag.String("out", ".", "Directory for edges.csv, nodes.csv, communities.csv and stats.csv")
		xlsx       = flag.Bool("xlsx", false, "Also write stats.xlsx")
		metricsOut = flag.String("metrics", "", "Write Prometheus text metrics to this file")
		seed       = flag.Uint64("seed", 0, "Louvain seed, overrides the config (0 keeps it)")
		browse     = flag.Bool("browse", false, "Browse communities interactively after the run")
	)
	flag.Parse()

	if err := run(*input, *configFile, *continents, *outDir, *xlsx, *metricsOut, *seed, *browse); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func run(input, configFile, continents, outDir string, xlsx bool, metricsOut string, seed uint64, browse bool) error {
	cfg := pipeline.DefaultConfig()
	if configFile != "" {
		loaded, err := pipeline.LoadConfig(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if seed != 0 {
		cfg.Louvain.Seed = seed
	}

	logger := logging.NewStderrLogger(logging.ParseLevel(cfg.LogLevel))

	resolver, err := loadContinents(continents)
	if err != nil {
		return err
	}

	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	records, err := tabular.ReadCardinals(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	store, err := cardinal.NewStore(records, cardinal.StoreOptions{
		Defaults: cfg.Defaults,
		Resolver: resolver,
	})
	if err != nil {
		return err
	}
	logger.Info("population loaded", logging.String("input", input), logging.Count(store.Len()))

	reg := metrics.NewRegistry()
	result, err := pipeline.Run(store, cfg, pipeline.Deps{Logger: logger, Metrics: reg})
	if err != nil {
		return err
	}

	written, err := writeOutputs(outDir, result, xlsx)
	if err != nil {
		return err
	}
	if metricsOut != "" {
		if err := prometheus.WriteToTextfile(metricsOut, reg.GetPrometheusRegistry()); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		written = append(written, metricsOut)
	}

	fmt.Println(renderSummary(result, written))

	if browse {
		if _, err := tea.NewProgram(newBrowser(result), tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("browse: %w", err)
		}
	}
	return nil
}

// loadContinents reads a flat YAML mapping such as "Italy: Europe"
func loadContinents(path string) (cardinal.ContinentResolver, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read continents: %w", err)
	}
	resolver := cardinal.StaticResolver{}
	if err := yaml.Unmarshal(data, &resolver); err != nil {
		return nil, fmt.Errorf("parse continents: %w", err)
	}
	return resolver, nil
}
