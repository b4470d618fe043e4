package pipeline

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-conclave/pkg/algorithms"
	"github.com/dd0wney/cluso-conclave/pkg/cardinal"
	"github.com/dd0wney/cluso-conclave/pkg/validation"
)

// Partitioner names
const (
	PartitionerLouvain          = algorithms.AlgorithmLouvain
	PartitionerLabelPropagation = algorithms.AlgorithmLabelPropagation
	PartitionerComponents       = algorithms.AlgorithmComponents
)

var errEmptyDefaults = errors.New("policy sets no default value")

var partitioners = []string{PartitionerLouvain, PartitionerLabelPropagation, PartitionerComponents}

// Config is the run configuration, usually loaded from YAML
type Config struct {
	Build       BuildConfig            `yaml:"build"`
	Partitioner string                 `yaml:"partitioner"`
	Louvain     LouvainConfig          `yaml:"louvain"`
	Propagation PropagationConfig      `yaml:"label_propagation"`
	Metrics     MetricsConfig          `yaml:"metrics"`
	Defaults    *cardinal.DefaultPolicy `yaml:"defaults"`
	LogLevel    string                 `yaml:"log_level"`
}

// BuildConfig configures graph construction
type BuildConfig struct {
	Workers int `yaml:"workers"` // 0 uses GOMAXPROCS
}

// LouvainConfig mirrors algorithms.LouvainOptions
type LouvainConfig struct {
	Seed       uint64  `yaml:"seed"` // 0 draws a random seed
	MaxLevels  int     `yaml:"max_levels"`
	MaxPasses  int     `yaml:"max_passes"`
	MinGain    float64 `yaml:"min_gain"`
	Resolution float64 `yaml:"resolution"`
}

// PropagationConfig configures the label propagation partitioner
type PropagationConfig struct {
	MaxIterations int `yaml:"max_iterations"`
}

// MetricsConfig configures global metrics
type MetricsConfig struct {
	TopK int `yaml:"top_k"`
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() Config {
	louvain := algorithms.DefaultLouvainOptions()
	return Config{
		Build:       BuildConfig{Workers: 0},
		Partitioner: PartitionerLouvain,
		Louvain: LouvainConfig{
			MaxLevels:  louvain.MaxLevels,
			MaxPasses:  louvain.MaxPasses,
			MinGain:    louvain.MinGain,
			Resolution: louvain.Resolution,
		},
		Propagation: PropagationConfig{MaxIterations: algorithms.DefaultLabelPropagationIterations},
		Metrics:     MetricsConfig{TopK: 5},
		LogLevel:    "info",
	}
}

// ParseConfig decodes YAML over DefaultConfig, so omitted keys keep their
// defaults, then validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// Validate checks every field and reports all problems at once
func (c Config) Validate() error {
	return validation.NewConfigValidator("pipeline").
		NonNegative("build.workers", c.Build.Workers).
		MaxInt("build.workers", c.Build.Workers, 1024).
		OneOf("partitioner", c.Partitioner, partitioners).
		When(c.Partitioner == PartitionerLouvain, func(v *validation.ConfigValidator) {
			v.Positive("louvain.max_levels", c.Louvain.MaxLevels).
				Positive("louvain.max_passes", c.Louvain.MaxPasses).
				NonNegativeFloat("louvain.min_gain", c.Louvain.MinGain).
				PositiveFloat("louvain.resolution", c.Louvain.Resolution)
		}).
		When(c.Partitioner == PartitionerLabelPropagation, func(v *validation.ConfigValidator) {
			v.Positive("label_propagation.max_iterations", c.Propagation.MaxIterations)
		}).
		Positive("metrics.top_k", c.Metrics.TopK).
		OneOf("log_level", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}).
		When(c.Defaults != nil, func(v *validation.ConfigValidator) {
			v.Custom("defaults", func() error {
				d := c.Defaults
				if d.Country == "" && d.Continent == "" && d.Order == "" && d.Age == nil {
					return errEmptyDefaults
				}
				return nil
			})
		}).
		When(c.Defaults != nil && c.Defaults.Age != nil, func(v *validation.ConfigValidator) {
			v.NonNegative("defaults.age", *c.Defaults.Age).
				MaxInt("defaults.age", *c.Defaults.Age, cardinal.MaxAge)
		}).
		Validate()
}

// LouvainOptions converts the config into algorithm options
func (c Config) LouvainOptions() algorithms.LouvainOptions {
	return algorithms.LouvainOptions{
		Seed:       c.Louvain.Seed,
		MaxLevels:  c.Louvain.MaxLevels,
		MaxPasses:  c.Louvain.MaxPasses,
		MinGain:    c.Louvain.MinGain,
		Resolution: c.Louvain.Resolution,
	}
}
