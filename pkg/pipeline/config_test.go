package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, PartitionerLouvain, cfg.Partitioner)
	assert.Equal(t, 5, cfg.Metrics.TopK)
	assert.Nil(t, cfg.Defaults)
}

func TestParseConfig_OverridesKeepDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
build:
  workers: 4
louvain:
  seed: 42
  resolution: 1.5
defaults:
  continent: Unknown
  age: 75
log_level: DEBUG
`))
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Build.Workers)
	assert.Equal(t, uint64(42), cfg.Louvain.Seed)
	assert.Equal(t, 1.5, cfg.Louvain.Resolution)
	assert.Equal(t, DefaultConfig().Louvain.MaxLevels, cfg.Louvain.MaxLevels)
	require.NotNil(t, cfg.Defaults)
	assert.Equal(t, "Unknown", cfg.Defaults.Continent)
	require.NotNil(t, cfg.Defaults.Age)
	assert.Equal(t, 75, *cfg.Defaults.Age)

	opts := cfg.LouvainOptions()
	assert.Equal(t, uint64(42), opts.Seed)
	assert.Equal(t, 1.5, opts.Resolution)
}

func TestParseConfig_ReportsEveryProblem(t *testing.T) {
	_, err := ParseConfig([]byte(`
build:
  workers: -1
partitioner: spectral
metrics:
  top_k: 0
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "build.workers")
	assert.Contains(t, err.Error(), "partitioner")
	assert.Contains(t, err.Error(), "metrics.top_k")
}

func TestParseConfig_LouvainChecksOnlyWhenSelected(t *testing.T) {
	_, err := ParseConfig([]byte("louvain:\n  resolution: -2\n"))
	assert.Error(t, err)

	cfg, err := ParseConfig([]byte("partitioner: components\nlouvain:\n  resolution: -2\n"))
	require.NoError(t, err)
	assert.Equal(t, PartitionerComponents, cfg.Partitioner)
}

func TestParseConfig_RejectsBadDefaultAge(t *testing.T) {
	_, err := ParseConfig([]byte("defaults:\n  age: 400\n"))
	assert.ErrorContains(t, err, "defaults.age")
}

func TestParseConfig_RejectsEmptyDefaults(t *testing.T) {
	_, err := ParseConfig([]byte("defaults: {}\n"))
	assert.ErrorIs(t, err, errEmptyDefaults)
	assert.ErrorContains(t, err, "pipeline.defaults")

	cfg, err := ParseConfig([]byte("defaults:\n  country: Unknown\n"))
	require.NoError(t, err)
	assert.Equal(t, "Unknown", cfg.Defaults.Country)
}

func TestParseConfig_Malformed(t *testing.T) {
	_, err := ParseConfig([]byte("build: [unterminated"))
	assert.ErrorContains(t, err, "parse config")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conclave.yaml")
	require.NoError(t, os.WriteFile(path, []byte("partitioner: label_propagation\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, PartitionerLabelPropagation, cfg.Partitioner)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
