package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-conclave/pkg/cardinal"
	"github.com/dd0wney/cluso-conclave/pkg/pipeline"
	"github.com/dd0wney/cluso-conclave/pkg/tabular"
)

func testResult(t *testing.T, input, continents string) *pipeline.Result {
	t.Helper()

	f, err := os.Open(input)
	require.NoError(t, err)
	defer f.Close()
	records, err := tabular.ReadCardinals(f)
	require.NoError(t, err)

	resolver, err := loadContinents(continents)
	require.NoError(t, err)
	store, err := cardinal.NewStore(records, cardinal.StoreOptions{Resolver: resolver})
	require.NoError(t, err)

	cfg := pipeline.DefaultConfig()
	cfg.Louvain.Seed = 3
	result, err := pipeline.Run(store, cfg, pipeline.Deps{})
	require.NoError(t, err)
	return result
}
