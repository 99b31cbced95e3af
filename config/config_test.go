// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/peernet/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "peernet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "pairwise", cfg.Build.Strategy)
	assert.Equal(t, 10, cfg.Analysis.TopN)
	assert.Equal(t, 6, cfg.Columns.PeerInfluence)
	assert.Equal(t, ',', cfg.Input.Comma())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
input:
  path: data/youth.csv
  delimiter: ";"
build:
  strategy: bucketed
  workers: 4
analysis:
  top_n: 5
  strict_distance_two: true
log:
  level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "data/youth.csv", cfg.Input.Path)
	assert.Equal(t, ';', cfg.Input.Comma())
	assert.Equal(t, "bucketed", cfg.Build.Strategy)
	assert.Equal(t, 4, cfg.Build.Workers)
	assert.Equal(t, 5, cfg.Analysis.TopN)
	assert.True(t, cfg.Analysis.StrictDistanceTwo)
	assert.Equal(t, "debug", cfg.Log.Level)
	// untouched sections keep their defaults
	assert.Equal(t, 1, cfg.Columns.AgeGroup)
	assert.Equal(t, "peernet", cfg.Metrics.Namespace)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "build:\n  workers: 4\n")
	t.Setenv("PEERNET_BUILD_WORKERS", "8")
	t.Setenv("PEERNET_LOG_LEVEL", "warn")
	t.Setenv("PEERNET_ANALYSIS_STRICT_DISTANCE_TWO", "true")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Build.Workers)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Analysis.StrictDistanceTwo)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := config.Load(writeFile(t, "build:\n  strategy: grid\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(writeFile(t, "analysis:\n  top_n: 0\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(writeFile(t, "build: [unclosed\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalid)

	t.Setenv("PEERNET_BUILD_WORKERS", "many")
	_, err = config.Load("")
	assert.ErrorIs(t, err, config.ErrInvalid)
}
