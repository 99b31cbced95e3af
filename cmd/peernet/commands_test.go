// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/peernet/pipeline"
)

const sampleCSV = `year,age_group,gender,smoking_prevalence,drug_experimentation,socioeconomic_status,peer_influence
2020,10-14,Male,25,30,Low,7
2020,10-14,Female,30,35,Low,8
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestAnalyze_Plain(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "survey.csv")
	promPath := filepath.Join(dir, "peernet.prom")
	require.NoError(t, os.WriteFile(csvPath, []byte(sampleCSV), 0o600))

	out, err := execute(t, "analyze", "--plain", "--log-level", "error",
		"--strategy", "bucketed", "--top", "5", "--metrics-file", promPath, csvPath)
	require.NoError(t, err)

	assert.Contains(t, out, "Degree Distribution (Top 5 Degrees):\nDegree 1: 2\n")
	assert.Contains(t, out, "Degree 1: Avg Smoking Prevalence = 27.50, Avg Drug Experimentation = 32.50\n")

	prom, err := os.ReadFile(promPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "peernet_edges_created_total 1")
	assert.Contains(t, string(prom), "peernet_records_loaded_total 2")
}

func TestAnalyze_Errors(t *testing.T) {
	_, err := execute(t, "analyze", "--log-level", "error")
	assert.ErrorIs(t, err, pipeline.ErrNoInput)

	_, err = execute(t, "analyze", "--strategy", "grid", "x.csv")
	assert.Error(t, err)

	_, err = execute(t, "analyze", "a.csv", "b.csv")
	assert.Error(t, err)
}
