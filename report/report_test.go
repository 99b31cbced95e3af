// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/peernet/analysis"
	"github.com/katalvlaran/peernet/builder"
	"github.com/katalvlaran/peernet/report"
	"github.com/katalvlaran/peernet/survey"
)

func sampleReport(t *testing.T) *analysis.Report {
	t.Helper()
	records := []survey.Record{
		{PeerInfluence: 7, AgeGroup: "10-14", SocioeconomicStatus: "Low", SmokingPrevalence: 25, DrugExperimentation: 30},
		{PeerInfluence: 8, AgeGroup: "10-14", SocioeconomicStatus: "Low", SmokingPrevalence: 30, DrugExperimentation: 35},
		{PeerInfluence: 9, AgeGroup: "10-14", SocioeconomicStatus: "Low", SmokingPrevalence: 10, DrugExperimentation: 5},
		{PeerInfluence: 1, AgeGroup: "15-19", SocioeconomicStatus: "High", SmokingPrevalence: 50, DrugExperimentation: 12.25},
	}
	net, err := builder.Build(context.Background(), records, builder.WithSymbNumb("p"))
	require.NoError(t, err)
	rep, err := analysis.Run(context.Background(), net, records)
	require.NoError(t, err)

	return rep
}

func TestRender_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, sampleReport(t), report.WithPlain()))

	// Edges: p0–p1, p0–p2, p1–p2 (peer 7,8,9 all within 2). p3 isolated.
	want := `Summary Report:

Nodes: 4, Edges: 3, Components: 2, Isolated: 1
Degree: mean 1.50, median 2.00, sd 1.00, max 2; density 0.5000

Degree Distribution (Top 10 Degrees):
Degree 0: 1
Degree 2: 3

Top 10 Nodes with the Most Distance-2 Neighbors:
Node 0: 2 distance-2 neighbors
Node 1: 2 distance-2 neighbors
Node 2: 2 distance-2 neighbors
Node 3: 0 distance-2 neighbors

Behavioral Analysis by Degree (Top 10 Degrees by Avg Smoking Prevalence):
Degree 0: Avg Smoking Prevalence = 50.00, Avg Drug Experimentation = 12.25
Degree 2: Avg Smoking Prevalence = 21.67, Avg Drug Experimentation = 23.33
`
	assert.Equal(t, want, buf.String())
}

func TestRender_TopN(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, sampleReport(t), report.WithPlain(), report.WithTopN(1)))

	out := buf.String()
	assert.Contains(t, out, "Degree Distribution (Top 1 Degrees):\nDegree 0: 1\n\n")
	assert.Contains(t, out, "Node 0: 2 distance-2 neighbors\n\n")
	assert.NotContains(t, out, "Node 1:")
	assert.NotContains(t, out, "Avg Smoking Prevalence = 21.67")
}

func TestRender_Tables(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, sampleReport(t)))

	out := buf.String()
	for _, s := range []string{
		"Summary Report",
		"Degree Distribution (Top 10 Degrees)",
		"Top 10 Nodes with the Most Distance-2 Neighbors",
		"Avg Smoking",
		"21.67",
		"p3",
		"Density",
	} {
		assert.Contains(t, out, s)
	}
	assert.True(t, strings.Contains(out, "┌") || strings.Contains(out, "+"), "bordered table")
}

func TestRender_TiesByRecordIndex(t *testing.T) {
	records := make([]survey.Record, 12)
	for i := range records {
		records[i] = survey.Record{PeerInfluence: 1, AgeGroup: fmt.Sprint("g", i), SocioeconomicStatus: "Low"}
	}
	net, err := builder.Build(context.Background(), records)
	require.NoError(t, err)
	rep, err := analysis.Run(context.Background(), net, records)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, rep, report.WithPlain(), report.WithTopN(12)))
	assert.Contains(t, buf.String(),
		"Node 1: 0 distance-2 neighbors\nNode 2: 0 distance-2 neighbors\n")
	assert.Contains(t, buf.String(),
		"Node 9: 0 distance-2 neighbors\nNode 10: 0 distance-2 neighbors\nNode 11: 0 distance-2 neighbors\n")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRender_Errors(t *testing.T) {
	assert.Error(t, report.Render(&bytes.Buffer{}, nil))
	assert.Error(t, report.Render(failingWriter{}, sampleReport(t)))
}
