// SPDX-License-Identifier: MIT

package ingest_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/peernet/ingest"
	"github.com/katalvlaran/peernet/metrics"
	"github.com/katalvlaran/peernet/survey"
)

const header = "year,age_group,gender,smoking_prevalence,drug_experimentation,socioeconomic_status,peer_influence\n"

func TestLoad_Positional(t *testing.T) {
	in := header +
		"2020,10-14,Male,25.5,30,Low,7\n" +
		"2021,15-19,Female, 12 ,8.25,High, 3 \n"

	records, err := ingest.Load(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, survey.Record{
		PeerInfluence:       7,
		AgeGroup:            "10-14",
		SocioeconomicStatus: "Low",
		SmokingPrevalence:   25.5,
		DrugExperimentation: 30,
	}, records[0])
	assert.Equal(t, 3, records[1].PeerInfluence)
	assert.Equal(t, 12.0, records[1].SmokingPrevalence)
	assert.Equal(t, 8.25, records[1].DrugExperimentation)
}

func TestLoad_FallbackToZero(t *testing.T) {
	in := header +
		"2020,10-14,Male,n/a,30,Low,seven\n" +
		"2020,10-14,Male,,x,Low,7.5\n"

	var stats ingest.LoadStats
	core, logs := observer.New(zap.DebugLevel)
	m := metrics.NewCollector("")

	records, err := ingest.Load(strings.NewReader(in),
		ingest.WithStats(&stats),
		ingest.WithLogger(zap.New(core)),
		ingest.WithMetrics(m),
	)
	require.NoError(t, err)
	require.Len(t, records, 2, "rows are never dropped")

	assert.Zero(t, records[0].PeerInfluence)
	assert.Zero(t, records[0].SmokingPrevalence)
	assert.Equal(t, 30.0, records[0].DrugExperimentation)
	assert.Zero(t, records[1].PeerInfluence)
	assert.Zero(t, records[1].SmokingPrevalence)
	assert.Zero(t, records[1].DrugExperimentation)

	assert.Equal(t, 2, stats.Rows)
	assert.Equal(t, 2, stats.Fallbacks[ingest.FieldPeerInfluence])
	assert.Equal(t, 2, stats.Fallbacks[ingest.FieldSmokingPrevalence])
	assert.Equal(t, 1, stats.Fallbacks[ingest.FieldDrugExperimentation])
	assert.Equal(t, 5, stats.TotalFallbacks())

	assert.Equal(t, 5, logs.FilterMessage("numeric field fallback").Len())
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RecordsLoaded))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.FieldFallbacks.WithLabelValues(ingest.FieldPeerInfluence)))
}

func TestLoad_HeaderOnly(t *testing.T) {
	records, err := ingest.Load(strings.NewReader(header))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoad_Errors(t *testing.T) {
	_, err := ingest.Load(strings.NewReader(""))
	assert.ErrorIs(t, err, ingest.ErrEmptyInput)

	_, err = ingest.Load(strings.NewReader(header + "2020,10-14,Male\n"))
	assert.ErrorIs(t, err, ingest.ErrMalformedRow)
	assert.Contains(t, err.Error(), "row 2")

	_, err = ingest.Load(strings.NewReader(header + "2020,\"10-14,Male,1,2,Low,3\n"))
	assert.ErrorIs(t, err, ingest.ErrMalformedRow)
}

func TestLoad_ColumnNames(t *testing.T) {
	in := "Peer,SES,Age,Drug,Smoke\n" +
		"4,Middle,15-19,1.5,2.5\n"
	names := ingest.ColumnNames{
		AgeGroup:            "age",
		SmokingPrevalence:   "smoke",
		DrugExperimentation: "drug",
		SocioeconomicStatus: "ses",
		PeerInfluence:       "peer",
	}

	records, err := ingest.Load(strings.NewReader(in), ingest.WithColumnNames(names))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, survey.Record{
		PeerInfluence:       4,
		AgeGroup:            "15-19",
		SocioeconomicStatus: "Middle",
		SmokingPrevalence:   2.5,
		DrugExperimentation: 1.5,
	}, records[0])

	names.PeerInfluence = "influence"
	_, err = ingest.Load(strings.NewReader(in), ingest.WithColumnNames(names))
	assert.ErrorIs(t, err, ingest.ErrMissingColumn)
}

func TestLoad_NonFiniteFallsBack(t *testing.T) {
	in := header +
		"2020,10-14,Male,NaN,Inf,Low,7\n" +
		"2020,10-14,Male,-inf,+Infinity,Low,8\n" +
		"2020,10-14,Male,nan,1e400,Low,9\n"

	var stats ingest.LoadStats
	records, err := ingest.Load(strings.NewReader(in), ingest.WithStats(&stats))
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, r := range records {
		assert.Zero(t, r.SmokingPrevalence, "row %d", i)
		assert.Zero(t, r.DrugExperimentation, "row %d", i)
	}
	assert.Equal(t, 3, stats.Fallbacks[ingest.FieldSmokingPrevalence])
	assert.Equal(t, 3, stats.Fallbacks[ingest.FieldDrugExperimentation])
}

func TestLoad_NegativeColumn(t *testing.T) {
	cols := ingest.DefaultColumns()
	cols.AgeGroup = -1

	_, err := ingest.Load(strings.NewReader(header+"2020,10-14,Male,1,2,Low,3\n"), ingest.WithColumns(cols))
	assert.ErrorIs(t, err, ingest.ErrInvalidColumn)
	assert.Contains(t, err.Error(), ingest.FieldAgeGroup)
}

func TestLoad_CustomColumnsAndComma(t *testing.T) {
	in := "a;b;c;d;e\n" +
		"3;10-14;Low;9.5;1\n"
	cols := ingest.Columns{PeerInfluence: 0, AgeGroup: 1, SocioeconomicStatus: 2, SmokingPrevalence: 3, DrugExperimentation: 4}

	records, err := ingest.Load(strings.NewReader(in), ingest.WithColumns(cols), ingest.WithComma(';'))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 3, records[0].PeerInfluence)
	assert.Equal(t, 9.5, records[0].SmokingPrevalence)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.csv")
	require.NoError(t, os.WriteFile(path, []byte(header+"2020,10-14,Male,1,2,Low,3\n"), 0o600))

	records, err := ingest.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = ingest.LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.Panics(t, func() { ingest.WithLogger(nil) })
}
