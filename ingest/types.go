// SPDX-License-Identifier: MIT

package ingest

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/peernet/metrics"
)

// Sentinel errors returned by Load.
var (
	// ErrMalformedRow indicates a CSV row that cannot be decoded or is too
	// short to hold every required column.
	ErrMalformedRow = errors.New("ingest: malformed row")

	// ErrMissingColumn indicates a named column absent from the header.
	ErrMissingColumn = errors.New("ingest: missing column")

	// ErrInvalidColumn indicates a negative column position.
	ErrInvalidColumn = errors.New("ingest: invalid column position")

	// ErrEmptyInput indicates a source without a header row.
	ErrEmptyInput = errors.New("ingest: empty input")
)

// Field names used in logs, metrics labels and ColumnNames.
const (
	FieldAgeGroup            = "age_group"
	FieldSmokingPrevalence   = "smoking_prevalence"
	FieldDrugExperimentation = "drug_experimentation"
	FieldSocioeconomicStatus = "socioeconomic_status"
	FieldPeerInfluence       = "peer_influence"
)

// Columns holds zero-based column positions of each field.
type Columns struct {
	AgeGroup            int
	SmokingPrevalence   int
	DrugExperimentation int
	SocioeconomicStatus int
	PeerInfluence       int
}

// DefaultColumns matches the layout of the original youth survey dataset.
func DefaultColumns() Columns {
	return Columns{
		AgeGroup:            1,
		SmokingPrevalence:   3,
		DrugExperimentation: 4,
		SocioeconomicStatus: 5,
		PeerInfluence:       6,
	}
}

func (c Columns) validate() error {
	for _, f := range []struct {
		name string
		pos  int
	}{
		{FieldAgeGroup, c.AgeGroup},
		{FieldSmokingPrevalence, c.SmokingPrevalence},
		{FieldDrugExperimentation, c.DrugExperimentation},
		{FieldSocioeconomicStatus, c.SocioeconomicStatus},
		{FieldPeerInfluence, c.PeerInfluence},
	} {
		if f.pos < 0 {
			return fmt.Errorf("%w: %s at %d", ErrInvalidColumn, f.name, f.pos)
		}
	}

	return nil
}

func (c Columns) maxIndex() int {
	return max(c.AgeGroup, c.SmokingPrevalence, c.DrugExperimentation, c.SocioeconomicStatus, c.PeerInfluence)
}

// ColumnNames maps each field to a header name.
type ColumnNames struct {
	AgeGroup            string
	SmokingPrevalence   string
	DrugExperimentation string
	SocioeconomicStatus string
	PeerInfluence       string
}

// DefaultColumnNames uses the canonical field names as header names.
func DefaultColumnNames() ColumnNames {
	return ColumnNames{
		AgeGroup:            FieldAgeGroup,
		SmokingPrevalence:   FieldSmokingPrevalence,
		DrugExperimentation: FieldDrugExperimentation,
		SocioeconomicStatus: FieldSocioeconomicStatus,
		PeerInfluence:       FieldPeerInfluence,
	}
}

// LoadStats summarises one load.
type LoadStats struct {
	// Rows is the number of data rows read (header excluded).
	Rows int

	// Fallbacks counts default substitutions per field name.
	Fallbacks map[string]int
}

// TotalFallbacks sums Fallbacks over all fields.
func (s LoadStats) TotalFallbacks() int {
	total := 0
	for _, n := range s.Fallbacks {
		total += n
	}

	return total
}

// Option customises a load.
type Option func(*loadConfig)

type loadConfig struct {
	columns Columns
	names   *ColumnNames
	comma   rune
	logger  *zap.Logger
	metrics *metrics.Collector
	stats   *LoadStats
}

func newLoadConfig(opts ...Option) loadConfig {
	cfg := loadConfig{
		columns: DefaultColumns(),
		comma:   ',',
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithColumns overrides the positional layout.
func WithColumns(c Columns) Option {
	return func(cfg *loadConfig) {
		cfg.columns = c
		cfg.names = nil
	}
}

// WithColumnNames resolves columns from the header row by name.
func WithColumnNames(n ColumnNames) Option {
	return func(cfg *loadConfig) {
		cfg.names = &n
	}
}

// WithComma sets the field delimiter (default ',').
func WithComma(r rune) Option {
	return func(cfg *loadConfig) {
		cfg.comma = r
	}
}

// WithLogger attaches a logger for fallback diagnostics. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("ingest: WithLogger(nil)")
	}
	return func(cfg *loadConfig) {
		cfg.logger = l
	}
}

// WithMetrics counts loaded records and fallbacks on m.
func WithMetrics(m *metrics.Collector) Option {
	return func(cfg *loadConfig) {
		cfg.metrics = m
	}
}

// WithStats receives the LoadStats of the load into dst.
func WithStats(dst *LoadStats) Option {
	return func(cfg *loadConfig) {
		cfg.stats = dst
	}
}
