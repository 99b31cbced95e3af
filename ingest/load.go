// SPDX-License-Identifier: MIT

package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/peernet/survey"
)

// LoadFile opens path and delegates to Load.
func LoadFile(path string, opts ...Option) ([]survey.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open %q: %w", path, err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// Load reads every data row of r into a Record, preserving row order.
// Row numbers in errors are 1-based and count the header as row 1.
// Complexity: O(rows × columns).
func Load(r io.Reader, opts ...Option) ([]survey.Record, error) {
	cfg := newLoadConfig(opts...)

	cr := csv.NewReader(r)
	cr.Comma = cfg.comma
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformedRow, err)
	}

	cols := cfg.columns
	if cfg.names != nil {
		if cols, err = resolveColumns(header, *cfg.names); err != nil {
			return nil, err
		}
	}
	if err = cols.validate(); err != nil {
		return nil, err
	}
	need := cols.maxIndex() + 1

	p := parser{logger: cfg.logger, stats: LoadStats{Fallbacks: map[string]int{}}}
	var records []survey.Record
	for row := 2; ; row++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedRow, row, err)
		}
		if len(fields) < need {
			return nil, fmt.Errorf("%w: row %d has %d fields, need %d", ErrMalformedRow, row, len(fields), need)
		}
		p.row = row
		records = append(records, survey.Record{
			PeerInfluence:       p.parseInt(FieldPeerInfluence, fields[cols.PeerInfluence]),
			AgeGroup:            fields[cols.AgeGroup],
			SocioeconomicStatus: fields[cols.SocioeconomicStatus],
			SmokingPrevalence:   p.parseFloat(FieldSmokingPrevalence, fields[cols.SmokingPrevalence]),
			DrugExperimentation: p.parseFloat(FieldDrugExperimentation, fields[cols.DrugExperimentation]),
		})
	}
	p.stats.Rows = len(records)

	if cfg.metrics != nil {
		cfg.metrics.AddRecords(len(records))
		for field, n := range p.stats.Fallbacks {
			cfg.metrics.AddFallbacks(field, n)
		}
	}
	if cfg.stats != nil {
		*cfg.stats = p.stats
	}
	cfg.logger.Debug("survey loaded",
		zap.Int("rows", len(records)),
		zap.Int("fallbacks", p.stats.TotalFallbacks()),
	)

	return records, nil
}

// resolveColumns finds each named column in header. Names are compared
// after trimming whitespace, case-insensitively.
func resolveColumns(header []string, names ColumnNames) (Columns, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := pos[key]; !dup {
			pos[key] = i
		}
	}
	lookup := func(name string) (int, error) {
		i, ok := pos[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		return i, nil
	}

	var (
		c   Columns
		err error
	)
	if c.AgeGroup, err = lookup(names.AgeGroup); err != nil {
		return Columns{}, err
	}
	if c.SmokingPrevalence, err = lookup(names.SmokingPrevalence); err != nil {
		return Columns{}, err
	}
	if c.DrugExperimentation, err = lookup(names.DrugExperimentation); err != nil {
		return Columns{}, err
	}
	if c.SocioeconomicStatus, err = lookup(names.SocioeconomicStatus); err != nil {
		return Columns{}, err
	}
	if c.PeerInfluence, err = lookup(names.PeerInfluence); err != nil {
		return Columns{}, err
	}

	return c, nil
}

// parser converts numeric fields, substituting zero on failure.
type parser struct {
	logger *zap.Logger
	stats  LoadStats
	row    int
}

func (p *parser) parseInt(field, raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		p.fallback(field, raw)
		return 0
	}

	return v
}

func (p *parser) parseFloat(field, raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		p.fallback(field, raw)
		return 0
	}

	return v
}

func (p *parser) fallback(field, raw string) {
	p.stats.Fallbacks[field]++
	p.logger.Debug("numeric field fallback",
		zap.Int("row", p.row),
		zap.String("field", field),
		zap.String("value", raw),
	)
}
