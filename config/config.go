// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PEERNET_"

// Config is the full run configuration.
type Config struct {
	Input    Input    `yaml:"input"`
	Columns  Columns  `yaml:"columns"`
	Build    Build    `yaml:"build"`
	Analysis Analysis `yaml:"analysis"`
	Log      Log      `yaml:"log"`
	Metrics  Metrics  `yaml:"metrics"`
}

// Input locates the survey CSV.
type Input struct {
	Path      string `yaml:"path"`
	Delimiter string `yaml:"delimiter" validate:"len=1"`
}

// Columns selects how CSV columns are resolved. When ByName is false the
// positions are used; otherwise the names are matched against the header.
type Columns struct {
	ByName bool `yaml:"by_name"`

	AgeGroup            int `yaml:"age_group" validate:"min=0"`
	SmokingPrevalence   int `yaml:"smoking_prevalence" validate:"min=0"`
	DrugExperimentation int `yaml:"drug_experimentation" validate:"min=0"`
	SocioeconomicStatus int `yaml:"socioeconomic_status" validate:"min=0"`
	PeerInfluence       int `yaml:"peer_influence" validate:"min=0"`

	Names ColumnNames `yaml:"names"`
}

// ColumnNames are header names used when Columns.ByName is set.
type ColumnNames struct {
	AgeGroup            string `yaml:"age_group" validate:"required"`
	SmokingPrevalence   string `yaml:"smoking_prevalence" validate:"required"`
	DrugExperimentation string `yaml:"drug_experimentation" validate:"required"`
	SocioeconomicStatus string `yaml:"socioeconomic_status" validate:"required"`
	PeerInfluence       string `yaml:"peer_influence" validate:"required"`
}

// Build configures graph construction.
type Build struct {
	Strategy string `yaml:"strategy" validate:"oneof=pairwise bucketed"`
	Workers  int    `yaml:"workers" validate:"min=0,max=1024"`
	IDPrefix string `yaml:"id_prefix" validate:"max=16"`
}

// Analysis configures the analysis passes and the report.
type Analysis struct {
	TopN              int  `yaml:"top_n" validate:"min=1,max=10000"`
	StrictDistanceTwo bool `yaml:"strict_distance_two"`
}

// Log configures the zap logger.
type Log struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Metrics configures the Prometheus textfile export. An empty path
// disables it.
type Metrics struct {
	Namespace string `yaml:"namespace" validate:"required"`
	Textfile  string `yaml:"textfile"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input: Input{Delimiter: ","},
		Columns: Columns{
			AgeGroup:            1,
			SmokingPrevalence:   3,
			DrugExperimentation: 4,
			SocioeconomicStatus: 5,
			PeerInfluence:       6,
			Names: ColumnNames{
				AgeGroup:            "age_group",
				SmokingPrevalence:   "smoking_prevalence",
				DrugExperimentation: "drug_experimentation",
				SocioeconomicStatus: "socioeconomic_status",
				PeerInfluence:       "peer_influence",
			},
		},
		Build:    Build{Strategy: "pairwise", Workers: 1},
		Analysis: Analysis{TopN: 10},
		Log:      Log{Level: "info"},
		Metrics:  Metrics{Namespace: "peernet"},
	}
}

// Load merges defaults, the YAML file at path (optional, "" skips it) and
// environment overrides, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %q: %w", path, err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %q: %w", path, err)
	}

	return nil
}

// applyEnv overrides fields from PEERNET_* variables. Unparsable numeric or
// boolean values are errors rather than silently ignored.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, key, v, err)
		}
		*dst = n
		return nil
	}
	flag := func(key string, dst *bool) error {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, key, v, err)
		}
		*dst = b
		return nil
	}

	str("INPUT_PATH", &cfg.Input.Path)
	str("INPUT_DELIMITER", &cfg.Input.Delimiter)
	str("BUILD_STRATEGY", &cfg.Build.Strategy)
	str("BUILD_ID_PREFIX", &cfg.Build.IDPrefix)
	str("LOG_LEVEL", &cfg.Log.Level)
	str("METRICS_NAMESPACE", &cfg.Metrics.Namespace)
	str("METRICS_TEXTFILE", &cfg.Metrics.Textfile)

	for _, f := range []func() error{
		func() error { return num("BUILD_WORKERS", &cfg.Build.Workers) },
		func() error { return num("ANALYSIS_TOP_N", &cfg.Analysis.TopN) },
		func() error { return flag("ANALYSIS_STRICT_DISTANCE_TWO", &cfg.Analysis.StrictDistanceTwo) },
		func() error { return flag("LOG_DEVELOPMENT", &cfg.Log.Development) },
		func() error { return flag("COLUMNS_BY_NAME", &cfg.Columns.ByName) },
	} {
		if err := f(); err != nil {
			return err
		}
	}

	return nil
}

var validate = validator.New()

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Comma returns the CSV delimiter as a rune.
func (i Input) Comma() rune {
	for _, r := range i.Delimiter {
		return r
	}

	return ','
}
