// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/peernet/config"
	"github.com/katalvlaran/peernet/logging"
	"github.com/katalvlaran/peernet/metrics"
	"github.com/katalvlaran/peernet/pipeline"
	"github.com/katalvlaran/peernet/report"
)

// analyzeFlags mirrors the command-line overrides of analyze. Only flags
// the user actually set are applied over the loaded configuration.
type analyzeFlags struct {
	configPath  string
	top         int
	strategy    string
	workers     int
	strict      bool
	plain       bool
	logLevel    string
	metricsFile string
	idPrefix    string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "peernet",
		Short:         "Peer similarity network analysis for survey data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAnalyzeCmd())

	return root
}

func newAnalyzeCmd() *cobra.Command {
	var f analyzeFlags
	cmd := &cobra.Command{
		Use:   "analyze [csv]",
		Short: "Build the similarity graph and print the analysis report",
		Long: `Load survey records, connect respondents with the same age group and
socioeconomic status whose peer influence scores differ by at most 2, and
report the degree distribution, distance-2 neighbourhood sizes and mean
behaviour scores by degree.

Configuration precedence: flags > PEERNET_* environment > --config file > defaults.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	fl.IntVar(&f.top, "top", 0, "rows per report section")
	fl.StringVar(&f.strategy, "strategy", "", "pair enumeration strategy: pairwise or bucketed")
	fl.IntVar(&f.workers, "workers", 1, "scan goroutines (0 = GOMAXPROCS)")
	fl.BoolVar(&f.strict, "strict-distance2", false, "count only nodes at shortest-path distance exactly 2")
	fl.BoolVar(&f.plain, "plain", false, "plain text output without tables")
	fl.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	fl.StringVar(&f.idPrefix, "id-prefix", "", "node ID prefix (default: bare record index)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, f analyzeFlags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, args, f, &cfg)
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	m := metrics.NewCollector(cfg.Metrics.Namespace)
	res, err := pipeline.Run(cmd.Context(), cfg, pipeline.Deps{Logger: logger, Metrics: m})
	if err != nil {
		return err
	}

	opts := []report.Option{report.WithTopN(cfg.Analysis.TopN)}
	if f.plain {
		opts = append(opts, report.WithPlain())
	}
	if err = report.Render(cmd.OutOrStdout(), res.Report, opts...); err != nil {
		return err
	}

	if cfg.Metrics.Textfile != "" {
		if err = m.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return err
		}
		logger.Info("metrics written", zap.String("run_id", res.RunID), zap.String("path", cfg.Metrics.Textfile))
	}

	return nil
}

func applyFlags(cmd *cobra.Command, args []string, f analyzeFlags, cfg *config.Config) {
	if len(args) == 1 {
		cfg.Input.Path = args[0]
	}
	changed := cmd.Flags().Changed
	if changed("top") {
		cfg.Analysis.TopN = f.top
	}
	if changed("strategy") {
		cfg.Build.Strategy = f.strategy
	}
	if changed("workers") {
		cfg.Build.Workers = f.workers
	}
	if changed("strict-distance2") {
		cfg.Analysis.StrictDistanceTwo = f.strict
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if changed("metrics-file") {
		cfg.Metrics.Textfile = f.metricsFile
	}
	if changed("id-prefix") {
		cfg.Build.IDPrefix = f.idPrefix
	}
}
