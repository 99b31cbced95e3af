// SPDX-License-Identifier: MIT

// Package peernet builds peer similarity networks from youth survey data
// and analyses how behaviour varies with a respondent's connectedness.
//
// Two respondents are linked when they share an age group and a
// socioeconomic status and their peer influence scores differ by at most 2.
// Over the resulting undirected graph peernet reports:
//
//   - the degree distribution;
//   - for every node, the number of distinct nodes two hops away;
//   - mean smoking prevalence and drug experimentation per degree.
//
// Packages:
//
//	survey/    record model and the similarity predicate
//	core/      thread-safe undirected simple graph
//	builder/   record slice → graph + index↔node map (pairwise or bucketed scan)
//	bfs/       bounded breadth-first search
//	analysis/  degree distribution, distance-2 counts, behaviour by degree, summary
//	ingest/    CSV loader with zero-fallback for unparsable numbers
//	report/    console report (lipgloss tables or plain text)
//	config/    YAML + PEERNET_* environment configuration
//	logging/   zap logger construction
//	metrics/   Prometheus collector and textfile export
//	pipeline/  load → build → analyze batch run
//	cmd/peernet  command-line entry point
package peernet
