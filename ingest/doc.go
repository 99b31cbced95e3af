// SPDX-License-Identifier: MIT

// Package ingest loads survey records from CSV.
//
// The input has one header row followed by one row per respondent. By
// default columns are positional:
//
//	1  age_group             (string, verbatim)
//	3  smoking_prevalence    (float)
//	4  drug_experimentation  (float)
//	5  socioeconomic_status  (string, verbatim)
//	6  peer_influence        (int)
//
// WithColumnNames resolves the same fields by header name instead.
//
// Error policy:
//   - structural problems (unreadable source, short row, missing named
//     column) fail the whole load with ErrMalformedRow / ErrMissingColumn;
//   - a numeric field that does not parse, or parses to NaN or ±Inf, is
//     replaced by 0 (or 0.0), logged at debug level and counted in
//     LoadStats. Rows are never dropped.
package ingest
