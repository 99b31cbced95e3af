// SPDX-License-Identifier: MIT

// Package pipeline wires ingest, builder and analysis into one batch run.
//
// A run is load → build → analyze. Every log line carries the run's
// run_id; stage durations go to the metrics collector when one is given.
// Any stage error aborts the run; nothing is retried.
package pipeline
