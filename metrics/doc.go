// SPDX-License-Identifier: MIT

// Package metrics holds the Prometheus instruments of a peernet run.
//
// A Collector owns its own prometheus.Registry; nothing is registered on the
// global default registry, so tests and concurrent runs never collide.
// Every recording method is safe on a nil *Collector, which lets library
// packages accept an optional collector without nil checks at call sites.
//
// A batch run exports its metrics with WriteTextfile, producing a file in the
// text exposition format for the node_exporter textfile collector.
package metrics
