// SPDX-License-Identifier: MIT

// Command peernet builds a peer similarity network from a youth survey CSV
// and prints its degree, distance-2 and behaviour-by-degree report.
//
// Usage:
//
//	peernet analyze survey.csv
//	peernet analyze --strategy bucketed --workers 0 --top 20 survey.csv
//	peernet analyze --config peernet.yaml --metrics-file /var/lib/node_exporter/peernet.prom
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
