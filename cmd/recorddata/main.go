// recorddata aggregates LCS benchmark result files into CSV summary tables.
//
// It reads the .out files the benchmark harness wrote under output/ and
// writes one summary per (mode, sequence length) under data/, printing each
// table to stdout. Takes no arguments; the run matrix is fixed. Parallel
// mode is present in the matrix but currently disabled — those results are
// summarized by hand.
//
// A missing or unparseable result file terminates the run with a non-zero
// exit status and a diagnostic naming the file.
package main

import (
	"fmt"
	"os"

	recorder "github.com/AdamPywell/cmpt-431-multithreaded-lcs-project"
)

func main() {
	err := recorder.Record(recorder.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
