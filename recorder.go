// Package recorder aggregates LCS benchmark result files into summary tables.
//
// The benchmark harness runs the LCS programs (serial, parallel, distributed)
// across a matrix of sequence lengths and parallelism degrees, writing one
// .out file per trial run under output/<mode>/L<length>/. This package reads
// those files, extracts the reported execution time from each, averages the
// trials for every configuration, and writes one CSV summary per
// (mode, sequence length) under data/, printing each table to stdout.
//
// # Failure model
//
// The declared run matrix is mandatory: a missing, unreadable, or
// unextractable result file is an [ExtractionError], not a skipped data
// point. Nothing is retried and no partial summary is emitted for the
// affected sequence length; the error propagates out of [Record] and halts
// the remaining work.
//
// # Processing model
//
// Fully sequential, synchronous I/O. Each configuration is processed
// independently with no shared state, so loop order does not affect results.
package recorder

import (
	"fmt"
	"io"
	"os"
)

// Mode is an execution strategy of the benchmarked LCS programs.
type Mode string

const (
	Serial      Mode = "serial"
	Parallel    Mode = "parallel"
	Distributed Mode = "distributed"
)

// marker returns the parallelism-degree marker used in result file names:
// "T" for thread counts, "P" for process counts, "" for serial.
func (m Mode) marker() string {
	switch m {
	case Parallel:
		return "T"
	case Distributed:
		return "P"
	default:
		return ""
	}
}

// degreeHeader returns the CSV column header for the mode's parallelism
// degree, or "" for serial.
func (m Mode) degreeHeader() string {
	switch m {
	case Parallel:
		return "n_threads"
	case Distributed:
		return "n_processes"
	default:
		return ""
	}
}

// Config declares the run matrix to aggregate. Values are treated as
// immutable; pass by value.
type Config struct {
	// InputRoot is the directory the benchmark harness wrote .out files to.
	InputRoot string
	// OutputRoot is the directory summary CSVs are written to.
	OutputRoot string

	// SequenceLengths are the input sizes of the matrix.
	SequenceLengths []int
	// Runs is the number of trial runs per configuration. Every run file
	// must exist; the average is always over exactly Runs values.
	Runs int
	// ThreadCounts are the parallelism degrees of parallel mode.
	ThreadCounts []int
	// ProcessCounts are the parallelism degrees of distributed mode.
	ProcessCounts []int

	// RecordSerial, RecordParallel, and RecordDistributed select which modes
	// Record processes. Parallel is disabled in DefaultConfig because those
	// results are currently summarized by hand.
	RecordSerial      bool
	RecordParallel    bool
	RecordDistributed bool

	// Out receives progress lines and the rendered tables.
	// Defaults to os.Stdout when nil.
	Out io.Writer
}

// DefaultConfig returns the standard benchmark matrix.
func DefaultConfig() Config {
	return Config{
		InputRoot:         "output",
		OutputRoot:        "data",
		SequenceLengths:   []int{100, 1000, 10000},
		Runs:              8,
		ThreadCounts:      []int{1, 2, 4, 8},
		ProcessCounts:     []int{1, 2, 4, 8},
		RecordSerial:      true,
		RecordParallel:    false,
		RecordDistributed: true,
	}
}

// degrees returns the parallelism degrees Record iterates for the mode, or
// nil for serial.
func (c Config) degrees(mode Mode) []int {
	switch mode {
	case Parallel:
		return c.ThreadCounts
	case Distributed:
		return c.ProcessCounts
	default:
		return nil
	}
}

func (c Config) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}

	return c.Out
}

// Record aggregates every enabled mode in order (serial, parallel,
// distributed) and returns the first failure. A failing mode halts the run;
// later modes are not processed.
func Record(cfg Config) error {
	modes := []struct {
		mode    Mode
		enabled bool
	}{
		{Serial, cfg.RecordSerial},
		{Parallel, cfg.RecordParallel},
		{Distributed, cfg.RecordDistributed},
	}

	for _, m := range modes {
		if !m.enabled {
			continue
		}

		err := RecordMode(cfg, m.mode)
		if err != nil {
			return err
		}
	}

	return nil
}

// RecordMode aggregates one mode: for every sequence length it averages the
// trial runs of each configuration, prints the summary table, and writes it
// to SummaryPath. The summary for a sequence length is written only after
// every configuration of that length aggregated successfully.
func RecordMode(cfg Config, mode Mode) error {
	if cfg.Runs < 1 {
		return fmt.Errorf("config: runs must be >= 1 (got %d)", cfg.Runs)
	}

	fmt.Fprintf(cfg.out(), "Recording: %s\n", mode)

	degrees := cfg.degrees(mode)

	for _, length := range cfg.SequenceLengths {
		table := SummaryTable{
			Mode:           mode,
			SequenceLength: length,
		}

		if mode == Serial {
			avg, err := averageRuns(cfg, mode, length, 0)
			if err != nil {
				return err
			}

			table.Rows = append(table.Rows, SummaryRow{AvgExecutionTime: avg})
		} else {
			for _, degree := range degrees {
				avg, err := averageRuns(cfg, mode, length, degree)
				if err != nil {
					return err
				}

				table.Rows = append(table.Rows, SummaryRow{
					Degree:           degree,
					AvgExecutionTime: avg,
				})
			}
		}

		printErr := table.WriteText(cfg.out())
		if printErr != nil {
			return fmt.Errorf("printing summary: %w", printErr)
		}

		outPath := SummaryPath(cfg.OutputRoot, mode, length)

		writeErr := writeSummaryFile(outPath, &table)
		if writeErr != nil {
			return writeErr
		}

		fmt.Fprintf(cfg.out(), "Wrote: %s\n", outPath)
	}

	return nil
}
