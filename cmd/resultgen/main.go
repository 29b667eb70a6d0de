// resultgen generates a synthetic tree of LCS benchmark result files.
//
// It writes the same output/<mode>/L<length>/ layout the real benchmark
// harness produces, with each .out file ending in a "Total time taken:"
// line. Useful for exercising recorddata locally without running the
// benchmark programs.
//
// Examples:
//
//	go run ./cmd/resultgen --out output
//	go run ./cmd/resultgen --out /tmp/bench --modes serial,distributed --runs 8
//	go run ./cmd/resultgen --out output --lengths 100,1000 --seed 7
//
// Generation is deterministic for a given seed.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	recorder "github.com/AdamPywell/cmpt-431-multithreaded-lcs-project"
)

const usage = `resultgen - generate synthetic LCS benchmark result files

Usage:
  resultgen [options]

Options:
  --out DIR         Root directory to write result files to (default: output)
  --modes LIST      Comma-separated modes: serial,parallel,distributed (default: all)
  --lengths LIST    Comma-separated sequence lengths (default: 100,1000,10000)
  --degrees LIST    Comma-separated thread/process counts (default: 1,2,4,8)
  --runs N          Trial runs per configuration (default: 8)
  --seed N          Seed for the timing jitter (default: 1)
  -h, --help        Show this help
`

type Args struct {
	Out     string
	Modes   []recorder.Mode
	Lengths []int
	Degrees []int
	Runs    int
	Seed    uint64
}

func main() {
	args, err := parseArgs(os.Args[1:])
	if err != nil {
		if err.Error() != "" {
			fmt.Fprintln(os.Stderr, err)
		}

		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	runErr := run(args)
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", runErr)
		os.Exit(1)
	}
}

func parseArgs(argv []string) (*Args, error) {
	fs := flag.NewFlagSet("resultgen", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }

	out := fs.String("out", "output", "root directory to write to")
	modes := fs.String("modes", "serial,parallel,distributed", "modes to generate")
	lengths := fs.String("lengths", "100,1000,10000", "sequence lengths")
	degrees := fs.String("degrees", "1,2,4,8", "thread/process counts")
	runs := fs.Int("runs", 8, "trial runs per configuration")
	seed := fs.Uint64("seed", 1, "jitter seed")

	parseErr := fs.Parse(argv)
	if parseErr != nil {
		return nil, errors.New("")
	}

	modeList, modeErr := parseModes(*modes)
	if modeErr != nil {
		return nil, modeErr
	}

	lengthList, lengthErr := parseIntList(*lengths)
	if lengthErr != nil {
		return nil, fmt.Errorf("--lengths: %w", lengthErr)
	}

	degreeList, degreeErr := parseIntList(*degrees)
	if degreeErr != nil {
		return nil, fmt.Errorf("--degrees: %w", degreeErr)
	}

	return &Args{
		Out:     *out,
		Modes:   modeList,
		Lengths: lengthList,
		Degrees: degreeList,
		Runs:    *runs,
		Seed:    *seed,
	}, nil
}

func parseModes(s string) ([]recorder.Mode, error) {
	var modes []recorder.Mode

	for _, part := range strings.Split(s, ",") {
		switch mode := recorder.Mode(strings.TrimSpace(part)); mode {
		case recorder.Serial, recorder.Parallel, recorder.Distributed:
			modes = append(modes, mode)
		default:
			return nil, fmt.Errorf("--modes: unknown mode %q", part)
		}
	}

	return modes, nil
}

func parseIntList(s string) ([]int, error) {
	var values []int

	for _, part := range strings.Split(s, ",") {
		v, parseErr := strconv.Atoi(strings.TrimSpace(part))
		if parseErr != nil {
			return nil, fmt.Errorf("bad value %q", part)
		}

		if v < 1 {
			return nil, fmt.Errorf("value must be >= 1 (got %d)", v)
		}

		values = append(values, v)
	}

	return values, nil
}

func run(args *Args) error {
	if args.Runs < 1 {
		return errors.New("--runs must be >= 1")
	}

	rng := rand.New(rand.NewPCG(args.Seed, args.Seed^0x9e3779b97f4a7c15))

	written := 0
	buf := bytes.NewBuffer(make([]byte, 0, 512))

	for _, mode := range args.Modes {
		degrees := args.Degrees
		if mode == recorder.Serial {
			degrees = []int{0}
		}

		for _, length := range args.Lengths {
			for _, degree := range degrees {
				for runIdx := 1; runIdx <= args.Runs; runIdx++ {
					path := recorder.ResultPath(args.Out, mode, length, degree, runIdx)

					mkdirErr := os.MkdirAll(filepath.Dir(path), 0o755)
					if mkdirErr != nil {
						return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), mkdirErr)
					}

					buf.Reset()
					writeResult(buf, rng, mode, length, degree)

					writeErr := os.WriteFile(path, buf.Bytes(), 0o644)
					if writeErr != nil {
						return fmt.Errorf("write %s: %w", path, writeErr)
					}

					written++
				}
			}
		}
	}

	fmt.Fprintf(os.Stderr, "done: files=%d\n", written)

	return nil
}

// writeResult renders one plausible run log. The timing value scales
// quadratically with sequence length (LCS fills an n x n table), improves
// with the parallelism degree, and carries a little jitter.
func writeResult(buf *bytes.Buffer, rng *rand.Rand, mode recorder.Mode, length, degree int) {
	base := float64(length) * float64(length) * 2e-7
	if degree > 0 {
		base /= float64(degree)
	}

	jitter := 1.0 + (rng.Float64()-0.5)*0.1
	elapsed := base * jitter

	fmt.Fprintf(buf, "Sequence length: %d\n", length)

	switch mode {
	case recorder.Parallel:
		fmt.Fprintf(buf, "Number of threads: %d\n", degree)
	case recorder.Distributed:
		fmt.Fprintf(buf, "Number of processes: %d\n", degree)
	case recorder.Serial:
	}

	fmt.Fprintf(buf, "LCS length: %d\n", length/2+rng.IntN(length/4+1))
	fmt.Fprintf(buf, "Total time taken: %.6f\n", elapsed)
}
