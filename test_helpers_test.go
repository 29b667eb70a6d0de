package recorder_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	recorder "github.com/AdamPywell/cmpt-431-multithreaded-lcs-project"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()

	parent := filepath.Dir(path)

	err := os.MkdirAll(parent, 0o750)
	if err != nil {
		t.Fatalf("mkdir %s: %v", parent, err)
	}

	err = os.WriteFile(path, data, 0o600)
	if err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// writeRunFiles writes result files for run indices 1..runs of one
// configuration, each with the given content.
func writeRunFiles(t *testing.T, inputRoot string, mode recorder.Mode, length, degree, runs int, content string) {
	t.Helper()

	for run := 1; run <= runs; run++ {
		writeFile(t, recorder.ResultPath(inputRoot, mode, length, degree, run), []byte(content))
	}
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}

	return data
}

// testConfig returns a single-length matrix rooted in a temporary directory
// with no modes enabled. Callers enable modes and adjust the matrix as
// needed.
func testConfig(t *testing.T) recorder.Config {
	t.Helper()

	root := t.TempDir()

	return recorder.Config{
		InputRoot:       filepath.Join(root, "output"),
		OutputRoot:      filepath.Join(root, "data"),
		SequenceLengths: []int{100},
		Runs:            8,
		ThreadCounts:    []int{1, 2, 4, 8},
		ProcessCounts:   []int{1, 2, 4, 8},
		Out:             &bytes.Buffer{},
	}
}
