package recorder_test

import (
	"errors"
	"fmt"
	"testing"

	recorder "github.com/AdamPywell/cmpt-431-multithreaded-lcs-project"
)

func Test_Mean_Of_One_Through_Eight_Is_Exactly_Four_Point_Five(t *testing.T) {
	t.Parallel()

	avg := recorder.Mean([]float64{1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0})
	if avg != 4.5 {
		t.Fatalf("expected exactly 4.5, got %v", avg)
	}
}

func Test_AverageRuns_Averages_All_Trial_Files(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)

	for run := 1; run <= cfg.Runs; run++ {
		path := recorder.ResultPath(cfg.InputRoot, recorder.Serial, 100, 0, run)
		writeFile(t, path, fmt.Appendf(nil, "Total time taken: %d.0\n", run))
	}

	avg, err := recorder.AverageRuns(cfg, recorder.Serial, 100, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if avg != 4.5 {
		t.Fatalf("expected 4.5, got %v", avg)
	}
}

func Test_AverageRuns_Fails_When_One_Trial_File_Missing(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)

	// Run 5 of 8 is missing.
	for run := 1; run <= cfg.Runs; run++ {
		if run == 5 {
			continue
		}

		path := recorder.ResultPath(cfg.InputRoot, recorder.Serial, 100, 0, run)
		writeFile(t, path, []byte("Total time taken: 1.0\n"))
	}

	_, err := recorder.AverageRuns(cfg, recorder.Serial, 100, 0)

	var extractErr *recorder.ExtractionError
	if !errors.As(err, &extractErr) {
		t.Fatalf("expected ExtractionError, got %T (%v)", err, err)
	}

	if extractErr.File != "serial-L100-R5.out" {
		t.Fatalf("expected error to name the missing run, got %q", extractErr.File)
	}
}
