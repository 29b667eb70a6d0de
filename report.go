package recorder

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
)

// SummaryRow is one reported configuration: a parallelism degree and the
// averaged execution time of its trial runs. Degree is unused for serial
// tables.
type SummaryRow struct {
	Degree           int
	AvgExecutionTime float64
}

// SummaryTable is the summary of one (mode, sequence length): one row per
// parallelism degree, or a single row for serial mode. Written once, never
// mutated after.
type SummaryTable struct {
	Mode           Mode
	SequenceLength int
	Rows           []SummaryRow
}

// header returns the CSV column headers for the table's mode.
func (t *SummaryTable) header() []string {
	if h := t.Mode.degreeHeader(); h != "" {
		return []string{h, "avg_execution_time"}
	}

	return []string{"avg_execution_time"}
}

// WriteCSV writes the table as a delimited file with a header row.
func (t *SummaryTable) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	writeErr := cw.Write(t.header())
	if writeErr != nil {
		return fmt.Errorf("write csv header: %w", writeErr)
	}

	hasDegree := t.Mode.degreeHeader() != ""

	for _, row := range t.Rows {
		record := make([]string, 0, 2)
		if hasDegree {
			record = append(record, strconv.Itoa(row.Degree))
		}

		record = append(record, formatTime(row.AvgExecutionTime))

		rowErr := cw.Write(record)
		if rowErr != nil {
			return fmt.Errorf("write csv row: %w", rowErr)
		}
	}

	cw.Flush()

	flushErr := cw.Error()
	if flushErr != nil {
		return fmt.Errorf("flush csv: %w", flushErr)
	}

	return nil
}

// WriteText renders the table as an aligned text table for terminal output.
func (t *SummaryTable) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "%s L%d\n", t.Mode, t.SequenceLength)

	hasDegree := t.Mode.degreeHeader() != ""
	if hasDegree {
		fmt.Fprintf(tw, "%s\tavg_execution_time\n", t.Mode.degreeHeader())
	} else {
		fmt.Fprintf(tw, "avg_execution_time\n")
	}

	for _, row := range t.Rows {
		if hasDegree {
			fmt.Fprintf(tw, "%d\t%s\n", row.Degree, formatTime(row.AvgExecutionTime))
		} else {
			fmt.Fprintf(tw, "%s\n", formatTime(row.AvgExecutionTime))
		}
	}

	flushErr := tw.Flush()
	if flushErr != nil {
		return fmt.Errorf("flush table: %w", flushErr)
	}

	return nil
}

// writeSummaryFile persists the table at path, creating parent directories
// as needed. An existing summary is overwritten, so re-running over
// unchanged inputs produces identical files.
func writeSummaryFile(path string, table *SummaryTable) error {
	mkdirErr := os.MkdirAll(filepath.Dir(path), 0o755)
	if mkdirErr != nil {
		return fmt.Errorf("create summary directory: %w", mkdirErr)
	}

	file, createErr := os.Create(path)
	if createErr != nil {
		return fmt.Errorf("create summary file: %w", createErr)
	}

	err := table.WriteCSV(file)
	if err != nil {
		_ = file.Close()

		return fmt.Errorf("write summary %s: %w", path, err)
	}

	closeErr := file.Close()
	if closeErr != nil {
		return fmt.Errorf("close summary file: %w", closeErr)
	}

	return nil
}

// formatTime renders a duration value in its shortest round-trip form.
func formatTime(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
