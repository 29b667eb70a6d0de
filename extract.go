package recorder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

// timePattern captures the numeric token following the timing marker the LCS
// programs print. The token pattern deliberately also matches the empty
// string (marker present, no digits); ExtractTime reports that case as
// ErrEmptyTime instead of letting it surface as a parse failure downstream.
var timePattern = regexp.MustCompile(`Total time taken:\s*(\d*\.?\d*)`)

var (
	// ErrNoMarker reports that the result file contains no
	// "Total time taken:" marker at all.
	ErrNoMarker = errors.New(`no "Total time taken:" marker found`)

	// ErrEmptyTime reports that the marker is present but followed by no
	// numeric value.
	ErrEmptyTime = errors.New("timing marker has no numeric value")
)

// ExtractionError is returned when a required result file is missing,
// unreadable, or does not contain an extractable execution time.
type ExtractionError struct {
	// File is the result file's name.
	File string
	// Err is the underlying cause.
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("could not extract execution time for %s: %v", e.File, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ExtractTime extracts the execution time from a result file's contents. It
// searches for the first occurrence of "Total time taken:" followed by
// optional whitespace and a numeric token, and parses the token as a
// float64. The rest of the text is ignored.
//
// Returns ErrNoMarker if the marker is absent, ErrEmptyTime if the marker is
// followed by no digits, or a parse error for a malformed token.
func ExtractTime(text string) (float64, error) {
	m := timePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, ErrNoMarker
	}

	token := m[1]
	if token == "" {
		return 0, ErrEmptyTime
	}

	value, parseErr := strconv.ParseFloat(token, 64)
	if parseErr != nil {
		return 0, fmt.Errorf("parse %q: %w", token, parseErr)
	}

	return value, nil
}

// readRunTime reads one trial run's result file and extracts its execution
// time. The file is read and closed in full before extraction, so the handle
// is released even when the extraction fails. Every failure is reported as
// an *ExtractionError naming the file.
func readRunTime(path string) (float64, error) {
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return 0, &ExtractionError{File: filepath.Base(path), Err: readErr}
	}

	value, err := ExtractTime(string(data))
	if err != nil {
		return 0, &ExtractionError{File: filepath.Base(path), Err: err}
	}

	return value, nil
}
