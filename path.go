package recorder

import (
	"fmt"
	"path/filepath"
)

// ResultPath returns the expected path of one trial run's result file:
//
//	<inputRoot>/<mode>/L<length>/<mode>-L<length>[-<T|P><degree>]-R<run>.out
//
// The degree segment is omitted for serial mode. Pure string construction;
// no existence check is performed.
func ResultPath(inputRoot string, mode Mode, length, degree, run int) string {
	return filepath.Join(inputRoot, string(mode), fmt.Sprintf("L%d", length),
		resultFileName(mode, length, degree, run))
}

func resultFileName(mode Mode, length, degree, run int) string {
	if mode == Serial {
		return fmt.Sprintf("%s-L%d-R%d.out", mode, length, run)
	}

	return fmt.Sprintf("%s-L%d-%s%d-R%d.out", mode, length, mode.marker(), degree, run)
}

// SummaryPath returns the path the summary CSV for one (mode, length) is
// written to:
//
//	<outputRoot>/<mode>/L<length>/<mode>-L<length>.csv
func SummaryPath(outputRoot string, mode Mode, length int) string {
	return filepath.Join(outputRoot, string(mode), fmt.Sprintf("L%d", length),
		fmt.Sprintf("%s-L%d.csv", mode, length))
}
