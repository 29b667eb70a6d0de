package recorder

// averageRuns reads the result files for run indices 1..cfg.Runs of one
// configuration and returns the arithmetic mean of the extracted execution
// times. The first failing run aborts the configuration; an average is never
// computed over fewer than cfg.Runs values.
func averageRuns(cfg Config, mode Mode, length, degree int) (float64, error) {
	times := make([]float64, 0, cfg.Runs)

	for run := 1; run <= cfg.Runs; run++ {
		path := ResultPath(cfg.InputRoot, mode, length, degree, run)

		value, err := readRunTime(path)
		if err != nil {
			return 0, err
		}

		times = append(times, value)
	}

	return mean(times), nil
}

// mean returns the arithmetic mean of values. No outlier rejection, no
// variance.
func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
