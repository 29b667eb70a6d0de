package recorder

// Export internal symbols for tests in the recorder_test package.
var (
	Mean        = mean
	ReadRunTime = readRunTime
	AverageRuns = averageRuns
)
