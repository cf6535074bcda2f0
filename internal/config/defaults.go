package config

const (
	defaultReportTitle     = "Flower Hill Dolphins Top Times"
	defaultBestTimesOutput = "best_times.pdf"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Report: Report{
			Title:           defaultReportTitle,
			BestTimesOutput: defaultBestTimesOutput,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
