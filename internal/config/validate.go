package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() {
	c.Report.Title = strings.TrimSpace(c.Report.Title)
	c.Report.BestTimesOutput = strings.TrimSpace(c.Report.BestTimesOutput)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Report.Title == "" {
		return fmt.Errorf("report.title must be set")
	}
	if c.Report.BestTimesOutput == "" {
		return fmt.Errorf("report.best_times_output must be set")
	}
	if filepath.Base(c.Report.BestTimesOutput) != c.Report.BestTimesOutput {
		return fmt.Errorf("report.best_times_output must be a bare file name, not a path")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
