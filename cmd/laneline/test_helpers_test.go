package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupHome points HOME at a temp directory so tests never pick up a real
// user configuration.
func setupHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func runCLI(t *testing.T, args []string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeLines(t *testing.T, path string, lines []string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// writeBestTimesCSV writes a small valid best-times export and returns its
// path.
func writeBestTimesCSV(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "best_times.csv")
	writeLines(t, path, []string{
		"AgeGroup,FirstName,LastName,Age,Event,Time,ConvertedTime,ConvertedHundredths,Date,SwimMeet",
		"Girls 8 & Under,Maya,Reed,8,25 Freestyle,24.10,24.10,2410,6/14/2026,Week 1",
		"Girls 8 & Under,Ana,Silva,7,25 Freestyle,26.02,26.02,2602,6/14/2026,Week 1",
		"Boys 11-12,Ben,Cole,11,50 Backstroke,50.10,50.10,5010,6/21/2026,Week 2",
	})
	return path
}

// writeReportCardCSV writes a valid athlete report card with three meet
// blocks: the reserved time trial plus two dual meets.
func writeReportCardCSV(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "athlete_report_card.csv")

	header := "AgeGroup,AthleteId,LastName,FirstName,LastName_FirstName,Age,EventDistance,EventStroke," +
		"Meet1-Name,Meet1-Result,Meet1-ResultSec,Meet1-Improved,Meet1-Points,Meet1-Date," +
		"Meet2-Name,Meet2-Result,Meet2-ResultSec,Meet2-Improved,Meet2-Points,Meet2-Date," +
		"Meet3-Name,Meet3-Result,Meet3-ResultSec,Meet3-Improved,Meet3-Points,Meet3-Date," +
		"TotalResults,TotalImproved,TotalPoints,AmountImprovedSec,PercentImproved"

	writeLines(t, path, []string{
		header,
		"Girls 9-10,101,Reed,Maya,Reed_Maya,9,50,free," +
			"20260601 time trial,45.10,45.10,,,6/1/2026," +
			"20260614 a division week1 fh vs rv,44.00,44.00,Yes,1,6/14/2026," +
			"20260621 a division week2 fh vs mc,43.20,43.20,Yes,1,6/21/2026," +
			"3,2,2,1.90,4.2",
		"Boys 11-12,102,Cole,Ben,Cole_Ben,11,50,back," +
			"20260601 time trial,51.00,51.00,,,6/1/2026," +
			",,,,,," +
			"20260621 a division week2 fh vs mc,50.10,50.10,Yes,1,6/21/2026," +
			"2,1,1,0.90,1.8",
	})
	return path
}

func requirePDF(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("%s is not a PDF", path)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
