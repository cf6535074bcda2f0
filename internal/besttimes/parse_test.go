package besttimes

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"laneline/internal/csvschema"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(new(bytes.Buffer), nil))
}

func row(group, first, last, age, event, hundredths, date string) []string {
	return []string{group, first, last, age, event, "", "", hundredths, date, "Summer League"}
}

func TestParseHundredths(t *testing.T) {
	got, err := ParseHundredths("6540")
	if err != nil {
		t.Fatalf("ParseHundredths() error = %v", err)
	}
	if got != 65.40 {
		t.Fatalf("ParseHundredths(6540) = %v, want 65.40", got)
	}

	if _, err := ParseHundredths("fast"); err == nil {
		t.Fatal("expected error for non-numeric input")
	}
}

func TestParseGroupsResults(t *testing.T) {
	records := [][]string{
		csvschema.BestTimesColumns,
		row("Girls 9-10", "Ada", "Rivers", "9", "50 Freestyle", "4512", "2026-06-14"),
		row("Girls 9-10", "Mae", "Holt", "10", "50 Freestyle", "4388", "2026-06-21"),
		row("Boys 11-12", "Eli", "Park", "11", "100 Individual Medley", "9020", "2026-06-14"),
	}

	data, err := Parse(records, discardLogger())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	results := data.results["Girls 9-10"]["50 Freestyle"]
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Swimmer != "Ada Rivers (9)" {
		t.Fatalf("swimmer label = %q", results[0].Swimmer)
	}
	if results[0].Seconds != 45.12 {
		t.Fatalf("seconds = %v, want 45.12", results[0].Seconds)
	}
}

func TestParseUnknownAgeGroupFatal(t *testing.T) {
	records := [][]string{
		csvschema.BestTimesColumns,
		row("Girls 9-10", "Ada", "Rivers", "9", "50 Freestyle", "4512", "2026-06-14"),
		row("Masters 40+", "Joan", "Vale", "41", "50 Freestyle", "3901", "2026-06-14"),
	}

	_, err := Parse(records, discardLogger())
	if err == nil {
		t.Fatal("expected error for unknown age group")
	}
	if !strings.Contains(err.Error(), "row 3") || !strings.Contains(err.Error(), "Masters 40+") {
		t.Fatalf("error should carry row context and value: %v", err)
	}
}

func TestParseSwimUpWarnsAndKeeps(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	// 100 Freestyle is not on the Girls 9-10 standard list (their free is 50).
	records := [][]string{
		csvschema.BestTimesColumns,
		row("Girls 9-10", "Ada", "Rivers", "9", "100 Freestyle", "11230", "2026-06-14"),
	}

	data, err := Parse(records, log)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(data.results["Girls 9-10"]["100 Freestyle"]) != 1 {
		t.Fatal("swim-up result should be kept")
	}
	if !strings.Contains(buf.String(), "swim up") {
		t.Fatalf("expected swim-up warning, log output: %s", buf.String())
	}
}

func TestParseBadSchema(t *testing.T) {
	records := [][]string{{"Name", "Time"}}
	if _, err := Parse(records, discardLogger()); err == nil {
		t.Fatal("expected schema error")
	}
}

func TestParseInvalidTime(t *testing.T) {
	records := [][]string{
		csvschema.BestTimesColumns,
		row("Girls 9-10", "Ada", "Rivers", "9", "50 Freestyle", "x", "2026-06-14"),
	}
	_, err := Parse(records, discardLogger())
	if err == nil || !strings.Contains(err.Error(), "row 2") {
		t.Fatalf("expected row context on time error, got %v", err)
	}
}
