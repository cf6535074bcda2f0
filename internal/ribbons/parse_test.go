package ribbons

import (
	"errors"
	"testing"

	"laneline/internal/csvschema"
)

// cardRow builds a report-card row for the given meet blocks. Each block is
// [name, result, seconds, improved, points, date]; empty blocks are allowed.
func cardRow(stroke, distance string, blocks ...[6]string) []string {
	row := []string{"Girls 9-10", "A1", "Rivers", "Ada", "Rivers_Ada", "9", distance, stroke}
	for _, b := range blocks {
		row = append(row, b[0], b[1], b[2], b[3], b[4], b[5])
	}
	return append(row, "0", "0", "0", "0", "0")
}

func block(name, result, seconds, date string) [6]string {
	return [6]string{name, result, seconds, "1", "0", date}
}

func emptyBlock() [6]string {
	return [6]string{}
}

func TestParseBuildsDirectory(t *testing.T) {
	records := [][]string{
		csvschema.ReportCardColumns(3),
		cardRow("free", "50", emptyBlock(), block("20260614 A Div Week1 FH vs RV", "45.12", "45.12", "6/14"), emptyBlock()),
		cardRow("back", "25", block("20260607 Time Trial", "31.80", "31.80", "6/7"), emptyBlock(), block("20260621 A Div Week2 RV vs FH", "30.95", "30.95", "6/21")),
	}

	directory, histories, err := Parse(records)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(histories) != 2 {
		t.Fatalf("expected 2 histories, got %d", len(histories))
	}
	if len(directory) != 3 {
		t.Fatalf("directory length = %d, want 3", len(directory))
	}
	if directory[0] == nil || directory[0].Name != "20260607 Time Trial" {
		t.Fatalf("directory[0] = %+v", directory[0])
	}
	if directory[1] == nil || directory[1].Date != "6/14" {
		t.Fatalf("directory[1] = %+v", directory[1])
	}
	if directory[2] == nil || directory[2].Name != "20260621 A Div Week2 RV vs FH" {
		t.Fatalf("directory[2] = %+v", directory[2])
	}

	if got := histories[0].Swimmer(); got != "Ada Rivers (9)" {
		t.Fatalf("Swimmer() = %q", got)
	}
}

func TestParseDirectoryNeedsNameAndResult(t *testing.T) {
	// A block with a name but no result does not register the meet.
	records := [][]string{
		csvschema.ReportCardColumns(1),
		cardRow("free", "50", [6]string{"20260614 A Div Week1 FH vs RV", "", "", "", "", "6/14"}),
	}
	directory, _, err := Parse(records)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if directory[0] != nil {
		t.Fatalf("directory[0] should be nil, got %+v", directory[0])
	}
}

func TestParseRejectsBadHeader(t *testing.T) {
	if _, _, err := Parse([][]string{{"a", "b"}}); err == nil {
		t.Fatal("expected schema error")
	}
}

func TestDirectoryLatest(t *testing.T) {
	d := Directory{
		{Name: "trial"},
		nil,
		{Name: "week2"},
	}
	got, err := d.Latest()
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if got != 2 {
		t.Fatalf("Latest() = %d, want 2", got)
	}
}

func TestDirectoryLatestTooFew(t *testing.T) {
	d := Directory{nil, {Name: "only"}}
	if _, err := d.Latest(); !errors.Is(err, ErrTooFewMeets) {
		t.Fatalf("Latest() error = %v, want ErrTooFewMeets", err)
	}
}

func TestDirectoryLookup(t *testing.T) {
	d := Directory{{Name: "trial"}, nil}
	if _, err := d.Lookup(0); err != nil {
		t.Fatalf("Lookup(0) error = %v", err)
	}
	for _, idx := range []int{-1, 1, 5} {
		if _, err := d.Lookup(idx); !errors.Is(err, ErrNoSuchMeet) {
			t.Fatalf("Lookup(%d) error = %v, want ErrNoSuchMeet", idx, err)
		}
	}
}

func TestDirectoryIndexes(t *testing.T) {
	d := Directory{nil, {Name: "a"}, nil, {Name: "b"}}
	got := d.Indexes()
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("Indexes() = %v", got)
	}
}
