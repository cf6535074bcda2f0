package csvschema

import (
	"errors"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		header []string
		want   Kind
	}{
		{"best times", append([]string{}, BestTimesColumns...), KindBestTimes},
		{"report card one meet", ReportCardColumns(1), KindReportCard},
		{"report card five meets", ReportCardColumns(5), KindReportCard},
		{"empty", nil, KindUnknown},
		{"arbitrary", []string{"a", "b", "c"}, KindUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.header); got != tc.want {
				t.Fatalf("Classify() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestClassifyRenamedColumn(t *testing.T) {
	header := append([]string{}, BestTimesColumns...)
	header[4] = "EventName"
	if got := Classify(header); got != KindUnknown {
		t.Fatalf("Classify() = %v, want KindUnknown", got)
	}
}

func TestValidateBestTimesNamesColumn(t *testing.T) {
	header := append([]string{}, BestTimesColumns...)
	header[2] = "Surname"
	err := ValidateBestTimes(header)
	if err == nil {
		t.Fatal("expected error for renamed column")
	}
	if !strings.Contains(err.Error(), "column 3") || !strings.Contains(err.Error(), "LastName") {
		t.Fatalf("error should name column 3 and LastName: %v", err)
	}
}

func TestValidateBestTimesWidth(t *testing.T) {
	if err := ValidateBestTimes(BestTimesColumns[:9]); err == nil {
		t.Fatal("expected error for truncated header")
	}
}

func TestMeetCount(t *testing.T) {
	cases := []struct {
		name    string
		header  []string
		want    int
		wantErr error
	}{
		{"one meet", ReportCardColumns(1), 1, nil},
		{"two meets", ReportCardColumns(2), 2, nil},
		{"seven meets", ReportCardColumns(7), 7, nil},
		{"ragged block", ReportCardColumns(2)[:22], 0, ErrRaggedMeetBlock},
		{"lead and tail only", ReportCardColumns(1)[:13], 0, ErrTooFewColumns},
		{"empty", nil, 0, ErrTooFewColumns},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MeetCount(tc.header)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("MeetCount() error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("MeetCount() error = %v", err)
			}
			if got != tc.want {
				t.Fatalf("MeetCount() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestValidateReportCard(t *testing.T) {
	n, err := ValidateReportCard(ReportCardColumns(3))
	if err != nil {
		t.Fatalf("ValidateReportCard() error = %v", err)
	}
	if n != 3 {
		t.Fatalf("ValidateReportCard() = %d, want 3", n)
	}

	header := ReportCardColumns(3)
	header[8] = "Meet1-Title"
	if _, err := ValidateReportCard(header); err == nil {
		t.Fatal("expected error for renamed meet column")
	}
}
