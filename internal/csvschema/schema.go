package csvschema

import (
	"errors"
	"fmt"
)

// BestTimesColumns is the exact header of a best-times export.
var BestTimesColumns = []string{
	"AgeGroup",
	"FirstName",
	"LastName",
	"Age",
	"Event",
	"Time",
	"ConvertedTime",
	"ConvertedHundredths",
	"Date",
	"SwimMeet",
}

// LeadColumns precede the repeating meet blocks in a report-card export.
var LeadColumns = []string{
	"AgeGroup",
	"AthleteId",
	"LastName",
	"FirstName",
	"LastName_FirstName",
	"Age",
	"EventDistance",
	"EventStroke",
}

// MeetColumns is one repeating per-meet block. Each repetition appears in the
// header prefixed "Meet{i}-" with i counted from one.
var MeetColumns = []string{
	"Name",
	"Result",
	"ResultSec",
	"Improved",
	"Points",
	"Date",
}

// TailColumns close a report-card export. Ribbon derivation ignores them.
var TailColumns = []string{
	"TotalResults",
	"TotalImproved",
	"TotalPoints",
	"AmountImprovedSec",
	"PercentImproved",
}

var (
	// ErrTooFewColumns indicates a header too narrow to hold even one meet block.
	ErrTooFewColumns = errors.New("too few columns for an athlete report card")
	// ErrRaggedMeetBlock indicates meet columns that do not divide into whole blocks.
	ErrRaggedMeetBlock = errors.New("meet columns do not form whole blocks")
)

// Kind identifies which export format a header belongs to.
type Kind int

const (
	KindUnknown Kind = iota
	KindBestTimes
	KindReportCard
)

func (k Kind) String() string {
	switch k {
	case KindBestTimes:
		return "best-times"
	case KindReportCard:
		return "report-card"
	default:
		return "unknown"
	}
}

// Classify reports which export format a header matches. It is total:
// headers matching neither schema yield KindUnknown, never an error.
func Classify(header []string) Kind {
	if ValidateBestTimes(header) == nil {
		return KindBestTimes
	}
	if _, err := ValidateReportCard(header); err == nil {
		return KindReportCard
	}
	return KindUnknown
}

// ValidateBestTimes checks a header against the best-times schema, naming
// the first mismatching column in the returned error.
func ValidateBestTimes(header []string) error {
	if len(header) != len(BestTimesColumns) {
		return fmt.Errorf("best times file should have %d columns of data, found %d", len(BestTimesColumns), len(header))
	}
	for i, want := range BestTimesColumns {
		if header[i] != want {
			return fmt.Errorf("column %d should be %s, not %s", i+1, want, header[i])
		}
	}
	return nil
}

// MeetCount infers the number of meet blocks from the header width.
func MeetCount(header []string) (int, error) {
	overhead := len(LeadColumns) + len(TailColumns)
	meetCols := len(header) - overhead
	if meetCols < len(MeetColumns) {
		return 0, fmt.Errorf("%w: need at least %d columns, found %d",
			ErrTooFewColumns, overhead+len(MeetColumns), len(header))
	}
	if meetCols%len(MeetColumns) != 0 {
		return 0, fmt.Errorf("%w: %d meet columns with %d columns per meet",
			ErrRaggedMeetBlock, meetCols, len(MeetColumns))
	}
	return meetCols / len(MeetColumns), nil
}

// ReportCardColumns builds the full expected header for n meet blocks.
func ReportCardColumns(n int) []string {
	out := make([]string, 0, len(LeadColumns)+n*len(MeetColumns)+len(TailColumns))
	out = append(out, LeadColumns...)
	for i := 1; i <= n; i++ {
		for _, mc := range MeetColumns {
			out = append(out, fmt.Sprintf("Meet%d-%s", i, mc))
		}
	}
	return append(out, TailColumns...)
}

// ValidateReportCard checks a header against the report-card schema and
// returns the inferred meet count.
func ValidateReportCard(header []string) (int, error) {
	n, err := MeetCount(header)
	if err != nil {
		return 0, err
	}
	for i, want := range ReportCardColumns(n) {
		if header[i] != want {
			return 0, fmt.Errorf("column %d should be %s, not %s", i+1, want, header[i])
		}
	}
	return n, nil
}
