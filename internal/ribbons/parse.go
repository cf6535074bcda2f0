package ribbons

import (
	"errors"
	"fmt"

	"laneline/internal/csvschema"
)

var (
	// ErrNoSuchMeet indicates a requested meet index with no data.
	ErrNoSuchMeet = errors.New("no such meet")
	// ErrTooFewMeets indicates fewer than two meets with data, so no meet has
	// a baseline to improve on.
	ErrTooFewMeets = errors.New("fewer than two meets with data")
)

// MeetResult is one raw per-meet block of a report-card row. Fields stay
// strings; label derivation interprets them later, scoped to one meet.
type MeetResult struct {
	Name     string
	Result   string
	Seconds  string
	Improved string
	Points   string
	Date     string
}

// History is one report-card row: a swimmer's season in a single event.
type History struct {
	AgeGroup  string
	AthleteID string
	LastName  string
	FirstName string
	Age       string
	Distance  string
	Stroke    string
	Meets     []MeetResult
}

// Swimmer returns the display label "First Last (age)".
func (h History) Swimmer() string {
	return fmt.Sprintf("%s %s (%s)", h.FirstName, h.LastName, h.Age)
}

// MeetInfo names one meet of the season.
type MeetInfo struct {
	Name string
	Date string
}

// Directory maps meet index to meet information. A nil slot means no row in
// the file recorded a result for that meet.
type Directory []*MeetInfo

// Parse validates the header and converts the remaining records into the
// meet directory and per-row histories.
func Parse(records [][]string) (Directory, []History, error) {
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("no header row")
	}
	meetCount, err := csvschema.ValidateReportCard(records[0])
	if err != nil {
		return nil, nil, err
	}

	lead := len(csvschema.LeadColumns)
	perMeet := len(csvschema.MeetColumns)

	directory := make(Directory, meetCount)
	histories := make([]History, 0, len(records)-1)

	for i, row := range records[1:] {
		if len(row) != len(records[0]) {
			return nil, nil, fmt.Errorf("row %d: %d fields, header has %d", i+2, len(row), len(records[0]))
		}

		h := History{
			AgeGroup:  row[0],
			AthleteID: row[1],
			LastName:  row[2],
			FirstName: row[3],
			Age:       row[5],
			Distance:  row[6],
			Stroke:    row[7],
			Meets:     make([]MeetResult, meetCount),
		}
		for m := 0; m < meetCount; m++ {
			start := lead + m*perMeet
			h.Meets[m] = MeetResult{
				Name:     row[start],
				Result:   row[start+1],
				Seconds:  row[start+2],
				Improved: row[start+3],
				Points:   row[start+4],
				Date:     row[start+5],
			}
			if directory[m] == nil && h.Meets[m].Name != "" && h.Meets[m].Result != "" {
				directory[m] = &MeetInfo{Name: h.Meets[m].Name, Date: h.Meets[m].Date}
			}
		}
		histories = append(histories, h)
	}

	return directory, histories, nil
}

// Latest returns the highest meet index with data. It fails with
// ErrTooFewMeets when fewer than two meets have any data, since the latest
// meet would have nothing to improve on.
func (d Directory) Latest() (int, error) {
	indexes := d.Indexes()
	if len(indexes) < 2 {
		return 0, ErrTooFewMeets
	}
	return indexes[len(indexes)-1], nil
}

// Lookup returns the meet at index, or ErrNoSuchMeet when the index is out
// of range or has no data.
func (d Directory) Lookup(index int) (*MeetInfo, error) {
	if index < 0 || index >= len(d) || d[index] == nil {
		return nil, fmt.Errorf("%w: meet %d", ErrNoSuchMeet, index)
	}
	return d[index], nil
}

// Indexes lists the meet indexes with data, ascending.
func (d Directory) Indexes() []int {
	var out []int
	for i, info := range d {
		if info != nil {
			out = append(out, i)
		}
	}
	return out
}
