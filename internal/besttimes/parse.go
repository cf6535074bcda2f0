package besttimes

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"laneline/internal/csvschema"
)

// Result is one swimmer's converted time for an event.
type Result struct {
	Swimmer string // "First Last (age)"
	Seconds float64
	Date    string
}

// Data holds parsed best-times rows grouped by age group and event, in input
// order.
type Data struct {
	results map[AgeGroup]map[string][]Result
	// extra records event labels outside the league's stroke/distance tables,
	// per group in first-seen order, so they still earn a spot in the outline.
	extra map[AgeGroup][]string
}

// Column offsets in a validated best-times row.
const (
	colAgeGroup   = 0
	colFirstName  = 1
	colLastName   = 2
	colAge        = 3
	colEvent      = 4
	colHundredths = 7
	colDate       = 8
)

// ParseHundredths converts an integer hundredths-of-a-second string to
// seconds.
func ParseHundredths(value string) (float64, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid hundredths value %q", value)
	}
	return float64(n) / 100, nil
}

// Parse validates the header and converts the remaining records into Data.
// An unrecognized age group aborts the parse; an event outside the group's
// standard list is logged and kept.
func Parse(records [][]string, log *slog.Logger) (*Data, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no header row")
	}
	if err := csvschema.ValidateBestTimes(records[0]); err != nil {
		return nil, err
	}

	data := &Data{
		results: make(map[AgeGroup]map[string][]Result),
		extra:   make(map[AgeGroup][]string),
	}

	canonical := make(map[string]struct{})
	for _, e := range CanonicalEvents() {
		canonical[e] = struct{}{}
	}
	standard := make(map[AgeGroup]map[string]struct{}, len(AgeGroups))
	for _, g := range AgeGroups {
		set := make(map[string]struct{})
		for _, e := range StandardEvents(g) {
			set[e] = struct{}{}
		}
		standard[g] = set
	}

	for i, row := range records[1:] {
		rowNum := i + 2 // 1-based, counting the header

		groupLabel := row[colAgeGroup]
		if !ValidAgeGroup(groupLabel) {
			return nil, fmt.Errorf("row %d: unrecognized age group %q", rowNum, groupLabel)
		}
		group := AgeGroup(groupLabel)

		seconds, err := ParseHundredths(row[colHundredths])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		event := row[colEvent]
		if _, ok := standard[group][event]; !ok {
			log.Warn("swim up adds event to age group", "event", event, "age_group", group, "row", rowNum)
		}
		if _, ok := canonical[event]; !ok {
			if !contains(data.extra[group], event) {
				data.extra[group] = append(data.extra[group], event)
			}
		}

		swimmer := fmt.Sprintf("%s %s (%s)", row[colFirstName], row[colLastName], row[colAge])

		byEvent := data.results[group]
		if byEvent == nil {
			byEvent = make(map[string][]Result)
			data.results[group] = byEvent
		}
		byEvent[event] = append(byEvent[event], Result{
			Swimmer: swimmer,
			Seconds: seconds,
			Date:    row[colDate],
		})
	}

	return data, nil
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
