package ribbons

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label is one black ribbon: a personal-best improvement at a specific meet.
type Label struct {
	Meet     int
	Swimmer  string
	AgeGroup string
	Distance string
	Stroke   string
	NewTime  float64
	Drop     float64 // seconds faster than the best earlier time, always > 0
}

// strokeNames maps report-card stroke codes to display names.
var strokeNames = map[string]string{
	"free":   "Freestyle",
	"back":   "Backstroke",
	"breast": "Breaststroke",
	"fly":    "Butterfly",
	"im":     "Individual Medley",
}

var strokeTitle = cases.Title(language.English)

// StrokeName converts a stroke code to its display name. Unrecognized codes
// are title-cased rather than rejected.
func StrokeName(code string) string {
	if name, ok := strokeNames[strings.ToLower(code)]; ok {
		return name
	}
	return strokeTitle.String(code)
}

// Labels derives zero or one Label per history row for the given meet index.
func Labels(histories []History, meet int) []Label {
	var labels []Label
	for _, h := range histories {
		if label, ok := labelFor(h, meet); ok {
			labels = append(labels, label)
		}
	}
	return labels
}

// labelFor compares the meet's time against the swimmer's best earlier time.
// No swim at the meet, no earlier swims, or no improvement all mean no label.
func labelFor(h History, meet int) (Label, bool) {
	if meet < 0 || meet >= len(h.Meets) {
		return Label{}, false
	}

	meetTime, ok := parseSeconds(h.Meets[meet].Seconds)
	if !ok {
		return Label{}, false
	}

	priorBest := 0.0
	havePrior := false
	for m := 0; m < meet; m++ {
		t, ok := parseSeconds(h.Meets[m].Seconds)
		if !ok {
			continue
		}
		if !havePrior || t < priorBest {
			priorBest = t
			havePrior = true
		}
	}
	if !havePrior {
		// First-ever swim of the event is not an improvement.
		return Label{}, false
	}
	if meetTime >= priorBest {
		return Label{}, false
	}

	return Label{
		Meet:     meet,
		Swimmer:  h.Swimmer(),
		AgeGroup: h.AgeGroup,
		Distance: h.Distance,
		Stroke:   h.Stroke,
		NewTime:  meetTime,
		Drop:     priorBest - meetTime,
	}, true
}

// parseSeconds interprets a result-seconds field. Empty or malformed values
// mean the swimmer has no usable time for that meet.
func parseSeconds(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	t, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return t, true
}
