package besttimes

import "fmt"

// AgeGroup is one of the league's ten fixed competitive categories.
type AgeGroup string

// AgeGroups lists every category in canonical display order.
var AgeGroups = []AgeGroup{
	"Girls 8 & Under",
	"Boys 8 & Under",
	"Girls 9-10",
	"Boys 9-10",
	"Girls 11-12",
	"Boys 11-12",
	"Girls 13-14",
	"Boys 13-14",
	"Women 15-18",
	"Men 15-18",
}

// Strokes in canonical display order.
var Strokes = []string{
	"Freestyle",
	"Backstroke",
	"Breaststroke",
	"Butterfly",
	"Individual Medley",
}

// strokeDistances lists the distances swum per stroke, ascending.
var strokeDistances = map[string][]int{
	"Freestyle":         {25, 50, 100},
	"Backstroke":        {25, 50, 100},
	"Breaststroke":      {25, 50, 100},
	"Butterfly":         {25, 50},
	"Individual Medley": {100},
}

// groupDistances pairs each stroke, in canonical order, with the standard
// distance for that age group.
var groupDistances = map[AgeGroup][5]int{
	"Girls 8 & Under": {25, 25, 25, 25, 100},
	"Boys 8 & Under":  {25, 25, 25, 25, 100},
	"Girls 9-10":      {50, 25, 25, 25, 100},
	"Boys 9-10":       {50, 25, 25, 25, 100},
	"Girls 11-12":     {50, 50, 50, 50, 100},
	"Boys 11-12":      {50, 50, 50, 50, 100},
	"Girls 13-14":     {50, 50, 50, 50, 100},
	"Boys 13-14":      {50, 50, 50, 50, 100},
	"Women 15-18":     {100, 100, 100, 50, 100},
	"Men 15-18":       {100, 100, 100, 50, 100},
}

// EventLabel composes the display label for a distance and stroke.
func EventLabel(distance int, stroke string) string {
	return fmt.Sprintf("%d %s", distance, stroke)
}

// ValidAgeGroup reports whether label is one of the ten known categories.
func ValidAgeGroup(label string) bool {
	_, ok := groupDistances[AgeGroup(label)]
	return ok
}

// StandardEvents returns the event labels a group normally swims, in stroke
// order.
func StandardEvents(group AgeGroup) []string {
	distances, ok := groupDistances[group]
	if !ok {
		return nil
	}
	events := make([]string, len(Strokes))
	for i, stroke := range Strokes {
		events[i] = EventLabel(distances[i], stroke)
	}
	return events
}

// CanonicalEvents returns every event label the league recognizes: strokes in
// canonical order, distances ascending within each stroke. This fixes the
// display order for events across all age groups.
func CanonicalEvents() []string {
	var events []string
	for _, stroke := range Strokes {
		for _, d := range strokeDistances[stroke] {
			events = append(events, EventLabel(d, stroke))
		}
	}
	return events
}
