package besttimes

import "sort"

// EventSection is one event and its results sorted fastest first.
type EventSection struct {
	Label   string
	Results []Result
}

// GroupSection is one age group and its events in canonical order.
type GroupSection struct {
	Group  AgeGroup
	Events []EventSection
}

// Outline arranges the parsed data for rendering: age groups in canonical
// order, events in canonical order (novel swim-up events appended in
// first-seen order), results stably sorted ascending by time so swimmers
// with identical times keep their input order. Groups and events with no
// results are omitted.
func (d *Data) Outline() []GroupSection {
	var out []GroupSection
	for _, group := range AgeGroups {
		byEvent := d.results[group]
		if len(byEvent) == 0 {
			continue
		}

		order := append(CanonicalEvents(), d.extra[group]...)

		var events []EventSection
		for _, label := range order {
			results, ok := byEvent[label]
			if !ok || len(results) == 0 {
				continue
			}
			sorted := make([]Result, len(results))
			copy(sorted, results)
			sort.SliceStable(sorted, func(i, j int) bool {
				return sorted[i].Seconds < sorted[j].Seconds
			})
			events = append(events, EventSection{Label: label, Results: sorted})
		}
		if len(events) == 0 {
			continue
		}
		out = append(out, GroupSection{Group: group, Events: events})
	}
	return out
}
