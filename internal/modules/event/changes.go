package event

import (
	"fmt"

	"sportshots/internal/domain"
)

// fallbackChange guarantees an update notification never goes out with an
// empty body.
const fallbackChange = "Event details have been updated"

// DetectChanges compares every mutable field of two event snapshots and
// returns human-readable descriptions in a stable order. List-valued
// fields (tags, photographer assignments) compare as sets, so a pure
// reorder produces no entry. When nothing differs the single fallback
// description is returned.
func DetectChanges(original, current *domain.Event, newImages bool) []string {
	var changes []string

	scalar := func(label, from, to string) {
		if from == to {
			return
		}
		switch {
		case from == "":
			changes = append(changes, fmt.Sprintf("%s set to %q", label, to))
		case to == "":
			changes = append(changes, fmt.Sprintf("%s removed (was %q)", label, from))
		default:
			changes = append(changes, fmt.Sprintf("%s changed from %q to %q", label, from, to))
		}
	}

	scalar("Title", original.Title, current.Title)
	scalar("Date", original.Date, current.Date)
	scalar("End date", original.EndDate, current.EndDate)
	scalar("Time", original.Time, current.Time)
	scalar("Location", original.Location, current.Location)
	scalar("Country", original.Country, current.Country)
	scalar("Event type", original.EventTypeID, current.EventTypeID)

	if original.Description != current.Description {
		changes = append(changes, "Description was updated")
	}
	if original.NoteToPhotographer != current.NoteToPhotographer {
		changes = append(changes, "Note to photographers was updated")
	}

	scalar("Link", original.URL, current.URL)

	if !sameSet(original.Tags, current.Tags) {
		changes = append(changes, "Tags were updated")
	}
	if !sameSet(original.PhotographerIDs, current.PhotographerIDs) {
		changes = append(changes, "Assigned photographers were updated")
	}
	if original.GeoSnapshotEmbed != current.GeoSnapshotEmbed {
		changes = append(changes, "Results search widget was updated")
	}
	if newImages {
		changes = append(changes, "New images were added")
	}

	if len(changes) == 0 {
		return []string{fallbackChange}
	}
	return changes
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, v := range a {
		seen[v]++
	}
	for _, v := range b {
		if seen[v] == 0 {
			return false
		}
		seen[v]--
	}
	return true
}

// dedupe keeps the first occurrence of each value, preserving order.
func dedupe(values []string) []string {
	if len(values) == 0 {
		return values
	}
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
