package journey

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/transit-vis/journeymap/internal"
)

// Describe produces one summary line per itinerary: 0-based index, first
// departure, last arrival, total duration and the ordered transfer stations
// (or "no changes" for direct journeys). Pure formatting, no I/O.
func Describe(itineraries []Itinerary) []string {
	lines := make([]string, 0, len(itineraries))
	for i, it := range itineraries {
		first := it.Legs[0]
		last := it.Legs[len(it.Legs)-1]
		head := fmt.Sprintf("- %d: Journey starts at %s and ends at %s. The complete journey takes %s",
			i,
			internal.FormatJourneyTime(first.Departure),
			internal.FormatJourneyTime(last.Arrival),
			it.Duration)
		if it.Transfers() == 0 {
			lines = append(lines, head+" and has no changes")
			continue
		}
		changes := make([]string, 0, it.Transfers())
		for _, leg := range it.Legs[:len(it.Legs)-1] {
			changes = append(changes, leg.Destination.Name)
		}
		lines = append(lines, fmt.Sprintf("%s and has %d changes (at %s)",
			head, it.Transfers(), strings.Join(changes, ", ")))
	}
	return lines
}

// Select validates a 0-based itinerary selection and returns the chosen
// itinerary; indexes outside [0, len) are *InvalidSelectionError.
func Select(itineraries []Itinerary, index int) (Itinerary, error) {
	if index < 0 || index >= len(itineraries) {
		return Itinerary{}, &InvalidSelectionError{Input: strconv.Itoa(index)}
	}
	return itineraries[index], nil
}
