package journey

import "fmt"

// NotFoundError is returned when a station lookup yields no results.
// This is a user-input problem, not a transient one; callers terminate.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find any stations with the name %q", e.Query)
}

// InvalidSelectionError is returned when a user selection is malformed or
// out of range, for station disambiguation as well as itinerary selection.
type InvalidSelectionError struct {
	Input string
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("invalid selection %q", e.Input)
}
