package journey

import "time"

// Station is a concrete transit stop as returned by the provider.
// It is immutable once resolved.
type Station struct {
	ID        string
	Name      string
	Latitude  float64
	Longitude float64
}

// Stopover is an intermediate stop visited within a leg. Arrival and
// Departure are optional; both nil means the provider reported no timing.
type Stopover struct {
	Station   Station
	Arrival   *time.Time
	Departure *time.Time
}

// Leg is one uninterrupted transfer segment of travel. Stopovers may be
// empty when the provider returns no intermediate detail.
type Leg struct {
	Origin      Station
	Destination Station
	Departure   time.Time
	Arrival     time.Time
	Stopovers   []Stopover
}

// Itinerary is a complete proposed journey. Legs is never empty for
// itineraries produced by the provider client.
type Itinerary struct {
	Legs     []Leg
	Duration time.Duration
}

// Transfers returns the number of changes, i.e. len(Legs)-1.
func (it Itinerary) Transfers() int {
	return len(it.Legs) - 1
}
