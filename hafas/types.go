package hafas

// Endpoints of the bahn.de web API used by this client.
const (
	// EndpointLocations searches for stations by name.
	// Required params: suchbegriff, typ, limit
	EndpointLocations = "/reiseloesung/orte"

	// EndpointJourneys returns journeys between two stations.
	// Required params: abfahrtsHalt, ankunftsHalt, anfrageZeitpunkt
	EndpointJourneys = "/reiseloesung/verbindung"
)

// locationEntry is one station search result
type locationEntry struct {
	ExtID string  `json:"extId"`
	Name  string  `json:"name"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

// journeysResponse is the journey search envelope
type journeysResponse struct {
	Verbindungen []verbindung `json:"verbindungen"`
}

// verbindung is one candidate journey
type verbindung struct {
	Abschnitte []abschnitt `json:"verbindungsAbschnitte"`
}

// abschnitt is one leg of a journey
type abschnitt struct {
	AbfahrtsZeitpunkt string `json:"abfahrtsZeitpunkt"`
	AnkunftsZeitpunkt string `json:"ankunftsZeitpunkt"`
	AbfahrtsOrt       halt   `json:"abfahrtsOrt"`
	AnkunftsOrt       halt   `json:"ankunftsOrt"`
	Halte             []halt `json:"halte"`
}

// halt is a stop along a leg; the timing fields are empty for the
// endpoints embedded in AbfahrtsOrt/AnkunftsOrt and optional elsewhere.
type halt struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Lat               float64 `json:"lat"`
	Lon               float64 `json:"lon"`
	AbfahrtsZeitpunkt string  `json:"abfahrtsZeitpunkt,omitempty"`
	AnkunftsZeitpunkt string  `json:"ankunftsZeitpunkt,omitempty"`
}
