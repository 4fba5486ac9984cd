package hafas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/transit-vis/journeymap/config"
	"github.com/transit-vis/journeymap/journey"
)

// timestampLayout is the wire format of all provider timestamps
// (local time, no zone designator).
const timestampLayout = "2006-01-02T15:04:05"

// Client is an HTTP client for the journey-planning provider
type Client struct {
	baseURL     string
	maxJourneys int
	httpClient  *http.Client
}

// NewClient creates a provider client from configuration
func NewClient(cfg config.ProviderConfig) *Client {
	return &Client{
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		maxJourneys: cfg.MaxJourneys,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// Locations searches stations by name and returns them in the provider's
// relevance order. An empty result is not an error here.
func (c *Client) Locations(ctx context.Context, query string) ([]journey.Station, error) {
	params := url.Values{}
	params.Set("suchbegriff", query)
	params.Set("typ", "ALL")
	params.Set("limit", "10")

	var entries []locationEntry
	if err := c.getJSON(ctx, EndpointLocations, params, &entries); err != nil {
		return nil, err
	}

	stations := make([]journey.Station, 0, len(entries))
	for _, e := range entries {
		stations = append(stations, journey.Station{
			ID:        e.ExtID,
			Name:      e.Name,
			Latitude:  e.Lat,
			Longitude: e.Lon,
		})
	}
	return stations, nil
}

// Journeys queries candidate itineraries from origin to destination leaving
// at or after departAfter.
func (c *Client) Journeys(ctx context.Context, origin, destination journey.Station, departAfter time.Time) ([]journey.Itinerary, error) {
	params := url.Values{}
	params.Set("abfahrtsHalt", origin.ID)
	params.Set("ankunftsHalt", destination.ID)
	params.Set("anfrageZeitpunkt", departAfter.Format(timestampLayout))
	if c.maxJourneys > 0 {
		params.Set("maxVerbindungen", strconv.Itoa(c.maxJourneys))
	}

	var resp journeysResponse
	if err := c.getJSON(ctx, EndpointJourneys, params, &resp); err != nil {
		return nil, err
	}

	itineraries := make([]journey.Itinerary, 0, len(resp.Verbindungen))
	for _, v := range resp.Verbindungen {
		it, err := mapItinerary(v)
		if err != nil {
			return nil, err
		}
		itineraries = append(itineraries, it)
	}
	return itineraries, nil
}

// getJSON performs a GET against the provider and decodes the JSON body.
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	u := c.baseURL + endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", u, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, u)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", u, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", u, err)
	}
	return nil
}

// mapItinerary converts one wire journey to the domain model
func mapItinerary(v verbindung) (journey.Itinerary, error) {
	legs := make([]journey.Leg, 0, len(v.Abschnitte))
	for _, a := range v.Abschnitte {
		departure, err := parseTimestamp(a.AbfahrtsZeitpunkt)
		if err != nil {
			return journey.Itinerary{}, err
		}
		arrival, err := parseTimestamp(a.AnkunftsZeitpunkt)
		if err != nil {
			return journey.Itinerary{}, err
		}
		leg := journey.Leg{
			Origin:      mapStation(a.AbfahrtsOrt),
			Destination: mapStation(a.AnkunftsOrt),
			Departure:   departure,
			Arrival:     arrival,
			Stopovers:   make([]journey.Stopover, 0, len(a.Halte)),
		}
		for _, h := range a.Halte {
			stopover := journey.Stopover{Station: mapStation(h)}
			if h.AbfahrtsZeitpunkt != "" {
				t, err := parseTimestamp(h.AbfahrtsZeitpunkt)
				if err != nil {
					return journey.Itinerary{}, err
				}
				stopover.Departure = &t
			}
			if h.AnkunftsZeitpunkt != "" {
				t, err := parseTimestamp(h.AnkunftsZeitpunkt)
				if err != nil {
					return journey.Itinerary{}, err
				}
				stopover.Arrival = &t
			}
			leg.Stopovers = append(leg.Stopovers, stopover)
		}
		legs = append(legs, leg)
	}
	it := journey.Itinerary{Legs: legs}
	if len(legs) > 0 {
		it.Duration = legs[len(legs)-1].Arrival.Sub(legs[0].Departure)
	}
	return it, nil
}

func mapStation(h halt) journey.Station {
	return journey.Station{ID: h.ID, Name: h.Name, Latitude: h.Lat, Longitude: h.Lon}
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.ParseInLocation(timestampLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed provider timestamp %q: %w", s, err)
	}
	return t, nil
}
