package maprender

import (
	"fmt"
	"time"

	"github.com/transit-vis/journeymap/config"
	"github.com/transit-vis/journeymap/internal"
	"github.com/transit-vis/journeymap/journey"
)

// DelaySource reports a known realtime delay for a station ID.
// A nil DelaySource disables delay annotation.
type DelaySource interface {
	For(stopID string) (time.Duration, bool)
}

// Renderer builds RenderedMap documents from itineraries
type Renderer struct {
	Zoom               int
	CircleRadiusMeters float64
	MarkerColor        string
	Delays             DelaySource
}

// NewRenderer creates a renderer from map configuration
func NewRenderer(cfg config.MapConfig) *Renderer {
	return &Renderer{
		Zoom:               cfg.Zoom,
		CircleRadiusMeters: cfg.CircleRadiusMeters,
		MarkerColor:        cfg.MarkerColor,
	}
}

// Render builds the map for one itinerary. In detailed mode every stopover
// of a leg contributes a route point and a marker; in transfer-only mode a
// leg contributes exactly its origin and destination. Callers guarantee the
// itinerary has at least one leg.
func (r *Renderer) Render(it journey.Itinerary, onlyTransferStations bool) *RenderedMap {
	origin := it.Legs[0].Origin
	m := &RenderedMap{
		Center:   Coordinate{Lat: origin.Latitude, Lon: origin.Longitude},
		Zoom:     r.Zoom,
		Controls: []Control{ControlLocate, ControlMeasure},
	}

	for i, leg := range it.Legs {
		var routeLine []Coordinate
		if !onlyTransferStations {
			for _, stopover := range leg.Stopovers {
				coord := Coordinate{Lat: stopover.Station.Latitude, Lon: stopover.Station.Longitude}
				routeLine = append(routeLine, coord)
				m.AddCircle(r.circle(coord, stopover.Station,
					internal.StopTimeLabel(stopover.Departure, stopover.Arrival)))
			}
		} else {
			originCoord := Coordinate{Lat: leg.Origin.Latitude, Lon: leg.Origin.Longitude}
			routeLine = append(routeLine, originCoord)
			m.AddCircle(r.circle(originCoord, leg.Origin,
				internal.FormatJourneyTime(leg.Departure)))

			destCoord := Coordinate{Lat: leg.Destination.Latitude, Lon: leg.Destination.Longitude}
			routeLine = append(routeLine, destCoord)
			m.AddCircle(r.circle(destCoord, leg.Destination,
				internal.FormatJourneyTime(leg.Arrival)))
		}
		// One polyline per leg, even when the line is degenerate.
		m.AddPolyline(Polyline{Points: routeLine, Color: ColorFor(i)})
	}
	return m
}

// circle builds the marker for one stop, annotating a known realtime delay.
func (r *Renderer) circle(coord Coordinate, station journey.Station, timeLabel string) Circle {
	popup := fmt.Sprintf("%s - %s", station.Name, timeLabel)
	if r.Delays != nil {
		if delay, ok := r.Delays.For(station.ID); ok {
			popup += fmt.Sprintf(" (%+dm)", int(delay.Minutes()))
		}
	}
	return Circle{
		Center:       coord,
		RadiusMeters: r.CircleRadiusMeters,
		Popup:        popup,
		Color:        r.MarkerColor,
		Fill:         true,
	}
}
