package maprender

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/transit-vis/journeymap/config"
	"github.com/transit-vis/journeymap/journey"
)

func testRenderer() *Renderer {
	return NewRenderer(config.Default().Map)
}

func stampAt(hour, min int) time.Time {
	return time.Date(2024, 3, 15, hour, min, 0, 0, time.Local)
}

func stationAt(id, name string, lat, lon float64) journey.Station {
	return journey.Station{ID: id, Name: name, Latitude: lat, Longitude: lon}
}

// legWithStopovers builds one leg whose stopovers all carry departure times
func legWithStopovers(n int) journey.Leg {
	leg := journey.Leg{
		Origin:      stationAt("o", "Origin", 52.5, 13.4),
		Destination: stationAt("d", "Destination", 53.6, 10.0),
		Departure:   stampAt(9, 0),
		Arrival:     stampAt(10, 45),
	}
	for i := 0; i < n; i++ {
		dep := stampAt(9, 10+i*10)
		leg.Stopovers = append(leg.Stopovers, journey.Stopover{
			Station:   stationAt(fmt.Sprintf("s%d", i), fmt.Sprintf("Stop %d", i), 52.6+float64(i)*0.1, 13.0),
			Departure: &dep,
		})
	}
	return leg
}

func TestRender_CenterAndControls(t *testing.T) {
	m := testRenderer().Render(journey.Itinerary{Legs: []journey.Leg{legWithStopovers(2)}}, false)

	if m.Center.Lat != 52.5 || m.Center.Lon != 13.4 {
		t.Errorf("map should center on the first leg's origin, got %+v", m.Center)
	}
	if m.Zoom != 8 {
		t.Errorf("expected default zoom 8, got %d", m.Zoom)
	}
	if len(m.Controls) != 2 || m.Controls[0] != ControlLocate || m.Controls[1] != ControlMeasure {
		t.Errorf("expected locate and measure controls, got %v", m.Controls)
	}
}

func TestRender_DetailedVsTransferOnly(t *testing.T) {
	it := journey.Itinerary{Legs: []journey.Leg{legWithStopovers(4)}}
	r := testRenderer()

	detailed := r.Render(it, false)
	if len(detailed.Polylines) != 1 {
		t.Fatalf("expected 1 polyline, got %d", len(detailed.Polylines))
	}
	if got := len(detailed.Polylines[0].Points); got != 4 {
		t.Errorf("detailed mode: expected 4 route points, got %d", got)
	}
	if got := len(detailed.Circles); got != 4 {
		t.Errorf("detailed mode: expected 4 markers, got %d", got)
	}

	transferOnly := r.Render(it, true)
	if len(transferOnly.Polylines) != 1 {
		t.Fatalf("expected 1 polyline, got %d", len(transferOnly.Polylines))
	}
	if got := len(transferOnly.Polylines[0].Points); got != 2 {
		t.Errorf("transfer-only mode: expected 2 route points, got %d", got)
	}
	if got := len(transferOnly.Circles); got != 2 {
		t.Errorf("transfer-only mode: expected 2 markers, got %d", got)
	}
	for _, want := range []string{"Origin - 09:00 15.03.2024", "Destination - 10:45 15.03.2024"} {
		found := false
		for _, c := range transferOnly.Circles {
			if c.Popup == want {
				found = true
			}
		}
		if !found {
			t.Errorf("transfer-only mode: missing popup %q", want)
		}
	}
}

// A leg with no stopover detail still gets its (empty) polyline in
// detailed mode.
func TestRender_DegeneratePolyline(t *testing.T) {
	leg0 := legWithStopovers(2)
	leg1 := journey.Leg{
		Origin:      stationAt("d", "Destination", 53.6, 10.0),
		Destination: stationAt("e", "End", 54.0, 9.0),
		Departure:   stampAt(9, 50),
		Arrival:     stampAt(10, 30),
	}
	m := testRenderer().Render(journey.Itinerary{Legs: []journey.Leg{leg0, leg1}}, false)

	if len(m.Polylines) != 2 {
		t.Fatalf("expected 2 polylines, got %d", len(m.Polylines))
	}
	if m.Polylines[0].Color != ColorRed || m.Polylines[1].Color != ColorBlue {
		t.Errorf("expected palette order red, blue, got %v, %v",
			m.Polylines[0].Color, m.Polylines[1].Color)
	}
	if got := len(m.Polylines[0].Points); got != 2 {
		t.Errorf("leg 0: expected 2 points, got %d", got)
	}
	if got := len(m.Polylines[1].Points); got != 0 {
		t.Errorf("leg 1: expected empty polyline, got %d points", got)
	}
	if got := len(m.Circles); got != 2 {
		t.Errorf("expected 2 markers total, got %d", got)
	}
}

func TestColorFor_Cycles(t *testing.T) {
	expected := []Color{ColorRed, ColorBlue, ColorGreen, ColorBlack, ColorWhite, ColorRed, ColorBlue}
	for i, want := range expected {
		if got := ColorFor(i); got != want {
			t.Errorf("leg %d: expected %s, got %s", i, want, got)
		}
	}
}

func TestRender_StopTimeFallback(t *testing.T) {
	arr := stampAt(9, 20)
	leg := journey.Leg{
		Origin:      stationAt("o", "Origin", 52.5, 13.4),
		Destination: stationAt("d", "Destination", 53.6, 10.0),
		Departure:   stampAt(9, 0),
		Arrival:     stampAt(10, 45),
		Stopovers: []journey.Stopover{
			{Station: stationAt("s0", "Arrival only", 52.6, 13.0), Arrival: &arr},
			{Station: stationAt("s1", "No timing", 52.7, 13.0)},
		},
	}
	m := testRenderer().Render(journey.Itinerary{Legs: []journey.Leg{leg}}, false)

	if len(m.Circles) != 2 {
		t.Fatalf("expected 2 markers, got %d", len(m.Circles))
	}
	if want := "Arrival only - 09:20 15.03.2024"; m.Circles[0].Popup != want {
		t.Errorf("expected popup %q, got %q", want, m.Circles[0].Popup)
	}
	if want := "No timing - unknown"; m.Circles[1].Popup != want {
		t.Errorf("expected popup %q, got %q", want, m.Circles[1].Popup)
	}
}

func TestRender_MarkerDefaults(t *testing.T) {
	m := testRenderer().Render(journey.Itinerary{Legs: []journey.Leg{legWithStopovers(1)}}, false)
	c := m.Circles[0]
	if c.RadiusMeters != 1000 {
		t.Errorf("expected 1000m radius, got %g", c.RadiusMeters)
	}
	if c.Color != "crimson" || !c.Fill {
		t.Errorf("expected filled crimson marker, got %+v", c)
	}
}

type fixedDelays map[string]time.Duration

func (d fixedDelays) For(stopID string) (time.Duration, bool) {
	delay, ok := d[stopID]
	return delay, ok
}

func TestRender_DelayAnnotation(t *testing.T) {
	r := testRenderer()
	r.Delays = fixedDelays{"s0": 5 * time.Minute}

	m := r.Render(journey.Itinerary{Legs: []journey.Leg{legWithStopovers(2)}}, false)
	if !strings.HasSuffix(m.Circles[0].Popup, " (+5m)") {
		t.Errorf("expected delay suffix on delayed stop, got %q", m.Circles[0].Popup)
	}
	if strings.Contains(m.Circles[1].Popup, "(+") {
		t.Errorf("unexpected delay suffix on on-time stop: %q", m.Circles[1].Popup)
	}
}

// Example scenario: 2-leg itinerary in detailed mode, leg 0 with two
// stopovers, leg 1 without detail.
func TestRender_TwoLegScenario(t *testing.T) {
	m := testRenderer().Render(journey.Itinerary{Legs: []journey.Leg{
		legWithStopovers(2),
		{
			Origin:      stationAt("d", "Destination", 53.6, 10.0),
			Destination: stationAt("e", "End", 54.0, 9.0),
			Departure:   stampAt(9, 50),
			Arrival:     stampAt(10, 30),
		},
	}}, false)

	if len(m.Polylines) != 2 {
		t.Fatalf("expected 2 polylines, got %d", len(m.Polylines))
	}
	if len(m.Polylines[0].Points) != 2 || len(m.Polylines[1].Points) != 0 {
		t.Errorf("expected point counts [2 0], got [%d %d]",
			len(m.Polylines[0].Points), len(m.Polylines[1].Points))
	}
	if len(m.Circles) != 2 {
		t.Errorf("expected 2 markers, got %d", len(m.Circles))
	}
}
