package maprender

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
)

// WriteHTML serializes the map into a self-contained interactive Leaflet
// document at path, overwriting any existing file. Write failures are
// surfaced to the caller; nothing is retried.
func WriteHTML(m *RenderedMap, path string) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode map: %w", err)
	}
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, template.JS(data)); err != nil {
		return fmt.Errorf("render map document: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write map document: %w", err)
	}
	return nil
}

var pageTemplate = template.Must(template.New("map").Parse(mapHTML))

const mapHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Journey map</title>
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<link rel="stylesheet" href="https://unpkg.com/leaflet.locatecontrol@0.79.0/dist/L.Control.Locate.min.css">
<link rel="stylesheet" href="https://unpkg.com/leaflet-measure@3.1.0/dist/leaflet-measure.css">
<style>html, body, #map { height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map"></div>
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<script src="https://unpkg.com/leaflet.locatecontrol@0.79.0/dist/L.Control.Locate.min.js"></script>
<script src="https://unpkg.com/leaflet-measure@3.1.0/dist/leaflet-measure.js"></script>
<script>
var data = {{.}};
var map = L.map("map").setView([data.center.lat, data.center.lon], data.zoom);
L.tileLayer("https://tile.openstreetmap.org/{z}/{x}/{y}.png", {
    attribution: "&copy; OpenStreetMap contributors"
}).addTo(map);
(data.controls || []).forEach(function (name) {
    if (name === "locate") { L.control.locate().addTo(map); }
    if (name === "measure") { new L.Control.Measure({}).addTo(map); }
});
(data.circles || []).forEach(function (c) {
    L.circle([c.center.lat, c.center.lon], {
        radius: c.radiusMeters,
        color: c.color,
        fill: c.fill
    }).bindPopup(c.popup).addTo(map);
});
(data.polylines || []).forEach(function (p) {
    var points = (p.points || []).map(function (pt) { return [pt.lat, pt.lon]; });
    L.polyline(points, { color: p.color }).addTo(map);
});
</script>
</body>
</html>
`
