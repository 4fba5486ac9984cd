package maprender

// Coordinate is a latitude/longitude pair in degrees
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Circle is a circle marker with a popup
type Circle struct {
	Center       Coordinate `json:"center"`
	RadiusMeters float64    `json:"radiusMeters"`
	Popup        string     `json:"popup"`
	Color        string     `json:"color"`
	Fill         bool       `json:"fill"`
}

// Polyline is an ordered run of coordinates drawn in one color.
// Degenerate lines (0 or 1 points) are kept; Leaflet draws them as nothing.
type Polyline struct {
	Points []Coordinate `json:"points"`
	Color  Color        `json:"color"`
}

// Control is an auxiliary interactive map control
type Control string

const (
	ControlLocate  Control = "locate"
	ControlMeasure Control = "measure"
)

// RenderedMap is the visual document produced by the renderer. It is built
// once per Render call and owned by the caller until exported.
type RenderedMap struct {
	Center    Coordinate `json:"center"`
	Zoom      int        `json:"zoom"`
	Circles   []Circle   `json:"circles"`
	Polylines []Polyline `json:"polylines"`
	Controls  []Control  `json:"controls"`
}

// AddCircle appends a circle marker to the map
func (m *RenderedMap) AddCircle(c Circle) {
	m.Circles = append(m.Circles, c)
}

// AddPolyline appends a polyline to the map
func (m *RenderedMap) AddPolyline(p Polyline) {
	m.Polylines = append(m.Polylines, p)
}
