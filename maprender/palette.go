package maprender

// Color is a named CSS color used for leg polylines
type Color string

const (
	ColorRed   Color = "red"
	ColorBlue  Color = "blue"
	ColorGreen Color = "green"
	ColorBlack Color = "black"
	ColorWhite Color = "white"
)

// Palette is the ordered, cyclic polyline palette. The leg index alone
// determines the color so repeated renders of the same itinerary stay
// visually identical.
var Palette = []Color{ColorRed, ColorBlue, ColorGreen, ColorBlack, ColorWhite}

// ColorFor returns the polyline color for the given 0-based leg index
func ColorFor(legIndex int) Color {
	return Palette[legIndex%len(Palette)]
}
