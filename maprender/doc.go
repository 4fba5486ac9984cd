// Package maprender turns a selected itinerary into an interactive map
// document: one colored polyline per leg, circle markers with time popups
// for the visited stops, and locate/measure controls.
//
// Rendering and export are separate: Renderer.Render builds the in-memory
// RenderedMap, WriteHTML serializes it to a self-contained Leaflet page.
package maprender
