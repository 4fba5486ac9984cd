// Package realtime extracts per-stop delays from a GTFS-Realtime
// TripUpdates feed. The delays are an optional overlay: the renderer
// annotates marker popups for stops it can match by stop ID.
package realtime
