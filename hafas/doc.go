// Package hafas is an HTTP client for the Deutsche Bahn "reiseloesung" web
// API: station search and journey queries. Responses are decoded from JSON
// and mapped to the journey domain model; callers never see the wire types.
package hafas
