// Package journey holds the domain model for planned journeys and the
// decision logic around them: resolving free-text station names to concrete
// stations and summarizing candidate itineraries for selection.
//
// All interactive I/O lives in the caller; this package only produces
// candidate lists and summary strings and validates selections against them.
package journey
