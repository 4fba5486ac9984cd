package journey

import (
	"context"
	"fmt"
	"strconv"
)

// MaxCandidates is the number of disambiguation candidates presented to
// the user when a lookup is ambiguous.
const MaxCandidates = 5

// Lookup is the station-search side of the journey provider.
type Lookup interface {
	Locations(ctx context.Context, query string) ([]Station, error)
}

// Resolver turns free-text station names into candidate stations.
// The interactive selection step is separate (ResolveSelection) so the
// decision logic stays testable without simulating terminal input.
type Resolver struct {
	Lookup Lookup
}

// NewResolver creates a resolver backed by the given lookup
func NewResolver(lookup Lookup) *Resolver {
	return &Resolver{Lookup: lookup}
}

// Propose returns the provider's candidate stations for name, in relevance
// order. An empty result is a *NotFoundError. Propose never prompts.
func (r *Resolver) Propose(ctx context.Context, name string) ([]Station, error) {
	stations, err := r.Lookup.Locations(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("station lookup for %q: %w", name, err)
	}
	if len(stations) == 0 {
		return nil, &NotFoundError{Query: name}
	}
	return stations, nil
}

// Candidates caps a proposal list at MaxCandidates for presentation.
func Candidates(stations []Station) []Station {
	if len(stations) > MaxCandidates {
		return stations[:MaxCandidates]
	}
	return stations
}

// ResolveSelection converts a 1-based user selection into the chosen
// station. Selections outside [1, len(candidates)] are *InvalidSelectionError.
func ResolveSelection(candidates []Station, selection int) (Station, error) {
	if selection < 1 || selection > len(candidates) {
		return Station{}, &InvalidSelectionError{Input: strconv.Itoa(selection)}
	}
	return candidates[selection-1], nil
}
