package realtime

import (
	"fmt"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// Delays maps stop IDs to their currently reported delay
type Delays map[string]time.Duration

// For returns the delay for a stop ID if one is known
func (d Delays) For(stopID string) (time.Duration, bool) {
	delay, ok := d[stopID]
	return delay, ok
}

// DelaysFromTripUpdates decodes a TripUpdates feed and indexes the reported
// delay per stop, preferring the departure delay over the arrival delay.
// Zero delays are skipped; a nil or empty buffer yields an empty index.
func DelaysFromTripUpdates(b []byte) (Delays, error) {
	delays := Delays{}
	if len(b) == 0 {
		return delays, nil
	}

	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(b, &fm); err != nil {
		return nil, fmt.Errorf("decode trip updates: %w", err)
	}

	for _, e := range fm.Entity {
		if e.TripUpdate == nil {
			continue
		}
		for _, stu := range e.TripUpdate.StopTimeUpdate {
			if stu.StopId == nil {
				continue
			}
			var delaySec int32
			if stu.Departure != nil && stu.Departure.Delay != nil {
				delaySec = *stu.Departure.Delay
			} else if stu.Arrival != nil && stu.Arrival.Delay != nil {
				delaySec = *stu.Arrival.Delay
			} else {
				continue
			}
			if delaySec == 0 {
				continue
			}
			delays[*stu.StopId] = time.Duration(delaySec) * time.Second
		}
	}
	return delays, nil
}
