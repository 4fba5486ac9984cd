package internal

import (
	"time"
)

// JourneyTimeLayout is the display layout for all journey timestamps
// (24-hour clock, then day.month.year).
const JourneyTimeLayout = "15:04 02.01.2006"

// UnknownTimeLabel is displayed when a stop has neither timing.
const UnknownTimeLabel = "unknown"

// FormatJourneyTime formats a timestamp for display
func FormatJourneyTime(t time.Time) string {
	return t.Format(JourneyTimeLayout)
}

// StopTimeLabel picks the display time for a stop: departure when known,
// otherwise arrival, otherwise the unknown-time label.
func StopTimeLabel(departure, arrival *time.Time) string {
	if departure != nil {
		return FormatJourneyTime(*departure)
	}
	if arrival != nil {
		return FormatJourneyTime(*arrival)
	}
	return UnknownTimeLabel
}
