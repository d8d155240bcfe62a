package handlers

import (
	"time"
)

// parseDay reads a YYYY-MM-DD query value as midnight in loc.
func parseDay(value string, loc *time.Location) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", value, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// endOfDay returns the first instant after the day starting at t.
func endOfDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}
