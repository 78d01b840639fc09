package entities

import (
	"fmt"
	"time"
)

// Horizon is the fixed forward window being planned, expressed as consecutive
// calendar dates starting at Start.
type Horizon struct {
	Start time.Time
	Days  int
}

// NewHorizon creates a validated Horizon. The start date is truncated to a
// calendar date in UTC.
func NewHorizon(start time.Time, days int) (Horizon, error) {
	if start.IsZero() {
		return Horizon{}, fmt.Errorf("horizon start cannot be zero")
	}
	if days <= 0 {
		return Horizon{}, fmt.Errorf("horizon days must be positive, got %d", days)
	}
	return Horizon{Start: DateOf(start), Days: days}, nil
}

// End returns the last date inside the horizon.
func (h Horizon) End() time.Time {
	return h.Start.AddDate(0, 0, h.Days-1)
}

// Dates returns the horizon dates in chronological order.
func (h Horizon) Dates() []time.Time {
	dates := make([]time.Time, h.Days)
	for i := 0; i < h.Days; i++ {
		dates[i] = h.Start.AddDate(0, 0, i)
	}
	return dates
}

// Contains reports whether d falls inside the horizon.
func (h Horizon) Contains(d time.Time) bool {
	d = DateOf(d)
	return !d.Before(h.Start) && !d.After(h.End())
}

// DateOf truncates a timestamp to its calendar date in UTC. All planning dates
// pass through here so they compare and hash consistently as map keys.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Date builds a calendar date in UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
