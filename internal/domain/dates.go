package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used throughout trip snapshots.
// DayPlans are keyed by dates in this format.
const DateLayout = "2006-01-02"

// DaysInRange expands an inclusive calendar-date range into one entry per day.
// Both endpoints are included. Returns nil when either date is unparseable or
// end is before start — callers treat that as "no days", not an error.
func DaysInRange(start, end string) []string {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return nil
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return nil
	}
	if e.Before(s) {
		return nil
	}
	var days []string
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DateLayout))
	}
	return days
}

// DurationLabel renders the span between two RFC 3339 timestamps as "3h 25m",
// truncated to whole minutes. Returns "" when either input is absent,
// unparseable, or the span is non-positive — an unknown duration, not an error.
func DurationLabel(startIso, endIso string) string {
	if startIso == "" || endIso == "" {
		return ""
	}
	start, err := time.Parse(time.RFC3339, startIso)
	if err != nil {
		return ""
	}
	end, err := time.Parse(time.RFC3339, endIso)
	if err != nil {
		return ""
	}
	d := end.Sub(start)
	if d <= 0 {
		return ""
	}
	mins := int(d.Minutes())
	return fmt.Sprintf("%dh %dm", mins/60, mins%60)
}
