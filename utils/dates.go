package utils

import (
	"strings"
	"time"
)

// payDateLayouts covers the formats the backends use for payment dates.
var payDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
}

// MonthWindow returns the inclusive [start, end] bounds of the month
// containing now, in now's location.
func MonthWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// ParsePayDate parses a backend payment date string. The zero time is
// returned when no known layout matches.
func ParsePayDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}

	for _, layout := range payDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}

	// last resort: many records carry a full timestamp after the date part
	if len(value) >= 10 {
		if t, err := time.Parse("2006-01-02", value[:10]); err == nil {
			return t
		}
	}

	return time.Time{}
}

// SameCalendarDay reports whether a and b fall on the same calendar date.
// Comparison is by date components so a UTC-stamped record still matches the
// local day it names.
func SameCalendarDay(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FormatAPIDate renders a time the way the backends expect date query
// parameters.
func FormatAPIDate(t time.Time) string {
	return t.Format("2006-01-02")
}
