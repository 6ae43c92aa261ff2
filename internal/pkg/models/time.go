package models

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for subject-day identifiers
const DateLayout = "2006-01-02"

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// FormatTime formats a time.Time according to RFC3339
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// ParseTime parses a string in RFC3339 format to time.Time
func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// ParseDate parses a YYYY-MM-DD date string into a UTC midnight instant
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t.UTC(), nil
}

// DayBounds returns the inclusive start and exclusive end of a calendar day
func DayBounds(date string) (time.Time, time.Time, error) {
	start, err := ParseDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.Add(24 * time.Hour), nil
}

// DateOf returns the YYYY-MM-DD bucket a timestamp belongs to, in UTC
func DateOf(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
