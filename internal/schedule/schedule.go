// Package schedule composes calendar dates and clock times into the
// combined date-time strings carried on tasks, and derives duration
// labels from them.
package schedule

import (
	"fmt"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// ValidClock reports whether s is a well-formed HH:MM clock time.
func ValidClock(s string) bool {
	_, err := time.Parse(clockLayout, s)
	return err == nil
}

// Combine joins an independently chosen calendar date and clock time
// into the single "YYYY-MM-DD HH:MM" string handed to the settings
// form. Either part may be empty, in which case the other is returned
// alone.
func Combine(date, clock string) string {
	switch {
	case date == "":
		return clock
	case clock == "":
		return date
	default:
		return date + " " + clock
	}
}

// Duration derives the "XhYm" label between two clock times on the same
// day. It fails on malformed inputs or when end precedes start.
func Duration(startClock, endClock string) (string, error) {
	start, err := time.Parse(clockLayout, startClock)
	if err != nil {
		return "", fmt.Errorf("parsing start time %q: %w", startClock, err)
	}
	end, err := time.Parse(clockLayout, endClock)
	if err != nil {
		return "", fmt.Errorf("parsing end time %q: %w", endClock, err)
	}
	if end.Before(start) {
		return "", fmt.Errorf("end time %s precedes start time %s", endClock, startClock)
	}

	diff := end.Sub(start)
	hours := int(diff / time.Hour)
	minutes := int(diff % time.Hour / time.Minute)
	return fmt.Sprintf("%dh %dm", hours, minutes), nil
}
