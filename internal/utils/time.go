package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/healthlog/internal/constants"
)

// FormatDate formats t as yyyy-MM-dd in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// FormatEntryTime formats t as h:mm AM/PM.
func FormatEntryTime(t time.Time) string {
	return t.Format(constants.EntryTimeFormat)
}

// SubtractDays steps back n calendar days, keeping the wall clock and
// location, so DST transitions never skip or repeat a date.
func SubtractDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, -n)
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ParseDateInLocation parses a date string (yyyy-MM-dd) to midnight in loc.
func ParseDateInLocation(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// ValidateDate checks that dateStr is a real yyyy-MM-dd calendar date.
func ValidateDate(dateStr string) error {
	if _, err := time.Parse(constants.DateFormat, dateStr); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", dateStr, err)
	}
	return nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}

// WindowBounds returns the oldest and newest dates covered by a trailing
// window of days ending at anchor.
func WindowBounds(anchor time.Time, days int) (oldest, newest string) {
	return FormatDate(SubtractDays(anchor, days-1)), FormatDate(anchor)
}

// DaysInMonth returns the number of days in the month containing t.
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
