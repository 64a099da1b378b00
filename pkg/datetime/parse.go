// Package datetime provides date and time utility functions.
package datetime

import (
	"strings"
	"time"

	"github.com/iwvelando/pension-quest/pkg/constants"
)

const (
	// DateLayout is the canonical answer date format.
	DateLayout = constants.DateLayout

	// lenientLayout accepts one- or two-digit months and days.
	lenientLayout = "1/2/2006"
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseDate parses a MM/DD/YYYY answer in the given location. Leading zeros
// on the month and day are optional; the year must have four digits.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(lenientLayout, strings.TrimSpace(value), loc)
}

// FormatDate renders a date in the canonical layout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// YearsBetween returns the number of whole calendar years from earlier to
// later. A year is complete once the later date reaches the same month and
// day as the earlier one, so someone born on 2000-01-01 is 1 on 2001-01-01.
// The result is negative when later precedes earlier.
func YearsBetween(later, earlier time.Time) int {
	if later.Before(earlier) {
		return -YearsBetween(earlier, later)
	}

	years := later.Year() - earlier.Year()
	if later.Month() < earlier.Month() ||
		(later.Month() == earlier.Month() && later.Day() < earlier.Day()) {
		years--
	}
	return years
}

// AgeOn returns the whole-year age on the given date of someone born on birthday.
func AgeOn(birthday, on time.Time) int {
	return YearsBetween(on, birthday)
}
