// Package dates contains the pure date-handling rules for timesheets.
// Dates travel through the system as text; only the monthly filter parses
// them numerically, and it fails fast on malformed input.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Format selects the textual date layout used for rendering and layout checks.
type Format string

const (
	FormatFR  Format = "FR"  // DD/MM/YYYY
	FormatUS  Format = "US"  // MM/DD/YYYY
	FormatISO Format = "ISO" // YYYY-MM-DD
)

// ParseFormat normalizes a configured format name.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FR":
		return FormatFR, true
	case "US":
		return FormatUS, true
	case "ISO":
		return FormatISO, true
	}
	return "", false
}

// Reformat re-renders a DD/MM/YYYY date according to the target format.
// Input that does not split into exactly three slash-separated parts is
// returned unchanged (silent fallback, no error).
func Reformat(date string, f Format) string {
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return date
	}
	switch f {
	case FormatUS:
		return fmt.Sprintf("%s/%s/%s", parts[1], parts[0], parts[2])
	case FormatISO:
		return fmt.Sprintf("%s-%s-%s", parts[2], parts[1], parts[0])
	default:
		return fmt.Sprintf("%s/%s/%s", parts[0], parts[1], parts[2])
	}
}

// CheckLayout verifies the structural shape of a date for the given format:
// three separator-delimited parts, nothing more. Numeric ranges are not
// checked (month 13 passes). The returned string is empty when the shape
// matches, otherwise a format-specific error message.
func CheckLayout(date string, f Format) string {
	switch f {
	case FormatUS:
		if len(strings.Split(date, "/")) != 3 {
			return "invalid date format (expected: MM/DD/YYYY)"
		}
	case FormatISO:
		if len(strings.Split(date, "-")) != 3 {
			return "invalid date format (expected: YYYY-MM-DD)"
		}
	default:
		if len(strings.Split(date, "/")) != 3 {
			return "invalid date format (expected: DD/MM/YYYY)"
		}
	}
	return ""
}

// MonthYear extracts the month and year from a DD/MM/YYYY date.
// Malformed input is a contract violation of the stored data and the error
// must propagate to the caller untouched.
func MonthYear(date string) (month, year int, err error) {
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return 0, 0, fmt.Errorf("malformed entry date %q: want DD/MM/YYYY", date)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed entry date %q: %w", date, err)
	}
	year, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed entry date %q: %w", date, err)
	}
	return month, year, nil
}

// Today returns the current date as DD/MM/YYYY.
func Today() string {
	return time.Now().Format("02/01/2006")
}

// BusinessDays counts Monday-Friday days between two DD/MM/YYYY dates,
// both endpoints inclusive.
func BusinessDays(start, end string) (int, error) {
	from, err := time.Parse("02/01/2006", start)
	if err != nil {
		return 0, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	to, err := time.Parse("02/01/2006", end)
	if err != nil {
		return 0, fmt.Errorf("invalid end date %q: %w", end, err)
	}

	days := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days, nil
}
