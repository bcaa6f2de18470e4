package utils

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// DateOnly truncates t to midnight in its own location. Streak math
// compares calendar days, never times of day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WholeDaysBetween returns the number of whole calendar days from
// `from` to `to` after truncating both to midnight. Rounding absorbs
// DST days that are 23 or 25 hours long.
func WholeDaysBetween(from, to time.Time) int {
	f := DateOnly(from)
	t := DateOnly(to)
	return int(math.Round(t.Sub(f).Hours() / 24))
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
