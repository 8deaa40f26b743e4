// SPDX-License-Identifier: AGPL-3.0-or-later

package semester

import (
	"fmt"
	"time"
)

// DateLayout is the ISO-8601 calendar date layout used for every date in
// configuration files and reports.
const DateLayout = "2006-01-02"

const day = 24 * time.Hour

// ParseDate parses a YYYY-MM-DD string into a date at UTC midnight.
// The returned error wraps *time.ParseError.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Truncate drops the time-of-day and zone of t, keeping its calendar date.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the number of calendar days from a to b (b - a).
func daysBetween(a, b time.Time) int {
	return int(Truncate(b).Sub(Truncate(a)) / day)
}

func addDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlierOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// FormatDateRange renders a short human range: "Jan 27-30" when both dates
// share a month, "Jan 27 - Feb 2" otherwise.
func FormatDateRange(start, end time.Time) string {
	if start.Year() == end.Year() && start.Month() == end.Month() {
		return fmt.Sprintf("%s-%s", start.Format("Jan 2"), end.Format("2"))
	}
	return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2"))
}
