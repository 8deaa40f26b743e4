// SPDX-License-Identifier: AGPL-3.0-or-later

package semester

import "time"

// Week is one school week of the semester schedule.
type Week struct {
	Number int
	Start  time.Time
	End    time.Time

	// Breaks lists the breaks overlapping the days after the previous week
	// ended up to this week's end, in configuration order. A break that falls
	// between two weeks is reported on the later one; breaks after the last
	// school day are reported on the final week.
	Breaks []string
}

// Label renders the week's date range, e.g. "Jan 19-25".
func (w Week) Label() string {
	return FormatDateRange(w.Start, w.End)
}

// Contains reports whether date falls inside the week's calendar span.
func (w Week) Contains(date time.Time) bool {
	date = Truncate(date)
	return !date.Before(w.Start) && !date.After(w.End)
}

// Schedule lists every week from 1 to TotalWeeks(cfg).
func Schedule(cfg Config) []Week {
	total := TotalWeeks(cfg)
	weeks := make([]Week, 0, total)
	prevEnd := addDays(Truncate(cfg.Start), -1)
	for n := 1; n <= total; n++ {
		start, end := GetWeekBoundaries(n, cfg.Start, cfg.Breaks)
		w := Week{Number: n, Start: start, End: end}
		// The last week also collects breaks running up to the semester end.
		until := end
		if n == total {
			until = laterOf(end, Truncate(cfg.End))
		}
		for _, b := range cfg.Breaks {
			if CountBreakDays(addDays(prevEnd, 1), addDays(until, 1), []Break{b}) > 0 {
				w.Breaks = append(w.Breaks, b.Name)
			}
		}
		weeks = append(weeks, w)
		prevEnd = end
	}
	return weeks
}
