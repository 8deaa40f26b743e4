// SPDX-License-Identifier: AGPL-3.0-or-later

package semester

import (
	"math"
	"time"
)

// Calculate computes the progress report for cfg as of query.
//
// Before the semester the report is pinned to week 0; after it, to the last
// week at 100%. Inside the semester, days elapsed cover [start, query) and
// days remaining cover [query, end), both without break days.
func Calculate(cfg Config, query time.Time) Report {
	start := Truncate(cfg.Start)
	end := Truncate(cfg.End)
	query = Truncate(query)

	totalDays := TotalDays(cfg)
	totalWeeks := weeksIn(totalDays)

	r := Report{
		TotalWeeks:    totalWeeks,
		SemesterStart: start,
		SemesterEnd:   end,
	}

	switch {
	case query.Before(start):
		r.DaysRemaining = totalDays
		// Literal calendar window; breaks are not skipped before the semester.
		r.WeekStart = start
		r.WeekEnd = addDays(start, 6)

	case query.After(end):
		r.CurrentWeek = totalWeeks
		r.PercentComplete = 100
		r.DaysElapsed = totalDays
		r.WeekStart, r.WeekEnd = GetWeekBoundaries(totalWeeks, start, cfg.Breaks)

	default:
		elapsed := daysBetween(start, query) - CountBreakDays(start, query, cfg.Breaks)
		r.DaysElapsed = elapsed
		r.CurrentWeek = min(elapsed/7+1, totalWeeks)
		r.OnBreak, r.BreakName = IsOnBreak(query, cfg.Breaks)
		r.DaysRemaining = daysBetween(query, end) - CountBreakDays(query, end, cfg.Breaks)
		r.PercentComplete = percentOf(elapsed, totalDays)
		r.WeekStart, r.WeekEnd = GetWeekBoundaries(r.CurrentWeek, start, cfg.Breaks)
	}

	if cfg.ManualWeek != nil {
		r.CurrentWeek = *cfg.ManualWeek
		r.PercentComplete = percentOf(*cfg.ManualWeek, totalWeeks)
	}

	return r
}

// CalculateOn parses query as YYYY-MM-DD and calculates the report for it.
// An empty query means today in the local time zone.
func CalculateOn(cfg Config, query string) (Report, error) {
	return calculateOn(cfg, query, time.Now)
}

func calculateOn(cfg Config, query string, now func() time.Time) (Report, error) {
	if query == "" {
		return Calculate(cfg, now()), nil
	}
	date, err := ParseDate(query)
	if err != nil {
		return Report{}, err
	}
	return Calculate(cfg, date), nil
}

// TotalDays counts the non-break days in [start, end).
func TotalDays(cfg Config) int {
	days := daysBetween(cfg.Start, cfg.End) - CountBreakDays(cfg.Start, cfg.End, cfg.Breaks)
	return max(days, 0)
}

// TotalWeeks is the number of seven-day school weeks in the semester,
// rounding a partial final week up.
func TotalWeeks(cfg Config) int {
	return weeksIn(TotalDays(cfg))
}

func weeksIn(days int) int {
	return (days + 6) / 7
}

// CountBreakDays counts the break days that fall inside [start, end).
// Each break is clipped to the interval first; overlapping breaks are
// counted once per break.
func CountBreakDays(start, end time.Time, breaks []Break) int {
	start, end = Truncate(start), Truncate(end)

	total := 0
	for _, b := range breaks {
		from := laterOf(Truncate(b.Start), start)
		// Break ends are inclusive, the interval end is not.
		to := earlierOf(addDays(Truncate(b.End), 1), end)
		if to.After(from) {
			total += daysBetween(from, to)
		}
	}
	return total
}

// IsOnBreak returns the first break, in input order, containing date.
func IsOnBreak(date time.Time, breaks []Break) (bool, string) {
	for _, b := range breaks {
		if b.Contains(date) {
			return true, b.Name
		}
	}
	return false, ""
}

// GetWeekBoundaries returns the first and last day of school week n.
//
// Starting at start it walks forward one calendar day at a time, counting
// only non-break days, until (n-1)*7 of them have passed; that day is the
// week start. Six more non-break days give the week end. Without breaks the
// span is always exactly seven calendar days.
func GetWeekBoundaries(n int, start time.Time, breaks []Break) (time.Time, time.Time) {
	weekStart := advanceSchoolDays(Truncate(start), (n-1)*7, breaks)
	weekEnd := advanceSchoolDays(weekStart, 6, breaks)
	return weekStart, weekEnd
}

func advanceSchoolDays(from time.Time, count int, breaks []Break) time.Time {
	current := from
	for passed := 0; passed < count; {
		current = addDays(current, 1)
		if onBreak, _ := IsOnBreak(current, breaks); !onBreak {
			passed++
		}
	}
	return current
}

// percentOf returns part/whole as a percentage clamped to [0, 100] and
// rounded to two decimals. A zero whole yields 0.
func percentOf(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	p := float64(part) / float64(whole) * 100
	p = math.Max(0, math.Min(100, p))
	return math.Round(p*100) / 100
}
