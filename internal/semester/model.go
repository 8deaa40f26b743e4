// SPDX-License-Identifier: AGPL-3.0-or-later

package semester

import (
	"encoding/json"
	"fmt"
	"time"
)

// Break is a named, inclusive range of days excluded from week counting.
type Break struct {
	Name  string
	Start time.Time
	End   time.Time
}

// Contains reports whether date falls within the break (both ends inclusive).
func (b Break) Contains(date time.Time) bool {
	date = Truncate(date)
	return !date.Before(Truncate(b.Start)) && !date.After(Truncate(b.End))
}

// Config is the semester calendar consumed by Calculate.
//
// Validation (start before end, breaks inside the semester and not
// overlapping, manual week range) belongs to the configuration loader.
// Breaks may be given in any order.
type Config struct {
	Start  time.Time
	End    time.Time
	Breaks []Break

	// ManualWeek, when set, replaces the date-based current week.
	// nil means the week is computed from the calendar.
	ManualWeek *int
}

// Report is the semester progress as of a single query date.
type Report struct {
	CurrentWeek     int
	TotalWeeks      int
	PercentComplete float64
	OnBreak         bool
	BreakName       string // empty unless OnBreak
	DaysElapsed     int
	DaysRemaining   int
	SemesterStart   time.Time
	SemesterEnd     time.Time
	WeekStart       time.Time
	WeekEnd         time.Time
}

// reportJSON is the flat wire shape of a Report.
type reportJSON struct {
	CurrentWeek     int     `json:"current_week"`
	TotalWeeks      int     `json:"total_weeks"`
	PercentComplete float64 `json:"percent_complete"`
	OnBreak         bool    `json:"on_break"`
	BreakName       *string `json:"break_name"`
	DaysElapsed     int     `json:"days_elapsed"`
	DaysRemaining   int     `json:"days_remaining"`
	SemesterStart   string  `json:"semester_start"`
	SemesterEnd     string  `json:"semester_end"`
	WeekStart       string  `json:"week_start"`
	WeekEnd         string  `json:"week_end"`
}

// MarshalJSON encodes dates as YYYY-MM-DD and a missing break name as null.
func (r Report) MarshalJSON() ([]byte, error) {
	w := reportJSON{
		CurrentWeek:     r.CurrentWeek,
		TotalWeeks:      r.TotalWeeks,
		PercentComplete: r.PercentComplete,
		OnBreak:         r.OnBreak,
		DaysElapsed:     r.DaysElapsed,
		DaysRemaining:   r.DaysRemaining,
		SemesterStart:   FormatDate(r.SemesterStart),
		SemesterEnd:     FormatDate(r.SemesterEnd),
		WeekStart:       FormatDate(r.WeekStart),
		WeekEnd:         FormatDate(r.WeekEnd),
	}
	if r.OnBreak {
		name := r.BreakName
		w.BreakName = &name
	}
	return json.Marshal(w)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (r *Report) UnmarshalJSON(data []byte) error {
	var w reportJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	var out Report
	out.CurrentWeek = w.CurrentWeek
	out.TotalWeeks = w.TotalWeeks
	out.PercentComplete = w.PercentComplete
	out.OnBreak = w.OnBreak
	if w.BreakName != nil {
		out.BreakName = *w.BreakName
	}
	out.DaysElapsed = w.DaysElapsed
	out.DaysRemaining = w.DaysRemaining

	fields := []struct {
		name string
		raw  string
		dst  *time.Time
	}{
		{"semester_start", w.SemesterStart, &out.SemesterStart},
		{"semester_end", w.SemesterEnd, &out.SemesterEnd},
		{"week_start", w.WeekStart, &out.WeekStart},
		{"week_end", w.WeekEnd, &out.WeekEnd},
	}
	for _, f := range fields {
		t, err := ParseDate(f.raw)
		if err != nil {
			return fmt.Errorf("report field %s: %w", f.name, err)
		}
		*f.dst = t
	}

	*r = out
	return nil
}
