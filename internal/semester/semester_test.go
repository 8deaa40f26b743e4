// SPDX-License-Identifier: AGPL-3.0-or-later

package semester

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func springConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		Start: date(t, "2026-01-19"),
		End:   date(t, "2026-05-08"),
	}
}

func springBreak(t *testing.T) Break {
	t.Helper()
	return Break{
		Name:  "Spring Break",
		Start: date(t, "2026-03-16"),
		End:   date(t, "2026-03-20"),
	}
}

func TestCalculate_FirstDay(t *testing.T) {
	r := Calculate(springConfig(t), date(t, "2026-01-19"))

	assert.Equal(t, 1, r.CurrentWeek)
	assert.Equal(t, 16, r.TotalWeeks)
	assert.Equal(t, 0, r.DaysElapsed)
	assert.Equal(t, 109, r.DaysRemaining)
	assert.Equal(t, 0.0, r.PercentComplete)
	assert.False(t, r.OnBreak)
	assert.Equal(t, date(t, "2026-01-19"), r.WeekStart)
	assert.Equal(t, date(t, "2026-01-25"), r.WeekEnd)
}

func TestCalculate_MidSemester(t *testing.T) {
	r := Calculate(springConfig(t), date(t, "2026-02-09"))

	assert.Equal(t, 4, r.CurrentWeek)
	assert.Equal(t, 21, r.DaysElapsed)
	assert.Equal(t, 88, r.DaysRemaining)
	assert.Equal(t, 19.27, r.PercentComplete)
	assert.Equal(t, date(t, "2026-02-09"), r.WeekStart)
	assert.Equal(t, date(t, "2026-02-15"), r.WeekEnd)
}

func TestCalculate_DuringBreak(t *testing.T) {
	cfg := springConfig(t)
	cfg.Breaks = []Break{springBreak(t)}

	r := Calculate(cfg, date(t, "2026-03-18"))

	assert.True(t, r.OnBreak)
	assert.Equal(t, "Spring Break", r.BreakName)
	assert.Equal(t, 9, r.CurrentWeek)
	assert.Equal(t, 15, r.TotalWeeks)
	assert.Equal(t, 56, r.DaysElapsed)
	assert.Equal(t, 48, r.DaysRemaining)
	assert.Equal(t, 53.85, r.PercentComplete)
	// Week 9 begins on the first school day after the break.
	assert.Equal(t, date(t, "2026-03-21"), r.WeekStart)
	assert.Equal(t, date(t, "2026-03-27"), r.WeekEnd)
}

func TestCalculate_BeforeSemester(t *testing.T) {
	cfg := springConfig(t)
	cfg.Breaks = []Break{springBreak(t)}

	r := Calculate(cfg, date(t, "2026-01-18"))

	assert.Equal(t, 0, r.CurrentWeek)
	assert.Equal(t, 0.0, r.PercentComplete)
	assert.False(t, r.OnBreak)
	assert.Empty(t, r.BreakName)
	assert.Equal(t, 0, r.DaysElapsed)
	assert.Equal(t, 104, r.DaysRemaining)
	assert.Equal(t, date(t, "2026-01-19"), r.WeekStart)
	assert.Equal(t, date(t, "2026-01-25"), r.WeekEnd)
}

func TestCalculate_LastDay(t *testing.T) {
	r := Calculate(springConfig(t), date(t, "2026-05-08"))

	assert.Equal(t, r.TotalWeeks, r.CurrentWeek)
	assert.Equal(t, 0, r.DaysRemaining)
	assert.Equal(t, 100.0, r.PercentComplete)
}

func TestCalculate_AfterSemester(t *testing.T) {
	r := Calculate(springConfig(t), date(t, "2026-05-09"))

	assert.Equal(t, 16, r.CurrentWeek)
	assert.Equal(t, 100.0, r.PercentComplete)
	assert.False(t, r.OnBreak)
	assert.Equal(t, 109, r.DaysElapsed)
	assert.Equal(t, 0, r.DaysRemaining)
	assert.Equal(t, date(t, "2026-05-04"), r.WeekStart)
	assert.Equal(t, date(t, "2026-05-10"), r.WeekEnd)
}

func TestCalculate_BreakOnFirstDay(t *testing.T) {
	cfg := springConfig(t)
	cfg.Breaks = []Break{{
		Name:  "Orientation",
		Start: date(t, "2026-01-19"),
		End:   date(t, "2026-01-20"),
	}}

	r := Calculate(cfg, date(t, "2026-01-19"))

	assert.True(t, r.OnBreak)
	assert.Equal(t, "Orientation", r.BreakName)
	assert.Equal(t, 1, r.CurrentWeek)
	assert.Equal(t, 0, r.DaysElapsed)
}

func TestCalculate_ManualWeek(t *testing.T) {
	cfg := springConfig(t)
	week := 12
	cfg.ManualWeek = &week

	for _, q := range []string{"2026-01-19", "2026-02-09", "2026-04-30"} {
		t.Run(q, func(t *testing.T) {
			r := Calculate(cfg, date(t, q))
			assert.Equal(t, 12, r.CurrentWeek)
			assert.Equal(t, 75.0, r.PercentComplete)
		})
	}

	// Everything but the week and percent still follows the calendar.
	r := Calculate(cfg, date(t, "2026-02-09"))
	assert.Equal(t, 21, r.DaysElapsed)
	assert.Equal(t, 88, r.DaysRemaining)
	assert.Equal(t, date(t, "2026-02-09"), r.WeekStart)
}

func TestCalculate_ManualWeekOutOfRangeIsTrusted(t *testing.T) {
	cfg := springConfig(t)
	week := 40
	cfg.ManualWeek = &week

	r := Calculate(cfg, date(t, "2026-02-09"))
	assert.Equal(t, 40, r.CurrentWeek)
	assert.Equal(t, 100.0, r.PercentComplete)

	week = -3
	r = Calculate(cfg, date(t, "2026-02-09"))
	assert.Equal(t, -3, r.CurrentWeek)
	assert.Equal(t, 0.0, r.PercentComplete)
}

func TestCalculate_ZeroLengthSemester(t *testing.T) {
	d := date(t, "2026-01-19")
	cfg := Config{Start: d, End: d}

	r := Calculate(cfg, d)
	assert.Equal(t, 0, r.TotalWeeks)
	assert.Equal(t, 0, r.CurrentWeek)
	assert.Equal(t, 0.0, r.PercentComplete)

	week := 3
	cfg.ManualWeek = &week
	r = Calculate(cfg, d)
	assert.Equal(t, 3, r.CurrentWeek)
	assert.Equal(t, 0.0, r.PercentComplete)
}

func TestCalculate_IgnoresTimeOfDay(t *testing.T) {
	cfg := springConfig(t)
	loc := time.FixedZone("UTC-8", -8*60*60)
	q := time.Date(2026, time.February, 9, 23, 30, 0, 0, loc)

	assert.Equal(t, 4, Calculate(cfg, q).CurrentWeek)
}

func TestCalculate_UnsortedBreaks(t *testing.T) {
	cfg := springConfig(t)
	cfg.Breaks = []Break{
		springBreak(t),
		{Name: "MLK Day", Start: date(t, "2026-01-19"), End: date(t, "2026-01-19")},
	}

	r := Calculate(cfg, date(t, "2026-03-23"))
	// 63 calendar days, 1 MLK day, 5 spring break days.
	assert.Equal(t, 57, r.DaysElapsed)
	assert.Equal(t, 9, r.CurrentWeek)
}

func TestCalculate_Properties(t *testing.T) {
	cases := map[string]Config{
		"no breaks": springConfig(t),
		"with breaks": func() Config {
			c := springConfig(t)
			c.Breaks = []Break{
				springBreak(t),
				{Name: "Reading Day", Start: date(t, "2026-04-24"), End: date(t, "2026-04-24")},
			}
			return c
		}(),
	}

	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			total := TotalDays(cfg)
			prevWeek := 0
			for q := addDays(cfg.Start, -3); !q.After(addDays(cfg.End, 3)); q = addDays(q, 1) {
				r := Calculate(cfg, q)

				assert.GreaterOrEqual(t, r.PercentComplete, 0.0, q)
				assert.LessOrEqual(t, r.PercentComplete, 100.0, q)
				assert.GreaterOrEqual(t, r.CurrentWeek, prevWeek, q)
				assert.LessOrEqual(t, r.CurrentWeek, r.TotalWeeks, q)
				assert.Equal(t, r.OnBreak, r.BreakName != "", q)
				prevWeek = r.CurrentWeek

				inRange := !q.Before(cfg.Start) && !q.After(cfg.End)
				if inRange && len(cfg.Breaks) == 0 {
					assert.Equal(t, total, r.DaysElapsed+r.DaysRemaining, q)
				}
			}
		})
	}
}

func TestCalculateOn(t *testing.T) {
	cfg := springConfig(t)

	r, err := CalculateOn(cfg, "2026-02-09")
	require.NoError(t, err)
	assert.Equal(t, 4, r.CurrentWeek)

	fixed := func() time.Time { return time.Date(2026, time.March, 2, 9, 0, 0, 0, time.Local) }
	r, err = calculateOn(cfg, "", fixed)
	require.NoError(t, err)
	assert.Equal(t, 7, r.CurrentWeek)

	_, err = CalculateOn(cfg, "2026-13-45")
	require.Error(t, err)
	var perr *time.ParseError
	assert.True(t, errors.As(err, &perr))
}

func TestIsOnBreak(t *testing.T) {
	breaks := []Break{springBreak(t)}

	on, name := IsOnBreak(date(t, "2026-03-18"), breaks)
	assert.True(t, on)
	assert.Equal(t, "Spring Break", name)

	on, name = IsOnBreak(date(t, "2026-02-10"), breaks)
	assert.False(t, on)
	assert.Empty(t, name)

	on, _ = IsOnBreak(date(t, "2026-03-16"), breaks)
	assert.True(t, on, "break start is inclusive")
	on, _ = IsOnBreak(date(t, "2026-03-20"), breaks)
	assert.True(t, on, "break end is inclusive")
}

func TestIsOnBreak_FirstMatchWins(t *testing.T) {
	breaks := []Break{
		{Name: "First", Start: date(t, "2026-03-16"), End: date(t, "2026-03-20")},
		{Name: "Second", Start: date(t, "2026-03-18"), End: date(t, "2026-03-22")},
	}
	_, name := IsOnBreak(date(t, "2026-03-19"), breaks)
	assert.Equal(t, "First", name)
}

func TestCountBreakDays(t *testing.T) {
	breaks := []Break{springBreak(t)}

	tests := []struct {
		name       string
		start, end string
		breaks     []Break
		want       int
	}{
		{"whole year", "2026-01-01", "2026-12-31", breaks, 5},
		{"no breaks", "2026-01-01", "2026-12-31", nil, 0},
		{"ends on break start", "2026-01-01", "2026-03-16", breaks, 0},
		{"clipped at end", "2026-01-01", "2026-03-18", breaks, 2},
		{"clipped at start", "2026-03-19", "2026-04-01", breaks, 2},
		{"inside break", "2026-03-17", "2026-03-19", breaks, 2},
		{"after break", "2026-03-21", "2026-04-01", breaks, 0},
		{"empty interval", "2026-03-18", "2026-03-18", breaks, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountBreakDays(date(t, tt.start), date(t, tt.end), tt.breaks)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountBreakDays_MonotonicInWidth(t *testing.T) {
	breaks := []Break{springBreak(t)}
	start := date(t, "2026-03-01")

	prev := 0
	for i := 0; i < 40; i++ {
		got := CountBreakDays(start, addDays(start, i), breaks)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
	assert.Equal(t, 5, prev)
}

func TestGetWeekBoundaries_NoBreaksSpanSevenDays(t *testing.T) {
	start := date(t, "2026-01-19")
	for n := 1; n <= 20; n++ {
		ws, we := GetWeekBoundaries(n, start, nil)
		assert.Equal(t, addDays(start, (n-1)*7), ws)
		assert.Equal(t, 6, daysBetween(ws, we))
	}
}

func TestGetWeekBoundaries_SkipsBreaks(t *testing.T) {
	start := date(t, "2026-01-19")
	breaks := []Break{{
		Name:  "Midweek Break",
		Start: date(t, "2026-02-04"),
		End:   date(t, "2026-02-05"),
	}}

	ws, we := GetWeekBoundaries(3, start, breaks)
	assert.Equal(t, date(t, "2026-02-02"), ws)
	// Seven school days: Feb 2, 3, 6, 7, 8, 9, 10.
	assert.Equal(t, date(t, "2026-02-10"), we)

	ws, we = GetWeekBoundaries(4, start, breaks)
	assert.Equal(t, date(t, "2026-02-11"), ws)
	assert.Equal(t, date(t, "2026-02-17"), we)
}

func TestSchedule(t *testing.T) {
	cfg := springConfig(t)
	cfg.Breaks = []Break{springBreak(t)}

	weeks := Schedule(cfg)
	require.Len(t, weeks, 15)

	assert.Equal(t, 1, weeks[0].Number)
	assert.Equal(t, "Jan 19-25", weeks[0].Label())
	assert.Empty(t, weeks[0].Breaks)

	assert.Equal(t, "Mar 9-15", weeks[7].Label())
	assert.Empty(t, weeks[7].Breaks)

	assert.Equal(t, "Mar 21-27", weeks[8].Label())
	assert.Equal(t, []string{"Spring Break"}, weeks[8].Breaks)

	assert.True(t, weeks[8].Contains(date(t, "2026-03-21")))
	assert.False(t, weeks[8].Contains(date(t, "2026-03-18")))
}

func TestFormatDateRange(t *testing.T) {
	assert.Equal(t, "Jan 27-30", FormatDateRange(date(t, "2026-01-27"), date(t, "2026-01-30")))
	assert.Equal(t, "Jan 27 - Feb 2", FormatDateRange(date(t, "2026-01-27"), date(t, "2026-02-02")))
	assert.Equal(t, "Dec 28 - Jan 3", FormatDateRange(date(t, "2026-12-28"), date(t, "2027-01-03")))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-16")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC), d)

	for _, bad := range []string{"03/16/2026", " 2026-03-16 ", "2026-03-16T00:00:00Z", "2026-02-30", ""} {
		_, err = ParseDate(bad)
		var perr *time.ParseError
		assert.ErrorAs(t, err, &perr, "%q", bad)
	}
}

func TestSchedule_BreakAfterLastSchoolDay(t *testing.T) {
	cfg := Config{
		Start: date(t, "2026-01-19"),
		End:   date(t, "2026-01-29"),
		Breaks: []Break{{
			Name:  "Exam Prep",
			Start: date(t, "2026-01-26"),
			End:   date(t, "2026-01-29"),
		}},
	}

	weeks := Schedule(cfg)
	require.Len(t, weeks, 1)
	assert.Equal(t, "Jan 19-25", weeks[0].Label())
	assert.Equal(t, []string{"Exam Prep"}, weeks[0].Breaks)
}

func TestReport_JSON(t *testing.T) {
	cfg := springConfig(t)
	cfg.Breaks = []Break{springBreak(t)}

	onBreak := Calculate(cfg, date(t, "2026-03-18"))
	data, err := json.Marshal(onBreak)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(data, &wire))
	assert.Len(t, wire, 11)
	assert.Equal(t, "Spring Break", wire["break_name"])
	assert.Equal(t, "2026-03-21", wire["week_start"])
	assert.Equal(t, "2026-01-19", wire["semester_start"])

	var back Report
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, onBreak, back)

	notOnBreak := Calculate(cfg, date(t, "2026-02-09"))
	data, err = json.Marshal(notOnBreak)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"break_name":null`)
}
