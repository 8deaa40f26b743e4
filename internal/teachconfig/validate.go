// SPDX-License-Identifier: AGPL-3.0-or-later

package teachconfig

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MaxWeek is the largest manual week accepted in progress.current_week.
const MaxWeek = 52

// ErrInvalidConfig is the sentinel wrapped by every ValidationError.
var ErrInvalidConfig = errors.New("invalid teaching config")

// ValidationError lists every problem found in a configuration.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return fmt.Sprintf("%s: %s", ErrInvalidConfig, e.Problems[0])
	}
	return fmt.Sprintf("%s: %d problems:\n  - %s", ErrInvalidConfig, len(e.Problems), strings.Join(e.Problems, "\n  - "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidConfig }

// Validate checks the configuration against the engine's preconditions:
// the semester has a start before its end, every break is named, ordered,
// inside the semester and disjoint from the others, and a manual week lies
// in [1, MaxWeek]. It returns nil or a *ValidationError.
func (c *TeachConfig) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	start, end := c.Dates.Start, c.Dates.End
	haveRange := true
	if start.IsZero() {
		add("dates.start is required")
		haveRange = false
	}
	if end.IsZero() {
		add("dates.end is required")
		haveRange = false
	}
	if haveRange && !start.Before(end.Time) {
		add("dates.start (%s) must be before dates.end (%s)", start, end)
		haveRange = false
	}

	type span struct {
		name string
		b    BreakPeriod
	}
	var spans []span

	for i, b := range c.Dates.Breaks {
		label := fmt.Sprintf("dates.breaks[%d]", i)
		if b.Name != "" {
			label = fmt.Sprintf("%s (%s)", label, b.Name)
		} else {
			add("%s.name is required", label)
		}

		if b.Start.IsZero() || b.End.IsZero() {
			if b.Start.IsZero() {
				add("%s.start is required", label)
			}
			if b.End.IsZero() {
				add("%s.end is required", label)
			}
			continue
		}
		if b.Start.After(b.End.Time) {
			add("%s: start (%s) must not be after end (%s)", label, b.Start, b.End)
			continue
		}
		if haveRange && (b.Start.Before(start.Time) || b.End.After(end.Time)) {
			add("%s: %s..%s must fall within the semester %s..%s", label, b.Start, b.End, start, end)
		}
		spans = append(spans, span{name: label, b: b})
	}

	var reach span
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].b.Start.Before(spans[j].b.Start.Time)
	})
	// Compare against the break reaching furthest so far, so every break
	// nested inside a long one is reported.
	for i := 1; i < len(spans); i++ {
		if i == 1 || spans[i-1].b.End.After(reach.b.End.Time) {
			reach = spans[i-1]
		}
		if cur := spans[i]; !cur.b.Start.After(reach.b.End.Time) {
			add("%s overlaps %s", cur.name, reach.name)
		}
	}

	if n, ok := c.Progress.CurrentWeek.Week(); ok && (n < 1 || n > MaxWeek) {
		add("progress.current_week must be \"auto\" or between 1 and %d, got %d", MaxWeek, n)
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
