// SPDX-License-Identifier: AGPL-3.0-or-later

package presenter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/bartekus/craft/internal/projection"
	"github.com/bartekus/craft/internal/semester"
)

// Markdown renders the report as a markdown document.
func Markdown(v View) string {
	r := v.Report
	var b strings.Builder

	if v.Course != "" {
		b.WriteString(projection.RenderHeader(1, v.Course))
		b.WriteString(projection.RenderHeader(2, "Semester Progress"))
	} else {
		b.WriteString(projection.RenderHeader(1, "Semester Progress"))
	}

	var onBreak string
	if r.OnBreak {
		onBreak = r.BreakName
	}

	b.WriteString(projection.RenderFields([]projection.Field{
		{Label: "Week", Value: fmt.Sprintf("%d of %d", r.CurrentWeek, r.TotalWeeks)},
		{Label: "Progress", Value: FormatPercent(r.PercentComplete)},
		{Label: "On break", Value: onBreak},
		{Label: "Current week", Value: semester.FormatDateRange(r.WeekStart, r.WeekEnd)},
		{Label: "Days elapsed", Value: strconv.Itoa(r.DaysElapsed)},
		{Label: "Days remaining", Value: strconv.Itoa(r.DaysRemaining)},
		{Label: "Semester", Value: semester.FormatDateRange(r.SemesterStart, r.SemesterEnd)},
	}))

	return b.String()
}

// WeeksMarkdown renders the semester schedule as a markdown table.
func WeeksMarkdown(weeks []semester.Week, current int) string {
	var b strings.Builder
	b.WriteString(projection.RenderHeader(2, "Schedule"))

	rows := make([][]string, 0, len(weeks))
	for _, w := range weeks {
		var notes []string
		if w.Number == current {
			notes = append(notes, "**current**")
		}
		if len(w.Breaks) > 0 {
			notes = append(notes, "break: "+strings.Join(w.Breaks, ", "))
		}
		rows = append(rows, []string{
			strconv.Itoa(w.Number),
			w.Label(),
			semester.FormatDate(w.Start),
			semester.FormatDate(w.End),
			strings.Join(notes, "; "),
		})
	}
	b.WriteString(projection.RenderTable([]string{"Week", "Dates", "Start", "End", "Notes"}, rows))

	return b.String()
}

// RenderMarkdown renders markdown for terminal display. On failure the
// original content is returned alongside the error.
func RenderMarkdown(content string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content, err
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content, err
	}
	return rendered, nil
}
