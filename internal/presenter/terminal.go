// SPDX-License-Identifier: AGPL-3.0-or-later

package presenter

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/bartekus/craft/internal/semester"
)

const barWidth = 24

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	filled  lipgloss.Style
	empty   lipgloss.Style
	onBreak lipgloss.Style
	muted   lipgloss.Style
	current lipgloss.Style
}

func newStyles(w io.Writer, noColor bool) styles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		label:   r.NewStyle().Foreground(lipgloss.Color("245")),
		value:   r.NewStyle().Bold(true),
		filled:  r.NewStyle().Foreground(lipgloss.Color("82")),
		empty:   r.NewStyle().Foreground(lipgloss.Color("238")),
		onBreak: r.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("245")),
		current: r.NewStyle().Bold(true).Foreground(lipgloss.Color("82")),
	}
}

// Terminal writes a short, styled progress summary.
func Terminal(w io.Writer, v View, opts Options) error {
	st := newStyles(w, opts.NoColor)
	r := v.Report

	var b strings.Builder
	title := "Semester Progress"
	if v.Course != "" {
		title = v.Course
	}
	b.WriteString(st.title.Render("📚 "+title) + "\n\n")

	switch PhaseOf(r) {
	case PhaseBefore:
		b.WriteString(fmt.Sprintf("%s %s\n",
			st.label.Render("Semester starts"),
			st.value.Render(r.SemesterStart.Format("Mon, Jan 2"))))
	case PhaseAfter:
		b.WriteString(st.value.Render(fmt.Sprintf("Semester complete: all %d weeks done", r.TotalWeeks)) + "\n")
	}

	b.WriteString(fmt.Sprintf("%s %s  %s %s\n",
		st.label.Render("Week"),
		st.value.Render(fmt.Sprintf("%d of %d", r.CurrentWeek, r.TotalWeeks)),
		progressBar(st, r.PercentComplete),
		st.value.Render(FormatPercent(r.PercentComplete))))

	if r.OnBreak {
		b.WriteString(st.onBreak.Render("🏖  On break: "+r.BreakName) + "\n")
	}

	b.WriteString(fmt.Sprintf("%s %s\n",
		st.label.Render("This week:"),
		semester.FormatDateRange(r.WeekStart, r.WeekEnd)))
	b.WriteString(fmt.Sprintf("%s %d  %s %d\n",
		st.label.Render("Days elapsed:"), r.DaysElapsed,
		st.label.Render("Days remaining:"), r.DaysRemaining))
	b.WriteString(st.muted.Render("Semester: "+semester.FormatDateRange(r.SemesterStart, r.SemesterEnd)) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func progressBar(st styles, percent float64) string {
	filled := int(math.Round(percent / 100 * barWidth))
	filled = max(0, min(barWidth, filled))
	return "[" +
		st.filled.Render(strings.Repeat("█", filled)) +
		st.empty.Render(strings.Repeat("░", barWidth-filled)) +
		"]"
}

// WeeksTerminal writes the semester schedule, one line per week, marking
// the current week.
func WeeksTerminal(w io.Writer, weeks []semester.Week, current int, opts Options) error {
	st := newStyles(w, opts.NoColor)

	var b strings.Builder
	for _, wk := range weeks {
		line := fmt.Sprintf("Week %2d  %-16s", wk.Number, wk.Label())
		if len(wk.Breaks) > 0 {
			line += "  " + st.onBreak.Render("break: "+strings.Join(wk.Breaks, ", "))
		}
		if wk.Number == current {
			b.WriteString(st.current.Render("▶ "+line) + "\n")
			continue
		}
		b.WriteString("  " + line + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
