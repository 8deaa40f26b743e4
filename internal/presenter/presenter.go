// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Craft - Craft is a helper toolkit for the markdown-command plugin ecosystem of AI coding assistants.
It ships the teaching commands' calendar engine, configuration loader, and report renderers.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package presenter renders semester progress reports for the terminal, as
// JSON, and as markdown.
package presenter

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bartekus/craft/internal/semester"
)

// Format selects an output renderer.
type Format string

const (
	FormatTerminal Format = "terminal"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Formats lists the accepted formats in help-text order.
var Formats = []Format{FormatTerminal, FormatJSON, FormatMarkdown}

// ParseFormat maps a flag value onto a Format. "md" and "text" are accepted
// as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "terminal", "text":
		return FormatTerminal, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("unknown format %q (want one of %s)", s, strings.Join(names, ", "))
}

// View is a report plus the context needed to title it.
type View struct {
	Course string
	Report semester.Report
}

// Options tune terminal and markdown output.
type Options struct {
	// NoColor strips ANSI styling from terminal output.
	NoColor bool
	// RenderMarkdown passes markdown output through the terminal renderer.
	RenderMarkdown bool
	// Width is the wrap width for rendered markdown; 0 means 80.
	Width int
}

// Render writes v to w in the requested format.
func Render(w io.Writer, format Format, v View, opts Options) error {
	switch format {
	case FormatJSON:
		return JSON(w, v.Report)
	case FormatMarkdown:
		md := Markdown(v)
		if opts.RenderMarkdown {
			rendered, err := RenderMarkdown(md, opts.Width)
			if err != nil {
				return err
			}
			md = rendered
		}
		_, err := io.WriteString(w, md)
		return err
	default:
		return Terminal(w, v, opts)
	}
}

// JSON writes the report's flat wire shape, indented, with a trailing newline.
func JSON(w io.Writer, r semester.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// FormatPercent renders 19.27 as "19.27%" and 100 as "100%".
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}

// Phase describes where a report sits relative to the semester.
type Phase int

const (
	PhaseBefore Phase = iota
	PhaseDuring
	PhaseAfter
)

// PhaseOf classifies r from its week and day counts. The last day of the
// semester already counts as PhaseAfter.
func PhaseOf(r semester.Report) Phase {
	switch {
	case r.DaysElapsed == 0 && r.PercentComplete == 0 && r.CurrentWeek == 0:
		return PhaseBefore
	case r.DaysRemaining == 0 && r.DaysElapsed > 0:
		return PhaseAfter
	default:
		return PhaseDuring
	}
}
